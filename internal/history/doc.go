// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package history keeps a device's scan history in sync with the server and
// lets the user delete entries optimistically.
//
// A [Controller] combines two parts that share one list:
//
//   - [Synchronizer] owns the live query. Every snapshot it receives replaces
//     the rendered list wholesale: records of other devices are dropped,
//     duplicates collapse to their first occurrence and the rest is ordered
//     newest first, with undated records last.
//   - [Coordinator] removes a record as soon as deletion is requested and
//     puts it back if the server refuses, unless a newer snapshot has already
//     told a different story.
//
// Nothing in this package locks. Every exported method must be called on the
// [Executor] the controller was built with, and every asynchronous result
// (snapshots, query errors, delete completions) is posted back onto it.
// Results that belong to an earlier subscription are recognised by their
// generation and dropped.
package history

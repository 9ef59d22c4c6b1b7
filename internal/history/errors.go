// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package history

import (
	"errors"
	"fmt"
)

var (
	// ErrSubscription means the server refused the live query. It is not
	// retried.
	ErrSubscription = errors.New("subscription rejected")
	// ErrTransientRead means snapshot delivery was interrupted. The last
	// list stays in place while the query client reconnects.
	ErrTransientRead = errors.New("scan history temporarily unavailable")
	// ErrNotFound is returned by RequestDelete for an id that is not in the
	// rendered list.
	ErrNotFound = errors.New("scan not found")
	// ErrAlreadyPending is returned by RequestDelete while a delete of the
	// same id is in flight.
	ErrAlreadyPending = errors.New("delete already in progress")
)

// DeleteFailed tells the shell that a delete was rolled back.
type DeleteFailed struct {
	ID     string
	Reason error
}

func (d DeleteFailed) Error() string {
	return fmt.Sprintf("delete %s failed: %v", d.ID, d.Reason)
}

func (d DeleteFailed) Unwrap() error {
	return d.Reason
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrScanNotFound is returned when a query or delete targets a scan
	// (identified by id and owner device) that does not exist.
	ErrScanNotFound = errors.New("scan was not found")

	// ErrScanAlreadyExists is returned when a scan with the same id has
	// already been stored.
	ErrScanAlreadyExists = errors.New("scan already exists")

	// ErrScanNotSaved is returned when an INSERT completes without error but
	// affects no rows.
	ErrScanNotSaved = errors.New("scan was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when reading a result row fails.
	ErrScanningRows = errors.New("failed to scan scan_history rows")
)

// Errors returned while opening storages.
var (
	// ErrUnsupportedDriver is returned for a database driver other than
	// sqlite3 or pgx.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrConnectingDB is returned when the database cannot be opened or
	// pinged.
	ErrConnectingDB = errors.New("error connecting database")
)

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/scan-history/internal/logger"
	"github.com/MKhiriev/scan-history/models"
)

// scanRepository is the database/sql implementation of [ScanRepository] for
// both sqlite3 and PostgreSQL.
type scanRepository struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// NewScanRepository constructs a [ScanRepository] backed by db.
func NewScanRepository(db *DB, log *logger.Logger) ScanRepository {
	log.Debug().Str("driver", db.driver).Msg("creating scan repository")
	return &scanRepository{
		db:     db,
		now:    time.Now,
		logger: log,
	}
}

// CreateScan inserts scan.
//
// Error handling:
//   - unique violation on id → [ErrScanAlreadyExists].
//   - zero affected rows → [ErrScanNotSaved].
func (r *scanRepository) CreateScan(ctx context.Context, scan models.ScanRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertScanQuery(r.db.builder, scan, r.now().UnixMilli())
	if err != nil {
		log.Err(err).Str("func", "*scanRepository.CreateScan").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*scanRepository.CreateScan").Str("scan_id", scan.ID).Msg("error inserting scan")
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return ErrScanAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrScanNotSaved
	}

	return nil
}

// ListScans returns the records selected by filter, newest capture first.
func (r *scanRepository) ListScans(ctx context.Context, filter models.ScanFilter) ([]models.ScanRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListScansQuery(r.db.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "*scanRepository.ListScans").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*scanRepository.ListScans").Str("device_id", filter.OwnerDeviceID).Msg("error selecting scans")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	scans := make([]models.ScanRecord, 0)
	for rows.Next() {
		var row scanRow
		if err = rows.Scan(row.dest()...); err != nil {
			log.Err(err).Str("func", "*scanRepository.ListScans").Msg("error scanning scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		scans = append(scans, row.record())
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*scanRepository.ListScans").Msg("error iterating scan rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return scans, nil
}

// DeleteScan removes the scan id owned by deviceID.
func (r *scanRepository) DeleteScan(ctx context.Context, deviceID, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteScanQuery(r.db.builder, deviceID, id)
	if err != nil {
		log.Err(err).Str("func", "*scanRepository.DeleteScan").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*scanRepository.DeleteScan").Str("scan_id", id).Msg("error deleting scan")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrScanNotFound
	}

	return nil
}

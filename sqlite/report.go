package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/minhdn/jobsift"
)

// Compile-time interface verification.
var _ jobsift.ReportService = (*ReportService)(nil)

// ReportService implements jobsift.ReportService using SQLite.
type ReportService struct {
	db *DB
}

// NewReportService creates a new ReportService.
func NewReportService(db *DB) *ReportService {
	return &ReportService{db: db}
}

// SaveReport persists a report, assigning its ID and creation timestamp.
func (s *ReportService) SaveReport(ctx context.Context, report *jobsift.Report) error {
	if err := report.Validate(); err != nil {
		return err
	}

	report.ID = uuid.New().String()
	report.CreatedAt = time.Now().UTC()

	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reports (id, url, content_hash, payload, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, report.ID, report.URL, report.ContentHash, string(payload),
		report.CreatedAt.Format(time.RFC3339))

	return err
}

// FindReportByURL retrieves the most recent report for a URL no older than
// maxAge. Returns ENOTFOUND if none qualifies.
func (s *ReportService) FindReportByURL(ctx context.Context, url string, maxAge time.Duration) (*jobsift.Report, error) {
	cutoff := time.Now().UTC().Add(-maxAge).Format(time.RFC3339)

	var payload string
	err := s.db.QueryRowContext(ctx, `
		SELECT payload
		FROM reports
		WHERE url = ? AND created_at >= ?
		ORDER BY created_at DESC
		LIMIT 1
	`, url, cutoff).Scan(&payload)

	if err == sql.ErrNoRows {
		return nil, jobsift.Errorf(jobsift.ENOTFOUND, "no report for %q within %s", url, maxAge)
	}
	if err != nil {
		return nil, err
	}

	var report jobsift.Report
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		return nil, fmt.Errorf("decoding report: %w", err)
	}

	return &report, nil
}

// DeleteExpiredReports removes reports older than maxAge and returns how
// many were deleted.
func (s *ReportService) DeleteExpiredReports(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-maxAge).Format(time.RFC3339)

	result, err := s.db.ExecContext(ctx, "DELETE FROM reports WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(rows), nil
}

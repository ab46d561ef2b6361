package mock

import (
	"context"
	"time"

	"github.com/minhdn/jobsift"
)

var _ jobsift.ReportService = (*ReportService)(nil)

// ReportService is a mock implementation of jobsift.ReportService.
type ReportService struct {
	SaveReportFn           func(ctx context.Context, report *jobsift.Report) error
	FindReportByURLFn      func(ctx context.Context, url string, maxAge time.Duration) (*jobsift.Report, error)
	DeleteExpiredReportsFn func(ctx context.Context, maxAge time.Duration) (int, error)
}

func (s *ReportService) SaveReport(ctx context.Context, report *jobsift.Report) error {
	return s.SaveReportFn(ctx, report)
}

func (s *ReportService) FindReportByURL(ctx context.Context, url string, maxAge time.Duration) (*jobsift.Report, error) {
	return s.FindReportByURLFn(ctx, url, maxAge)
}

func (s *ReportService) DeleteExpiredReports(ctx context.Context, maxAge time.Duration) (int, error) {
	return s.DeleteExpiredReportsFn(ctx, maxAge)
}

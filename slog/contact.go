package slog

import (
	"log/slog"
	"time"

	"github.com/minhdn/jobsift"
)

// Ensure LoggingContactService implements jobsift.ContactService.
var _ jobsift.ContactService = (*LoggingContactService)(nil)

// LoggingContactService wraps a ContactService with debug logging.
type LoggingContactService struct {
	next   jobsift.ContactService
	logger *slog.Logger
}

// NewLoggingContactService creates a new LoggingContactService.
func NewLoggingContactService(next jobsift.ContactService, logger *slog.Logger) *LoggingContactService {
	return &LoggingContactService{next: next, logger: logger}
}

// ExtractContacts delegates to the wrapped service and logs the outcome.
func (s *LoggingContactService) ExtractContacts(html string) *jobsift.ContactBundle {
	begin := time.Now()
	bundle := s.next.ExtractContacts(html)
	s.logger.Info("contact extraction",
		"footer_tag", bundle.Debug.FooterTag,
		"phones", len(bundle.Phones),
		"emails", len(bundle.Emails),
		"duration", time.Since(begin),
	)
	return bundle
}

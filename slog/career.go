package slog

import (
	"log/slog"

	"github.com/minhdn/jobsift"
)

// Ensure LoggingCareerClassifier implements jobsift.CareerClassifier.
var _ jobsift.CareerClassifier = (*LoggingCareerClassifier)(nil)

// LoggingCareerClassifier wraps a CareerClassifier with debug logging.
// Classification runs on every harvested link, so it logs at debug level.
type LoggingCareerClassifier struct {
	next   jobsift.CareerClassifier
	logger *slog.Logger
}

// NewLoggingCareerClassifier creates a new LoggingCareerClassifier.
func NewLoggingCareerClassifier(next jobsift.CareerClassifier, logger *slog.Logger) *LoggingCareerClassifier {
	return &LoggingCareerClassifier{next: next, logger: logger}
}

// Classify delegates to the wrapped classifier and logs the verdict.
func (c *LoggingCareerClassifier) Classify(rawURL string) jobsift.CareerURLVerdict {
	verdict := c.next.Classify(rawURL)
	c.logger.Debug("career classification",
		"url", rawURL,
		"accepted", verdict.Accepted,
		"patterns", verdict.MatchedPatterns,
	)
	return verdict
}

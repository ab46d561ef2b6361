package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/minhdn/jobsift"
	"github.com/minhdn/jobsift/mock"
	jobsiftslog "github.com/minhdn/jobsift/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level}))
}

func TestLoggingFetcher_LogsFetch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.Fetcher{
		FetchFn: func(_ context.Context, _ string) (string, error) {
			return "<html></html>", nil
		},
	}

	f := jobsiftslog.NewLoggingFetcher(inner, testLogger(&buf, slog.LevelInfo))

	html, err := f.Fetch(context.Background(), "https://acme.vn/")
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", html)

	out := buf.String()
	assert.Contains(t, out, "fetch")
	assert.Contains(t, out, "https://acme.vn/")
	assert.Contains(t, out, "bytes=13")
}

func TestLoggingFetcher_LogsError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			return "", jobsift.Errorf(jobsift.EUNAVAILABLE, "no route to %s", url)
		},
	}

	f := jobsiftslog.NewLoggingFetcher(inner, testLogger(&buf, slog.LevelInfo))

	_, err := f.Fetch(context.Background(), "https://acme.vn/")
	require.Error(t, err)
	assert.Contains(t, buf.String(), "no route")
}

func TestLoggingContactService(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.ContactService{
		ExtractContactsFn: func(string) *jobsift.ContactBundle {
			return &jobsift.ContactBundle{
				Phones: []string{"0901234567"},
				Debug:  jobsift.ContactDebug{FooterTag: "footer"},
			}
		},
	}

	s := jobsiftslog.NewLoggingContactService(inner, testLogger(&buf, slog.LevelInfo))

	bundle := s.ExtractContacts("<html></html>")
	require.NotNil(t, bundle)

	out := buf.String()
	assert.Contains(t, out, "contact extraction")
	assert.Contains(t, out, "footer_tag=footer")
	assert.Contains(t, out, "phones=1")
}

func TestLoggingCareerClassifier_DebugLevel(t *testing.T) {
	t.Parallel()

	inner := &mock.CareerClassifier{
		ClassifyFn: func(string) jobsift.CareerURLVerdict {
			return jobsift.CareerURLVerdict{Accepted: true, MatchedPatterns: []string{"/careers"}}
		},
	}

	t.Run("silent at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		c := jobsiftslog.NewLoggingCareerClassifier(inner, testLogger(&buf, slog.LevelInfo))

		v := c.Classify("https://acme.vn/careers")
		assert.True(t, v.Accepted)
		assert.Empty(t, buf.String())
	})

	t.Run("logs at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		c := jobsiftslog.NewLoggingCareerClassifier(inner, testLogger(&buf, slog.LevelDebug))

		c.Classify("https://acme.vn/careers")
		assert.Contains(t, buf.String(), "career classification")
		assert.Contains(t, buf.String(), "accepted=true")
	})
}

func TestLoggingSitemapService(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.SitemapService{
		DiscoverURLsFn: func(_ context.Context, _ string, _ *jobsift.URLFilter) ([]string, error) {
			return []string{"https://acme.vn/tuyen-dung"}, nil
		},
	}

	s := jobsiftslog.NewLoggingSitemapService(inner, testLogger(&buf, slog.LevelInfo))

	urls, err := s.DiscoverURLs(context.Background(), "https://acme.vn/", nil)
	require.NoError(t, err)
	assert.Len(t, urls, 1)

	out := buf.String()
	assert.Contains(t, out, "sitemap discovery")
	assert.Contains(t, out, "count=1")
}

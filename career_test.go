package jobsift_test

import (
	"testing"

	"github.com/minhdn/jobsift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCareerRules_Classify(t *testing.T) {
	t.Parallel()

	rules := jobsift.DefaultCareerRules()

	t.Run("vietnamese career path accepted", func(t *testing.T) {
		t.Parallel()

		v := rules.Classify("https://example.vn/tuyen-dung/dang-can-tuyen/")
		assert.True(t, v.Accepted)
		assert.Equal(t, []string{"/tuyen-dung"}, v.MatchedPatterns)
	})

	t.Run("accented path folds to unaccented pattern", func(t *testing.T) {
		t.Parallel()

		v := rules.Classify("https://example.vn/tuyển-dụng")
		assert.True(t, v.Accepted)
		assert.Equal(t, []string{"/tuyen-dung"}, v.MatchedPatterns)
	})

	t.Run("english career path accepted", func(t *testing.T) {
		t.Parallel()

		v := rules.Classify("https://example.com/careers/open-roles/")
		assert.True(t, v.Accepted)
		require.Len(t, v.MatchedPatterns, 1)
		assert.Equal(t, "/career", v.MatchedPatterns[0])
	})

	t.Run("non-career indicators all reported", func(t *testing.T) {
		t.Parallel()

		v := rules.Classify("https://example.com/en/news/digital-transformation")
		assert.False(t, v.Accepted)
		assert.Equal(t, []string{"news", "digital", "transformation"}, v.MatchedPatterns)
	})

	t.Run("reject wins over accept", func(t *testing.T) {
		t.Parallel()

		v := rules.Classify("https://example.com/blog/careers-in-tech")
		assert.False(t, v.Accepted)
		assert.Contains(t, v.MatchedPatterns, "blog")
	})

	t.Run("neither stage matches rejects by default", func(t *testing.T) {
		t.Parallel()

		v := rules.Classify("https://example.com/xyzzy")
		assert.False(t, v.Accepted)
		assert.Empty(t, v.MatchedPatterns)
	})

	t.Run("query string participates in matching", func(t *testing.T) {
		t.Parallel()

		v := rules.Classify("https://example.com/p?redirect=/careers")
		assert.True(t, v.Accepted)
	})

	t.Run("host does not participate in matching", func(t *testing.T) {
		t.Parallel()

		v := rules.Classify("https://news.example.com/jobs")
		assert.True(t, v.Accepted)
	})

	t.Run("unparseable input falls back to whole string", func(t *testing.T) {
		t.Parallel()

		v := rules.Classify("://bad url/tuyen-dung")
		assert.True(t, v.Accepted)
	})
}

func TestCareerRules_Classify_Empty(t *testing.T) {
	t.Parallel()

	v := jobsift.DefaultCareerRules().Classify("")
	assert.False(t, v.Accepted)
	assert.Empty(t, v.MatchedPatterns)
}

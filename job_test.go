package jobsift_test

import (
	"testing"

	"github.com/minhdn/jobsift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleset_Accepts(t *testing.T) {
	t.Parallel()

	likely := jobsift.RulesetLikelyJob()
	assert.False(t, likely.Accepts(2))
	assert.True(t, likely.Accepts(3))
	assert.True(t, likely.Accepts(9))

	element := jobsift.RulesetJobElement()
	assert.False(t, element.Accepts(1))
	assert.True(t, element.Accepts(2))
}

func TestRuleset_Confidence(t *testing.T) {
	t.Parallel()

	r := jobsift.RulesetLikelyJob()

	assert.Equal(t, 0.0, r.Confidence(0))
	assert.Equal(t, 0.6, r.Confidence(3))
	assert.Equal(t, 1.0, r.Confidence(5))

	t.Run("clips above one", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 1.0, r.Confidence(9))
	})

	t.Run("clips below zero", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0.0, r.Confidence(-1))
	})

	t.Run("zero scale falls back to default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0.4, jobsift.Ruleset{}.Confidence(2))
	})
}

func TestLookupRuleset(t *testing.T) {
	t.Parallel()

	likely, ok := jobsift.LookupRuleset("likely-job")
	require.True(t, ok)
	assert.Equal(t, 3, likely.Threshold)
	assert.NotEmpty(t, likely.Keywords)
	assert.NotEmpty(t, likely.SalaryPatterns)
	assert.NotEmpty(t, likely.CompanyPatterns)

	element, ok := jobsift.LookupRuleset("job-element")
	require.True(t, ok)
	assert.Equal(t, 2, element.Threshold)

	_, ok = jobsift.LookupRuleset("no-such-preset")
	assert.False(t, ok)
}

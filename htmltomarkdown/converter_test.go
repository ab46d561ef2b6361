package htmltomarkdown_test

import (
	"testing"

	"github.com/minhdn/jobsift"
	"github.com/minhdn/jobsift/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	c := htmltomarkdown.NewConverter()

	md, err := c.Convert(`<div><h3>Backend Engineer</h3><p>Salary: <strong>negotiable</strong></p><a href="/apply">Apply now</a></div>`)
	require.NoError(t, err)

	assert.Contains(t, md, "Backend Engineer")
	assert.Contains(t, md, "**negotiable**")
	assert.Contains(t, md, "[Apply now](/apply)")
}

func TestConverter_List(t *testing.T) {
	t.Parallel()

	c := htmltomarkdown.NewConverter()

	md, err := c.Convert(`<ul><li>Full-time</li><li>Remote friendly</li></ul>`)
	require.NoError(t, err)

	assert.Contains(t, md, "- Full-time")
	assert.Contains(t, md, "- Remote friendly")
}

func TestConverter_StripsImages(t *testing.T) {
	t.Parallel()

	c := htmltomarkdown.NewConverter()

	md, err := c.Convert(`<div><img src="/logo.png" alt="Acme logo"><h3>Data Analyst</h3><p>Apply today</p></div>`)
	require.NoError(t, err)

	assert.NotContains(t, md, "![")
	assert.NotContains(t, md, "/logo.png")
	assert.Contains(t, md, "Data Analyst")
}

func TestConverter_TrimsOutput(t *testing.T) {
	t.Parallel()

	c := htmltomarkdown.NewConverter()

	md, err := c.Convert(`<div><p>Frontend Developer</p><p>Hà Nội</p></div>`)
	require.NoError(t, err)

	assert.Equal(t, "Frontend Developer\n\nHà Nội", md)
}

func TestConverter_EmptyInput(t *testing.T) {
	t.Parallel()

	c := htmltomarkdown.NewConverter()

	_, err := c.Convert("   ")
	require.Error(t, err)
	assert.Equal(t, jobsift.EINVALID, jobsift.ErrorCode(err))
}

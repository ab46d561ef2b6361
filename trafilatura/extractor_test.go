package trafilatura_test

import (
	"testing"

	"github.com/minhdn/jobsift"
	"github.com/minhdn/jobsift/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>Tuyển dụng - Acme</title></head><body>
		<nav><a href="/">Home</a><a href="/about">About</a></nav>
		<main>
			<h1>Backend Engineer</h1>
			<p>We are hiring a backend engineer to join our platform team in Hanoi.
			You will design APIs, own services in production, and mentor juniors.</p>
			<p>Salary is competitive and negotiable based on experience.</p>
		</main>
		<footer>Copyright 2026 Acme</footer>
	</body></html>`

	e := trafilatura.NewExtractor()

	result, err := e.Extract(html)
	require.NoError(t, err)

	assert.Contains(t, result.Text, "backend engineer")
	assert.Contains(t, result.Text, "Hanoi")
	assert.NotContains(t, result.Text, "Copyright")
}

func TestExtractor_EmptyInput(t *testing.T) {
	t.Parallel()

	e := trafilatura.NewExtractor()

	_, err := e.Extract("")
	require.Error(t, err)
	assert.Equal(t, jobsift.EINVALID, jobsift.ErrorCode(err))
}

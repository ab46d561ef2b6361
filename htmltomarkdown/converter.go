// Package htmltomarkdown implements jobsift.Converter using the
// html-to-markdown library.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/minhdn/jobsift"
)

// Ensure Converter implements jobsift.Converter at compile time.
var _ jobsift.Converter = (*Converter)(nil)

// Listing fragments carry company logos and decorative icons; an image
// reference in a report is a dead link, so images are dropped from the
// rendered Markdown along with the blank-line runs they leave behind.
var (
	imageRx    = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	blankRunRx = regexp.MustCompile(`\n{3,}`)
)

// Converter renders job listing fragments to Markdown for scan reports.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms a listing fragment into Markdown suitable for a scan
// report: images are stripped and blank-line runs collapsed.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", jobsift.Errorf(jobsift.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	result = imageRx.ReplaceAllString(result, "")
	result = blankRunRx.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result), nil
}

package jobsift

// Converter transforms HTML content into Markdown. Used to render accepted
// job fragments into a readable form for scan reports.
type Converter interface {
	Convert(html string) (string, error)
}

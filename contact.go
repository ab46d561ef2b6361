package jobsift

// ContactBundle holds the contact handles extracted from a page's footer
// region. Phones are canonical local digit strings (length 10-11, leading
// zero, never the +84 form); emails are lowercase. Both lists are
// deduplicated in first-seen order, with phones sourced from explicit
// tel: links always ordered ahead of phones found in free text.
type ContactBundle struct {
	Phones []string     `json:"phones"`
	Emails []string     `json:"emails"`
	Debug  ContactDebug `json:"debug"`
}

// ContactDebug records how the footer extraction went. It is a required
// output field, not optional diagnostic sugar: downstream consumers use it
// to tune the patterns against real-world footers.
type ContactDebug struct {
	// FooterTag is the tag name of the selected footer node, or "" when
	// the whole-document fallback was used.
	FooterTag string `json:"footerTag"`

	// TelRaw holds the cleaned numbers found via explicit tel: links,
	// before merging with free-text matches.
	TelRaw []string `json:"telRaw"`

	// TextFirst200 is the first 200 characters of the footer's
	// normalized text.
	TextFirst200 string `json:"textFirst200"`
}

// ContactService extracts contact handles from already-fetched HTML.
// Implementations are total: they always return a bundle, possibly with
// empty lists, and never an error.
type ContactService interface {
	ExtractContacts(html string) *ContactBundle
}

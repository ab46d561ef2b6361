package jobsift

import (
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CareerURLVerdict is the accept/reject decision for whether a URL path
// plausibly leads to a careers page, plus the patterns that drove it. On
// rejection MatchedPatterns holds every non-career indicator found; on
// acceptance it holds the first career pattern that matched.
type CareerURLVerdict struct {
	Accepted        bool     `json:"accepted"`
	MatchedPatterns []string `json:"matched_patterns"`
}

// CareerClassifier rates a URL's chance of being a careers page.
type CareerClassifier interface {
	Classify(rawURL string) CareerURLVerdict
}

// CareerRules is the pattern configuration for URL classification. Both
// lists are matched as lowercase substrings of the URL's path and query;
// AcceptPatterns are scanned in order and the first hit wins.
type CareerRules struct {
	// RejectIndicators are strong non-career signals. Any hit rejects
	// immediately, before the accept scan runs.
	RejectIndicators []string

	// AcceptPatterns are career-page signals, strongest first.
	AcceptPatterns []string
}

// Ensure CareerRules implements CareerClassifier at compile time.
var _ CareerClassifier = CareerRules{}

// Classify lowercases the URL's path and query and applies the two-stage
// decision: early reject on any non-career indicator (all matches
// reported), then accept on the first career pattern. A URL matching
// neither stage is rejected by default: absence of positive evidence is
// treated as absence of a career page, favoring precision over recall.
//
// Accented and unaccented Vietnamese path forms are both matched by
// checking a diacritic-folded copy of the path alongside the raw one.
func (r CareerRules) Classify(rawURL string) CareerURLVerdict {
	haystack := careerHaystack(rawURL)
	folded := foldDiacritics(haystack)

	var rejected []string
	for _, ind := range r.RejectIndicators {
		if strings.Contains(haystack, ind) || strings.Contains(folded, ind) {
			rejected = append(rejected, ind)
		}
	}
	if len(rejected) > 0 {
		return CareerURLVerdict{Accepted: false, MatchedPatterns: rejected}
	}

	for _, pat := range r.AcceptPatterns {
		if strings.Contains(haystack, pat) || strings.Contains(folded, pat) {
			return CareerURLVerdict{Accepted: true, MatchedPatterns: []string{pat}}
		}
	}

	return CareerURLVerdict{}
}

// careerHaystack extracts the lowercased path and query from a URL.
// Unparseable input falls back to the whole string lowercased.
func careerHaystack(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return strings.ToLower(rawURL)
	}
	h := u.Path
	if u.RawQuery != "" {
		h += "?" + u.RawQuery
	}
	if h == "" {
		h = rawURL
	}
	return strings.ToLower(h)
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldDiacritics strips combining marks so that accented Vietnamese path
// segments compare equal to their ASCII forms. The đ/Đ pair does not
// decompose under NFD and is mapped explicitly.
func foldDiacritics(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case 'đ':
			return 'd'
		case 'Đ':
			return 'D'
		}
		return r
	}, out)
}

// DefaultCareerRules returns the production pattern tables: a multilingual
// reject list of strong non-career indicators and an ordered accept list of
// English and Vietnamese career terms, the Vietnamese ones in accented,
// unaccented, and unhyphenated variants.
func DefaultCareerRules() CareerRules {
	return CareerRules{
		RejectIndicators: []string{
			"blog", "news", "article", "post", "story", "product", "service",
			"solution", "about", "contact", "industry", "market", "research",
			"analysis", "report", "webinar", "conference", "workshop",
			"training", "certification", "award", "recognition", "milestone",
			"achievement", "case-study", "success-story", "testimonial",
			"review", "tutorial", "guide", "whitepaper", "press", "media",
			"publication", "tin-tuc", "tin", "impact", "social", "enterprise",
			"doanh-nghiep", "application", "deployed", "successfully",
			"implementation", "technology", "digital", "transformation",
			"business", "customer", "experience", "management",
		},
		AcceptPatterns: []string{
			"/tuyen-dung", "/tuyển-dụng", "/tuyendung",
			"/viec-lam", "/việc-làm", "/vieclam",
			"/co-hoi", "/cơ-hội", "/cohoi",
			"/nhan-vien", "/nhân-viên", "/nhanvien",
			"/ung-vien", "/ứng-viên", "/ungvien",
			"/cong-viec", "/công-việc", "/congviec",
			"/lam-viec", "/làm-việc", "/lamviec",
			"/thu-viec", "/thử-việc", "/thuviec",
			"/nghe-nghiep", "/nghề-nghiệp", "/nghenghiep",
			"/tim-viec", "/tìm-việc", "/timviec",
			"/dang-tuyen", "/đang-tuyển", "/dangtuyen",
			"/career", "/careers", "/job", "/jobs",
			"/hiring", "/recruitment", "/employment",
			"/vacancy", "/vacancies", "/opportunity", "/opportunities",
			"/position", "/positions", "/apply",
			"/join-us", "/joinus", "/work-with-us", "/workwithus",
			"/open-role", "/open-roles", "/openrole", "/openroles",
			"/we-are-hiring", "/wearehiring", "/talent", "/team",
		},
	}
}

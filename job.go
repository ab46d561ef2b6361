package jobsift

// JobFlags records which of the five indicator categories fired during
// scoring.
type JobFlags struct {
	HasJobKeywords  bool `json:"has_job_keywords"`
	HasSalaryInfo   bool `json:"has_salary_info"`
	HasLocationInfo bool `json:"has_location_info"`
	HasApplyButton  bool `json:"has_apply_button"`
	HasCompanyInfo  bool `json:"has_company_info"`
}

// ElementInfo carries display metadata about the scored element. These
// fields are aids for inspecting why a fragment scored the way it did; they
// take no part in the scoring decision.
type ElementInfo struct {
	Tag         string   `json:"tag"`
	Classes     []string `json:"classes"`
	ID          string   `json:"id"`
	TextLength  int      `json:"text_length"`
	HasLinks    bool     `json:"has_links"`
	HasImages   bool     `json:"has_images"`
	HTMLPreview string   `json:"html_preview"`
	TextPreview string   `json:"text_preview"`
}

// JobIndicatorProfile is the result of scoring a DOM fragment for job
// content. Confidence is the score scaled into [0, 1]. When the element
// could not be read at all, Score and Confidence are zero and Failure
// describes what went wrong; scoring never returns an error.
type JobIndicatorProfile struct {
	Flags         JobFlags    `json:"flags"`
	Score         int         `json:"score"`
	FoundKeywords []string    `json:"found_keywords"`
	Confidence    float64     `json:"confidence"`
	Element       ElementInfo `json:"element_info"`
	Failure       string      `json:"failure,omitempty"`
}

// ScoredFragment pairs a fragment's outer HTML with its profile, so callers
// can post-process fragments that met the ruleset threshold.
type ScoredFragment struct {
	HTML    string               `json:"html"`
	Profile *JobIndicatorProfile `json:"profile"`
}

// JobScorer rates DOM fragments for job-posting likelihood.
type JobScorer interface {
	// ScoreFragment parses an HTML fragment and scores its content.
	ScoreFragment(html string) *JobIndicatorProfile

	// ScoreText scores already-extracted plain text.
	ScoreText(text string) *JobIndicatorProfile

	// ScoreContainers scans a full document for repeated listing
	// containers and returns the fragments whose score meets the
	// ruleset threshold, best first, at most max entries.
	ScoreContainers(html string, max int) []ScoredFragment
}

// Ruleset is a named configuration of keyword tables, pattern sets, weights,
// and acceptance threshold for the job-likelihood scorer. Rulesets are plain
// values passed into scorers, not hidden globals, so tables stay swappable
// for tuning or localization.
//
// The weights and the confidence denominator are empirically chosen
// constants carried over from production tuning; change them only with
// fresh calibration data.
type Ruleset struct {
	Name      string
	Threshold int

	// Per-category weights. KeywordWeight applies once per distinct
	// keyword found; the other categories contribute at most once.
	KeywordWeight  int
	SalaryWeight   int
	LocationWeight int
	ApplyWeight    int
	CompanyWeight  int

	// ConfidenceScale is the denominator in confidence = score / scale,
	// clipped to 1.0.
	ConfidenceScale int

	// Keywords and ApplyPhrases are matched as lowercase substrings.
	// SalaryPatterns, LocationPatterns, and CompanyPatterns are regexp
	// sources compiled by the scorer.
	Keywords         []string
	SalaryPatterns   []string
	LocationPatterns []string
	ApplyPhrases     []string
	CompanyPatterns  []string
}

// Accepts reports whether a score meets the ruleset's threshold.
func (r Ruleset) Accepts(score int) bool {
	return score >= r.Threshold
}

// Confidence maps a score into [0, 1] using the ruleset's scale.
func (r Ruleset) Confidence(score int) float64 {
	scale := r.ConfidenceScale
	if scale <= 0 {
		scale = 5
	}
	c := float64(score) / float64(scale)
	if c > 1.0 {
		return 1.0
	}
	if c < 0 {
		return 0
	}
	return c
}

// Bilingual (English/Vietnamese) vocabulary of role and hiring terms.
// Shared by both presets.
var jobKeywords = []string{
	"tuyển dụng", "tuyển", "việc làm", "cơ hội", "vị trí",
	"career", "job", "position", "opportunity", "vacancy",
	"hiring", "recruitment", "apply", "application",
	"developer", "engineer", "analyst", "manager", "designer",
	"intern", "internship", "thực tập", "full-time", "part-time",
}

var salaryPatterns = []string{
	`(?i)\d{1,3}(?:,\d{3})*(?:\.\d+)?\s*(?:triệu|million|tr|usd|vnd)`,
	`\$\d{1,3}(?:,\d{3})*(?:\.\d+)?`,
	`(?i)phụ cấp|thỏa thuận|competitive|negotiable`,
}

var locationPatterns = []string{
	`(?i)hà nội|hanoi|\bhn\b`,
	`(?i)tp\.?\s?hcm|ho chi minh|\bhcm\b|saigon`,
	`(?i)\bremote\b|\bhybrid\b|on-site`,
	`(?i)new york|\bnyc\b`,
	`(?i)san francisco|silicon valley`,
	`(?i)\blondon\b|\bsingapore\b|\btokyo\b|\bberlin\b`,
}

var applyPhrases = []string{
	"apply", "apply now", "apply for", "send resume", "đăng ký", "ứng tuyển",
}

// RulesetLikelyJob returns the preset used when deciding whether a fragment
// is likely job content at all (threshold 3). Its company-info patterns key
// on hiring-pitch and company-profile phrasing.
func RulesetLikelyJob() Ruleset {
	return Ruleset{
		Name:             "likely-job",
		Threshold:        3,
		KeywordWeight:    1,
		SalaryWeight:     2,
		LocationWeight:   1,
		ApplyWeight:      2,
		CompanyWeight:    1,
		ConfidenceScale:  5,
		Keywords:         jobKeywords,
		SalaryPatterns:   salaryPatterns,
		LocationPatterns: locationPatterns,
		ApplyPhrases:     applyPhrases,
		CompanyPatterns: []string{
			`(?i)we\s+are\s+(?:hiring|looking\s+for)`,
			`(?i)join\s+our\s+team`,
			`(?i)about\s+(?:us|the\s+company)|về chúng tôi`,
			`(?i)founded\s+in\s+\d{4}|thành lập`,
			`(?i)industry|lĩnh vực`,
		},
	}
}

// RulesetJobElement returns the preset used when sifting listing containers
// on an already-accepted careers page (threshold 2). Its company-info
// patterns key on "Careers at X" / "X is hiring" naming.
func RulesetJobElement() Ruleset {
	return Ruleset{
		Name:             "job-element",
		Threshold:        2,
		KeywordWeight:    1,
		SalaryWeight:     2,
		LocationWeight:   1,
		ApplyWeight:      2,
		CompanyWeight:    1,
		ConfidenceScale:  5,
		Keywords:         jobKeywords,
		SalaryPatterns:   salaryPatterns,
		LocationPatterns: locationPatterns,
		ApplyPhrases:     applyPhrases,
		CompanyPatterns: []string{
			`(?i)(?:join|work with|careers at)\s+[A-Za-z][A-Za-z\s&]+`,
			`(?i)[A-Za-z][A-Za-z\s&]+\s+(?:is hiring|is looking for|seeks)`,
		},
	}
}

// LookupRuleset returns the named preset. The second result is false when
// the name is unknown.
func LookupRuleset(name string) (Ruleset, bool) {
	switch name {
	case "likely-job":
		return RulesetLikelyJob(), true
	case "job-element":
		return RulesetJobElement(), true
	}
	return Ruleset{}, false
}

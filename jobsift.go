// Package jobsift extracts structured hiring signals from arbitrary,
// unstructured third-party HTML without per-site parsers: normalized contact
// handles (phones, emails) from a page's footer region, a job-posting
// likelihood score for a DOM fragment, and an accept/reject verdict for
// whether a URL path plausibly leads to a careers page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/). The
// classifiers themselves are pure, total functions: they never perform I/O,
// never block, and always return a value rather than raising.
package jobsift

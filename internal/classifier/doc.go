// Package classifier assigns descriptive, filesystem-safe names to
// scraped script text. Naming tries three strategies in priority order:
// an extracted function name, a keyword-based category match, and a
// fallback seed (the original name or a timestamp). A language
// signature scan picks the file extension in every case.
//
// Everything in this package is pure and safe for concurrent callers:
// the rule table is immutable after construction and the random suffix
// source is injectable.
package classifier

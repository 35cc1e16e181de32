// internal/app/system/sanitize/sanitize.go

// Package sanitize strips markup from user-supplied free text before it is
// persisted. Group descriptions, goal text, session notes, and profile
// fields all pass through here; the API stores and serves plain text, so
// the strict policy removes every tag rather than allowing a subset.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Text strips all HTML from s and trims surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}

// Fields sanitizes each string in place and returns the slice for chaining.
func Fields(ss []string) []string {
	for i, s := range ss {
		ss[i] = Text(s)
	}
	return ss
}

// internal/app/system/htmlsanitize/htmlsanitize.go
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

// strict strips all markup. The free-text fields in this app (goals,
// notes, instructions, descriptions) are plain text as far as the API is
// concerned, so anything that looks like HTML is removed outright.
var strict = bluemonday.StrictPolicy()

// Clean removes all HTML markup from s, returning plain text.
func Clean(s string) string {
	return strict.Sanitize(s)
}

// CleanAll cleans each string in place and returns the slice.
func CleanAll(ss []string) []string {
	for i, s := range ss {
		ss[i] = strict.Sanitize(s)
	}
	return ss
}

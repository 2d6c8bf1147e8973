package validation

import (
	"regexp"
	"strings"
)

// MaxSearchQueryLength bounds the search term handed to the store.
const MaxSearchQueryLength = 200

var (
	scriptBlock      = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	markupTag        = regexp.MustCompile(`<[^>]+>`)
	javascriptScheme = regexp.MustCompile(`(?i)javascript:`)
	phoneDisallowed  = regexp.MustCompile(`[^0-9+\-()\s]`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
	searchDisallowed = regexp.MustCompile(`[<>"'%;()&+]`)
)

// Text trims s and strips script blocks, any remaining tags and javascript: URLs.
func Text(s string) string {
	s = strings.TrimSpace(s)
	s = scriptBlock.ReplaceAllString(s, "")
	s = markupTag.ReplaceAllString(s, "")
	s = javascriptScheme.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Phone keeps digits, '+', '-', parentheses and whitespace. Each whitespace
// run left behind is collapsed to a single space.
func Phone(s string) string {
	s = strings.TrimSpace(s)
	s = phoneDisallowed.ReplaceAllString(s, "")
	return whitespaceRun.ReplaceAllString(s, " ")
}

// Email trims and lower-cases an address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SearchQuery trims q, drops characters with meaning to SQL or HTML and cuts
// the result to MaxSearchQueryLength runes.
func SearchQuery(q string) string {
	q = searchDisallowed.ReplaceAllString(strings.TrimSpace(q), "")
	if r := []rune(q); len(r) > MaxSearchQueryLength {
		q = string(r[:MaxSearchQueryLength])
	}
	return q
}

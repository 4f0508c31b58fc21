package extract

import "strings"

// SplitStem splits a filename stem into (title, publisher) without the
// model. Archived article filenames commonly append the publisher after
// an underscore or hyphen; splitting on the rightmost occurrence keeps
// hyphens inside the title intact. When the stem has neither separator,
// the whole stem is the title and the publisher is SentinelPublisher.
func SplitStem(stem string) (title, publisher string) {
	if i := strings.LastIndex(stem, "_"); i >= 0 {
		return strings.TrimSpace(stem[:i]), strings.TrimSpace(stem[i+1:])
	}
	if i := strings.LastIndex(stem, "-"); i >= 0 {
		return strings.TrimSpace(stem[:i]), strings.TrimSpace(stem[i+1:])
	}
	return strings.TrimSpace(stem), SentinelPublisher
}

// KebabCase joins the whitespace-delimited tokens of s with hyphens.
// Splitting follows Unicode whitespace, so full-width spaces in CJK
// titles collapse too. All other characters, punctuation included, pass
// through verbatim.
func KebabCase(s string) string {
	return strings.Join(strings.Fields(s), "-")
}

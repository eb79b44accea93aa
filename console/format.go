// Package console renders tracking results for a terminal and drives the
// interactive prompt.
package console

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// Placeholder stands in for any field the provider did not send.
	Placeholder = "N/A"

	// TimestampLayout is a 12-hour clock with zero-padded fields.
	TimestampLayout = "2006-01-02 03:04:05 PM"

	underlineBold = "\033[4;1m"
	reset         = "\033[0m"
)

// FormatTimestamp renders epoch milliseconds in loc. Nil and zero render as
// Placeholder.
func FormatTimestamp(ts *int64, loc *time.Location) string {
	if ts == nil || *ts == 0 {
		return Placeholder
	}
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(*ts).In(loc).Format(TimestampLayout)
}

// Title starts a new word at every cased letter that does not follow another
// cased letter, so "st.thomas" becomes "St.Thomas" and "2nd" becomes "2Nd".
// The first letter of a word is title-cased, the rest lower-cased.
func Title(s string) string {
	lower := cases.Lower(language.Und)
	runes := []rune(s)

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(runes); {
		if !isCased(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j := i + 1
		for j < len(runes) && isCased(runes[j]) {
			j++
		}
		b.WriteRune(unicode.ToTitle(runes[i]))
		b.WriteString(lower.String(string(runes[i+1 : j])))
		i = j
	}
	return b.String()
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}

// OrPlaceholder returns *s, or Placeholder when s is nil.
func OrPlaceholder(s *string) string {
	if s == nil {
		return Placeholder
	}
	return *s
}

func titleOrPlaceholder(s *string) string {
	if s == nil {
		return Placeholder
	}
	return Title(*s)
}

func heading(s string) string {
	return underlineBold + s + reset
}

package domain

import (
	"strings"
	"unicode"
)

// NormalizeName prepares a display name (tool, vendor, category) for storage:
//   - trims leading/trailing whitespace
//   - collapses internal whitespace runs into a single space
//
// Case is preserved; uniqueness of names is case-sensitive.
func NormalizeName(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeOptional trims an optional value.
// A value that is blank after trimming becomes nil.
func NormalizeOptional(text *string) *string {
	if text == nil {
		return nil
	}
	v := strings.TrimSpace(*text)
	if v == "" {
		return nil
	}
	return &v
}

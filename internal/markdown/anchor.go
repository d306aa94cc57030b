package markdown

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Anchor returns the GitHub-style fragment for a heading with the given text:
// lower-cased, spaces turned into hyphens, punctuation other than '-' and '_'
// dropped.
func Anchor(text string) string {
	lower := cases.Lower(language.Und).String(strings.TrimSpace(text))
	var b strings.Builder
	for _, r := range lower {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		}
	}
	return b.String()
}

// MethodAnchor returns the anchor id of a method block. Methods live in their
// own "method-" namespace so they never collide with section or title
// headings; n numbers the blocks whose names share a slug, starting at 0.
func MethodAnchor(name string, n int) string {
	id := "method-" + Anchor(name)
	if n > 0 {
		id += "-" + strconv.Itoa(n)
	}
	return id
}

// MethodAnchors hands out method anchors in page order. The summary table and
// the method blocks each use their own MethodAnchors so overloads line up.
type MethodAnchors struct {
	seen map[string]int
}

// Next returns the anchor for the next method named name.
func (a *MethodAnchors) Next(name string) string {
	if a.seen == nil {
		a.seen = make(map[string]int)
	}
	slug := Anchor(name)
	n := a.seen[slug]
	a.seen[slug]++
	return MethodAnchor(name, n)
}

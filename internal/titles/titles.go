// Package titles provides the corpora of "does anybody else" completions a
// session transmits, from an embedded list or live sources.
package titles

import (
	"context"
	"strings"
)

// Source yields an ordered, non-empty list of titles. A title is the clause
// that completes "does anybody else ..."; sources normalize their raw
// material into that shape.
type Source interface {
	Titles(ctx context.Context) ([]string, error)
}

// Static serves a fixed list.
type Static struct {
	titles []string
}

func NewStatic(list []string) *Static {
	return &Static{titles: list}
}

// Default returns the embedded corpus.
func Default() *Static {
	return NewStatic(corpus)
}

func (s *Static) Titles(_ context.Context) ([]string, error) {
	return append([]string(nil), s.titles...), nil
}

// leading phrases stripped from harvested titles so they read as completions.
var leadingPhrases = []string{
	"does anybody else",
	"does anyone else",
	"dae",
}

// Normalize turns a raw harvested title into a completion clause: lowercase,
// leading "does anybody else"-style phrasing stripped, punctuation trimmed.
// Returns "" when nothing usable remains.
func Normalize(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	for _, p := range leadingPhrases {
		if strings.HasPrefix(t, p) {
			t = strings.TrimSpace(t[len(p):])
			break
		}
	}
	t = strings.Trim(t, " ?!.,;:")
	return t
}

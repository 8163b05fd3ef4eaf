package main

import (
	"fmt"

	"github.com/auvred/luapat"
	"github.com/coregx/ahocorasick"
)

// searcher finds the hits of the configured patterns in a line.
type searcher interface {
	contains(line string) (bool, error)
	// each calls fn with the captures of every hit, or the hit itself when
	// there are no captures.
	each(line string, fn func(captures []string)) error
}

// rewriter rewrites a line and reports the number of replacements.
type rewriter interface {
	rewrite(line string) (string, int, error)
}

// escapePattern quotes every punctuation byte of s so that the result
// matches s literally.
func escapePattern(s string) string {
	// Constant pattern and template: GSub cannot fail here.
	res, _, _ := luapat.GSub(s, "%p", luapat.Template("%%%0"), -1)
	return res
}

// startOffset mirrors the init handling of luapat.Find for searchers that
// do not go through it.
func startOffset(init, length int) int {
	switch {
	case init > 0:
		return init - 1
	case init == 0 || -init > length:
		return 0
	}
	return length + init
}

type patternSearcher struct {
	patterns []string
	// patterns with magic characters escaped in plain mode, for gmatch.
	quoted []string
	init   int
	plain  bool
}

func newPatternSearcher(patterns []string, init int, plain bool) *patternSearcher {
	s := &patternSearcher{patterns: patterns, quoted: patterns, init: init, plain: plain}
	if plain {
		s.quoted = make([]string, len(patterns))
		for i, p := range patterns {
			s.quoted[i] = escapePattern(p)
		}
	}
	return s
}

func (s *patternSearcher) contains(line string) (bool, error) {
	for _, p := range s.patterns {
		m, err := luapat.Find(line, p, s.init, s.plain)
		if err != nil {
			return false, fmt.Errorf("pattern %q: %w", p, err)
		}
		if m != nil {
			return true, nil
		}
	}
	return false, nil
}

func (s *patternSearcher) each(line string, fn func([]string)) error {
	for i, p := range s.quoted {
		for caps, err := range luapat.GMatchFrom(line, p, s.init).All() {
			if err != nil {
				return fmt.Errorf("pattern %q: %w", s.patterns[i], err)
			}
			texts := make([]string, len(caps))
			for j, c := range caps {
				texts[j] = c.String()
			}
			fn(texts)
		}
	}
	return nil
}

// literalSet searches several plain strings at once with an Aho-Corasick
// automaton.
type literalSet struct {
	auto *ahocorasick.Automaton
	init int
}

func newLiteralSet(literals []string, init int) (*literalSet, error) {
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		if lit == "" {
			return nil, fmt.Errorf("empty literal")
		}
		builder.AddPattern([]byte(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("building literal set: %w", err)
	}
	return &literalSet{auto: auto, init: init}, nil
}

func (l *literalSet) contains(line string) (bool, error) {
	at := startOffset(l.init, len(line))
	if at >= len(line) {
		return false, nil
	}
	return l.auto.Find([]byte(line), at) != nil, nil
}

func (l *literalSet) each(line string, fn func([]string)) error {
	haystack := []byte(line)
	for at := startOffset(l.init, len(line)); at < len(haystack); {
		m := l.auto.Find(haystack, at)
		if m == nil {
			break
		}
		fn([]string{line[m.Start:m.End]})
		at = max(m.End, m.Start+1)
	}
	return nil
}

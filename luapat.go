// Package luapat implements the pattern dialect of the Lua string library:
// find, match, gmatch and gsub over byte strings.
//
// Patterns are interpreted directly against their text, with a bounded
// backtracking matcher. Supported items:
//
//	x        a byte other than the magic characters ^$()%.[]*+-?
//	.        any byte
//	%a %c %d %g %l %p %s %u %w %x
//	         letters, control, digits, printable, lowercase, punctuation,
//	         space, uppercase, alphanumeric, hexadecimal digits;
//	         uppercase letters complement the class
//	%z       the NUL byte (deprecated, use \x00 in the pattern)
//	%x       any non-alphanumeric x stands for itself
//	[set]    union of bytes, ranges (a-z) and %-classes; [^set] complements
//	* + - ?  greedy 0 or more, greedy 1 or more, lazy 0 or more, optional
//	%1-%9    text of an earlier, closed capture
//	%bxy     balanced span from x to the matching y
//	%f[set]  frontier between a byte not in set and a byte in set
//	( )      capture; () records the current position
//	^ $      anchors at the start and end of the pattern
//
// Matching is byte-oriented: classes only cover ASCII and multi-byte UTF-8
// sequences are seen as their individual bytes.
//
// All positions at the API boundary are 1-based and inclusive. Every function
// is safe for concurrent use.
package luapat

import (
	"strings"
)

const specials = "^$*+?.([%-"

// Match is the result of a successful [Find].
type Match struct {
	// Start and End are the 1-based, inclusive bounds of the match.
	// An empty match has End == Start-1.
	Start int
	End   int
	// Captures holds the explicit captures of the pattern, if any.
	Captures []Capture
}

// startOffset converts a 1-based init, negative when counted from the end,
// into a 0-based offset. The result may exceed len.
func startOffset(init, length int) int {
	switch {
	case init > 0:
		return init - 1
	case init == 0 || -init > length:
		return 0
	}
	return length + init
}

func noSpecials(pattern string) bool {
	return !strings.ContainsAny(pattern, specials)
}

func cutAnchor(pattern string) (string, bool) {
	return strings.CutPrefix(pattern, "^")
}

// Find looks for the first match of pattern in s starting at init and returns
// its bounds and explicit captures. init is 1-based; negative values count
// from the end of s and 0 behaves like 1. If plain is set, pattern is
// searched as a literal string.
//
// Find returns nil and no error if there is no match.
func Find(s, pattern string, init int, plain bool) (*Match, error) {
	start := startOffset(init, len(s))
	if start > len(s) {
		return nil, nil
	}
	if plain || noSpecials(pattern) {
		i := strings.Index(s[start:], pattern)
		if i < 0 {
			return nil, nil
		}
		return &Match{
			Start: start + i + 1,
			End:   start + i + len(pattern),
		}, nil
	}

	pattern, anchored := cutAnchor(pattern)
	ms := newMatchState(s, pattern)
	start, end, err := ms.find(start, anchored)
	if err != nil || start == noMatch {
		return nil, err
	}
	caps, err := ms.captureList(start, end, false)
	if err != nil {
		return nil, err
	}
	return &Match{
		Start:    start + 1,
		End:      end,
		Captures: caps,
	}, nil
}

// MatchString looks for the first match of pattern in s starting at init
// and returns its captures, or the whole match as the only capture when the
// pattern has none. init follows the rules of [Find].
//
// MatchString returns nil and no error if there is no match.
func MatchString(s, pattern string, init int) ([]Capture, error) {
	start := startOffset(init, len(s))
	if start > len(s) {
		return nil, nil
	}
	pattern, anchored := cutAnchor(pattern)
	ms := newMatchState(s, pattern)
	start, end, err := ms.find(start, anchored)
	if err != nil || start == noMatch {
		return nil, err
	}
	return ms.captureList(start, end, true)
}

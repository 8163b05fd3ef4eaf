package luapat

import "iter"

// Iterator walks the successive matches of a pattern over a subject, as
// returned by [GMatch]. It is single-pass; create a new one to start over.
// An Iterator must not be used from several goroutines at once.
type Iterator struct {
	ms *matchState
	// Offset where the next search starts.
	pos int
	// End of the last reported match, -1 before the first one. A match
	// ending there again is skipped, so empty matches cannot repeat.
	lastMatch int
}

// GMatch returns an iterator over the matches of pattern in s.
//
// A '^' at the start of pattern has no anchor meaning here and is matched
// literally: an anchored pattern could only ever match once.
func GMatch(s, pattern string) *Iterator {
	return GMatchFrom(s, pattern, 1)
}

// GMatchFrom is like [GMatch] but starts at init, which follows the rules of
// [Find]. An init past the end of s yields nothing.
func GMatchFrom(s, pattern string, init int) *Iterator {
	start := startOffset(init, len(s))
	if start > len(s) {
		start = len(s) + 1
	}
	return &Iterator{
		ms:        newMatchState(s, pattern),
		pos:       start,
		lastMatch: -1,
	}
}

// Next returns the captures of the next match, or the whole match when the
// pattern has none. ok is false once the subject is exhausted or after an
// error.
func (it *Iterator) Next() (captures []Capture, ok bool, err error) {
	ms := it.ms
	for s := it.pos; s <= len(ms.src); s++ {
		ms.reset()
		e, err := ms.match(s, 0)
		if err != nil {
			it.pos = len(ms.src) + 1
			return nil, false, err
		}
		if e != noMatch && e != it.lastMatch {
			it.pos, it.lastMatch = e, e
			captures, err := ms.captureList(s, e, true)
			if err != nil {
				it.pos = len(ms.src) + 1
				return nil, false, err
			}
			return captures, true, nil
		}
	}
	it.pos = len(ms.src) + 1
	return nil, false, nil
}

// All returns a sequence over the remaining matches. An error is yielded
// once, as the last element.
func (it *Iterator) All() iter.Seq2[[]Capture, error] {
	return func(yield func([]Capture, error) bool) {
		for {
			captures, ok, err := it.Next()
			if err != nil {
				yield(nil, err)
				return
			}
			if !ok || !yield(captures, nil) {
				return
			}
		}
	}
}

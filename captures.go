package luapat

import "strconv"

// Capture is one value produced by a successful match: either the text of
// a capture (or of the whole match), or the position recorded by "()".
type Capture struct {
	// Text is the captured substring. It is empty for position captures.
	Text string
	// Position is the 1-based subject position recorded by a position
	// capture, or 0 for substring captures.
	Position int
}

// IsPosition reports whether c was produced by a position capture "()".
func (c Capture) IsPosition() bool {
	return c.Position > 0
}

// String returns the captured text, or the decimal position for position
// captures.
func (c Capture) String() string {
	if c.IsPosition() {
		return strconv.Itoa(c.Position)
	}
	return c.Text
}

// oneCapture materializes capture i of the match src[s:e]. When the pattern
// has no captures, index 0 stands for the whole match if wholeMatch is set.
func (ms *matchState) oneCapture(i, s, e int, wholeMatch bool) (Capture, error) {
	if i >= ms.level {
		if i != 0 || !wholeMatch {
			return Capture{}, newErrorf(KindInvalidCapture, "invalid capture index %%%d", i+1)
		}
		return Capture{Text: ms.src[s:e]}, nil
	}
	c := ms.captures[i]
	switch c.state {
	case captureOpen:
		return Capture{}, newError(KindInvalidCapture, "unfinished capture")
	case capturePosition:
		return Capture{Position: c.start + 1}, nil
	}
	return Capture{Text: ms.src[c.start : c.start+c.len]}, nil
}

// captureList materializes every capture of the match src[s:e], or the
// whole match alone if the pattern has none and wholeMatch is set. It
// returns nil when there is nothing to report.
func (ms *matchState) captureList(s, e int, wholeMatch bool) ([]Capture, error) {
	n := ms.level
	if n == 0 && wholeMatch {
		n = 1
	}
	if n == 0 {
		return nil, nil
	}
	caps := make([]Capture, n)
	for i := range caps {
		c, err := ms.oneCapture(i, s, e, wholeMatch)
		if err != nil {
			return nil, err
		}
		caps[i] = c
	}
	return caps, nil
}

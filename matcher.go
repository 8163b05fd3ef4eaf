package luapat

const (
	// MaxCaptures is the number of captures a pattern may have open at once.
	MaxCaptures = 32

	// MaxMatchDepth bounds the nesting of the recursive matcher. Patterns
	// that need more fail with KindPatternTooComplex.
	MaxMatchDepth = 200
)

// noMatch is the subject offset returned by the matcher on failure.
const noMatch = -1

type captureState uint8

const (
	// Opened, not closed yet.
	captureOpen captureState = iota
	// "()": records an offset, has no text.
	capturePosition
	captureClosed
)

type capture struct {
	start int
	len   int
	state captureState
}

// matchState is the state of one top-level matching call. It is never
// shared: every Find, MatchString, GSub call and every Iterator owns one.
type matchState struct {
	src     string
	pattern string

	// Captures opened so far, including closed ones.
	level    int
	captures [MaxCaptures]capture

	// Remaining recursion budget.
	depth int
}

func newMatchState(src, pattern string) *matchState {
	return &matchState{
		src:     src,
		pattern: pattern,
		depth:   MaxMatchDepth,
	}
}

// reset prepares ms for a new match attempt.
func (ms *matchState) reset() {
	ms.level = 0
	ms.depth = MaxMatchDepth
}

// find tries to match the pattern at init and then at every following
// offset up to the end of the subject. An anchored search tries init only.
func (ms *matchState) find(init int, anchored bool) (start, end int, err error) {
	for s := init; ; s++ {
		ms.reset()
		e, err := ms.match(s, 0)
		if err != nil {
			return noMatch, noMatch, err
		}
		if e != noMatch {
			return s, e, nil
		}
		if anchored || s >= len(ms.src) {
			return noMatch, noMatch, nil
		}
	}
}

// match matches pattern[p:] against src[s:] and returns the offset where
// the match ends, or noMatch.
func (ms *matchState) match(s, p int) (int, error) {
	if ms.depth == 0 {
		return noMatch, newError(KindPatternTooComplex, "pattern too complex")
	}
	ms.depth--
	res, err := ms.doMatch(s, p)
	ms.depth++
	return res, err
}

func (ms *matchState) doMatch(s, p int) (int, error) {
	var err error
	for p < len(ms.pattern) {
		switch ms.pattern[p] {
		case '(':
			if p+1 < len(ms.pattern) && ms.pattern[p+1] == ')' {
				return ms.startCapture(s, p+2, capturePosition)
			}
			return ms.startCapture(s, p+1, captureOpen)
		case ')':
			return ms.endCapture(s, p+1)
		case '$':
			if p+1 == len(ms.pattern) {
				if s == len(ms.src) {
					return s, nil
				}
				return noMatch, nil
			}
		case escape:
			if p+1 >= len(ms.pattern) {
				break
			}
			switch next := ms.pattern[p+1]; {
			case next == 'b':
				s, err = ms.matchBalance(s, p+2)
				if err != nil || s == noMatch {
					return s, err
				}
				p += 4
				continue
			case next == 'f':
				p, err = ms.matchFrontier(s, p+2)
				if err != nil || p == noMatch {
					return noMatch, err
				}
				continue
			case isClass(next, classDigit):
				s, err = ms.matchCapture(s, next)
				if err != nil || s == noMatch {
					return s, err
				}
				p += 2
				continue
			}
		}

		var ep int
		ep, err = classEnd(ms.pattern, p)
		if err != nil {
			return noMatch, err
		}
		var quantifier byte
		if ep < len(ms.pattern) {
			quantifier = ms.pattern[ep]
		}
		if !singleMatch(ms.src, s, ms.pattern, p, ep) {
			switch quantifier {
			case '*', '?', '-':
				// Zero occurrences are acceptable.
				p = ep + 1
				continue
			}
			return noMatch, nil
		}
		switch quantifier {
		case '?':
			res, err := ms.match(s+1, ep+1)
			if err != nil || res != noMatch {
				return res, err
			}
			p = ep + 1
			continue
		case '+':
			return ms.maxExpand(s+1, p, ep)
		case '*':
			return ms.maxExpand(s, p, ep)
		case '-':
			return ms.minExpand(s, p, ep)
		}
		s++
		p = ep
	}
	return s, nil
}

// maxExpand consumes the longest run of bytes matching pattern[p:ep] and
// then gives them back one by one until the rest of the pattern matches.
func (ms *matchState) maxExpand(s, p, ep int) (int, error) {
	i := 0
	for singleMatch(ms.src, s+i, ms.pattern, p, ep) {
		i++
	}
	for ; i >= 0; i-- {
		res, err := ms.match(s+i, ep+1)
		if err != nil || res != noMatch {
			return res, err
		}
	}
	return noMatch, nil
}

// minExpand tries the rest of the pattern first and consumes one more byte
// matching pattern[p:ep] only when that fails.
func (ms *matchState) minExpand(s, p, ep int) (int, error) {
	for {
		res, err := ms.match(s, ep+1)
		if err != nil || res != noMatch {
			return res, err
		}
		if !singleMatch(ms.src, s, ms.pattern, p, ep) {
			return noMatch, nil
		}
		s++
	}
}

func (ms *matchState) startCapture(s, p int, state captureState) (int, error) {
	if ms.level >= MaxCaptures {
		return noMatch, newError(KindTooManyCaptures, "too many captures")
	}
	ms.captures[ms.level] = capture{start: s, state: state}
	ms.level++
	res, err := ms.match(s, p)
	if res == noMatch {
		ms.level--
	}
	return res, err
}

func (ms *matchState) endCapture(s, p int) (int, error) {
	l, err := ms.captureToClose()
	if err != nil {
		return noMatch, err
	}
	ms.captures[l].len = s - ms.captures[l].start
	ms.captures[l].state = captureClosed
	res, err := ms.match(s, p)
	if res == noMatch {
		ms.captures[l].state = captureOpen
	}
	return res, err
}

// captureToClose returns the innermost capture that is still open.
func (ms *matchState) captureToClose() (int, error) {
	for l := ms.level - 1; l >= 0; l-- {
		if ms.captures[l].state == captureOpen {
			return l, nil
		}
	}
	return 0, newError(KindInvalidCapture, "invalid pattern capture")
}

// matchBalance implements %bxy, with p the offset of x.
func (ms *matchState) matchBalance(s, p int) (int, error) {
	if p+1 >= len(ms.pattern) {
		return noMatch, newError(KindMalformedPattern, "malformed pattern (missing arguments to '%b')")
	}
	if s >= len(ms.src) || ms.src[s] != ms.pattern[p] {
		return noMatch, nil
	}
	open, close := ms.pattern[p], ms.pattern[p+1]
	cont := 1
	for s++; s < len(ms.src); s++ {
		switch ms.src[s] {
		case close:
			cont--
			if cont == 0 {
				return s + 1, nil
			}
		case open:
			cont++
		}
	}
	return noMatch, nil
}

// matchFrontier implements %f[set], with p the offset of '['. It consumes
// no input and returns the pattern offset after the set.
func (ms *matchState) matchFrontier(s, p int) (int, error) {
	if p >= len(ms.pattern) || ms.pattern[p] != '[' {
		return noMatch, newError(KindMalformedPattern, "missing '[' after '%f' in pattern")
	}
	ep, err := classEnd(ms.pattern, p)
	if err != nil {
		return noMatch, err
	}
	// The subject is framed by NUL bytes on both sides.
	var prev, cur byte
	if s > 0 {
		prev = ms.src[s-1]
	}
	if s < len(ms.src) {
		cur = ms.src[s]
	}
	if !matchBracketClass(prev, ms.pattern, p, ep-1) && matchBracketClass(cur, ms.pattern, p, ep-1) {
		return ep, nil
	}
	return noMatch, nil
}

// matchCapture implements the back-reference %1-%9.
func (ms *matchState) matchCapture(s int, l byte) (int, error) {
	n, err := ms.checkCapture(l)
	if err != nil {
		return noMatch, err
	}
	c := ms.captures[n]
	if c.state == capturePosition {
		// A position has no text to repeat.
		return noMatch, nil
	}
	if len(ms.src)-s >= c.len && ms.src[c.start:c.start+c.len] == ms.src[s:s+c.len] {
		return s + c.len, nil
	}
	return noMatch, nil
}

func (ms *matchState) checkCapture(l byte) (int, error) {
	n := int(l) - '1'
	if n < 0 || n >= ms.level || ms.captures[n].state == captureOpen {
		return 0, newErrorf(KindInvalidCapture, "invalid capture index %%%d", n+1)
	}
	return n, nil
}

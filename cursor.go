package luapat

const escape = '%'

// classEnd returns the offset just past the single-class token that starts
// at p: a plain byte, an escape pair or a bracket set. Malformed tokens are
// reported here, when matching first reaches them.
func classEnd(pattern string, p int) (int, error) {
	c := pattern[p]
	p++
	switch c {
	case escape:
		if p >= len(pattern) {
			return 0, newError(KindMalformedPattern, "malformed pattern (ends with '%')")
		}
		return p + 1, nil
	case '[':
		if p < len(pattern) && pattern[p] == '^' {
			p++
		}
		// The first byte of the set is never the closing bracket.
		for {
			if p >= len(pattern) {
				return 0, newError(KindMalformedPattern, "malformed pattern (missing ']')")
			}
			c := pattern[p]
			p++
			if c == escape && p < len(pattern) {
				p++
			}
			if p < len(pattern) && pattern[p] == ']' {
				return p + 1, nil
			}
		}
	}
	return p, nil
}

// matchBracketClass reports whether c belongs to the set pattern[p:ec+1],
// where p is the offset of '[' and ec the offset of the closing ']'.
func matchBracketClass(c byte, pattern string, p, ec int) bool {
	sig := true
	if pattern[p+1] == '^' {
		sig = false
		p++
	}
	for p++; p < ec; p++ {
		switch {
		case pattern[p] == escape:
			p++
			if matchClass(c, pattern[p]) {
				return sig
			}
		case pattern[p+1] == '-' && p+2 < ec:
			p += 2
			if pattern[p-2] <= c && c <= pattern[p] {
				return sig
			}
		case pattern[p] == c:
			return sig
		}
	}
	return !sig
}

// singleMatch reports whether the subject byte at s matches the class token
// pattern[p:ep]. It is false at the end of the subject.
func singleMatch(src string, s int, pattern string, p, ep int) bool {
	if s >= len(src) {
		return false
	}
	c := src[s]
	switch pattern[p] {
	case '.':
		return true
	case escape:
		return matchClass(c, pattern[p+1])
	case '[':
		return matchBracketClass(c, pattern, p, ep-1)
	}
	return pattern[p] == c
}

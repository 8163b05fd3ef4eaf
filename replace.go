package luapat

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Replacement tells [GSub] what to substitute for each match. It is one of
// [Template], [Lookup] or [Callback].
type Replacement interface {
	replacer() replacer
}

// replacer appends the substitution for the match src[s:e] to b.
type replacer interface {
	add(b *strings.Builder, ms *matchState, s, e int) error
}

// Template is a replacement string. In it, %0 stands for the whole match,
// %1-%9 for the captures (%1 is the whole match when the pattern has no
// captures) and %% for a single '%'. Any other use of '%' is an error,
// reported when the first match is replaced.
type Template string

// Lookup replaces every match by the value stored under the first capture
// (or the whole match) of it. Position captures are looked up by their
// decimal form.
//
// Values may be strings or numbers. A missing key, nil or false keeps the
// match unchanged; any other value is an error.
type Lookup map[string]any

// Callback is called with the captures of every match (or the whole match
// when the pattern has none). It returns the substitution under the same
// rules as the values of a [Lookup]. A returned error aborts [GSub].
type Callback func(captures []Capture) (any, error)

func (t Template) replacer() replacer { return parseTemplate(string(t)) }
func (l Lookup) replacer() replacer   { return l }
func (f Callback) replacer() replacer { return f }

const literalSegment = -1

type segment struct {
	literal string
	// literalSegment, 0 for the whole match, or a 1-based capture index.
	capture int
}

type template struct {
	segments []segment
	err      error
}

// parseTemplate splits t into literal and capture segments once, before
// substitution starts.
func parseTemplate(t string) *template {
	tpl := &template{}
	literalStart := 0
	flush := func(end int) {
		if end > literalStart {
			tpl.segments = append(tpl.segments, segment{literal: t[literalStart:end], capture: literalSegment})
		}
	}
	for i := 0; i < len(t); i++ {
		if t[i] != escape {
			continue
		}
		flush(i)
		i++
		switch {
		case i >= len(t):
			tpl.err = newError(KindInvalidReplacement, "invalid use of '%' in replacement string")
			return tpl
		case t[i] == escape:
			tpl.segments = append(tpl.segments, segment{literal: "%", capture: literalSegment})
		case isClass(t[i], classDigit):
			tpl.segments = append(tpl.segments, segment{capture: int(t[i] - '0')})
		default:
			tpl.err = newError(KindInvalidReplacement, "invalid use of '%' in replacement string")
			return tpl
		}
		literalStart = i + 1
	}
	flush(len(t))
	return tpl
}

func (tpl *template) add(b *strings.Builder, ms *matchState, s, e int) error {
	if tpl.err != nil {
		return tpl.err
	}
	for _, seg := range tpl.segments {
		switch seg.capture {
		case literalSegment:
			b.WriteString(seg.literal)
		case 0:
			b.WriteString(ms.src[s:e])
		default:
			c, err := ms.oneCapture(seg.capture-1, s, e, true)
			if err != nil {
				return err
			}
			b.WriteString(c.String())
		}
	}
	return nil
}

func (l Lookup) add(b *strings.Builder, ms *matchState, s, e int) error {
	key, err := ms.oneCapture(0, s, e, true)
	if err != nil {
		return err
	}
	return addValue(b, l[key.String()], ms.src[s:e])
}

func (f Callback) add(b *strings.Builder, ms *matchState, s, e int) error {
	caps, err := ms.captureList(s, e, true)
	if err != nil {
		return err
	}
	v, err := f(caps)
	if err != nil {
		return fmt.Errorf("replacement callback: %w", err)
	}
	return addValue(b, v, ms.src[s:e])
}

// addValue appends a lookup or callback result, or the original text when
// the result is nil or false.
func addValue(b *strings.Builder, v any, original string) error {
	switch v := v.(type) {
	case nil:
		b.WriteString(original)
		return nil
	case bool:
		if !v {
			b.WriteString(original)
			return nil
		}
	case string:
		b.WriteString(v)
		return nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		fmt.Fprint(b, v)
		return nil
	case float32:
		b.WriteString(formatFloat(float64(v)))
		return nil
	case float64:
		b.WriteString(formatFloat(v))
		return nil
	}
	return newErrorf(KindInvalidReplacement, "invalid replacement value (a %s)", typeName(v))
}

// typeName names the kind of v the way the scripting dialect names its
// value types in error messages.
func typeName(v any) string {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return "table"
	case reflect.Func:
		return "function"
	case reflect.Chan:
		return "thread"
	}
	return "userdata"
}

// formatFloat renders f the way the scripting dialect prints floats: 14
// significant digits, with ".0" added to integral values.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'g', 14, 64)
	if strings.Trim(s, "-0123456789") == "" {
		s += ".0"
	}
	return s
}

// GSub returns a copy of s in which the first n matches of pattern (all of
// them if n < 0) are replaced as described by repl, together with the number
// of matches replaced.
//
// Matches never overlap. A match ending where the previous one ended is
// skipped, so an empty match right after another match is not replaced.
// A pattern starting with '^' is tried at the start of s only.
func GSub(s, pattern string, repl Replacement, n int) (string, int, error) {
	if f, ok := repl.(Callback); repl == nil || ok && f == nil {
		return "", 0, newError(KindInvalidReplacement, "invalid replacement (string/function/table expected)")
	}
	r := repl.replacer()
	pattern, anchored := cutAnchor(pattern)
	ms := newMatchState(s, pattern)

	var b strings.Builder
	b.Grow(len(s))
	src, lastMatch, count := 0, -1, 0
	for n < 0 || count < n {
		ms.reset()
		e, err := ms.match(src, 0)
		if err != nil {
			return "", 0, err
		}
		if e != noMatch && e != lastMatch {
			count++
			if err := r.add(&b, ms, src, e); err != nil {
				return "", 0, err
			}
			src, lastMatch = e, e
		} else if src < len(s) {
			b.WriteByte(s[src])
			src++
		} else {
			break
		}
		if anchored {
			break
		}
	}
	b.WriteString(s[src:])
	return b.String(), count, nil
}

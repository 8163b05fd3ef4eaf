package luapat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

var (
	cmpCapture = cmp.AllowUnexported(capture{})
	cmpSegment = cmp.AllowUnexported(segment{})
)

func TestClassEnd(t *testing.T) {
	tests := []struct {
		pattern string
		p       int
		want    int
	}{
		{"a", 0, 1},
		{"ab", 1, 2},
		{"%a", 0, 2},
		{"%%x", 0, 2},
		{"[abc]x", 0, 5},
		{"[]]", 0, 3},
		{"[^]]", 0, 4},
		{"[%]]", 0, 4},
		{"[a-z]+", 0, 5},
		{"x[^%a%d]*", 1, 8},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := classEnd(tt.pattern, tt.p)
			assert.NilError(t, err)
			assert.Equal(t, got, tt.want)
		})
	}

	for _, pattern := range []string{"%", "[", "[a", "[]", "[^]", "[a%", "[a%]"} {
		_, err := classEnd(pattern, 0)
		assert.ErrorIs(t, err, ErrMalformedPattern, pattern)
	}
}

func TestMatchBracketClass(t *testing.T) {
	tests := []struct {
		set  string
		in   string
		notIn string
	}{
		{"[abc]", "abc", "dA-"},
		{"[^abc]", "dA-", "abc"},
		{"[a-c]", "abc", "d`-"},
		{"[a-]", "a-", "b"},
		{"[-a]", "a-", "b"},
		{"[%a_]", "aZ_", "1 -"},
		{"[%-%]]", "-]", "a%"},
		{"[]]", "]", "["},
		{"[^]]", "[a", "]"},
		{"[%d-z]", "5-z", "a"},
	}
	for _, tt := range tests {
		t.Run(tt.set, func(t *testing.T) {
			ec := len(tt.set) - 1
			for i := 0; i < len(tt.in); i++ {
				assert.Assert(t, matchBracketClass(tt.in[i], tt.set, 0, ec), "%q in %s", tt.in[i], tt.set)
			}
			for i := 0; i < len(tt.notIn); i++ {
				assert.Assert(t, !matchBracketClass(tt.notIn[i], tt.set, 0, ec), "%q not in %s", tt.notIn[i], tt.set)
			}
		})
	}
}

func TestSingleMatch(t *testing.T) {
	assert.Assert(t, singleMatch("x", 0, ".", 0, 1))
	assert.Assert(t, !singleMatch("x", 1, ".", 0, 1))
	assert.Assert(t, singleMatch("7", 0, "%d", 0, 2))
	assert.Assert(t, !singleMatch("7", 0, "%D", 0, 2))
	assert.Assert(t, singleMatch(".", 0, "%.", 0, 2))
	assert.Assert(t, !singleMatch("x", 0, "%.", 0, 2))
	assert.Assert(t, singleMatch("q", 0, "[pq]", 0, 4))
	assert.Assert(t, singleMatch("q", 0, "q", 0, 1))
	assert.Assert(t, !singleMatch("Q", 0, "q", 0, 1))
}

func TestCaptureTable(t *testing.T) {
	t.Run("ClosedAndPosition", func(t *testing.T) {
		ms := newMatchState("key=val", "(%w+)=()")
		start, end, err := ms.find(0, false)
		assert.NilError(t, err)
		assert.Equal(t, start, 0)
		assert.Equal(t, end, 4)
		assert.DeepEqual(t, ms.captures[:ms.level], []capture{
			{start: 0, len: 3, state: captureClosed},
			{start: 4, state: capturePosition},
		}, cmpCapture)
	})
	t.Run("Backtracking", func(t *testing.T) {
		// The first attempts open a capture and then fail; only the capture
		// of the successful attempt survives.
		ms := newMatchState("ab ab1", "(%a+)1")
		start, end, err := ms.find(0, false)
		assert.NilError(t, err)
		assert.Equal(t, start, 3)
		assert.Equal(t, end, 6)
		assert.DeepEqual(t, ms.captures[:ms.level], []capture{
			{start: 3, len: 2, state: captureClosed},
		}, cmpCapture)
	})
	t.Run("Nested", func(t *testing.T) {
		ms := newMatchState("abc", "(a(b)c)")
		_, _, err := ms.find(0, false)
		assert.NilError(t, err)
		assert.DeepEqual(t, ms.captures[:ms.level], []capture{
			{start: 0, len: 3, state: captureClosed},
			{start: 1, len: 1, state: captureClosed},
		}, cmpCapture)
	})
	t.Run("FailedMatch", func(t *testing.T) {
		ms := newMatchState("abc", "(a)(x)")
		start, _, err := ms.find(0, false)
		assert.NilError(t, err)
		assert.Equal(t, start, noMatch)
		assert.Equal(t, ms.level, 0)
	})
	t.Run("DepthRestored", func(t *testing.T) {
		ms := newMatchState("aaaa", "a?a?(a*)")
		_, _, err := ms.find(0, false)
		assert.NilError(t, err)
		assert.Equal(t, ms.depth, MaxMatchDepth)
	})
}

func TestBalance(t *testing.T) {
	tests := []struct {
		s, p string
		want []string
	}{
		{"(a(b)c)", "%b()", []string{"(a(b)c)"}},
		{"f(a, g(b))", "%w+%b()", []string{"f(a, g(b))"}},
		{"[[x]]", "%b[]", []string{"[[x]]"}},
		{"<<a>", "%b<>", []string{"<a>"}},
		{"xax", "%bxx", []string{"xax"}},
		{"((", "%b()", nil},
	}
	for _, tt := range tests {
		t.Run(tt.p, func(t *testing.T) {
			assert.DeepEqual(t, mustMatch(t, tt.s, tt.p, 1), tt.want)
		})
	}
}

func TestBackReference(t *testing.T) {
	assert.DeepEqual(t, mustMatch(t, "abab", "(ab)%1", 1), []string{"ab"})
	assert.DeepEqual(t, mustMatch(t, "x==y", "(=+)", 1), []string{"=="})
	assert.DeepEqual(t, mustMatch(t, "[==[long]==]", "%[(=*)%[(.-)%]%1%]", 1), []string{"==", "long"})
	assert.Assert(t, mustMatch(t, "[==[long]=]", "%[(=*)%[(.-)%]%1%]", 1) == nil)
	// An empty capture repeats as the empty string.
	assert.DeepEqual(t, mustMatch(t, "ab", "a(x*)%1b", 1), []string{""})
}

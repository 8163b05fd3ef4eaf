package luapat

import (
	"testing"

	"gotest.tools/v3/assert"
)

func collect(t *testing.T, it *Iterator) [][]string {
	t.Helper()
	var res [][]string
	for caps, err := range it.All() {
		assert.NilError(t, err)
		res = append(res, texts(caps))
	}
	return res
}

func TestGMatch(t *testing.T) {
	tests := []struct {
		name string
		s, p string
		want [][]string
	}{
		{"Words", "hello world from Lua", "%a+", [][]string{{"hello"}, {"world"}, {"from"}, {"Lua"}}},
		{"Pairs", "k1=v1, k2=v2", "(%w+)=(%w+)", [][]string{{"k1", "v1"}, {"k2", "v2"}}},
		{"EmptySubject", "", "%a*", [][]string{{""}}},
		{"EmptyPattern", "abc", "", [][]string{{""}, {""}, {""}, {""}}},
		{"EmptyAfterMatch", "hello world", "%a*", [][]string{{"hello"}, {"world"}}},
		{"Positions", "a,b", "()[^,]*()", [][]string{{"1", "2"}, {"3", "4"}}},
		{"CaretIsLiteral", "a^b^", "^.", [][]string{{"^b"}}},
		{"NoMatch", "abc", "%d", nil},
		{"Frontier", "THE (quick) fox", "%f[%a]%a+", [][]string{{"THE"}, {"quick"}, {"fox"}}},
		{"Optional", "color colour", "colou?r", [][]string{{"color"}, {"colour"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.DeepEqual(t, collect(t, GMatch(tt.s, tt.p)), tt.want)
		})
	}
}

func TestGMatchFrom(t *testing.T) {
	assert.DeepEqual(t, collect(t, GMatchFrom("hello world", "%a+", 7)), [][]string{{"world"}})
	assert.DeepEqual(t, collect(t, GMatchFrom("hello world", "%a+", -5)), [][]string{{"world"}})
	assert.DeepEqual(t, collect(t, GMatchFrom("hello world", "%a+", 0)), [][]string{{"hello"}, {"world"}})
	assert.DeepEqual(t, collect(t, GMatchFrom("abc", "", 4)), [][]string{{""}})
	assert.Assert(t, collect(t, GMatchFrom("abc", "", 5)) == nil)
	assert.Assert(t, collect(t, GMatchFrom("abc", "", 100)) == nil)
}

func TestIteratorNext(t *testing.T) {
	it := GMatch("a1b2", "%d")

	caps, ok, err := it.Next()
	assert.NilError(t, err)
	assert.Assert(t, ok)
	assert.DeepEqual(t, caps, []Capture{{Text: "1"}})

	caps, ok, err = it.Next()
	assert.NilError(t, err)
	assert.Assert(t, ok)
	assert.DeepEqual(t, caps, []Capture{{Text: "2"}})

	for i := 0; i < 2; i++ {
		caps, ok, err = it.Next()
		assert.NilError(t, err)
		assert.Assert(t, !ok)
		assert.Assert(t, caps == nil)
	}
}

func TestIteratorError(t *testing.T) {
	t.Run("Next", func(t *testing.T) {
		it := GMatch("abc", "[a")
		_, ok, err := it.Next()
		assert.ErrorIs(t, err, ErrMalformedPattern)
		assert.Assert(t, !ok)

		_, ok, err = it.Next()
		assert.NilError(t, err)
		assert.Assert(t, !ok)
	})
	t.Run("All", func(t *testing.T) {
		var errs []error
		n := 0
		for _, err := range GMatch("ab(c", "%a(").All() {
			if err != nil {
				errs = append(errs, err)
				continue
			}
			n++
		}
		assert.Equal(t, n, 0)
		assert.Equal(t, len(errs), 1)
		assert.ErrorIs(t, errs[0], ErrInvalidCapture)
	})
	t.Run("AfterMatches", func(t *testing.T) {
		// The error only shows up once the matcher reaches the bad item.
		it := GMatch("a1b", "%d%")
		_, ok, err := it.Next()
		assert.ErrorContains(t, err, "ends with '%'")
		assert.Assert(t, !ok)
	})
}

func TestIteratorBreak(t *testing.T) {
	it := GMatch("one two three", "%a+")
	for caps := range it.All() {
		assert.Equal(t, caps[0].Text, "one")
		break
	}
	caps, ok, err := it.Next()
	assert.NilError(t, err)
	assert.Assert(t, ok)
	assert.Equal(t, caps[0].Text, "two")
}

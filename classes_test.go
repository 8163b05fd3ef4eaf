package luapat

import (
	"strings"
	"testing"
	"unicode"

	"gotest.tools/v3/assert"
)

func TestClassTable(t *testing.T) {
	for c := 0; c < 256; c++ {
		b := byte(c)
		if c >= 0x80 {
			assert.Equal(t, classTable[b], classMask(0), "byte %#x", c)
			continue
		}
		r := rune(c)
		checks := []struct {
			mask classMask
			want bool
		}{
			{classAlpha, unicode.IsLetter(r)},
			{classDigit, unicode.IsDigit(r)},
			{classLower, unicode.IsLower(r)},
			{classUpper, unicode.IsUpper(r)},
			{classControl, unicode.IsControl(r)},
			{classPunct, unicode.IsPunct(r) || unicode.IsSymbol(r)},
			{classSpace, unicode.IsSpace(r)},
			{classHex, strings.ContainsRune("0123456789abcdefABCDEF", r)},
		}
		for _, ch := range checks {
			assert.Equal(t, isClass(b, ch.mask), ch.want, "byte %#x mask %08b", c, ch.mask)
		}
	}
}

func TestMatchClass(t *testing.T) {
	tests := []struct {
		c, cl byte
		want  bool
	}{
		{'a', 'a', true},
		{'A', 'a', true},
		{'1', 'a', false},
		{'1', 'A', true},
		{'\n', 's', true},
		{'\v', 's', true},
		{'x', 'S', true},
		{'F', 'x', true},
		{'g', 'x', false},
		{'_', 'w', false},
		{'_', 'p', true},
		{'~', 'g', true},
		{' ', 'g', false},
		{'\x7f', 'c', true},
		{'\x80', 'c', false},
		{'\x80', 'W', true},
		{'.', '.', true},
		{'x', '.', false},
		{0, 'z', true},
		{'z', 'z', false},
		{0, 'Z', false},
		{'z', 'Z', true},
	}
	for _, tt := range tests {
		assert.Equal(t, matchClass(tt.c, tt.cl), tt.want, "%q %%%c", tt.c, tt.cl)
	}
}

package luapat

//go:generate go run ./internal/cmd/genclasses -o classes_table.go

// classMask is a bitmask of the character classes a byte belongs to.
// Classes follow the "C" locale of the scripting dialect: only ASCII bytes
// belong to any class, bytes >= 0x80 belong to none.
type classMask uint8

const (
	classAlpha classMask = 1 << iota
	classDigit
	classLower
	classUpper
	classControl
	classPunct
	classSpace
	classHex
)

func isClass(c byte, m classMask) bool {
	return classTable[c]&m != 0
}

// classLetterMask maps a class letter (lowercase) to the mask it tests.
// ok is false when the letter is not a class, in which case the escape
// stands for the literal character.
func classLetterMask(cl byte) (m classMask, ok bool) {
	switch cl {
	case 'a':
		return classAlpha, true
	case 'c':
		return classControl, true
	case 'd':
		return classDigit, true
	case 'g':
		return classAlpha | classDigit | classPunct, true
	case 'l':
		return classLower, true
	case 'p':
		return classPunct, true
	case 's':
		return classSpace, true
	case 'u':
		return classUpper, true
	case 'w':
		return classAlpha | classDigit, true
	case 'x':
		return classHex, true
	}
	return 0, false
}

func lowerASCII(c byte) byte {
	if isClass(c, classUpper) {
		return c | ('a' - 'A')
	}
	return c
}

// matchClass reports whether c belongs to the class named by the escape
// letter cl (%a, %D, ...). Uppercase letters complement the class; any other
// escaped byte matches itself.
func matchClass(c, cl byte) bool {
	var res bool
	switch m, ok := classLetterMask(lowerASCII(cl)); {
	case ok:
		res = isClass(c, m)
	case lowerASCII(cl) == 'z':
		// Deprecated: the NUL byte.
		res = c == 0
	default:
		return cl == c
	}
	if isClass(cl, classUpper) {
		return !res
	}
	return res
}

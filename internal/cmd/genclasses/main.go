// Command genclasses generates the byte classification table of package
// luapat.
//
//	go run ./internal/cmd/genclasses -o classes_table.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dave/jennifer/jen"
)

type class struct {
	name string
	test func(c int) bool
}

// Order matters: it is the order of the OR-ed names in the generated table.
var classes = []class{
	{"classAlpha", func(c int) bool { return isUpper(c) || isLower(c) }},
	{"classDigit", isDigit},
	{"classLower", isLower},
	{"classUpper", isUpper},
	{"classControl", func(c int) bool { return c < 0x20 || c == 0x7f }},
	{"classPunct", func(c int) bool {
		return 0x21 <= c && c <= 0x2f || // !"#$%&'()*+,-./
			0x3a <= c && c <= 0x40 || // :;<=>?@
			0x5b <= c && c <= 0x60 || // [\]^_`
			0x7b <= c && c <= 0x7e // {|}~
	}},
	{"classSpace", func(c int) bool { return c == ' ' || '\t' <= c && c <= '\r' }},
	{"classHex", func(c int) bool { return isDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F' }},
}

func isDigit(c int) bool { return '0' <= c && c <= '9' }
func isLower(c int) bool { return 'a' <= c && c <= 'z' }
func isUpper(c int) bool { return 'A' <= c && c <= 'Z' }

// classify returns the names of the classes c belongs to.
func classify(c int) []string {
	var names []string
	for _, cl := range classes {
		if cl.test(c) {
			names = append(names, cl.name)
		}
	}
	return names
}

func generate(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by genclasses. DO NOT EDIT.")

	var entries []jen.Code
	for c := 0; c < 256; c++ {
		names := classify(c)
		if len(names) == 0 {
			continue
		}
		mask := jen.Id(names[0])
		for _, n := range names[1:] {
			mask.Op("|").Id(n)
		}
		entries = append(entries, jen.Lit(c).Op(":").Add(mask))
	}

	f.Comment("classTable classifies every byte value. Bytes without an entry belong to no class.")
	f.Var().Id("classTable").Op("=").Index(jen.Lit(256)).Id("classMask").Custom(jen.Options{
		Open:      "{",
		Close:     "}",
		Separator: ",",
		Multi:     true,
	}, entries...)
	return f
}

func run(out io.Writer, path, pkg string) error {
	f := generate(pkg)
	if path == "" {
		return f.Render(out)
	}
	return f.Save(path)
}

func main() {
	output := flag.String("o", "", "output file (default stdout)")
	pkg := flag.String("pkg", "luapat", "package name of the generated file")
	flag.Parse()

	if err := run(os.Stdout, *output, *pkg); err != nil {
		fmt.Fprintf(os.Stderr, "genclasses: %v\n", err)
		os.Exit(1)
	}
}

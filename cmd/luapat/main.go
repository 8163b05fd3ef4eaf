// Command luapat searches and rewrites text line by line with Lua patterns.
//
// Usage:
//
//	luapat [flags] pattern [file...]
//	luapat [flags] -e pattern [-e pattern...] [file...]
//	luapat [flags] -rules rules.yaml [file...]
//
// Without files, standard input is read. The exit status is 0 when a line
// matched (or was rewritten), 1 when none did and 2 on error.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

// Lines longer than this are reported as an error.
const maxLineSize = 16 << 20

// arrayFlags collects every occurrence of a repeated flag.
type arrayFlags []string

func (a arrayFlags) String() string {
	return strings.Join(a, ", ")
}

func (a *arrayFlags) Set(v string) error {
	*a = append(*a, v)
	return nil
}

type options struct {
	patterns  arrayFlags
	only      bool
	rewrite   bool
	replace   string
	max       int
	fixed     bool
	rulesPath string
	init      int
	verbose   bool
	files     []string
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	o := &options{}
	fs := flag.NewFlagSet("luapat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(&o.patterns, "e", "search for `pattern` (repeatable)")
	fs.BoolVar(&o.only, "o", false, "print the captures of every match instead of whole lines")
	fs.StringVar(&o.replace, "r", "", "rewrite every line, replacing matches with `template`")
	fs.IntVar(&o.max, "n", -1, "maximum replacements per line with -r (negative: unbounded)")
	fs.BoolVar(&o.fixed, "F", false, "treat patterns as plain strings")
	fs.StringVar(&o.rulesPath, "rules", "", "rewrite every line with the gsub rules of a YAML `file`")
	fs.IntVar(&o.init, "init", 1, "1-based start `position` of the search in every line, negative from the end")
	fs.BoolVar(&o.verbose, "v", false, "verbose output on stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "r" {
			o.rewrite = true
		}
	})

	rest := fs.Args()
	if len(o.patterns) == 0 && o.rulesPath == "" {
		if len(rest) == 0 {
			return nil, errors.New("missing pattern")
		}
		o.patterns, rest = arrayFlags{rest[0]}, rest[1:]
	}
	o.files = rest

	switch {
	case o.rulesPath != "" && (len(o.patterns) > 0 || o.rewrite || o.only):
		return nil, errors.New("-rules cannot be combined with -e, -r or -o")
	case o.rewrite && o.only:
		return nil, errors.New("-r and -o are mutually exclusive")
	case o.rewrite && len(o.patterns) > 1:
		return nil, errors.New("-r takes a single pattern")
	}
	return o, nil
}

type processor struct {
	// Exactly one of search and rewrite is set.
	search  searcher
	rewrite rewriter
	only    bool
	log     *Logger
}

func newProcessor(o *options, log *Logger) (*processor, error) {
	p := &processor{only: o.only, log: log}
	switch {
	case o.rulesPath != "":
		rules, err := loadRules(o.rulesPath)
		if err != nil {
			return nil, err
		}
		log.Logf("loaded %d rules from %s", len(rules), o.rulesPath)
		p.rewrite = rules
	case o.rewrite:
		pattern := o.patterns[0]
		if o.fixed {
			pattern = escapePattern(pattern)
		}
		limit := o.max
		p.rewrite = rule{Pattern: pattern, Replace: o.replace, Max: &limit}
	case o.fixed && len(o.patterns) > 1:
		set, err := newLiteralSet(o.patterns, o.init)
		if err != nil {
			return nil, err
		}
		log.Logf("searching %d literals with Aho-Corasick", len(o.patterns))
		p.search = set
	default:
		p.search = newPatternSearcher(o.patterns, o.init, o.fixed)
	}
	return p, nil
}

// line handles one input line and returns the number of matches in it.
// Plain searches stop at the first match and report at most one.
func (p *processor) line(w io.Writer, line string) (int, error) {
	switch {
	case p.rewrite != nil:
		res, n, err := p.rewrite.rewrite(line)
		if err != nil {
			return 0, err
		}
		fmt.Fprintln(w, res)
		return n, nil
	case p.only:
		n := 0
		err := p.search.each(line, func(captures []string) {
			n++
			fmt.Fprintln(w, strings.Join(captures, "\t"))
		})
		return n, err
	}
	ok, err := p.search.contains(line)
	if !ok {
		return 0, err
	}
	fmt.Fprintln(w, line)
	return 1, err
}

// processFile runs every line of the named file ("-" for stdin) through p
// and returns the number of matching lines.
func (p *processor) processFile(name string, stdin io.Reader, w io.Writer) (int, error) {
	r := stdin
	if name == "-" {
		name = "(standard input)"
	} else {
		f, err := os.Open(name)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		r = f
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	matched, lineNo := 0, 0
	for sc.Scan() {
		lineNo++
		n, err := p.line(w, sc.Text())
		if err != nil {
			return matched, fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
		if n == 0 {
			continue
		}
		matched++
		if p.log.Enabled() {
			p.log.Hits(name, lineNo, n)
		}
	}
	if err := sc.Err(); err != nil {
		return matched, fmt.Errorf("%s: %w", name, err)
	}
	p.log.Done(name, matched, lineNo)
	return matched, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	o, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitMatch
		}
		fmt.Fprintf(stderr, "luapat: %v\n", err)
		return exitError
	}
	var trace io.Writer
	if o.verbose {
		trace = stderr
	}
	log := NewLogger(trace)

	p, err := newProcessor(o, log)
	if err != nil {
		fmt.Fprintf(stderr, "luapat: %v\n", err)
		return exitError
	}

	files := o.files
	if len(files) == 0 {
		files = []string{"-"}
	}
	out := bufio.NewWriter(stdout)
	total := 0
	for _, name := range files {
		n, err := p.processFile(name, stdin, out)
		total += n
		if err != nil {
			out.Flush()
			fmt.Fprintf(stderr, "luapat: %v\n", err)
			return exitError
		}
	}
	if err := out.Flush(); err != nil {
		fmt.Fprintf(stderr, "luapat: %v\n", err)
		return exitError
	}
	if log.Enabled() && len(files) > 1 {
		log.Logf("%d lines matched in %d files", total, len(files))
	}
	if total == 0 {
		return exitNoMatch
	}
	return exitMatch
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

package main

import (
	"fmt"
	"os"

	"github.com/auvred/luapat"
	"gopkg.in/yaml.v2"
)

// rule is one gsub step. Max bounds the replacements per line; a missing
// max means unbounded.
type rule struct {
	Pattern string `yaml:"pattern"`
	Replace string `yaml:"replace"`
	Max     *int   `yaml:"max"`
}

// ruleSet applies its rules in order, each one to the output of the
// previous one.
type ruleSet []rule

// loadRules reads a YAML list of rules:
//
//	- pattern: '%s+'
//	  replace: ' '
//	- pattern: '(%w+)=(%w+)'
//	  replace: '%2=%1'
//	  max: 1
func loadRules(path string) (ruleSet, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rules ruleSet
	if err := yaml.UnmarshalStrict(content, &rules); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("%s: no rules", path)
	}
	for i, r := range rules {
		if r.Pattern == "" {
			return nil, fmt.Errorf("%s: rule %d: empty pattern", path, i+1)
		}
	}
	return rules, nil
}

func (r rule) limit() int {
	if r.Max == nil {
		return -1
	}
	return *r.Max
}

func (r rule) rewrite(line string) (string, int, error) {
	res, n, err := luapat.GSub(line, r.Pattern, luapat.Template(r.Replace), r.limit())
	if err != nil {
		return "", 0, fmt.Errorf("pattern %q: %w", r.Pattern, err)
	}
	return res, n, nil
}

func (rs ruleSet) rewrite(line string) (string, int, error) {
	total := 0
	for _, r := range rs {
		var (
			n   int
			err error
		)
		line, n, err = r.rewrite(line)
		if err != nil {
			return "", 0, err
		}
		total += n
	}
	return line, total, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package highlight marks which appraisal criterion each clause of a
// finished report speaks to. Clauses are delimited by Chinese punctuation
// and newlines; each is tagged with the first criterion whose pattern
// matches it.
package highlight

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/appraisal-writer/pkg/types"
)

// delimiters end a clause.
const delimiters = "。，！？\n；"

// Segment is one clause with its closing delimiter and matched item.
type Segment struct {
	Clause    string `json:"clause" yaml:"clause"`
	Delimiter string `json:"delimiter,omitempty" yaml:"delimiter,omitempty"`

	// Item is the criterion number, empty when no pattern matched.
	Item string `json:"item,omitempty" yaml:"item,omitempty"`
}

type compiledRule struct {
	item string
	re   *regexp.Regexp
}

// Highlighter tags clauses using an ordered list of patterns.
type Highlighter struct {
	rules []compiledRule
}

// New compiles rules in priority order.
func New(rules []types.HighlightRule) (*Highlighter, error) {
	h := &Highlighter{rules: make([]compiledRule, 0, len(rules))}
	for _, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compiling pattern for item %s: %w", r.Item, err)
		}
		h.rules = append(h.rules, compiledRule{item: r.Item, re: re})
	}
	return h, nil
}

// Annotate splits text into clauses and tags each delimited clause. Text
// after the last delimiter is returned as a final untagged segment.
func (h *Highlighter) Annotate(text string) []Segment {
	var segments []Segment
	rest := text
	for {
		i := strings.IndexAny(rest, delimiters)
		if i < 0 {
			break
		}
		clause := rest[:i]
		_, size := utf8.DecodeRuneInString(rest[i:])
		segments = append(segments, Segment{
			Clause:    clause,
			Delimiter: rest[i : i+size],
			Item:      h.match(clause),
		})
		rest = rest[i+size:]
	}
	if rest != "" {
		segments = append(segments, Segment{Clause: rest})
	}
	return segments
}

func (h *Highlighter) match(clause string) string {
	for _, r := range h.rules {
		if r.re.MatchString(clause) {
			return r.item
		}
	}
	return ""
}

// Render writes segments back as plain text, appending 〔item〕 after each
// tagged clause.
func Render(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Clause)
		if s.Item != "" {
			fmt.Fprintf(&b, "〔%s〕", s.Item)
		}
		b.WriteString(s.Delimiter)
	}
	return b.String()
}

// Counts returns how many clauses were tagged with each item.
func Counts(segments []Segment) map[string]int {
	counts := make(map[string]int)
	for _, s := range segments {
		if s.Item != "" {
			counts[s.Item]++
		}
	}
	return counts
}

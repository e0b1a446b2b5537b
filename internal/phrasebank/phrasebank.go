// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package phrasebank loads the graded phrase bank: for each appraisal
// criterion, the pre-written phrase variants available at each grade, plus
// the clause highlighting patterns. A Bank is immutable once loaded and is
// passed by reference to the report generator.
package phrasebank

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/appraisal-writer/pkg/types"
)

//go:embed default.yaml
var defaultBank []byte

var (
	ErrUnknownCriterion  = errors.New("unknown criterion")
	ErrUnknownGrade      = errors.New("unknown grade")
	ErrVariantOutOfRange = errors.New("variant index out of range")
)

// bankFile is the on-disk YAML layout.
type bankFile struct {
	Grades    []string              `yaml:"grades"`
	Criteria  []types.Criterion     `yaml:"criteria"`
	Highlight []types.HighlightRule `yaml:"highlight"`
}

// Bank is a validated phrase bank.
type Bank struct {
	grades    []string
	criteria  []types.Criterion
	index     map[string]int
	highlight []types.HighlightRule
}

// Load reads and validates a phrase bank YAML file.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading phrase bank: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Parse decodes and validates phrase bank YAML. Unknown fields are rejected.
func Parse(data []byte) (*Bank, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f bankFile
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing phrase bank: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}

	b := &Bank{
		grades:    f.Grades,
		criteria:  f.Criteria,
		index:     make(map[string]int, len(f.Criteria)),
		highlight: f.Highlight,
	}
	for i, c := range f.Criteria {
		b.index[c.Name] = i
	}
	return b, nil
}

var builtin *Bank

func init() {
	b, err := Parse(defaultBank)
	if err != nil {
		panic(fmt.Sprintf("built-in phrase bank: %v", err))
	}
	builtin = b
}

// Default returns the built-in phrase bank.
func Default() *Bank {
	return builtin
}

// Open loads the bank at path, or the built-in bank when path is empty.
func Open(path string) (*Bank, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func (f *bankFile) validate() error {
	if len(f.Grades) == 0 {
		return fmt.Errorf("phrase bank lists no grades")
	}
	if len(f.Criteria) == 0 {
		return fmt.Errorf("phrase bank lists no criteria")
	}

	grades := make(map[string]bool, len(f.Grades))
	for _, g := range f.Grades {
		grades[g] = true
	}

	seen := make(map[string]bool, len(f.Criteria))
	for _, c := range f.Criteria {
		if c.Name == "" {
			return fmt.Errorf("criterion with empty name")
		}
		if seen[c.Name] {
			return fmt.Errorf("criterion %q: duplicate name", c.Name)
		}
		seen[c.Name] = true

		switch c.Target {
		case types.TargetNone, types.TargetTraits, types.TargetEvents:
		default:
			return fmt.Errorf("criterion %q: unknown target %q", c.Name, c.Target)
		}

		for grade, variants := range c.Grades {
			if !grades[grade] {
				return fmt.Errorf("criterion %q: %w %q", c.Name, ErrUnknownGrade, grade)
			}
			for i, v := range variants {
				if v.Desc == "" {
					return fmt.Errorf("criterion %q grade %q variant %d: missing desc", c.Name, grade, i)
				}
				if v.General == "" && v.Action == "" && v.Station == "" {
					return fmt.Errorf("criterion %q grade %q variant %d: no phrase text", c.Name, grade, i)
				}
			}
		}
	}

	for _, h := range f.Highlight {
		if h.Item == "" {
			return fmt.Errorf("highlight rule %q: missing item", h.Pattern)
		}
		if _, err := regexp.Compile(h.Pattern); err != nil {
			return fmt.Errorf("highlight rule for item %s: %w", h.Item, err)
		}
	}
	return nil
}

// Grades returns the grade labels in file order.
func (b *Bank) Grades() []string {
	return append([]string(nil), b.grades...)
}

// Criteria returns the criteria in file order.
func (b *Bank) Criteria() []types.Criterion {
	return append([]types.Criterion(nil), b.criteria...)
}

// Criterion looks up a criterion by name.
func (b *Bank) Criterion(name string) (types.Criterion, bool) {
	i, ok := b.index[name]
	if !ok {
		return types.Criterion{}, false
	}
	return b.criteria[i], true
}

// Variants returns the variants of criterion at grade.
func (b *Bank) Variants(criterion, grade string) ([]types.Variant, error) {
	c, ok := b.Criterion(criterion)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, criterion)
	}
	variants, ok := c.Grades[grade]
	if !ok {
		return nil, fmt.Errorf("criterion %q: %w %q", criterion, ErrUnknownGrade, grade)
	}
	return variants, nil
}

// Variant returns the index-th variant of criterion at grade.
func (b *Bank) Variant(criterion, grade string, index int) (types.Variant, error) {
	variants, err := b.Variants(criterion, grade)
	if err != nil {
		return types.Variant{}, err
	}
	if index < 0 || index >= len(variants) {
		return types.Variant{}, fmt.Errorf("criterion %q grade %q: %w: %d (have %d)",
			criterion, grade, ErrVariantOutOfRange, index, len(variants))
	}
	return variants[index], nil
}

// HighlightRules returns the clause highlighting rules in priority order.
func (b *Bank) HighlightRules() []types.HighlightRule {
	return append([]types.HighlightRule(nil), b.highlight...)
}

// Preview renders the sentence shown next to a variant while choosing it:
// the general phrasing, or the action phrasing when there is none.
func Preview(v types.Variant) string {
	text := v.General
	if text == "" {
		text = v.Action
	}
	return "他" + text + "。"
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package paragraph stitches categorized phrase fragments into one flowing
// paragraph. Each fragment after the first is preceded by a connector chosen
// from the category transition with the previous fragment, or from a
// six-entry rotation indexed by the fragment's absolute position.
package paragraph

import (
	"strings"

	"github.com/pdiddy/appraisal-writer/internal/classify"
	"github.com/pdiddy/appraisal-writer/pkg/types"
)

// Rule names which connector decision produced a clause.
type Rule string

const (
	RuleOpening    Rule = "opening"
	RuleTransition Rule = "transition"
	RuleRotation   Rule = "rotation"
)

// Transition is a connector reserved for one (previous, current) category pair.
type Transition struct {
	From      types.Category
	To        types.Category
	Connector string
}

// Transitions are checked in order; the first matching pair wins.
var Transitions = []Transition{
	{types.CategoryAdmin, types.CategoryDrill, "除了妥善處理各項繁重的行政工作外，在操練方面，他"},
	{types.CategoryOps, types.CategoryMind, "在具備豐富前線經驗的同時，他"},
	{types.CategoryMind, types.CategoryOps, "除了出色的分析能力外，在實際救援中，他"},
	{types.CategoryDrill, types.CategorySocial, "在帶領局內訓練之餘，他"},
}

// rotationSize is the period of the generic connector rotation.
const rotationSize = 6

// Rotation returns the generic connectors for subjectTitle. Entry i is used
// for fragment positions p with p mod 6 == i.
func Rotation(subjectTitle string) [rotationSize]string {
	return [rotationSize]string{
		subjectTitle,
		"此外，他",
		"同時，他",
		"另一方面，他",
		"再者，他",
		"他亦",
	}
}

// Clause records how one fragment was rendered.
type Clause struct {
	Fragment  string         `json:"fragment" yaml:"fragment"`
	Category  types.Category `json:"category" yaml:"category"`
	Connector string         `json:"connector" yaml:"connector"`
	Rule      Rule           `json:"rule" yaml:"rule"`
}

// Text returns the rendered clause including its full stop.
func (c Clause) Text() string {
	return c.Connector + c.Fragment + classify.FullStop
}

// Builder assembles paragraphs using an injected classifier.
type Builder struct {
	classifier *classify.Classifier
}

// NewBuilder returns a Builder that classifies fragments with c. A nil c
// uses the default classifier.
func NewBuilder(c *classify.Classifier) *Builder {
	if c == nil {
		c = classify.Default()
	}
	return &Builder{classifier: c}
}

var defaultBuilder = NewBuilder(nil)

// Explain returns the per-fragment connector decisions in order.
func (b *Builder) Explain(fragments []string, subjectTitle string) []Clause {
	if len(fragments) == 0 {
		return nil
	}

	rotation := Rotation(subjectTitle)
	clauses := make([]Clause, 0, len(fragments))
	var prev types.Category

	for i, f := range fragments {
		clean := classify.TrimTerminal(f)
		curr := b.classifier.Classify(clean)

		c := Clause{Fragment: clean, Category: curr}
		conn, special := transition(prev, curr)
		switch {
		case i == 0:
			c.Connector, c.Rule = subjectTitle, RuleOpening
		case special:
			c.Connector, c.Rule = conn, RuleTransition
		default:
			// Absolute position, not a count of rotation uses.
			c.Connector, c.Rule = rotation[i%rotationSize], RuleRotation
		}

		clauses = append(clauses, c)
		prev = curr
	}
	return clauses
}

// Build returns the paragraph assembled from fragments. An empty fragment
// list yields the empty string.
func (b *Builder) Build(fragments []string, subjectTitle string) string {
	var sb strings.Builder
	for _, c := range b.Explain(fragments, subjectTitle) {
		sb.WriteString(c.Text())
	}
	return sb.String()
}

// Build assembles fragments with the default classifier.
func Build(fragments []string, subjectTitle string) string {
	return defaultBuilder.Build(fragments, subjectTitle)
}

// Explain reports connector decisions with the default classifier.
func Explain(fragments []string, subjectTitle string) []Clause {
	return defaultBuilder.Explain(fragments, subjectTitle)
}

func transition(prev, curr types.Category) (string, bool) {
	for _, t := range Transitions {
		if t.From == prev && t.To == curr {
			return t.Connector, true
		}
	}
	return "", false
}

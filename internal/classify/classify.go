// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify maps a phrase fragment to a coarse semantic category by
// keyword membership. Rules are evaluated in priority order and the first
// match wins; fragments matching no rule are CategoryGeneral.
package classify

import (
	"strings"

	"github.com/pdiddy/appraisal-writer/pkg/types"
)

// Matcher reports whether a fragment belongs to a rule's category.
type Matcher interface {
	Match(text string) bool
}

// Keywords matches text containing any of its entries as a substring.
type Keywords []string

// Match implements Matcher.
func (k Keywords) Match(text string) bool {
	for _, kw := range k {
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// MatcherFunc adapts a plain function to Matcher.
type MatcherFunc func(text string) bool

// Match implements Matcher.
func (f MatcherFunc) Match(text string) bool { return f(text) }

// Rule pairs a category with the predicate that selects it.
type Rule struct {
	Category types.Category
	Matcher  Matcher
}

// DefaultRules is the built-in rule set, highest priority first.
var DefaultRules = []Rule{
	{types.CategoryAdmin, Keywords{"行政", "文書", "公文", "紀錄", "倉庫", "局內事宜", "管理"}},
	{types.CategoryDrill, Keywords{"操練", "訓練", "講堂"}},
	{types.CategoryOps, Keywords{"滅火", "拯救", "火警", "事故", "現場", "救援"}},
	{types.CategoryMind, Keywords{"建議", "思考", "分析", "判斷", "策略", "組織"}},
	{types.CategorySocial, Keywords{"溝通", "講座", "參觀", "協調", "人際", "融洽", "教授"}},
}

// Classifier assigns categories using an ordered rule list. The zero value
// classifies everything as CategoryGeneral. A Classifier is immutable after
// construction and safe for concurrent use.
type Classifier struct {
	rules []Rule
}

// New returns a Classifier that evaluates rules in the given order.
func New(rules ...Rule) *Classifier {
	r := make([]Rule, len(rules))
	copy(r, rules)
	return &Classifier{rules: r}
}

var defaultClassifier = New(DefaultRules...)

// Default returns the classifier built from DefaultRules.
func Default() *Classifier {
	return defaultClassifier
}

// Classify returns the category of the first rule matching fragment.
// Trailing full stops are ignored.
func (c *Classifier) Classify(fragment string) types.Category {
	if c == nil {
		return types.CategoryGeneral
	}
	text := TrimTerminal(fragment)
	for _, r := range c.rules {
		if r.Matcher != nil && r.Matcher.Match(text) {
			return r.Category
		}
	}
	return types.CategoryGeneral
}

// Classify categorizes fragment with the default rules.
func Classify(fragment string) types.Category {
	return defaultClassifier.Classify(fragment)
}

// FullStop is the terminal mark closing every assembled clause.
const FullStop = "。"

// TrimTerminal removes all trailing full stops from s.
func TrimTerminal(s string) string {
	return strings.TrimRight(s, FullStop)
}

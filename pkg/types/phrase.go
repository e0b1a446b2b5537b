// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Target selects which report paragraph receives a criterion's general text.
type Target string

const (
	// TargetNone drops the general text; only action and station texts are used.
	TargetNone   Target = ""
	TargetTraits Target = "traits"
	TargetEvents Target = "events"
)

// Variant is one pre-written phrasing of a criterion at a given grade.
// At least one of General, Action, Station is set.
type Variant struct {
	// Desc is the short label shown when choosing between variants.
	Desc string `json:"desc" yaml:"desc"`

	// General is the context-free phrasing (通用).
	General string `json:"general,omitempty" yaml:"general,omitempty"`

	// Action is the phrasing used in the operations paragraph (行動).
	Action string `json:"action,omitempty" yaml:"action,omitempty"`

	// Station is the phrasing used in the station-work paragraph (局內).
	Station string `json:"station,omitempty" yaml:"station,omitempty"`
}

// Criterion is one appraisal item of the FS-278 form together with its
// phrase variants per grade.
type Criterion struct {
	// Name is the numbered criterion label, e.g. "4. 可靠程度".
	Name string `json:"name" yaml:"name"`

	// Target routes the general phrasing to a paragraph.
	Target Target `json:"target,omitempty" yaml:"target,omitempty"`

	// Grades maps a grade label to its ordered variants.
	Grades map[string][]Variant `json:"grades" yaml:"grades"`
}

// HighlightRule tags clauses that match Pattern with the criterion Item number.
type HighlightRule struct {
	Item    string `json:"item" yaml:"item"`
	Pattern string `json:"pattern" yaml:"pattern"`
}

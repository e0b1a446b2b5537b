// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Member identifies the appraised officer.
type Member struct {
	Name string `json:"name" yaml:"name"`
	Rank string `json:"rank" yaml:"rank"`
}

// Selection records the grade and variant chosen for one criterion.
type Selection struct {
	Criterion string `json:"criterion" yaml:"criterion"`
	Grade     string `json:"grade" yaml:"grade"`

	// Variant is the zero-based index into the grade's variant list.
	Variant int `json:"variant" yaml:"variant"`
}

// ReportInput is everything the report generator needs besides the phrase bank.
type ReportInput struct {
	Member Member `json:"member" yaml:"member"`

	// OverallRating is a grade label such as "優 (A)".
	OverallRating string `json:"overall_rating" yaml:"overall_rating"`

	// FuturePlan is the recommended training, appended to the summary.
	FuturePlan string `json:"future_plan" yaml:"future_plan"`

	// SpecificCase is a free-text incident narrative appended to the
	// operations paragraph.
	SpecificCase string `json:"specific_case" yaml:"specific_case"`

	// Events lists recent departmental activities, cited in the summary.
	Events string `json:"events" yaml:"events"`

	Selections []Selection `json:"selections" yaml:"selections"`
}

// Section is one headed paragraph of a generated report.
type Section struct {
	Heading string `json:"heading" yaml:"heading"`
	Body    string `json:"body" yaml:"body"`
}

// Report is a generated appraisal narrative.
type Report struct {
	SubjectTitle string    `json:"subject_title" yaml:"subject_title"`
	Sections     []Section `json:"sections" yaml:"sections"`
	Text         string    `json:"text" yaml:"text"`
}

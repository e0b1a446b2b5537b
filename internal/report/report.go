// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report generates the FS-278 appraisal narrative: it groups the
// selected phrase variants into paragraphs, assembles each paragraph with
// the paragraph builder, and frames them with fixed headings and the
// caller's free text.
package report

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/appraisal-writer/internal/paragraph"
	"github.com/pdiddy/appraisal-writer/internal/phrasebank"
	"github.com/pdiddy/appraisal-writer/internal/title"
	"github.com/pdiddy/appraisal-writer/pkg/types"
)

// ErrMissingField is returned when a required input field is empty.
var ErrMissingField = errors.New("missing required field")

const (
	HeadingTraits  = "【個人特質與紀律】"
	HeadingOps     = "【行動工作表現】"
	HeadingStation = "【局內工作表現】"
	HeadingSummary = "【總結與未來動向】"
)

// LoadInput reads a report input YAML file.
func LoadInput(path string) (*types.ReportInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report input: %w", err)
	}
	var in types.ReportInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parsing report input: %w", err)
	}
	return &in, nil
}

// Validate checks the fields every report needs.
func Validate(in types.ReportInput) error {
	var missing []string
	if strings.TrimSpace(in.Member.Name) == "" {
		missing = append(missing, "member.name")
	}
	if strings.TrimSpace(in.Member.Rank) == "" {
		missing = append(missing, "member.rank")
	}
	if strings.TrimSpace(in.OverallRating) == "" {
		missing = append(missing, "overall_rating")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}

// Assemble builds the full report for in using bank.
func Assemble(in types.ReportInput, bank *phrasebank.Bank) (*types.Report, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	buckets, err := Group(bank, in.Selections)
	if err != nil {
		return nil, err
	}

	subject := title.SubjectTitle(in.Member.Name, in.Member.Rank)
	traits := paragraph.Build(buckets.Traits, subject)
	ops := paragraph.Build(buckets.Ops, subject)
	station := paragraph.Build(buckets.Station, subject)
	events := paragraph.Build(buckets.Events, subject)

	misc := events
	if in.Events != "" {
		misc = fmt.Sprintf("%s例如參與%s。", events, in.Events)
	}

	sections := []types.Section{
		{
			Heading: HeadingTraits,
			Body:    fmt.Sprintf("%s%s對工作盡忠職守。%s", in.Member.Rank, in.Member.Name, traits),
		},
		{
			Heading: HeadingOps,
			Body:    fmt.Sprintf("在行動工作方面，%s表現卓越。%s這點在他處理實際事故時表露無遺。%s", subject, ops, in.SpecificCase),
		},
		{
			Heading: HeadingStation,
			Body:    fmt.Sprintf("在局內工作方面，%s極之能幹可靠。%s", subject, station),
		},
		{
			Heading: HeadingSummary,
			Body: fmt.Sprintf("%s整體來說，他在評核期內各方面工作表現令人滿意，故此我把他的表現評為「%s」級。在訓練方面，我建議他%s。",
				misc, RatingLabel(in.OverallRating), in.FuturePlan),
		},
	}

	parts := make([]string, len(sections))
	for i, s := range sections {
		parts[i] = s.Heading + "\n" + s.Body
	}

	return &types.Report{
		SubjectTitle: subject,
		Sections:     sections,
		Text:         strings.Join(parts, "\n\n"),
	}, nil
}

// RatingLabel returns the grade label without its letter, e.g. "優" for
// "優 (A)".
func RatingLabel(rating string) string {
	label, _, _ := strings.Cut(rating, " ")
	return label
}

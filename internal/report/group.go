// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"

	"github.com/pdiddy/appraisal-writer/internal/phrasebank"
	"github.com/pdiddy/appraisal-writer/pkg/types"
)

// Buckets holds the selected phrases routed to each report paragraph, in
// phrase bank order.
type Buckets struct {
	Traits  []string `json:"traits" yaml:"traits"`
	Ops     []string `json:"ops" yaml:"ops"`
	Station []string `json:"station" yaml:"station"`
	Events  []string `json:"events" yaml:"events"`
}

// Group resolves selections against bank and routes each variant's texts:
// action text to Ops, station text to Station, and general text to Traits
// or Events according to the criterion's target. Criteria without a
// selection are skipped. Selections are applied in bank order regardless of
// their order in the input; a later selection for the same criterion
// replaces an earlier one.
func Group(bank *phrasebank.Bank, selections []types.Selection) (Buckets, error) {
	chosen := make(map[string]types.Selection, len(selections))
	for _, s := range selections {
		if _, ok := bank.Criterion(s.Criterion); !ok {
			return Buckets{}, fmt.Errorf("%w: %q", phrasebank.ErrUnknownCriterion, s.Criterion)
		}
		chosen[s.Criterion] = s
	}

	var b Buckets
	for _, c := range bank.Criteria() {
		s, ok := chosen[c.Name]
		if !ok {
			continue
		}
		v, err := bank.Variant(s.Criterion, s.Grade, s.Variant)
		if err != nil {
			return Buckets{}, err
		}

		if v.Action != "" {
			b.Ops = append(b.Ops, v.Action)
		}
		if v.Station != "" {
			b.Station = append(b.Station, v.Station)
		}
		if v.General != "" {
			switch c.Target {
			case types.TargetTraits:
				b.Traits = append(b.Traits, v.General)
			case types.TargetEvents:
				b.Events = append(b.Events, v.General)
			}
		}
	}
	return b, nil
}

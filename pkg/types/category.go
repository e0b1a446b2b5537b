// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data structures shared across the appraisal-writer
// packages and the CLI.
package types

// Category is the coarse semantic tag assigned to a phrase fragment. It is
// used only to pick the connective placed before the fragment.
type Category string

const (
	CategoryAdmin   Category = "admin"
	CategoryDrill   Category = "drill"
	CategoryOps     Category = "ops"
	CategoryMind    Category = "mind"
	CategorySocial  Category = "social"
	CategoryGeneral Category = "general"
)

// Categories lists every category in classification priority order.
// CategoryGeneral is last because it is the fallback.
var Categories = []Category{
	CategoryAdmin,
	CategoryDrill,
	CategoryOps,
	CategoryMind,
	CategorySocial,
	CategoryGeneral,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

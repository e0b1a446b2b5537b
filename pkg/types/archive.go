// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ArchiveEntry is one historical appraisal kept for reference.
type ArchiveEntry struct {
	Region string `json:"region" yaml:"region"`
	Year   string `json:"year" yaml:"year"`
	Rank   string `json:"rank" yaml:"rank"`
	Title  string `json:"title" yaml:"title"`
	Body   string `json:"body" yaml:"body"`
}

// Regions lists the command regions used to filter the archive.
var Regions = []string{"九龍總區", "香港總區", "新界南總區", "新界北總區"}

// Ranks lists the ranks covered by the FS-278 appraisal form.
var Ranks = []string{"見習消防員", "消防員", "消防隊目", "消防總隊目"}

// Grades lists the grade labels used for criteria and the overall rating.
var Grades = []string{"優 (A)", "良 (B)", "常/當 (C)"}

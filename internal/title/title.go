// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package title derives the honorific subject reference used to open each
// appraisal paragraph.
package title

import (
	"strings"
	"unicode/utf8"
)

const (
	// SquadLeader is the rank marker and honorific for section commanders.
	SquadLeader = "隊目"

	// TeamMember is the honorific for every other rank.
	TeamMember = "隊員"
)

// SubjectTitle returns the surname of name followed by the honorific for
// rank, e.g. "王隊目" for 王國良 at rank 消防隊目. The surname is the first
// character of name; an empty name yields the bare honorific.
func SubjectTitle(name, rank string) string {
	surname := ""
	if r, size := utf8.DecodeRuneInString(name); size > 0 && r != utf8.RuneError {
		surname = name[:size]
	}
	if strings.Contains(rank, SquadLeader) {
		return surname + SquadLeader
	}
	return surname + TeamMember
}

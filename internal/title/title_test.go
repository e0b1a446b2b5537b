// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package title

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubjectTitle(t *testing.T) {
	tests := []struct {
		name   string
		member string
		rank   string
		want   string
	}{
		{"squad leader", "王國良", "消防隊目", "王隊目"},
		{"principal squad leader", "陳大文", "消防總隊目", "陳隊目"},
		{"firefighter", "李小明", "消防員", "李隊員"},
		{"recruit", "張三", "見習消防員", "張隊員"},
		{"empty name", "", "消防隊目", "隊目"},
		{"empty rank", "王國良", "", "王隊員"},
		{"ascii name", "Wong", "消防員", "W隊員"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SubjectTitle(tt.member, tt.rank))
		})
	}
}

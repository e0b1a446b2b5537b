// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/appraisal-writer/internal/phrasebank"
	"github.com/pdiddy/appraisal-writer/pkg/types"
)

func sampleInput() types.ReportInput {
	return types.ReportInput{
		Member:        types.Member{Name: "王國良", Rank: "消防隊目"},
		OverallRating: "優 (A)",
		FuturePlan:    "參加煙火特攻員訓練課程",
		SpecificCase:  "當日作為升降台隊目執行任務。",
		Events:        "油尖旺社區應急防火嘉年華2024",
		Selections: []types.Selection{
			// Deliberately out of bank order.
			{Criterion: "16. 支持/參加部門活動", Grade: "優 (A)", Variant: 0},
			{Criterion: "12. 領導才能", Grade: "優 (A)", Variant: 0},
			{Criterion: "6. 服從紀律", Grade: "優 (A)", Variant: 0},
			{Criterion: "4. 可靠程度", Grade: "優 (A)", Variant: 0},
			{Criterion: "1. 工作知識", Grade: "優 (A)", Variant: 0},
		},
	}
}

func TestGroup(t *testing.T) {
	b, err := Group(phrasebank.Default(), sampleInput().Selections)
	require.NoError(t, err)

	assert.Equal(t, []string{"極之可靠，上級可放心委以重任", "極為嚴守紀律，時刻以身作則"}, b.Traits)
	assert.Equal(t, []string{
		"對各類滅火及拯救器材瞭如指掌，能因應現場環境選用合適工具",
		"有條理及清晰地指派各隊員執行任務",
	}, b.Ops)
	assert.Equal(t, []string{
		"熟悉局內各項行政程序，能準確處理文書紀錄",
		"經常帶領局內操練，深受隊員敬重",
	}, b.Station)
	assert.Equal(t, []string{"積極支持及參加部門舉辦的各類活動"}, b.Events)
}

func TestGroupDropsUntargetedGeneralText(t *testing.T) {
	bank, err := phrasebank.Parse([]byte(`grades: [A]
criteria:
  - name: x
    grades:
      A:
        - {desc: d, general: 只有通用文字}
`))
	require.NoError(t, err)

	b, err := Group(bank, []types.Selection{{Criterion: "x", Grade: "A"}})
	require.NoError(t, err)
	assert.Empty(t, b.Traits)
	assert.Empty(t, b.Events)
	assert.Empty(t, b.Ops)
	assert.Empty(t, b.Station)
}

func TestGroupLastSelectionWins(t *testing.T) {
	b, err := Group(phrasebank.Default(), []types.Selection{
		{Criterion: "4. 可靠程度", Grade: "優 (A)", Variant: 0},
		{Criterion: "4. 可靠程度", Grade: "良 (B)", Variant: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"為人可靠，能按時完成指派的工作"}, b.Traits)
}

func TestGroupErrors(t *testing.T) {
	tests := []struct {
		name      string
		selection types.Selection
		wantErr   error
	}{
		{"unknown criterion", types.Selection{Criterion: "99. 不存在", Grade: "優 (A)"}, phrasebank.ErrUnknownCriterion},
		{"unknown grade", types.Selection{Criterion: "4. 可靠程度", Grade: "丙"}, phrasebank.ErrUnknownGrade},
		{"variant out of range", types.Selection{Criterion: "4. 可靠程度", Grade: "優 (A)", Variant: 9}, phrasebank.ErrVariantOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Group(phrasebank.Default(), []types.Selection{tt.selection})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAssemble(t *testing.T) {
	r, err := Assemble(sampleInput(), phrasebank.Default())
	require.NoError(t, err)

	assert.Equal(t, "王隊目", r.SubjectTitle)
	require.Len(t, r.Sections, 4)

	assert.Equal(t, HeadingTraits, r.Sections[0].Heading)
	assert.Equal(t,
		"消防隊目王國良對工作盡忠職守。王隊目極之可靠，上級可放心委以重任。此外，他極為嚴守紀律，時刻以身作則。",
		r.Sections[0].Body)

	assert.Equal(t,
		"在行動工作方面，王隊目表現卓越。王隊目對各類滅火及拯救器材瞭如指掌，能因應現場環境選用合適工具。此外，他有條理及清晰地指派各隊員執行任務。這點在他處理實際事故時表露無遺。當日作為升降台隊目執行任務。",
		r.Sections[1].Body)

	assert.Equal(t,
		"在局內工作方面，王隊目極之能幹可靠。王隊目熟悉局內各項行政程序，能準確處理文書紀錄。除了妥善處理各項繁重的行政工作外，在操練方面，他經常帶領局內操練，深受隊員敬重。",
		r.Sections[2].Body)

	assert.Equal(t,
		"王隊目積極支持及參加部門舉辦的各類活動。例如參與油尖旺社區應急防火嘉年華2024。整體來說，他在評核期內各方面工作表現令人滿意，故此我把他的表現評為「優」級。在訓練方面，我建議他參加煙火特攻員訓練課程。",
		r.Sections[3].Body)

	assert.True(t, strings.HasPrefix(r.Text, HeadingTraits+"\n消防隊目王國良"))
	assert.Equal(t, 3, strings.Count(r.Text, "\n\n"))
	assert.Contains(t, r.Text, "\n\n"+HeadingSummary+"\n")
}

func TestAssembleWithoutEvents(t *testing.T) {
	in := sampleInput()
	in.Events = ""
	in.Selections = nil

	r, err := Assemble(in, phrasebank.Default())
	require.NoError(t, err)

	assert.Equal(t, "消防隊目王國良對工作盡忠職守。", r.Sections[0].Body)
	assert.True(t, strings.HasPrefix(r.Sections[3].Body, "整體來說，"))
	assert.NotContains(t, r.Text, "例如參與")
}

func TestAssembleMissingFields(t *testing.T) {
	in := sampleInput()
	in.Member.Name = " "
	in.OverallRating = ""

	_, err := Assemble(in, phrasebank.Default())
	require.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "member.name")
	assert.Contains(t, err.Error(), "overall_rating")
	assert.NotContains(t, err.Error(), "member.rank")
}

func TestRatingLabel(t *testing.T) {
	assert.Equal(t, "優", RatingLabel("優 (A)"))
	assert.Equal(t, "常/當", RatingLabel("常/當 (C)"))
	assert.Equal(t, "良", RatingLabel("良"))
	assert.Equal(t, "", RatingLabel(""))
}

func TestLoadInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.yaml")
	content := `member:
  name: 李小明
  rank: 消防員
overall_rating: "良 (B)"
future_plan: 參加救護訓練
selections:
  - criterion: "4. 可靠程度"
    grade: "良 (B)"
    variant: 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	in, err := LoadInput(path)
	require.NoError(t, err)
	assert.Equal(t, "李小明", in.Member.Name)
	assert.Equal(t, "良 (B)", in.OverallRating)
	require.Len(t, in.Selections, 1)

	r, err := Assemble(*in, phrasebank.Default())
	require.NoError(t, err)
	assert.Equal(t, "李隊員", r.SubjectTitle)
	assert.Equal(t, "消防員李小明對工作盡忠職守。李隊員為人可靠，能按時完成指派的工作。", r.Sections[0].Body)
}

func TestLoadInputErrors(t *testing.T) {
	_, err := LoadInput(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading report input")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("member: [unterminated\n"), 0o644))
	_, err = LoadInput(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing report input")
}

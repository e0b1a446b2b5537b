// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParagraphCommand(t *testing.T) {
	out, err := execute(t, "paragraph", "--title", "王隊目", "認識各種器材", "參與早操訓練。")
	require.NoError(t, err)
	assert.Equal(t, "王隊目認識各種器材。此外，他參與早操訓練。\n", out)
}

func TestParagraphCommandExplainJSON(t *testing.T) {
	out, err := execute(t, "paragraph", "--title", "王隊目", "--explain", "--format", "json", "負責倉庫管理", "參與早操訓練")
	require.NoError(t, err)
	assert.Contains(t, out, `"rule": "transition"`)
	assert.Contains(t, out, `"category": "drill"`)
}

func TestClassifyCommand(t *testing.T) {
	out, err := execute(t, "classify", "負責倉庫管理", "認識各種器材")
	require.NoError(t, err)
	assert.Equal(t, "admin\t負責倉庫管理\ngeneral\t認識各種器材\n", out)
}

func TestGenerateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	input := `member:
  name: 王國良
  rank: 消防隊目
overall_rating: "優 (A)"
future_plan: 參加煙火特攻員訓練課程
selections:
  - criterion: "4. 可靠程度"
    grade: "優 (A)"
`
	require.NoError(t, os.WriteFile(path, []byte(input), 0o644))

	out, err := execute(t, "generate", "--input", path, "--format", "text")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "【個人特質與紀律】\n消防隊目王國良對工作盡忠職守。王隊目極之可靠"))
	assert.Contains(t, out, "評為「優」級")
}

func TestWriteStructured(t *testing.T) {
	var buf bytes.Buffer

	done, err := writeStructured(&buf, "text", 1)
	assert.False(t, done)
	assert.NoError(t, err)

	done, err = writeStructured(&buf, "yaml", map[string]int{"a": 1})
	assert.True(t, done)
	assert.NoError(t, err)
	assert.Equal(t, "a: 1\n", buf.String())

	done, err = writeStructured(&buf, "xml", 1)
	assert.True(t, done)
	assert.Error(t, err)
}

func TestItemLess(t *testing.T) {
	assert.True(t, itemLess("2", "10"))
	assert.True(t, itemLess("10", "16"))
	assert.False(t, itemLess("16", "4"))
}

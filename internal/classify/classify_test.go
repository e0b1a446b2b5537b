// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/appraisal-writer/pkg/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     types.Category
	}{
		{"admin keyword", "妥善處理局內的文書工作", types.CategoryAdmin},
		{"drill keyword", "參與早操訓練", types.CategoryDrill},
		{"ops keyword", "在火警現場沉著應變", types.CategoryOps},
		{"mind keyword", "具備良好的分析能力", types.CategoryMind},
		{"social keyword", "與同僚溝通良好", types.CategorySocial},
		{"no keyword", "認識各種器材", types.CategoryGeneral},
		{"empty fragment", "", types.CategoryGeneral},
		{"admin beats drill", "負責管理操練時間表", types.CategoryAdmin},
		{"drill beats social", "在講堂向新人教授知識", types.CategoryDrill},
		{"ops beats mind", "在事故中作出準確判斷", types.CategoryOps},
		{"mind beats social", "提出建議並協調各方", types.CategoryMind},
		{"trailing full stop", "參與早操訓練。", types.CategoryDrill},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.fragment))
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	fragments := []string{"參與早操訓練", "認識各種器材", "負責倉庫管理", "積極救援"}
	for _, f := range fragments {
		first := Classify(f)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, Classify(f), "fragment %q", f)
		}
	}
}

func TestClassifyPunctuationInsensitive(t *testing.T) {
	for _, f := range []string{"負責倉庫管理", "認識各種器材", "與人相處融洽"} {
		assert.Equal(t, Classify(f), Classify(f+"。"))
		assert.Equal(t, Classify(f), Classify(f+"。。"))
	}
}

func TestClassifierCustomRules(t *testing.T) {
	c := New(
		Rule{types.CategorySocial, MatcherFunc(func(s string) bool { return strings.HasPrefix(s, "與") })},
		Rule{types.CategoryAdmin, Keywords{"器材"}},
	)

	assert.Equal(t, types.CategorySocial, c.Classify("與隊員保持器材整潔"))
	assert.Equal(t, types.CategoryAdmin, c.Classify("認識各種器材"))
	assert.Equal(t, types.CategoryGeneral, c.Classify("參與早操訓練"))
}

func TestClassifierZeroAndNil(t *testing.T) {
	var zero Classifier
	assert.Equal(t, types.CategoryGeneral, zero.Classify("負責倉庫管理"))

	var nilClassifier *Classifier
	assert.Equal(t, types.CategoryGeneral, nilClassifier.Classify("負責倉庫管理"))
}

func TestNewCopiesRules(t *testing.T) {
	rules := []Rule{{types.CategoryDrill, Keywords{"操練"}}}
	c := New(rules...)
	rules[0] = Rule{types.CategoryOps, Keywords{"操練"}}

	assert.Equal(t, types.CategoryDrill, c.Classify("帶領操練"))
}

func TestClassifyConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := Classify("在火警現場沉著應變"); got != types.CategoryOps {
					t.Errorf("Classify = %s, want ops", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestKeywordsIgnoresEmptyEntries(t *testing.T) {
	assert.False(t, Keywords{""}.Match("anything"))
	assert.True(t, Keywords{"", "any"}.Match("anything"))
}

func TestTrimTerminal(t *testing.T) {
	assert.Equal(t, "參與訓練", TrimTerminal("參與訓練。"))
	assert.Equal(t, "參與訓練", TrimTerminal("參與訓練。。"))
	assert.Equal(t, "參與訓練", TrimTerminal("參與訓練"))
	assert.Equal(t, "。參與訓練", TrimTerminal("。參與訓練"))
	assert.Equal(t, "", TrimTerminal("。"))
}

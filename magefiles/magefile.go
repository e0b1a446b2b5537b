//go:build mage

// Package main contains Mage build targets for appraisal-writer developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// projectDirs lists the working directories the CLI expects.
var projectDirs = []string{
	"archive",
	"reports",
}

// Init creates the project directory structure.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Project directories initialized.")
	return nil
}

const (
	binDir  = "bin"
	binName = "appraisal-writer"
	cmdPkg  = "./cmd/appraisal-writer"
)

// Build compiles the CLI binary into bin/. The sqlite driver needs cgo.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	env := map[string]string{"CGO_ENABLED": "1"}
	if err := sh.RunWithV(env, "go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Sample builds the CLI and renders the sample report in reports/.
func Sample() error {
	mg.Deps(Init, Build)

	input := filepath.Join("reports", "sample.yaml")
	if _, err := os.Stat(input); os.IsNotExist(err) {
		if err := os.WriteFile(input, []byte(sampleInput), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", input, err)
		}
	}
	text, err := sh.Output(filepath.Join(binDir, binName), "generate", "--input", input)
	if err != nil {
		return err
	}
	out := filepath.Join("reports", "sample.txt")
	if err := os.WriteFile(out, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Printf("Wrote %s\n", out)
	return nil
}

const sampleInput = `member:
  name: 王國良
  rank: 消防隊目
overall_rating: "優 (A)"
future_plan: 參加煙火特攻員訓練課程
specific_case: 例如於二零二四年四月十日在佐敦道華豐大廈發生的三級火警中，當日作為升降台隊目並以搜救隊身份執行任務。臨危不亂，有條理及清晰地指派各隊員執行任務，最終成功救出被困人士。
events: 油尖旺社區應急防火嘉年華2024
selections:
  - {criterion: "1. 工作知識", grade: "優 (A)", variant: 0}
  - {criterion: "4. 可靠程度", grade: "優 (A)", variant: 0}
  - {criterion: "6. 服從紀律", grade: "優 (A)", variant: 0}
  - {criterion: "7. 幹勁與決心", grade: "優 (A)", variant: 1}
  - {criterion: "9. 應變能力", grade: "優 (A)", variant: 0}
  - {criterion: "10. 分析能力", grade: "優 (A)", variant: 0}
  - {criterion: "12. 領導才能", grade: "優 (A)", variant: 0}
  - {criterion: "13. 溝通能力", grade: "優 (A)", variant: 0}
  - {criterion: "15. 與人相處的技巧", grade: "優 (A)", variant: 0}
  - {criterion: "16. 支持/參加部門活動", grade: "優 (A)", variant: 0}
`

// Stats prints project metrics: Go production and test line counts.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	return nil
}

// countGoLines walks the directory tree and counts non-blank lines in Go
// files, skipping directories that start with an underscore or dot.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		if strings.HasSuffix(path, "_test.go") != testOnly {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				total++
			}
		}
		return nil
	})
	return total, err
}

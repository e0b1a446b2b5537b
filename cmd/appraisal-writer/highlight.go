// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/appraisal-writer/internal/highlight"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [text]",
	Short: "Mark which FS-278 criterion each clause addresses",
	Long: `Highlight splits report text into clauses and tags each clause with the
number of the first criterion whose pattern it matches. Text is read from
the arguments, from --file, or from stdin when neither is given.`,
	RunE: runHighlight,
}

func runHighlight(cmd *cobra.Command, args []string) error {
	text, err := highlightInput(cmd, args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no text to analyse: provide text, --file, or stdin")
	}

	bank, err := loadBank()
	if err != nil {
		return err
	}
	h, err := highlight.New(bank.HighlightRules())
	if err != nil {
		return err
	}

	segments := h.Annotate(text)
	out := cmd.OutOrStdout()
	format, _ := cmd.Flags().GetString("format")
	if done, err := writeStructured(out, format, segments); done {
		return err
	}

	fmt.Fprintln(out, highlight.Render(segments))

	counts := highlight.Counts(segments)
	items := make([]string, 0, len(counts))
	for item := range counts {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return itemLess(items[i], items[j]) })
	for _, item := range items {
		fmt.Fprintf(cmd.ErrOrStderr(), "item %s: %d clause(s)\n", item, counts[item])
	}
	return nil
}

func highlightInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	path, _ := cmd.Flags().GetString("file")
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// itemLess orders numeric item labels numerically, others lexically.
func itemLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

func init() {
	highlightCmd.Flags().String("file", "", "read text from file")
	highlightCmd.Flags().String("format", "text", "output format: text, json, or yaml")

	rootCmd.AddCommand(highlightCmd)
}

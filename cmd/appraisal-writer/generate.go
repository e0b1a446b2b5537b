// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/appraisal-writer/internal/report"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an appraisal report from a selections file",
	Long: `Generate reads a report input YAML file (member name and rank, overall
rating, per-criterion grade and variant selections, and free-text
supplements), groups the selected phrases into the four report paragraphs,
and prints the finished narrative.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	format, _ := cmd.Flags().GetString("format")

	bank, err := loadBank()
	if err != nil {
		return err
	}
	in, err := report.LoadInput(inputPath)
	if err != nil {
		return err
	}

	r, err := report.Assemble(*in, bank)
	if errors.Is(err, report.ErrMissingField) {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return err
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if done, err := writeStructured(out, format, r); done {
		return err
	}
	fmt.Fprintln(out, r.Text)
	return nil
}

func init() {
	generateCmd.Flags().String("input", "report.yaml", "report input YAML file")
	generateCmd.Flags().String("format", "text", "output format: text, json, or yaml")

	rootCmd.AddCommand(generateCmd)
}

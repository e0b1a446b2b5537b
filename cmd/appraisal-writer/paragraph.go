// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/appraisal-writer/internal/classify"
	"github.com/pdiddy/appraisal-writer/internal/paragraph"
	"github.com/pdiddy/appraisal-writer/internal/title"
)

var paragraphCmd = &cobra.Command{
	Use:   "paragraph [fragment...]",
	Short: "Assemble fragments into one paragraph",
	Long: `Paragraph runs the paragraph engine on the given fragments. The subject
title is taken from --title, or derived from --name and --rank.

Use --explain to list the category and connector chosen for each fragment.`,
	RunE: runParagraph,
}

func runParagraph(cmd *cobra.Command, args []string) error {
	subject, _ := cmd.Flags().GetString("title")
	if subject == "" {
		name, _ := cmd.Flags().GetString("name")
		rank, _ := cmd.Flags().GetString("rank")
		subject = title.SubjectTitle(name, rank)
	}
	explain, _ := cmd.Flags().GetBool("explain")
	format, _ := cmd.Flags().GetString("format")

	out := cmd.OutOrStdout()
	if !explain {
		fmt.Fprintln(out, paragraph.Build(args, subject))
		return nil
	}

	clauses := paragraph.Explain(args, subject)
	if done, err := writeStructured(out, format, clauses); done {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tCategory\tRule\tConnector\tFragment")
	for i, c := range clauses {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i, c.Category, c.Rule, c.Connector, c.Fragment)
	}
	return tw.Flush()
}

var classifyCmd = &cobra.Command{
	Use:   "classify fragment...",
	Short: "Print the semantic category of each fragment",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, f := range args {
			fmt.Fprintf(out, "%s\t%s\n", classify.Classify(f), f)
		}
		return nil
	},
}

func init() {
	paragraphCmd.Flags().String("title", "", "subject title, e.g. 王隊目")
	paragraphCmd.Flags().String("name", "", "member name, used when --title is empty")
	paragraphCmd.Flags().String("rank", "", "member rank, used when --title is empty")
	paragraphCmd.Flags().Bool("explain", false, "show the connector decision for each fragment")
	paragraphCmd.Flags().String("format", "text", "explain output format: text, json, or yaml")

	rootCmd.AddCommand(paragraphCmd)
	rootCmd.AddCommand(classifyCmd)
}

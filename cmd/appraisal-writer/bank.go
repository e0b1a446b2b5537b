// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/appraisal-writer/internal/phrasebank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Browse the phrase bank",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List criteria and the number of variants per grade",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := loadBank()
		if err != nil {
			return err
		}

		grades := bank.Grades()
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprint(tw, "Criterion\tTarget")
		for _, g := range grades {
			fmt.Fprintf(tw, "\t%s", g)
		}
		fmt.Fprintln(tw)

		for _, c := range bank.Criteria() {
			target := string(c.Target)
			if target == "" {
				target = "-"
			}
			fmt.Fprintf(tw, "%s\t%s", c.Name, target)
			for _, g := range grades {
				fmt.Fprintf(tw, "\t%d", len(c.Grades[g]))
			}
			fmt.Fprintln(tw)
		}
		return tw.Flush()
	},
}

var bankPreviewCmd = &cobra.Command{
	Use:   "preview criterion grade [variant]",
	Short: "Show the variants of a criterion at a grade",
	Long: `Preview lists every variant of a criterion at the given grade with its
preview sentence. With a variant index, only that variant is shown.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := loadBank()
		if err != nil {
			return err
		}
		variants, err := bank.Variants(args[0], args[1])
		if err != nil {
			return err
		}

		first, last := 0, len(variants)
		if len(args) == 3 {
			i, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid variant index %q: %w", args[2], err)
			}
			if _, err := bank.Variant(args[0], args[1], i); err != nil {
				return err
			}
			first, last = i, i+1
		}

		out := cmd.OutOrStdout()
		for i := first; i < last; i++ {
			v := variants[i]
			fmt.Fprintf(out, "[%d] %s\n    %s\n", i, v.Desc, phrasebank.Preview(v))
			if v.Action != "" {
				fmt.Fprintf(out, "    行動: %s\n", v.Action)
			}
			if v.Station != "" {
				fmt.Fprintf(out, "    局內: %s\n", v.Station)
			}
		}
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankPreviewCmd)

	rootCmd.AddCommand(bankCmd)
}

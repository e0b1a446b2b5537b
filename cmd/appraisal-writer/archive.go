// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/appraisal-writer/internal/archive"
	"github.com/pdiddy/appraisal-writer/internal/httputil"
	"github.com/pdiddy/appraisal-writer/pkg/types"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Browse historical appraisal write-ups",
	Long: `Archive manages a local SQLite database of past appraisal write-ups,
imported from a CSV export of the shared spreadsheet. Use subcommands to
import the export and to filter entries by region, year, and rank.`,
}

// --- import subcommand ---

var archiveImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the archive with a CSV export",
	Long: `Import reads a CSV export with the columns 總區, 年份, 職級, 標題 and
考績文章 and replaces the archive contents. The export is read from --file,
or downloaded from --url (default: archive.source_url from the config).`,
	RunE: runArchiveImport,
}

func runArchiveImport(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")

	cfg, err := archiveConfig()
	if err != nil {
		return err
	}
	store, err := archive.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	out := cmd.OutOrStdout()

	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("opening export: %w", err)
		}
		defer f.Close()
		_, err = store.Import(ctx, f, out)
		return schemaWarning(err)
	}

	client := httputil.NewClient(cfg.HTTPConfig, cmd.ErrOrStderr())
	_, err = store.ImportURL(ctx, client, cfg.SourceURL, out)
	return schemaWarning(err)
}

// schemaWarning prints the expected column layout when an export is rejected.
func schemaWarning(err error) error {
	if errors.Is(err, archive.ErrSchemaMismatch) {
		fmt.Fprintf(os.Stderr, "warning: the export must have the columns %s, %s, %s, %s, %s\n",
			archive.ColRegion, archive.ColYear, archive.ColRank, archive.ColTitle, archive.ColBody)
	}
	return err
}

// --- query subcommand ---

var archiveQueryCmd = &cobra.Command{
	Use:   "query",
	Short: "List archived write-ups for a region, year, and rank",
	RunE:  runArchiveQuery,
}

func runArchiveQuery(cmd *cobra.Command, args []string) error {
	region, _ := cmd.Flags().GetString("region")
	year, _ := cmd.Flags().GetString("year")
	rank, _ := cmd.Flags().GetString("rank")
	format, _ := cmd.Flags().GetString("format")

	cfg, err := archiveConfig()
	if err != nil {
		return err
	}
	store, err := archive.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	if year == "" {
		years, err := store.Years(ctx)
		if err != nil {
			return err
		}
		year = years[0]
	}

	filter := archive.Filter{Region: region, Year: year, Rank: rank}
	entries, err := store.Query(ctx, filter)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if done, err := writeStructured(out, format, entries); done {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintf(out, "No entries for %s, %s, %s.\n", orAll(region), year, orAll(rank))
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(out, "== %s (%s) [%s %s]\n%s\n\n", e.Title, e.Year, e.Region, e.Rank, e.Body)
	}
	fmt.Fprintf(out, "%d entries\n", len(entries))
	return nil
}

func orAll(s string) string {
	if s == "" {
		return "all"
	}
	return s
}

// --- years subcommand ---

var archiveYearsCmd = &cobra.Command{
	Use:   "years",
	Short: "List the years present in the archive",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := archiveConfig()
		if err != nil {
			return err
		}
		store, err := archive.NewStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		years, err := store.Years(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(years, "\n"))
		return nil
	},
}

// --- shared helpers ---

func archiveConfig() (types.ArchiveConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return types.ArchiveConfig{}, err
	}
	return cfg.Archive, nil
}

func init() {
	archiveCmd.PersistentFlags().String("archive-dir", "archive", "directory containing archive.db")
	viper.BindPFlag("archive.dir", archiveCmd.PersistentFlags().Lookup("archive-dir"))

	archiveImportCmd.Flags().String("file", "", "CSV export to import")
	archiveImportCmd.Flags().String("url", "", "CSV export URL to download")
	viper.BindPFlag("archive.source_url", archiveImportCmd.Flags().Lookup("url"))

	archiveQueryCmd.Flags().String("region", "", "command region, e.g. 九龍總區 (regions: "+strings.Join(types.Regions, ", ")+")")
	archiveQueryCmd.Flags().String("year", "", "year (default: most recent in the archive)")
	archiveQueryCmd.Flags().String("rank", "", "rank (ranks: "+strings.Join(types.Ranks, ", ")+")")
	archiveQueryCmd.Flags().String("format", "text", "output format: text, json, or yaml")

	archiveCmd.AddCommand(archiveImportCmd)
	archiveCmd.AddCommand(archiveQueryCmd)
	archiveCmd.AddCommand(archiveYearsCmd)

	rootCmd.AddCommand(archiveCmd)
}

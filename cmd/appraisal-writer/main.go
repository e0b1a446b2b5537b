// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the appraisal-writer CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/appraisal-writer/internal/phrasebank"
	"github.com/pdiddy/appraisal-writer/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the appraisal-writer CLI.
var rootCmd = &cobra.Command{
	Use:   "appraisal-writer",
	Short: "Generate FS-278 appraisal narratives from a graded phrase bank",
	Long: `appraisal-writer assembles personnel appraisal narratives from a bank of
pre-written graded phrases. Selected phrases are grouped by paragraph and
stitched together with context-sensitive connectives.

Subcommands cover report generation, the paragraph engine on its own,
phrase bank browsing, the historical appraisal archive, and clause
highlighting.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./appraisal-writer.yaml or ~/.config/appraisal-writer/config.yaml)")
	rootCmd.PersistentFlags().String("bank", "", "phrase bank YAML file (default: built-in bank)")
	viper.BindPFlag("bank", rootCmd.PersistentFlags().Lookup("bank"))

	viper.SetDefault("archive.dir", "archive")
	viper.SetDefault("archive.timeout", "30s")
	viper.SetDefault("archive.user_agent", "appraisal-writer/"+version)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("appraisal-writer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "appraisal-writer"))
		}
	}

	viper.SetEnvPrefix("APPRAISAL_WRITER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes the merged flag, env, and file settings.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}
	return cfg, nil
}

// loadBank opens the configured phrase bank.
func loadBank() (*phrasebank.Bank, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return phrasebank.Open(cfg.Bank)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

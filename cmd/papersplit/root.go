package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zryth-solutions/papersplit/internal/config"
	"github.com/zryth-solutions/papersplit/internal/home"
	"github.com/zryth-solutions/papersplit/internal/outfmt"
	"github.com/zryth-solutions/papersplit/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "papersplit",
	Short: "Split composite exam-paper PDFs into question papers and answer keys",
	Long: `Papersplit analyzes composite educational PDFs (several question papers,
self-assessment papers, and solutions bound back-to-back) and reconstructs
their latent structure: where each paper starts and ends, whether it is a
question paper or an answer key, and what canonical filename it belongs
under. It then splits the source PDF into one file per detected unit.

The pipeline:
  - Header-band text extraction from each page
  - Pattern-based paper detection with longest-match tie-breaking
  - Page-range resolution and confidence scoring
  - Output classification (question_papers vs answer_keys)
  - Page-accurate PDF splitting with partial-failure tolerance`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.papersplit/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "papersplit home directory (default: ~/.papersplit)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		outfmt.SetFormat(outputFormat)
	}

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup resolves the home directory and configuration shared by all
// pipeline commands and builds the logger.
func setup() (*home.Dir, *config.Config, *slog.Logger, error) {
	h, err := home.New(homeDir)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := h.EnsureExists(); err != nil {
		return nil, nil, nil, err
	}

	cm, err := config.NewManager(cfgFile, h.Path())
	if err != nil {
		return nil, nil, nil, err
	}
	cfg := cm.Get()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	return h, cfg, logger, nil
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/zryth-solutions/papersplit/internal/analyze"
	"github.com/zryth-solutions/papersplit/internal/home"
	"github.com/zryth-solutions/papersplit/internal/outfmt"
	"github.com/zryth-solutions/papersplit/internal/pdf"
)

var analyzeOut string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <pdf>",
	Short: "Analyze a composite PDF's structure",
	Long: `Analyze a composite exam-paper PDF and print its detected structure:
chapters with page ranges, output routing, and a confidence score.

The analysis JSON is also written to the home analysis directory (or
--analysis-out) so that a later 'papersplit split' can reuse it.

Examples:
  papersplit analyze book.pdf
  papersplit analyze book.pdf -o json
  papersplit analyze book.pdf --analysis-out ./book.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, cfg, logger, err := setup()
		if err != nil {
			return err
		}

		doc, err := pdf.Open(args[0], cfg.HeaderFraction)
		if err != nil {
			return err
		}
		defer doc.Close()

		analyzer := analyze.NewAnalyzer(analyze.Options{
			Workers: cfg.Workers,
			Logger:  logger,
		})
		result, err := analyzer.Analyze(cmd.Context(), doc)
		if err != nil {
			return err
		}

		outPath := analyzeOut
		if outPath == "" {
			outPath = h.AnalysisPath(home.DocIDFromPath(args[0]))
		}
		if err := result.Save(outPath); err != nil {
			return err
		}
		logger.Info("analysis saved", "path", outPath)

		return outfmt.Output(result)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(
		&analyzeOut, "analysis-out", "", "path for the analysis JSON (default: home analysis dir)",
	)
}

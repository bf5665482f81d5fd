package main

import (
	"github.com/spf13/cobra"

	"github.com/zryth-solutions/papersplit/internal/analyze"
	"github.com/zryth-solutions/papersplit/internal/home"
	"github.com/zryth-solutions/papersplit/internal/outfmt"
	"github.com/zryth-solutions/papersplit/internal/pdf"
	"github.com/zryth-solutions/papersplit/internal/split"
)

var (
	splitAnalysisPath string
	splitOutDir       string
)

var splitCmd = &cobra.Command{
	Use:   "split <pdf>",
	Short: "Split a PDF using a saved analysis",
	Long: `Split a composite PDF into one file per classified chapter, driven by a
previously saved analysis JSON. The analysis is validated against the
artifact schema before any file is written.

Unclassifiable chapters are skipped with a warning; the command fails only
if the source PDF itself cannot be read.

Examples:
  papersplit split book.pdf
  papersplit split book.pdf --analysis ./book.json --out ./out`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, cfg, logger, err := setup()
		if err != nil {
			return err
		}

		docID := home.DocIDFromPath(args[0])

		analysisPath := splitAnalysisPath
		if analysisPath == "" {
			analysisPath = h.AnalysisPath(docID)
		}
		result, err := analyze.LoadResult(analysisPath)
		if err != nil {
			return err
		}

		doc, err := pdf.Open(args[0], cfg.HeaderFraction)
		if err != nil {
			return err
		}
		defer doc.Close()

		outDir := splitOutDir
		if outDir == "" {
			if cfg.OutputDir != "" {
				outDir = cfg.OutputDir
			} else {
				outDir = h.DocumentSplitDir(docID)
			}
		}

		units, err := split.NewSplitter(logger).Split(cmd.Context(), doc, result, outDir)
		if err != nil {
			return err
		}

		return outfmt.Output(units)
	},
}

func init() {
	splitCmd.Flags().StringVar(
		&splitAnalysisPath, "analysis", "", "analysis JSON path (default: home analysis dir)",
	)
	splitCmd.Flags().StringVar(
		&splitOutDir, "out", "", "output directory (default: home split dir)",
	)
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/zryth-solutions/papersplit/internal/analyze"
	"github.com/zryth-solutions/papersplit/internal/home"
	"github.com/zryth-solutions/papersplit/internal/outfmt"
	"github.com/zryth-solutions/papersplit/internal/pdf"
	"github.com/zryth-solutions/papersplit/internal/split"
)

var runOutDir string

var runCmd = &cobra.Command{
	Use:   "run <pdf>",
	Short: "Analyze and split a PDF in one pass",
	Long: `Analyze a composite PDF and immediately split it using the in-memory
analysis. The analysis JSON is still persisted for inspection.

Examples:
  papersplit run book.pdf
  papersplit run book.pdf --out ./out`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, cfg, logger, err := setup()
		if err != nil {
			return err
		}

		docID := home.DocIDFromPath(args[0])

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
		if err := result.Save(h.AnalysisPath(docID)); err != nil {
			return err
		}

		outDir := runOutDir
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

		return outfmt.Output(struct {
			Analysis *analyze.Result `json:"analysis" yaml:"analysis"`
			Files    []split.Unit    `json:"files" yaml:"files"`
		}{Analysis: result, Files: units})
	},
}

func init() {
	runCmd.Flags().StringVar(
		&runOutDir, "out", "", "output directory (default: home split dir)",
	)
}

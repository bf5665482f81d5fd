package main

import (
	"github.com/spf13/cobra"

	"github.com/zryth-solutions/papersplit/internal/batch"
	"github.com/zryth-solutions/papersplit/internal/outfmt"
	"github.com/zryth-solutions/papersplit/internal/store"
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Analyze and split every PDF in a directory",
	Long: `Run the analyze-then-split pipeline over every PDF in a directory.
Documents are processed in parallel and independently: one bad document is
reported and does not stop the batch.

Examples:
  papersplit batch ./books
  papersplit batch ./books -o json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, cfg, logger, err := setup()
		if err != nil {
			return err
		}

		st, err := store.NewLocal(args[0])
		if err != nil {
			return err
		}

		docIDs, err := st.ListDocuments(cmd.Context())
		if err != nil {
			return err
		}
		logger.Info("starting batch", "documents", len(docIDs))

		proc, err := batch.NewProcessor(batch.Config{
			Store:          st,
			Home:           h,
			HeaderFraction: cfg.HeaderFraction,
			Workers:        cfg.Workers,
			Logger:         logger,
		})
		if err != nil {
			return err
		}

		reports, err := proc.Run(cmd.Context(), docIDs)
		if err != nil {
			return err
		}

		failed := 0
		for _, r := range reports {
			if r.Failed() {
				failed++
			}
		}
		logger.Info("batch complete", "documents", len(reports), "failed", failed)

		return outfmt.Output(reports)
	},
}

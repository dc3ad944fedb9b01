package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"songbook/internal/config"
	"songbook/internal/ingest"
	"songbook/internal/library"
	"songbook/internal/logging"
	"songbook/internal/songfile"
)

func newUploadBulkCommand(ctx *commandContext) *cobra.Command {
	var (
		dbFlag          string
		singerIDFlag    int64
		concurrencyFlag int
	)

	cmd := &cobra.Command{
		Use:   "upload-bulk <directory>",
		Short: "Parse and upload every recognizable file in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve directory: %w", err)
			}

			return ctx.withStore(dbFlag, func(cfg *config.Config, store *library.Store) error {
				logger, err := logging.NewFromConfig(cfg)
				if err != nil {
					return err
				}

				singerID := singerIDFlag
				if singerID == 0 {
					singerID = cfg.Upload.SingerID
				}
				concurrency := concurrencyFlag
				if concurrency == 0 {
					concurrency = cfg.Upload.MaxConcurrency
				}

				ing := ingest.New(store, songfile.NewParser(), logger, singerID, concurrency)
				summary, err := ing.Run(cmd.Context(), dir)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(),
					"Uploaded %d songs (%d already in library, %d unparseable, %d failed)\n",
					summary.Uploaded, summary.Skipped, summary.Unparsed, summary.Failed)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&dbFlag, "db", "", "Library database path")
	cmd.Flags().Int64VarP(&singerIDFlag, "singer-id", "s", 0, "Singer identifier for every upload")
	cmd.Flags().IntVarP(&concurrencyFlag, "max-concurrency", "m", 0, "Number of songs to upload simultaneously")
	return cmd
}

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"songbook/internal/config"
	"songbook/internal/library"
)

func newUploadCommand(ctx *commandContext) *cobra.Command {
	var (
		titleFlag    string
		singerIDFlag int64
		dbFlag       string
		sungAtFlag   string
	)

	cmd := &cobra.Command{
		Use:   "upload <path>",
		Short: "Record one song's metadata in the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			var sungAt *time.Time
			if trimmed := strings.TrimSpace(sungAtFlag); trimmed != "" {
				parsed, err := time.ParseInLocation("02/01/2006", trimmed, time.UTC)
				if err != nil {
					return fmt.Errorf("parse --sung-at %q (want DD/MM/YYYY): %w", trimmed, err)
				}
				sungAt = &parsed
			}

			return ctx.withStore(dbFlag, func(cfg *config.Config, store *library.Store) error {
				singerID := singerIDFlag
				if singerID == 0 {
					singerID = cfg.Upload.SingerID
				}

				song, err := store.InsertSong(cmd.Context(), library.SongMetadata{
					Title:         titleFlag,
					SingerID:      singerID,
					DateFirstSung: sungAt,
					LocalPath:     path,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Uploaded song #%d (%s)\n", song.ID, song.Title)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&titleFlag, "title", "t", "", "Song title, including any artists")
	cmd.Flags().Int64VarP(&singerIDFlag, "singer-id", "s", 0, "Singer identifier")
	cmd.Flags().StringVar(&dbFlag, "db", "", "Library database path")
	cmd.Flags().StringVar(&sungAtFlag, "sung-at", "", "Performance date in DD/MM/YYYY format")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"songbook/internal/config"
	"songbook/internal/library"
)

func newSongsCommand(ctx *commandContext) *cobra.Command {
	songsCmd := &cobra.Command{
		Use:   "songs",
		Short: "Inspect the song library",
	}
	songsCmd.AddCommand(newSongsListCommand(ctx))
	songsCmd.AddCommand(newSongsStatsCommand(ctx))
	return songsCmd
}

func newSongsListCommand(ctx *commandContext) *cobra.Command {
	var dbFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every song in the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(dbFlag, func(cfg *config.Config, store *library.Store) error {
				songs, err := store.ListSongs(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(songs) == 0 {
					fmt.Fprintln(out, "Library is empty")
					return nil
				}

				rows := make([][]string, 0, len(songs))
				for _, song := range songs {
					sungAt := ""
					if song.DateFirstSung != nil {
						sungAt = song.DateFirstSung.Format("02/01/2006")
					}
					singer := song.SingerName
					if singer == "" {
						singer = fmt.Sprintf("#%d", song.SingerID)
					}
					rows = append(rows, []string{
						strconv.FormatInt(song.ID, 10),
						song.Title,
						singer,
						sungAt,
						song.LocalPath,
					})
				}

				if stdoutIsTerminal() {
					fmt.Fprintln(out, renderTable([]string{"ID", "Title", "Singer", "Sung At", "Path"}, rows))
				} else {
					fmt.Fprintln(out, renderPlain(rows))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&dbFlag, "db", "", "Library database path")
	return cmd
}

func newSongsStatsCommand(ctx *commandContext) *cobra.Command {
	var dbFlag string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show song counts per singer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(dbFlag, func(cfg *config.Config, store *library.Store) error {
				stats, err := store.Stats(cmd.Context())
				if err != nil {
					return err
				}
				singers, err := store.ListSingers(cmd.Context())
				if err != nil {
					return err
				}
				names := make(map[int64]string, len(singers))
				for _, singer := range singers {
					names[singer.ID] = singer.Name
				}

				ids := make([]int64, 0, len(stats))
				for id := range stats {
					ids = append(ids, id)
				}
				sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

				out := cmd.OutOrStdout()
				total := 0
				for _, id := range ids {
					name := names[id]
					if name == "" {
						name = fmt.Sprintf("singer #%d", id)
					}
					fmt.Fprintf(out, "%s: %d\n", name, stats[id])
					total += stats[id]
				}
				fmt.Fprintf(out, "total: %d\n", total)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&dbFlag, "db", "", "Library database path")
	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"songbook/internal/config"
	"songbook/internal/library"
)

func newSingerCommand(ctx *commandContext) *cobra.Command {
	singerCmd := &cobra.Command{
		Use:   "singer",
		Short: "Manage registered performers",
	}
	singerCmd.AddCommand(newSingerAddCommand(ctx))
	singerCmd.AddCommand(newSingerListCommand(ctx))
	return singerCmd
}

func newSingerAddCommand(ctx *commandContext) *cobra.Command {
	var (
		dbFlag   string
		idFlag   int64
		nameFlag string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a performer identity, or rename an existing one",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(dbFlag, func(cfg *config.Config, store *library.Store) error {
				if err := store.AddSinger(cmd.Context(), idFlag, nameFlag); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Registered singer #%d (%s)\n", idFlag, nameFlag)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&dbFlag, "db", "", "Library database path")
	cmd.Flags().Int64Var(&idFlag, "id", 0, "Singer identifier")
	cmd.Flags().StringVar(&nameFlag, "name", "", "Singer display name")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newSingerListCommand(ctx *commandContext) *cobra.Command {
	var dbFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered performers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(dbFlag, func(cfg *config.Config, store *library.Store) error {
				singers, err := store.ListSingers(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(singers) == 0 {
					fmt.Fprintln(out, "No singers registered")
					return nil
				}
				for _, singer := range singers {
					fmt.Fprintf(out, "%d\t%s\n", singer.ID, singer.Name)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&dbFlag, "db", "", "Library database path")
	return cmd
}

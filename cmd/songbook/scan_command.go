package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"songbook/internal/config"
	"songbook/internal/logging"
	"songbook/internal/scan"
	"songbook/internal/songfile"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var (
		dbFlag       string
		singerIDFlag int64
		uploaderFlag string
		logEnvFlag   string
	)

	cmd := &cobra.Command{
		Use:   "scan <directory>",
		Short: "Parse every filename in a directory and print upload command lines",
		Long: `Scan lists the regular files in a directory, parses each filename, and
prints one ready-to-run upload command line per success to stdout. Files no
naming convention recognizes are logged to stderr and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			dir, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			logger.Info("checking directory", "directory", dir)

			parsed, err := scan.New(songfile.NewParser(), logger).Scan(dir)
			if err != nil {
				return err
			}

			formatter := scan.CommandFormatter{
				LogEnv:   logEnvFlag,
				Uploader: uploaderFlag,
				Database: dbFlag,
				SingerID: singerIDFlag,
			}
			if formatter.LogEnv == "" {
				formatter.LogEnv = cfg.Upload.LogEnv
			}
			if formatter.Uploader == "" {
				formatter.Uploader = cfg.Upload.Uploader
			}
			if strings.TrimSpace(formatter.Database) == "" {
				formatter.Database = cfg.Paths.LibraryDB
			}
			if formatter.SingerID == 0 {
				formatter.SingerID = cfg.Upload.SingerID
			}

			out := cmd.OutOrStdout()
			for _, p := range parsed {
				fmt.Fprintln(out, formatter.Format(dir, p))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbFlag, "db", "", "Database path passed through to the upload commands")
	cmd.Flags().Int64Var(&singerIDFlag, "singer-id", 0, "Singer identifier for the upload commands")
	cmd.Flags().StringVar(&uploaderFlag, "uploader", "", "Upload binary substituted into the command lines")
	cmd.Flags().StringVar(&logEnvFlag, "log-env", "", "Environment override prefixed to the command lines")
	return cmd
}

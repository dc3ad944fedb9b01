package main

import (
	"github.com/spf13/cobra"

	"songbook/internal/songfile"
)

type parsedDate struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

type parseSuccess struct {
	Success  bool        `json:"success"`
	Title    string      `json:"title"`
	Date     *parsedDate `json:"date"`
	SingerID int64       `json:"singer_id"`
}

type parseFailure struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	Filename string `json:"filename"`
}

func newParseCommand() *cobra.Command {
	var singerID int64

	cmd := &cobra.Command{
		Use:         "parse <filename>",
		Short:       "Parse one filename and print the extracted metadata as JSON",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			parsed, err := songfile.NewParser().Parse(filename)
			if err != nil {
				// The failure payload is the result; nothing runs after it.
				return writeJSONLine(cmd, parseFailure{Error: err.Error(), Filename: filename})
			}

			payload := parseSuccess{Success: true, Title: parsed.Title, SingerID: singerID}
			if parsed.PerformanceDate != nil {
				payload.Date = &parsedDate{
					Day:   parsed.PerformanceDate.Day(),
					Month: int(parsed.PerformanceDate.Month()),
					Year:  parsed.PerformanceDate.Year(),
				}
			}
			return writeJSONLine(cmd, payload)
		},
	}

	cmd.Flags().Int64Var(&singerID, "singer-id", 1, "Singer identifier included in the output")
	return cmd
}

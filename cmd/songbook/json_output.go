package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// writeJSONLine encodes v as a single compact JSON line on the command's
// stdout. The parse driver's output is consumed by other programs, so no
// indentation.
func writeJSONLine(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	return enc.Encode(v)
}

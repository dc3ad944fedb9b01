package scan

import (
	"fmt"
	"path/filepath"
	"strings"

	"songbook/internal/songfile"
)

// CommandFormatter renders an upload command line per parsed file, suitable
// for piping into a shell.
type CommandFormatter struct {
	// LogEnv is an environment override prefixed to each line, e.g.
	// `SONGBOOK_LOG="debug"`.
	LogEnv string
	// Uploader is the upload binary to invoke.
	Uploader string
	// Database is passed through verbatim as the --db argument.
	Database string
	// SingerID distinguishes performer identity.
	SingerID int64
}

// Format builds the command line uploading the parsed file found in dir.
// The --sung-at flag is omitted when the parse carried no date.
func (f CommandFormatter) Format(dir string, parsed songfile.ParsedFilename) string {
	var b strings.Builder
	if f.LogEnv != "" {
		b.WriteString(f.LogEnv)
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "%s upload --title %q --singer-id %d --db %q",
		f.Uploader, parsed.Title, f.SingerID, f.Database)
	if parsed.PerformanceDate != nil {
		fmt.Fprintf(&b, " --sung-at %q", parsed.PerformanceDate.Format("02/01/2006"))
	}
	fmt.Fprintf(&b, " %q", filepath.Join(dir, parsed.SourceFilename))
	return b.String()
}

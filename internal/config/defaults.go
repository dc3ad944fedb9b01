package config

const (
	defaultLibraryDB      = "~/.local/share/songbook/library.db"
	defaultLogDir         = "~/.local/share/songbook/logs"
	defaultSingerID       = 1
	defaultUploader       = "songbook"
	defaultLogEnv         = `SONGBOOK_LOG="debug"`
	defaultMaxConcurrency = 4
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryDB: defaultLibraryDB,
			LogDir:    defaultLogDir,
		},
		Upload: Upload{
			SingerID:       defaultSingerID,
			Uploader:       defaultUploader,
			LogEnv:         defaultLogEnv,
			MaxConcurrency: defaultMaxConcurrency,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

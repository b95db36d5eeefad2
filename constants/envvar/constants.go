// Package envvar defines environment variable keys as constants
package envvar

// General constants
const (
	VerboseLogsEnabled = "VERBOSE_LOGS_ENABLED"
	LogLevel           = "TITLECASE_LOG_LEVEL"
)

// Line filter constants
const (
	// Workers is the number of lines title-cased concurrently
	Workers = "TITLECASE_WORKERS"

	// EnvFile overrides the dotenv file loaded at startup
	EnvFile = "TITLECASE_ENV_FILE"
)

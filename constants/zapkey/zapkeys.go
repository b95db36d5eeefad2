package zapkey

// General Keys
const (
	Count   = "count"
	Version = "version"
)

// Configuration Keys
const (
	EnvFile = "env_file"
	Level   = "level"
	Workers = "workers"
)

// Title Casing Keys
const (
	Input  = "input"
	Line   = "line"
	Output = "output"
	Pass   = "pass"
)

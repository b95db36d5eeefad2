package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"go.uber.org/zap/zapcore"

	"titlecase/constants/envvar"
)

// isolate points the env file at an empty temp dir and clears config variables
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(envvar.EnvFile, filepath.Join(dir, "missing.env"))
	t.Setenv(envvar.Workers, "")
	t.Setenv(envvar.LogLevel, "")
	t.Setenv(envvar.VerboseLogsEnabled, "")
	return dir
}

func TestNewConfig_Defaults(t *testing.T) {
	is := is.New(t)
	isolate(t)
	c, err := NewConfig()
	is.NoErr(err)
	is.Equal(c.Workers, 1)
	is.Equal(c.LogLevel, zapcore.WarnLevel)
}

func TestNewConfig_Env(t *testing.T) {
	is := is.New(t)
	isolate(t)
	t.Setenv(envvar.Workers, "4")
	t.Setenv(envvar.LogLevel, "info")
	c, err := NewConfig()
	is.NoErr(err)
	is.Equal(c.Workers, 4)
	is.Equal(c.LogLevel, zapcore.InfoLevel)
}

func TestNewConfig_Verbose(t *testing.T) {
	is := is.New(t)
	isolate(t)
	t.Setenv(envvar.LogLevel, "error")
	t.Setenv(envvar.VerboseLogsEnabled, "true")
	c, err := NewConfig()
	is.NoErr(err)
	is.Equal(c.LogLevel, zapcore.DebugLevel)
}

func TestNewConfig_Options(t *testing.T) {
	is := is.New(t)
	isolate(t)
	t.Setenv(envvar.Workers, "4")
	c, err := NewConfig(WithWorkers(2), WithLogLevel(zapcore.ErrorLevel))
	is.NoErr(err)
	is.Equal(c.Workers, 2)
	is.Equal(c.LogLevel, zapcore.ErrorLevel)
}

func TestNewConfig_Invalid(t *testing.T) {
	is := is.New(t)
	isolate(t)

	t.Setenv(envvar.Workers, "many")
	_, err := NewConfig()
	is.True(err != nil) // non-numeric workers

	t.Setenv(envvar.Workers, "0")
	_, err = NewConfig()
	is.True(err != nil) // zero workers

	t.Setenv(envvar.Workers, "")
	t.Setenv(envvar.LogLevel, "loud")
	_, err = NewConfig()
	is.True(err != nil) // unknown level

	t.Setenv(envvar.LogLevel, "")
	_, err = NewConfig(WithWorkers(-1))
	is.True(err != nil) // option fails validation
}

func TestNewConfig_EnvFile(t *testing.T) {
	is := is.New(t)
	dir := isolate(t)
	path := filepath.Join(dir, "titlecase.env")
	is.NoErr(os.WriteFile(path, []byte(envvar.Workers+"=3\n"), 0o600))
	t.Setenv(envvar.EnvFile, path)
	// godotenv.Load does not override variables that are already set,
	// so the variable must be absent rather than empty
	is.NoErr(os.Unsetenv(envvar.Workers))

	c, err := NewConfig()
	is.NoErr(err)
	is.Equal(c.Workers, 3)
}

// Package log provides a global logger for the project
package log

import (
	"context"
	"os"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"titlecase/constants/envvar"
	"titlecase/utils/ctxutil"
)

// Level is shared by every logger derived from Logger, so changing it
// after package loggers have been created still takes effect.
var Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)

// Logger is the global logger, used to derive package loggers
var Logger = initLogger()

func initLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = Level
	// stdout carries title-cased output
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	return logger
}

// Named returns a package logger derived from the global logger
func Named(name string) *zap.Logger {
	return Logger.Named(name)
}

// SetLevel changes the level of the global logger and every logger derived from it
func SetLevel(lvl zapcore.Level) {
	Level.SetLevel(lvl)
}

// VerboseLogsEnabled returns true if verbose logs are enabled
func VerboseLogsEnabled(ctx context.Context) bool {
	raw, ok := os.LookupEnv(envvar.VerboseLogsEnabled)
	if !ok || raw == "" {
		return false
	}
	verboseLogsEnabled, err := strconv.ParseBool(raw)
	if err != nil {
		fields := ctxutil.ZapFields(ctx)
		Logger.With(zap.Error(err)).Warn("Failed to parse verbose logs enabled", fields...)
	}
	return verboseLogsEnabled
}

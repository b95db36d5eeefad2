package log

import (
	"context"
	"testing"

	"github.com/matryer/is"
	"go.uber.org/zap/zapcore"

	"titlecase/constants/envvar"
)

func TestVerboseLogsEnabled(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	for _, tt := range []struct {
		value string
		want  bool
	}{
		{"", false},
		{"true", true},
		{"1", true},
		{"false", false},
		{"nope", false},
	} {
		t.Setenv(envvar.VerboseLogsEnabled, tt.value)
		is.Equal(VerboseLogsEnabled(ctx), tt.want) // VerboseLogsEnabled
	}
}

func TestSetLevel(t *testing.T) {
	is := is.New(t)
	t.Cleanup(func() { SetLevel(zapcore.WarnLevel) })

	child := Named("child")
	is.True(!child.Core().Enabled(zapcore.DebugLevel))
	SetLevel(zapcore.DebugLevel)
	is.True(child.Core().Enabled(zapcore.DebugLevel)) // derived loggers follow the global level
}

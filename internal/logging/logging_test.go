package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		debug bool
		want  zapcore.Level
	}{
		{false, zapcore.InfoLevel},
		{true, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		log, err := New(tt.debug)
		if err != nil {
			t.Fatalf("New(%v) error = %v", tt.debug, err)
		}
		if !log.Core().Enabled(tt.want) {
			t.Errorf("New(%v): level %s disabled", tt.debug, tt.want)
		}
		if tt.want == zapcore.InfoLevel && log.Core().Enabled(zapcore.DebugLevel) {
			t.Error("debug enabled without --debug")
		}
	}
}

package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"deskpet/config"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LogConfig
		want zapcore.Level
	}{
		{"debug development", config.LogConfig{Level: "debug", Development: true}, zapcore.DebugLevel},
		{"warn production", config.LogConfig{Level: "warn"}, zapcore.WarnLevel},
		{"invalid falls back to info", config.LogConfig{Level: "loud"}, zapcore.InfoLevel},
		{"empty falls back to info", config.LogConfig{}, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.cfg)
			if err != nil {
				t.Fatalf("New error: %v", err)
			}
			if !log.Core().Enabled(tt.want) {
				t.Errorf("Expected level %s enabled", tt.want)
			}
			if tt.want > zapcore.DebugLevel && log.Core().Enabled(tt.want-1) {
				t.Errorf("Expected level %s disabled", tt.want-1)
			}
		})
	}
}

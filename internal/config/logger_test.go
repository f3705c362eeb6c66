package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevel(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		want  log.Level
		warns bool
	}{
		{name: "empty", env: "", want: log.InfoLevel},
		{name: "debug", env: "debug", want: log.DebugLevel},
		{name: "upper case", env: "WARN", want: log.WarnLevel},
		{name: "unknown", env: "loud", want: log.InfoLevel, warns: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PONG_LOG_LEVEL", tt.env)

			var buf bytes.Buffer
			logger := NewLogger(&buf, "test")
			if got := logger.GetLevel(); got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
			if warned := strings.Contains(buf.String(), "unknown log level"); warned != tt.warns {
				t.Errorf("warned = %v, want %v (output %q)", warned, tt.warns, buf.String())
			}
		})
	}
}

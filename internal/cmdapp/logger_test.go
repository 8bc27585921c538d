package cmdapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		want   string
	}{
		{
			name:   "default",
			config: &Config{},
			want:   "info",
		},
		{
			name:   "verbose shortcut",
			config: &Config{Verbose: true},
			want:   "debug",
		},
		{
			name:   "quiet shortcut",
			config: &Config{Quiet: true},
			want:   "warn",
		},
		{
			name:   "quiet wins over verbose",
			config: &Config{Verbose: true, Quiet: true},
			want:   "warn",
		},
		{
			name:   "explicit level wins over verbose",
			config: &Config{Verbose: true, LogLevel: "error"},
			want:   "error",
		},
		{
			name:   "invalid explicit level falls back to info",
			config: &Config{LogLevel: "loud"},
			want:   "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, determineLogLevel(tt.config))
		})
	}
}

func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		assert.Equal(t, level, validateLogLevel(level))
	}
	assert.Equal(t, "info", validateLogLevel("nonsense"))
	assert.Equal(t, "info", validateLogLevel(""))
}

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/libpack/internal/core/domain"
)

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", domain.LogLevelDebug.String())
	assert.Equal(t, "INFO", domain.LogLevelInfo.String())
	assert.Equal(t, "WARN", domain.LogLevelWarn.String())
	assert.Equal(t, "ERROR", domain.LogLevelError.String())
	assert.Equal(t, "INFO", domain.LogLevel(99).String())
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.LogLevel
		ok       bool
	}{
		{"debug", domain.LogLevelDebug, true},
		{"INFO", domain.LogLevelInfo, true},
		{"", domain.LogLevelInfo, true},
		{"warning", domain.LogLevelWarn, true},
		{" error ", domain.LogLevelError, true},
		{"verbose", domain.LogLevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, ok := domain.ParseLogLevel(tt.input)
			assert.Equal(t, tt.expected, level)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

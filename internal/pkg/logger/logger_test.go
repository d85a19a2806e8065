package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"logistics/internal/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, logger.ParseLevel(in), "level %q", in)
	}
}

func TestNewWithWriter_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := logger.Component(logger.NewWithWriter(logger.Config{Env: "production", Level: "info"}, &buf), "statistics_job")

	l.Debug().Msg("hidden")
	l.Info().Str("company_id", "c-1").Msg("snapshot stored")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "statistics_job", entry["component"])
	assert.Equal(t, "c-1", entry["company_id"])
	assert.Equal(t, "snapshot stored", entry["message"])
	assert.Contains(t, entry, "time")
}

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func Test_New(t *testing.T) {
	log, err := New(Config{Env: "dev"})
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, log.GetLevel())

	log, err = New(Config{Level: "warn", Output: "stderr"})
	require.NoError(t, err)
	require.Equal(t, zerolog.WarnLevel, log.GetLevel())
}

func Test_New_Invalid(t *testing.T) {
	testCases := []Config{
		{Level: "loud"},
		{Format: "xml"},
		{Output: "file"},
		{Env: "qa"},
	}

	for _, cfg := range testCases {
		_, err := New(cfg)
		require.Error(t, err)
	}
}

func Test_setDefaults(t *testing.T) {
	cfg := Config{}
	cfg.setDefaults()
	require.Equal(t, Config{Level: "info", Format: "json", Output: "stdout", ServiceName: "listpager", Env: "prod"}, cfg)

	cfg = Config{Env: "dev", ServiceName: "api"}
	cfg.setDefaults()
	require.Equal(t, "debug", cfg.Level)
	require.Equal(t, "console", cfg.Format)
	require.Equal(t, "api", cfg.ServiceName)
}

func Test_build(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{Env: "staging", Fields: map[string]any{"region": "eu"}}
	cfg.setDefaults()

	log := build(cfg, &buf, zerolog.InfoLevel)
	log.Debug().Msg("dropped")
	log.Info().Int64("last_id", 42).Msg("page served")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "page served", entry["message"])
	require.Equal(t, "listpager", entry["service"])
	require.Equal(t, "staging", entry["env"])
	require.Equal(t, "eu", entry["region"])
	require.EqualValues(t, 42, entry["last_id"])
	require.Contains(t, entry, "time")
}

package shared_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staymerge/internal/shared"
)

func testFlags() *pflag.FlagSet {
	fl := pflag.NewFlagSet("staymerge", pflag.ContinueOnError)
	fl.String("env", "prod", "")
	fl.String("metrics-addr", "", "")
	fl.String("hotels", "hotels.json", "")
	fl.String("rooms", "room_names.csv", "")
	fl.String("input", "input.csv", "")
	fl.String("output", "output.csv", "")
	fl.Int("workers", 1, "")
	fl.Bool("strict-keys", false, "")
	fl.Bool("strict", false, "")
	return fl
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := shared.Load(testFlags())
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.AppEnv)
	assert.Equal(t, "hotels.json", cfg.Hotels)
	assert.Equal(t, "room_names.csv", cfg.Rooms)
	assert.Equal(t, "input.csv", cfg.Input)
	assert.Equal(t, "output.csv", cfg.Output)
	assert.Equal(t, 1, cfg.Workers)
	assert.False(t, cfg.StrictKeys)
	assert.False(t, cfg.Strict)
}

func TestLoadFlagOverrides(t *testing.T) {
	fl := testFlags()
	require.NoError(t, fl.Parse([]string{"--hotels", "/data/h.json", "--workers", "8", "--strict-keys"}))

	cfg, err := shared.Load(fl)
	require.NoError(t, err)
	assert.Equal(t, "/data/h.json", cfg.Hotels)
	assert.Equal(t, 8, cfg.Workers)
	assert.True(t, cfg.StrictKeys)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STAYMERGE_OUTPUT", "/tmp/out.csv")
	t.Setenv("STAYMERGE_STRICT", "true")

	cfg, err := shared.Load(testFlags())
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out.csv", cfg.Output)
	assert.True(t, cfg.Strict)
}

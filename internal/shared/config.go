package shared

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config carries everything a run needs. Values resolve in order: command
// line flags, then STAYMERGE_* environment variables (optionally from a
// .env file), then the flag defaults.
type Config struct {
	AppEnv      string
	MetricsAddr string
	Hotels      string
	Rooms       string
	Input       string
	Output      string
	Workers     int
	StrictKeys  bool
	Strict      bool
}

// Load resolves the configuration for the given flag set.
func Load(flags *pflag.FlagSet) (Config, error) {
	_ = godotenv.Load() // optional .env, missing file is fine

	v := viper.New()
	v.SetEnvPrefix("STAYMERGE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, err
	}

	return Config{
		AppEnv:      v.GetString("env"),
		MetricsAddr: v.GetString("metrics-addr"),
		Hotels:      v.GetString("hotels"),
		Rooms:       v.GetString("rooms"),
		Input:       v.GetString("input"),
		Output:      v.GetString("output"),
		Workers:     v.GetInt("workers"),
		StrictKeys:  v.GetBool("strict-keys"),
		Strict:      v.GetBool("strict"),
	}, nil
}

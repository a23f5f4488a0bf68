package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"staymerge/internal/adapters/catalog"
	"staymerge/internal/adapters/csvio"
	"staymerge/internal/adapters/observability"
	"staymerge/internal/app"
	"staymerge/internal/domain"
	"staymerge/internal/shared"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "staymerge",
		Short:         "Completes partial hotel booking rows against hotel and room catalogs",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := shared.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	fl := root.Flags()
	fl.String("env", "prod", "environment name; dev switches to console logging")
	fl.String("metrics-addr", "", "address to expose prometheus metrics on (empty disables)")
	fl.String("hotels", "hotels.json", "path to the hotel catalog (one JSON object per line)")
	fl.String("rooms", "room_names.csv", "path to the room catalog (pipe-delimited CSV)")
	fl.String("input", "input.csv", "path to the incomplete booking rows (pipe-delimited CSV)")
	fl.String("output", "output.csv", "path the resolved rows are written to (semicolon-delimited CSV)")
	fl.Int("workers", 1, "parallel resolution workers; 1 keeps the pass sequential")
	fl.Bool("strict-keys", false, "match catalog keys byte-exact instead of trimming whitespace")
	fl.Bool("strict", false, "exit non-zero when any record fails to resolve")
	return root
}

func run(cmd *cobra.Command, cfg shared.Config) error {
	log.Logger = observability.NewLogger(cfg.AppEnv)
	observability.Serve(cfg.MetricsAddr)

	log.Info().
		Str("hotels", cfg.Hotels).
		Str("rooms", cfg.Rooms).
		Str("input", cfg.Input).
		Str("output", cfg.Output).
		Int("workers", cfg.Workers).
		Bool("strict_keys", cfg.StrictKeys).
		Msg("staymerge starting")

	policy := domain.KeyPolicy{Strict: cfg.StrictKeys}
	p := app.NewPipeline(
		catalog.NewHotelLoader(policy),
		catalog.NewRoomLoader(policy),
		csvio.NewBookingReader(),
		csvio.NewResolvedWriter(),
		observability.Recorder{},
	)

	sum, err := p.Run(cmd.Context(), app.RunConfig{
		HotelsPath: cfg.Hotels,
		RoomsPath:  cfg.Rooms,
		InputPath:  cfg.Input,
		OutputPath: cfg.Output,
		Policy:     policy,
		Workers:    cfg.Workers,
		Strict:     cfg.Strict,
	})
	if err != nil {
		log.Error().Err(err).Msg("run failed")
		return err
	}

	log.Info().
		Str("output", cfg.Output).
		Int("resolved", sum.Resolved).
		Int("failed", len(sum.Failures)).
		Msg("data parsed and saved")
	return nil
}

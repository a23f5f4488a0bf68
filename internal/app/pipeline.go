package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"staymerge/internal/domain"
)

// Pipeline wires the catalog loaders, the input reader, the reconciler, and
// the output writer into a single pass over the input.
type Pipeline struct {
	hotels  domain.HotelLoader
	rooms   domain.RoomLoader
	in      domain.BookingReader
	out     domain.ResolvedWriter
	metrics domain.Metrics
}

func NewPipeline(hotels domain.HotelLoader, rooms domain.RoomLoader, in domain.BookingReader, out domain.ResolvedWriter, metrics domain.Metrics) *Pipeline {
	return &Pipeline{hotels: hotels, rooms: rooms, in: in, out: out, metrics: metrics}
}

// RunConfig carries the per-run parameters.
type RunConfig struct {
	HotelsPath string
	RoomsPath  string
	InputPath  string
	OutputPath string
	Policy     domain.KeyPolicy
	Workers    int

	// Strict fails the run when any record did not resolve. The full pass
	// still completes and the output file is still written first.
	Strict bool
}

// Summary reports what a completed pass did.
type Summary struct {
	Records  int
	Resolved int
	Failures []*domain.ResolutionFailure
}

// Run materializes both catalogs and the input, resolves every row, writes
// the resolved rows (unresolved rows are excluded from the output), and then
// reports each failure with its input row index. Load and write errors are
// fatal and wrap the offending path.
func (p *Pipeline) Run(ctx context.Context, cfg RunConfig) (Summary, error) {
	start := time.Now()
	hotels, err := p.hotels.Load(ctx, cfg.HotelsPath)
	if err != nil {
		return Summary{}, fmt.Errorf("load hotel catalog %s: %w", cfg.HotelsPath, err)
	}
	if p.metrics != nil {
		p.metrics.CatalogLoaded("hotels", hotels.Len(), time.Since(start))
	}

	start = time.Now()
	rooms, err := p.rooms.Load(ctx, cfg.RoomsPath)
	if err != nil {
		return Summary{}, fmt.Errorf("load room catalog %s: %w", cfg.RoomsPath, err)
	}
	if p.metrics != nil {
		p.metrics.CatalogLoaded("rooms", rooms.Len(), time.Since(start))
	}

	bookings, err := p.in.Read(ctx, cfg.InputPath)
	if err != nil {
		return Summary{}, fmt.Errorf("read input %s: %w", cfg.InputPath, err)
	}
	log.Info().
		Int("hotels", hotels.Len()).
		Int("rooms", rooms.Len()).
		Int("records", len(bookings)).
		Msg("catalogs and input loaded")

	rec := NewReconciler(hotels, rooms, cfg.Policy, cfg.Workers)
	outcomes, err := rec.Run(ctx, bookings)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{Records: len(outcomes)}
	resolved := make([]domain.ResolvedBooking, 0, len(outcomes))
	for _, oc := range outcomes {
		if oc.Failure != nil {
			sum.Failures = append(sum.Failures, oc.Failure)
			if p.metrics != nil {
				p.metrics.RecordOutcome("failed", oc.Failure.Reference)
			}
			continue
		}
		resolved = append(resolved, *oc.Resolved)
		if p.metrics != nil {
			p.metrics.RecordOutcome("resolved", "")
		}
	}
	sum.Resolved = len(resolved)

	if err := p.out.Write(ctx, cfg.OutputPath, resolved); err != nil {
		return Summary{}, fmt.Errorf("write output %s: %w", cfg.OutputPath, err)
	}

	// Failures are reported after the full pass so they can be correlated
	// with input line numbers.
	for _, f := range sum.Failures {
		log.Warn().
			Int("row", f.Index).
			Str("reference", string(f.Reference)).
			Str("raw", f.Raw).
			Str("reason", f.Reason).
			Msg("record not resolved")
	}
	log.Info().
		Int("records", sum.Records).
		Int("resolved", sum.Resolved).
		Int("failed", len(sum.Failures)).
		Msg("reconciliation completed")

	if cfg.Strict && len(sum.Failures) > 0 {
		return sum, fmt.Errorf("%d of %d records failed to resolve", len(sum.Failures), sum.Records)
	}
	return sum, nil
}

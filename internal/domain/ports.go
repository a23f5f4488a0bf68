package domain

import (
	"context"
	"time"
)

// HotelLoader materializes the hotel catalog from its source path, keyed by
// Hotel.ID. Any malformed entry or duplicate key fails the whole load.
type HotelLoader interface {
	Load(ctx context.Context, path string) (*Catalog[Hotel], error)
}

// RoomLoader materializes the room catalog, keyed by Room.Key().
type RoomLoader interface {
	Load(ctx context.Context, path string) (*Catalog[Room], error)
}

// BookingReader reads the incomplete input rows, fully materialized, in file
// order. A row that cannot be parsed fails the whole read.
type BookingReader interface {
	Read(ctx context.Context, path string) ([]Booking, error)
}

// ResolvedWriter writes the completed rows in the order given, creating the
// destination if absent and overwriting it if present.
type ResolvedWriter interface {
	Write(ctx context.Context, path string, rows []ResolvedBooking) error
}

// Metrics receives pipeline observations. Implementations must be safe for
// concurrent use. A nil Metrics disables observation.
type Metrics interface {
	CatalogLoaded(catalog string, entries int, dur time.Duration)
	RecordOutcome(outcome string, reference Reference)
}

package app

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"staymerge/internal/domain"
)

// Outcome is the engine's per-row result. Exactly one of Resolved or Failure
// is set; Index is the row's position in the input sequence.
type Outcome struct {
	Index    int
	Resolved *domain.ResolvedBooking
	Failure  *domain.ResolutionFailure
}

// Reconciler resolves bookings against the hotel and room catalogs. Both
// catalogs are read-only for the Reconciler's whole lifetime.
type Reconciler struct {
	hotels  *domain.Catalog[domain.Hotel]
	rooms   *domain.Catalog[domain.Room]
	policy  domain.KeyPolicy
	workers int
}

func NewReconciler(hotels *domain.Catalog[domain.Hotel], rooms *domain.Catalog[domain.Room], policy domain.KeyPolicy, workers int) *Reconciler {
	if workers < 1 {
		workers = 1
	}
	return &Reconciler{hotels: hotels, rooms: rooms, policy: policy, workers: workers}
}

// Resolve matches one booking. It is a pure function of the booking and the
// two catalogs; idx only tags a returned failure so it can be traced back to
// its input row. The room is looked up first, by the (hotel, room, source)
// composite key, then the hotel by its code. Either miss fails the whole
// record: there is no partially-resolved output.
func (r *Reconciler) Resolve(idx int, b domain.Booking) (domain.ResolvedBooking, *domain.ResolutionFailure) {
	hotelRef := r.policy.Normalize(b.HotelCode)
	roomRef := r.policy.Normalize(b.RoomCode)
	source := r.policy.Normalize(b.Source)

	if hotelRef == "" {
		return domain.ResolvedBooking{}, &domain.ResolutionFailure{
			Index: idx, Reference: domain.RefHotel, Raw: b.HotelCode, Reason: domain.ReasonEmpty,
		}
	}
	if roomRef == "" {
		return domain.ResolvedBooking{}, &domain.ResolutionFailure{
			Index: idx, Reference: domain.RefRoom, Raw: b.RoomCode, Reason: domain.ReasonEmpty,
		}
	}

	roomKey := domain.RoomKey(hotelRef, roomRef, source)
	room, ok := r.rooms.Find(roomKey)
	if !ok {
		return domain.ResolvedBooking{}, &domain.ResolutionFailure{
			Index: idx, Reference: domain.RefRoom, Raw: roomKey, Reason: domain.ReasonNotFound,
		}
	}
	hotel, ok := r.hotels.Find(hotelRef)
	if !ok {
		return domain.ResolvedBooking{}, &domain.ResolutionFailure{
			Index: idx, Reference: domain.RefHotel, Raw: b.HotelCode, Reason: domain.ReasonNotFound,
		}
	}
	return merge(b, hotel, room), nil
}

// Run resolves every booking and returns exactly one outcome per input row,
// in input order. With workers > 1 rows are resolved concurrently; each
// outcome lands in its own index slot, so the result order never depends on
// scheduling, and the catalogs are only ever read.
func (r *Reconciler) Run(ctx context.Context, bookings []domain.Booking) ([]Outcome, error) {
	out := make([]Outcome, len(bookings))
	if r.workers == 1 {
		for i, b := range bookings {
			out[i] = r.outcome(i, b)
		}
		return out, nil
	}

	sem := semaphore.NewWeighted(int64(r.workers))
	var wg sync.WaitGroup
	for i, b := range bookings {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return nil, err
		}
		wg.Add(1)
		go func(i int, b domain.Booking) {
			defer wg.Done()
			defer sem.Release(1)
			out[i] = r.outcome(i, b)
		}(i, b)
	}
	wg.Wait()
	return out, nil
}

func (r *Reconciler) outcome(i int, b domain.Booking) Outcome {
	res, fail := r.Resolve(i, b)
	if fail != nil {
		return Outcome{Index: i, Failure: fail}
	}
	return Outcome{Index: i, Resolved: &res}
}

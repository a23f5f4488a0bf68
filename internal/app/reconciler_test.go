package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staymerge/internal/app"
	"staymerge/internal/domain"
)

func testCatalogs(t *testing.T) (*domain.Catalog[domain.Hotel], *domain.Catalog[domain.Room]) {
	t.Helper()
	hotels := domain.NewCatalog[domain.Hotel]()
	require.NoError(t, hotels.Add("BER00003", domain.Hotel{
		ID: "BER00003", CityCode: "BER", Name: "Grand Palace", Category: 4.5, CountryCode: "DE", City: "Berlin",
	}))
	require.NoError(t, hotels.Add("BER00002", domain.Hotel{
		ID: "BER00002", CityCode: "BER", Name: "Crowne Plaza", Category: 4, CountryCode: "DE", City: "Berlin",
	}))

	rooms := domain.NewCatalog[domain.Room]()
	require.NoError(t, rooms.Add("BER00003-EZ-IOL", domain.Room{
		HotelCode: "BER00003", Source: "IOL", RoomName: "Deluxe Double", RoomCode: "EZ",
	}))
	require.NoError(t, rooms.Add("BER00002-A05-DOTW", domain.Room{
		HotelCode: "BER00002", Source: "DOTW", RoomName: "Standard Twin", RoomCode: "A05",
	}))
	return hotels, rooms
}

func booking() domain.Booking {
	return domain.Booking{
		CityCode:  "BER",
		HotelCode: "BER00003",
		RoomType:  "double",
		RoomCode:  "EZ",
		Meal:      "breakfast",
		CheckIn:   time.Date(2019, 7, 30, 0, 0, 0, 0, time.UTC),
		Adults:    2,
		Children:  1,
		Price:     150,
		Source:    "IOL",
	}
}

func TestResolveMergesMatchedFields(t *testing.T) {
	hotels, rooms := testCatalogs(t)
	rec := app.NewReconciler(hotels, rooms, domain.KeyPolicy{}, 1)

	res, fail := rec.Resolve(0, booking())
	require.Nil(t, fail)

	assert.Equal(t, "double breakfast", res.RoomTypeMeal)
	assert.Equal(t, "EZ", res.RoomCode)
	assert.Equal(t, "IOL", res.Source)
	assert.Equal(t, "Grand Palace", res.HotelName)
	assert.Equal(t, "Berlin", res.CityName)
	assert.Equal(t, "BER", res.CityCode)
	assert.Equal(t, 4.5, res.HotelCategory)
	assert.Equal(t, 3, res.Pax)
	assert.Equal(t, 2, res.Adults)
	assert.Equal(t, 1, res.Children)
	assert.Equal(t, "Deluxe Double", res.RoomName)
	assert.Equal(t, time.Date(2019, 7, 30, 0, 0, 0, 0, time.UTC), res.CheckIn)
	assert.Equal(t, time.Date(2019, 7, 31, 0, 0, 0, 0, time.UTC), res.CheckOut)
	assert.Equal(t, 50.0, res.Price)
}

func TestResolveUnknownHotel(t *testing.T) {
	hotels, rooms := testCatalogs(t)
	// room exists for the unknown hotel so the failure is attributed to the hotel lookup
	require.NoError(t, rooms.Add("XXX00001-EZ-IOL", domain.Room{
		HotelCode: "XXX00001", Source: "IOL", RoomName: "Economy", RoomCode: "EZ",
	}))
	rec := app.NewReconciler(hotels, rooms, domain.KeyPolicy{}, 1)

	b := booking()
	b.HotelCode = "XXX00001"
	_, fail := rec.Resolve(7, b)
	require.NotNil(t, fail)
	assert.Equal(t, domain.RefHotel, fail.Reference)
	assert.Equal(t, "XXX00001", fail.Raw)
	assert.Equal(t, domain.ReasonNotFound, fail.Reason)
	assert.Equal(t, 7, fail.Index)
}

func TestResolveUnknownRoom(t *testing.T) {
	hotels, rooms := testCatalogs(t)
	rec := app.NewReconciler(hotels, rooms, domain.KeyPolicy{}, 1)

	b := booking()
	b.RoomCode = "ZZ"
	_, fail := rec.Resolve(0, b)
	require.NotNil(t, fail)
	assert.Equal(t, domain.RefRoom, fail.Reference)
	assert.Equal(t, "BER00003-ZZ-IOL", fail.Raw)
	assert.Equal(t, domain.ReasonNotFound, fail.Reason)
}

func TestResolveEmptyReferences(t *testing.T) {
	hotels, rooms := testCatalogs(t)
	rec := app.NewReconciler(hotels, rooms, domain.KeyPolicy{}, 1)

	b := booking()
	b.HotelCode = "   "
	_, fail := rec.Resolve(0, b)
	require.NotNil(t, fail)
	assert.Equal(t, domain.RefHotel, fail.Reference)
	assert.Equal(t, domain.ReasonEmpty, fail.Reason)

	b = booking()
	b.RoomCode = ""
	_, fail = rec.Resolve(0, b)
	require.NotNil(t, fail)
	assert.Equal(t, domain.RefRoom, fail.Reference)
	assert.Equal(t, domain.ReasonEmpty, fail.Reason)
}

func TestResolveTrimsReferencesByDefault(t *testing.T) {
	hotels, rooms := testCatalogs(t)
	rec := app.NewReconciler(hotels, rooms, domain.KeyPolicy{}, 1)

	b := booking()
	b.HotelCode = "BER00003 " // trailing whitespace, catalog key has none
	res, fail := rec.Resolve(0, b)
	require.Nil(t, fail)
	assert.Equal(t, "Grand Palace", res.HotelName)
}

func TestResolveStrictKeysRejectsWhitespace(t *testing.T) {
	hotels, rooms := testCatalogs(t)
	rec := app.NewReconciler(hotels, rooms, domain.KeyPolicy{Strict: true}, 1)

	b := booking()
	b.HotelCode = "BER00003 "
	_, fail := rec.Resolve(0, b)
	require.NotNil(t, fail)
	assert.Equal(t, domain.RefRoom, fail.Reference) // composite room key misses first
}

func TestResolveZeroPaxKeepsRawPrice(t *testing.T) {
	hotels, rooms := testCatalogs(t)
	rec := app.NewReconciler(hotels, rooms, domain.KeyPolicy{}, 1)

	b := booking()
	b.Adults, b.Children = 0, 0
	res, fail := rec.Resolve(0, b)
	require.Nil(t, fail)
	assert.Equal(t, 0, res.Pax)
	assert.Equal(t, 150.0, res.Price)
}

func TestRunTotalityAndOrder(t *testing.T) {
	hotels, rooms := testCatalogs(t)

	bookings := make([]domain.Booking, 0, 60)
	for i := 0; i < 60; i++ {
		b := booking()
		if i%3 == 1 {
			b.HotelCode = "NOPE" // room key misses
		}
		b.Adults = 1 + i%4
		bookings = append(bookings, b)
	}

	for _, workers := range []int{1, 8} {
		rec := app.NewReconciler(hotels, rooms, domain.KeyPolicy{}, workers)
		outcomes, err := rec.Run(context.Background(), bookings)
		require.NoError(t, err)
		require.Len(t, outcomes, len(bookings))

		for i, oc := range outcomes {
			assert.Equal(t, i, oc.Index)
			if i%3 == 1 {
				require.NotNil(t, oc.Failure, "row %d", i)
				assert.Nil(t, oc.Resolved)
				assert.Equal(t, i, oc.Failure.Index)
			} else {
				require.NotNil(t, oc.Resolved, "row %d", i)
				assert.Nil(t, oc.Failure)
				assert.Equal(t, 1+i%4+1, oc.Resolved.Pax)
			}
		}
	}
}

func TestRunIsDeterministic(t *testing.T) {
	hotels, rooms := testCatalogs(t)
	rec := app.NewReconciler(hotels, rooms, domain.KeyPolicy{}, 4)

	bookings := []domain.Booking{booking(), booking(), booking()}
	bookings[1].RoomCode = "ZZ"

	first, err := rec.Run(context.Background(), bookings)
	require.NoError(t, err)
	second, err := rec.Run(context.Background(), bookings)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunLeavesCatalogsUntouched(t *testing.T) {
	hotels, rooms := testCatalogs(t)
	rec := app.NewReconciler(hotels, rooms, domain.KeyPolicy{}, 2)

	_, err := rec.Run(context.Background(), []domain.Booking{booking(), booking()})
	require.NoError(t, err)

	assert.Equal(t, 2, hotels.Len())
	assert.Equal(t, 2, rooms.Len())
	h, ok := hotels.Find("BER00003")
	require.True(t, ok)
	assert.Equal(t, "Grand Palace", h.Name)
	r, ok := rooms.Find("BER00002-A05-DOTW")
	require.True(t, ok)
	assert.Equal(t, "Standard Twin", r.RoomName)
}

func TestRunEmptyInput(t *testing.T) {
	hotels, rooms := testCatalogs(t)
	rec := app.NewReconciler(hotels, rooms, domain.KeyPolicy{}, 1)

	outcomes, err := rec.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, outcomes)
}

package domain

import "time"

// Booking is one raw input row: free-text hotel and room references plus
// passthrough fields. Consumed exactly once by the reconciler.
type Booking struct {
	CityCode  string
	HotelCode string
	RoomType  string
	RoomCode  string
	Meal      string
	CheckIn   time.Time
	Adults    int
	Children  int
	Price     float64
	Source    string
}

// ResolvedBooking is a Booking merged with its matched hotel and room
// catalog entries plus the derived fields (pax, per-person price, checkout).
type ResolvedBooking struct {
	RoomTypeMeal  string
	RoomCode      string
	Source        string
	HotelName     string
	CityName      string
	CityCode      string
	HotelCategory float64
	Pax           int
	Adults        int
	Children      int
	RoomName      string
	CheckIn       time.Time
	CheckOut      time.Time
	Price         float64
}

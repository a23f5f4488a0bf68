package domain

import "fmt"

// Room is one entry of the room catalog. The same room code can be sold by
// several suppliers under different names, so identity is the
// (hotel, room, source) triple rather than the room code alone.
type Room struct {
	HotelCode string
	Source    string
	RoomName  string
	RoomCode  string
}

// RoomKey builds the catalog key for a room from the properties that are also
// present in booking rows, so bookings and catalog entries key the same way.
func RoomKey(hotelCode, roomCode, source string) string {
	return fmt.Sprintf("%s-%s-%s", hotelCode, roomCode, source)
}

// Key is the room's identity key in the room catalog.
func (r Room) Key() string {
	return RoomKey(r.HotelCode, r.RoomCode, r.Source)
}

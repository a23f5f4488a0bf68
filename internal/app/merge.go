package app

import "staymerge/internal/domain"

// merge combines a booking with its matched hotel and room into the output
// shape. Derived fields: pax is adults+children, price becomes per-person,
// checkout is the morning after checkin (input rows carry single-night
// stays). When pax is zero the raw price is kept rather than dividing by it.
func merge(b domain.Booking, h domain.Hotel, r domain.Room) domain.ResolvedBooking {
	pax := b.Adults + b.Children
	price := b.Price
	if pax > 0 {
		price = b.Price / float64(pax)
	}
	return domain.ResolvedBooking{
		RoomTypeMeal:  b.RoomType + " " + b.Meal,
		RoomCode:      r.RoomCode,
		Source:        b.Source,
		HotelName:     h.Name,
		CityName:      h.City,
		CityCode:      b.CityCode,
		HotelCategory: h.Category,
		Pax:           pax,
		Adults:        b.Adults,
		Children:      b.Children,
		RoomName:      r.RoomName,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckIn.AddDate(0, 0, 1),
		Price:         price,
	}
}

package csvio

import (
	"context"
	"encoding/csv"
	"os"

	"github.com/gocarina/gocsv"

	"staymerge/internal/domain"
)

func init() {
	// a header that doesn't cover every tagged field is a malformed source,
	// not a zero value
	gocsv.FailIfUnmatchedStructTags = true
}

// bookingRow is the wire shape of one input.csv row.
type bookingRow struct {
	CityCode  string `csv:"city_code"`
	HotelCode string `csv:"hotel_code"`
	RoomType  string `csv:"room_type"`
	RoomCode  string `csv:"room_code"`
	Meal      string `csv:"meal"`
	CheckIn   Date   `csv:"checkin"`
	Adults    int    `csv:"adults"`
	Children  int    `csv:"children"`
	Price     Money  `csv:"price"`
	Source    string `csv:"source"`
}

// BookingReader reads the pipe-delimited input rows. The first row is the
// header. The whole file is materialized up front; a row that cannot be
// parsed fails the read.
type BookingReader struct{}

func NewBookingReader() *BookingReader { return &BookingReader{} }

func (*BookingReader) Read(_ context.Context, path string) ([]domain.Booking, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '|'
	var rows []bookingRow
	if err := gocsv.UnmarshalCSV(r, &rows); err != nil {
		return nil, err
	}

	out := make([]domain.Booking, len(rows))
	for i, row := range rows {
		out[i] = domain.Booking{
			CityCode:  row.CityCode,
			HotelCode: row.HotelCode,
			RoomType:  row.RoomType,
			RoomCode:  row.RoomCode,
			Meal:      row.Meal,
			CheckIn:   row.CheckIn.Time,
			Adults:    row.Adults,
			Children:  row.Children,
			Price:     float64(row.Price),
			Source:    row.Source,
		}
	}
	return out, nil
}

package csvio

import (
	"context"
	"encoding/csv"
	"os"

	"github.com/gocarina/gocsv"

	"staymerge/internal/domain"
)

// resolvedRow is the wire shape of one output.csv row. The first column name
// deliberately carries a space: it merges the input's room_type and meal.
type resolvedRow struct {
	RoomTypeMeal  string  `csv:"room_type meal"`
	RoomCode      string  `csv:"room_code"`
	Source        string  `csv:"source"`
	HotelName     string  `csv:"hotel_name"`
	CityName      string  `csv:"city_name"`
	CityCode      string  `csv:"city_code"`
	HotelCategory float64 `csv:"hotel_category"`
	Pax           int     `csv:"pax"`
	Adults        int     `csv:"adults"`
	Children      int     `csv:"children"`
	RoomName      string  `csv:"room_name"`
	CheckIn       Date    `csv:"checkin"`
	CheckOut      Date    `csv:"checkout"`
	Price         Money   `csv:"price"`
}

// ResolvedWriter writes the semicolon-delimited output file, created if
// absent and truncated if present. An empty row set still writes the header.
type ResolvedWriter struct{}

func NewResolvedWriter() *ResolvedWriter { return &ResolvedWriter{} }

func (*ResolvedWriter) Write(_ context.Context, path string, rows []domain.ResolvedBooking) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	out := make([]resolvedRow, len(rows))
	for i, r := range rows {
		out[i] = resolvedRow{
			RoomTypeMeal:  r.RoomTypeMeal,
			RoomCode:      r.RoomCode,
			Source:        r.Source,
			HotelName:     r.HotelName,
			CityName:      r.CityName,
			CityCode:      r.CityCode,
			HotelCategory: r.HotelCategory,
			Pax:           r.Pax,
			Adults:        r.Adults,
			Children:      r.Children,
			RoomName:      r.RoomName,
			CheckIn:       Date{r.CheckIn},
			CheckOut:      Date{r.CheckOut},
			Price:         Money(r.Price),
		}
	}

	w := csv.NewWriter(f)
	w.Comma = ';'
	if err := gocsv.MarshalCSV(&out, gocsv.NewSafeCSVWriter(w)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

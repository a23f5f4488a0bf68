package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"staymerge/internal/domain"
)

func init() {
	// a header that doesn't cover every tagged field is a malformed source,
	// not a zero value
	gocsv.FailIfUnmatchedStructTags = true
}

// roomRow is the wire shape of one room_names.csv row.
type roomRow struct {
	HotelCode string `csv:"hotel_code"`
	Source    string `csv:"source"`
	RoomName  string `csv:"room_name"`
	RoomCode  string `csv:"room_code"`
}

// RoomLoader reads the pipe-delimited room catalog. The first row is the
// header. Entries are keyed by the (hotel, room, source) composite; a
// duplicate composite fails the whole load.
type RoomLoader struct {
	policy domain.KeyPolicy
}

func NewRoomLoader(policy domain.KeyPolicy) *RoomLoader {
	return &RoomLoader{policy: policy}
}

func (l *RoomLoader) Load(_ context.Context, path string) (*domain.Catalog[domain.Room], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '|'
	var rows []roomRow
	if err := gocsv.UnmarshalCSV(r, &rows); err != nil {
		return nil, err
	}

	cat := domain.NewCatalog[domain.Room]()
	for i, row := range rows {
		rm := domain.Room{
			HotelCode: l.policy.Normalize(row.HotelCode),
			Source:    l.policy.Normalize(row.Source),
			RoomName:  row.RoomName,
			RoomCode:  l.policy.Normalize(row.RoomCode),
		}
		if err := cat.Add(rm.Key(), rm); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return cat, nil
}

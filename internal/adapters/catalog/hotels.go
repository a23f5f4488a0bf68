package catalog

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"staymerge/internal/domain"
)

// hotelRow is the wire shape of one hotels.json line.
type hotelRow struct {
	ID          string  `json:"id"`
	CityCode    string  `json:"city_code"`
	Name        string  `json:"name"`
	Category    float64 `json:"category"`
	CountryCode string  `json:"country_code"`
	City        string  `json:"city"`
}

// HotelLoader reads the hotel catalog. The source is not one JSON document
// but one JSON object per line; an unparsable line or a duplicate id fails
// the whole load.
type HotelLoader struct {
	policy domain.KeyPolicy
}

func NewHotelLoader(policy domain.KeyPolicy) *HotelLoader {
	return &HotelLoader{policy: policy}
}

func (l *HotelLoader) Load(_ context.Context, path string) (*domain.Catalog[domain.Hotel], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cat := domain.NewCatalog[domain.Hotel]()
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		var row hotelRow
		if err := json.Unmarshal([]byte(raw), &row); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		h := domain.Hotel{
			ID:          row.ID,
			CityCode:    row.CityCode,
			Name:        row.Name,
			Category:    row.Category,
			CountryCode: row.CountryCode,
			City:        row.City,
		}
		if err := cat.Add(l.policy.Normalize(row.ID), h); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cat, nil
}

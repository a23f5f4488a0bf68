package csvio

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	dateInputLayout  = "20060102"   // compact layout used by input rows
	dateOutputLayout = "2006-01-02" // dashed layout written to the output
)

// Date is a calendar day that parses the compact input layout and writes the
// dashed output layout.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalCSV(s string) error {
	t, err := time.Parse(dateInputLayout, strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("date %q: expected layout %s", s, dateInputLayout)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalCSV() (string, error) {
	return d.Format(dateOutputLayout), nil
}

// Money always serializes with two decimal places, 8.50 instead of 8.5.
type Money float64

func (m *Money) UnmarshalCSV(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("price %q: %w", s, err)
	}
	*m = Money(f)
	return nil
}

func (m Money) MarshalCSV() (string, error) {
	return strconv.FormatFloat(float64(m), 'f', 2, 64), nil
}

package domain

import "fmt"

// Reference names which lookup a failure is about.
type Reference string

const (
	RefHotel Reference = "hotel"
	RefRoom  Reference = "room"
)

// Failure reasons.
const (
	ReasonNotFound = "not found"
	ReasonEmpty    = "empty reference"
)

// ResolutionFailure is the per-record diagnostic for a booking whose hotel or
// room reference matched no catalog entry. Index is the zero-based position
// of the row in the input, so callers can point back at the source line.
type ResolutionFailure struct {
	Index     int
	Reference Reference
	Raw       string
	Reason    string
}

func (f *ResolutionFailure) Error() string {
	return fmt.Sprintf("row %d: %s reference %q: %s", f.Index, f.Reference, f.Raw, f.Reason)
}

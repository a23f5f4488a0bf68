package domain

// Hotel is one entry of the hotel catalog. ID is the identity key; the
// remaining fields are attributes carried into the output untouched.
type Hotel struct {
	ID          string
	CityCode    string
	Name        string
	Category    float64
	CountryCode string
	City        string
}

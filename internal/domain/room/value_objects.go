package room

import (
	"slices"
	"strings"
)

type Amenities []string

// NewAmenities trims every entry and drops blanks. The result must keep at
// least one entry.
func NewAmenities(values []string) (Amenities, error) {
	out := make(Amenities, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, ErrNoAmenities
	}
	return out, nil
}

func (a Amenities) Values() []string {
	return slices.Clone(a)
}

func (a Amenities) String() string {
	return strings.Join(a, ", ")
}

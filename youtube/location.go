package youtube

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
)

// Location is a geographic point used with LocationRadius to restrict a search
type Location struct {
	Longitude float64
	Latitude  float64
}

// NewLocation creates a location from a longitude/latitude pair
func NewLocation(longitude, latitude float64) Location {
	return Location{
		Longitude: longitude,
		Latitude:  latitude,
	}
}

// String returns the wire form "<longitude>,<latitude>"
func (l Location) String() string {
	return formatCoordinate(l.Longitude) + "," + formatCoordinate(l.Latitude)
}

// EncodeValues writes the location as a single comma separated value.
// Non-finite coordinates have no wire representation.
func (l Location) EncodeValues(key string, v *url.Values) error {
	for _, c := range []float64{l.Longitude, l.Latitude} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("cannot encode %s: non-finite coordinate %v", key, c)
		}
	}
	v.Set(key, l.String())
	return nil
}

func formatCoordinate(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}

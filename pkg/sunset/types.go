package sunset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// Place is a lat/long coordinate on the Earth matched with its time zone.
type Place struct {
	Lat, Long float64
	Location  *time.Location
}

// Day is the estimated sunrise and sunset of one calendar day.
type Day struct {
	Sunrise time.Time
	Sunset  time.Time
}

// SolarNoon approximates solar noon as the midpoint of the day.
func (d Day) SolarNoon() time.Time {
	return d.Sunrise.Add(d.Length() / 2)
}

func (d Day) Length() time.Duration {
	return d.Sunset.Sub(d.Sunrise)
}

func (d Day) String() string {
	return fmt.Sprintf("%s Sunrise, %s Sunset",
		d.Sunrise.Format(time.RFC822),
		d.Sunset.Format(time.Kitchen))
}

// ParsePlace reads a "lat,lng" pair and attaches the named zone. An empty
// zone means UTC.
func ParsePlace(latlng, zone string) (Place, error) {
	parts := strings.Split(latlng, ",")
	if len(parts) != 2 {
		return Place{}, fmt.Errorf("location %q is not \"lat,lng\"", latlng)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Place{}, fmt.Errorf("latitude %q: %w", parts[0], err)
	}
	long, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Place{}, fmt.Errorf("longitude %q: %w", parts[1], err)
	}
	if math.IsNaN(lat) || math.IsNaN(long) {
		return Place{}, fmt.Errorf("coordinates must be numbers, got %f,%f", lat, long)
	}
	if lat < -90 || lat > 90 {
		return Place{}, fmt.Errorf("latitude must be between -90 and 90, got %f", lat)
	}
	if long < -180 || long > 180 {
		return Place{}, fmt.Errorf("longitude must be between -180 and 180, got %f", long)
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Place{}, fmt.Errorf("time zone %q: %w", zone, err)
	}
	return Place{Lat: lat, Long: long, Location: loc}, nil
}

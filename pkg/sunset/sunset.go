// Package sunset estimates sunrise and sunset from coordinates alone. It
// serves the coordinate calculator and does not stand in for the API.
package sunset

import (
	"time"

	"github.com/spencer-p/suntimes/pkg/timetricks"

	"github.com/keep94/sunrise"
)

// GetDays returns numDays consecutive days of sunrise and sunset in place,
// starting with the calendar day of start in the place's zone.
func GetDays(start time.Time, numDays int, place Place) []Day {
	start = start.In(place.Location)

	var s sunrise.Sunrise
	s.Around(place.Lat, place.Long, start)

	// The sunrise package may pick the day before or after start.
	for i := 0; i < 3 && !timetricks.SameDay(start, s.Sunrise().In(place.Location)); i++ {
		if s.Sunrise().Before(start) {
			s.AddDays(1)
		} else {
			s.AddDays(-1)
		}
	}

	ret := make([]Day, numDays)
	for i := range ret {
		ret[i] = Day{
			Sunrise: s.Sunrise().In(place.Location),
			Sunset:  s.Sunset().In(place.Location),
		}
		s.AddDays(1)
	}
	return ret
}

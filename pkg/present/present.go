// Package present turns API results into display-ready strings.
package present

import (
	"fmt"
	"time"

	// Zone names come from the API, so do not depend on the host's zoneinfo.
	_ "time/tzdata"

	"github.com/spencer-p/suntimes/pkg/pipeline"
	"github.com/spencer-p/suntimes/pkg/sunapi"
)

const (
	dateFmt = "Monday, January 2, 2006"
	timeFmt = "3:04 PM"
)

// Fields are the display strings derived from one day of results.
type Fields struct {
	Sunrise   string `json:"sunrise"`
	Sunset    string `json:"sunset"`
	Dawn      string `json:"dawn"`
	Dusk      string `json:"dusk"`
	DayLength string `json:"day_length"`
	SolarNoon string `json:"solar_noon"`
	Timezone  string `json:"timezone"`
}

// Day is a date label with the day's fields.
type Day struct {
	Date string `json:"date"`
	Fields
}

// Report is everything shown for one location.
type Report struct {
	Location string `json:"location"`
	Today    Day    `json:"today"`
	Tomorrow Day    `json:"tomorrow"`
}

// FormatDate renders the calendar date of t in UTC, whatever the location's
// own zone is.
func FormatDate(t time.Time) string {
	return t.UTC().Format(dateFmt)
}

// FormatTime renders the clock time of t in the named zone. Unknown zones
// render in UTC.
func FormatTime(t time.Time, tz string) string {
	return t.In(Location(tz)).Format(timeFmt)
}

// Location loads the named zone, or UTC if it is unknown. "Local" names the
// host's zone, not the record's, so it counts as unknown.
func Location(tz string) *time.Location {
	if tz == "Local" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DayLength renders a duration in seconds as hours and minutes, truncating
// both.
func DayLength(seconds int64) string {
	return fmt.Sprintf("%dh %dm", seconds/3600, seconds%3600/60)
}

// Summarize derives the display fields for one day.
func Summarize(r sunapi.Results) Fields {
	format := func(t sunapi.Time) string {
		return FormatTime(t.T(), r.Timezone)
	}
	return Fields{
		Sunrise:   format(r.Sunrise),
		Sunset:    format(r.Sunset),
		Dawn:      format(r.CivilTwilightBegin),
		Dusk:      format(r.CivilTwilightEnd),
		DayLength: DayLength(r.DayLength),
		SolarNoon: format(r.SolarNoon),
		Timezone:  r.Timezone,
	}
}

// NewDay labels a day's fields with the date of its sunrise.
func NewDay(r sunapi.Results) Day {
	return Day{
		Date:   FormatDate(r.Sunrise.T()),
		Fields: Summarize(r),
	}
}

func NewReport(location string, days pipeline.Days) Report {
	return Report{
		Location: location,
		Today:    NewDay(days.Today),
		Tomorrow: NewDay(days.Tomorrow),
	}
}

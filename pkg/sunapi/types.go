package sunapi

import (
	"encoding/json"
	"fmt"
	"time"
)

// Results holds one day of astronomical data for a location.
type Results struct {
	Sunrise   Time `json:"sunrise"`
	Sunset    Time `json:"sunset"`
	SolarNoon Time `json:"solar_noon"`
	// Seconds between sunrise and sunset
	DayLength int64 `json:"day_length"`

	CivilTwilightBegin        Time `json:"civil_twilight_begin"`
	CivilTwilightEnd          Time `json:"civil_twilight_end"`
	NauticalTwilightBegin     Time `json:"nautical_twilight_begin"`
	NauticalTwilightEnd       Time `json:"nautical_twilight_end"`
	AstronomicalTwilightBegin Time `json:"astronomical_twilight_begin"`
	AstronomicalTwilightEnd   Time `json:"astronomical_twilight_end"`

	// IANA zone name detected for the location, e.g. "Europe/Berlin"
	Timezone string `json:"timezone"`
}

// Response is the data type returned by the API.
type Response struct {
	Results *Results `json:"results"`
	Status  string   `json:"status"`
	TZID    string   `json:"tzid,omitempty"`
}

// Query selects the location and day to fetch; see Client.Get.
type Query struct {
	Location string
	Date     Date
}

// Date is a day relative to the current date at the queried location.
type Date string

const (
	Today    Date = "today"
	Tomorrow Date = "tomorrow"
)

// Verify the custom types can be (un)marshaled
var _ json.Unmarshaler = new(Time)
var _ json.Marshaler = Time{}

// Time is an absolute instant as returned with formatted=0.
type Time time.Time

// T casts away the API type.
func (t Time) T() time.Time {
	return time.Time(t)
}

// Equal reports whether t and u are the same instant.
func (t Time) Equal(u Time) bool {
	return time.Time(t).Equal(time.Time(u))
}

func (t Time) String() string {
	return time.Time(t).Format(time.RFC3339)
}

func (t *Time) UnmarshalJSON(buf []byte) error {
	var s string
	if err := json.Unmarshal(buf, &s); err != nil {
		return fmt.Errorf("time %q not string: %w", buf, err)
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("time %q not in fmt %q: %w", s, time.RFC3339, err)
	}
	*t = Time(parsed)
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Format(time.RFC3339))
}

// StatusError reports a response with a non-success HTTP status.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %s", e.Status)
}

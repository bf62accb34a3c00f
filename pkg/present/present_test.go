package present

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/spencer-p/suntimes/pkg/pipeline"
	"github.com/spencer-p/suntimes/pkg/sunapi"
)

func instant(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ExampleDayLength() {
	for _, s := range []int64{3661, 86399, 0, 59548} {
		fmt.Println(DayLength(s))
	}
	// Output:
	// 1h 1m
	// 23h 59m
	// 0h 0m
	// 16h 32m
}

func TestFormatDateIgnoresZone(t *testing.T) {
	r := sunapi.Results{
		Sunrise:  sunapi.Time(instant("2024-01-01T00:30:00Z")),
		Timezone: "Pacific/Honolulu",
	}
	want := "Monday, January 1, 2024"

	if got := FormatDate(r.Sunrise.T()); got != want {
		t.Errorf("got %q, wanted %q", got, want)
	}
	if got := NewDay(r).Date; got != want {
		t.Errorf("day label is %q, wanted %q", got, want)
	}

	// The same instant expressed with an offset is the same date.
	honolulu := instant("2023-12-31T14:30:00-10:00")
	if got := FormatDate(honolulu); got != want {
		t.Errorf("got %q for offset instant, wanted %q", got, want)
	}
}

func TestFormatTime(t *testing.T) {
	noon := instant("2024-06-01T12:00:00Z")
	table := []struct {
		t    time.Time
		tz   string
		want string
	}{
		{noon, "UTC", "12:00 PM"},
		{noon, "America/Los_Angeles", "5:00 AM"},
		{noon, "Europe/Berlin", "2:00 PM"},
		{noon, "Asia/Kolkata", "5:30 PM"},
		{instant("2024-06-01T00:05:00Z"), "UTC", "12:05 AM"},
		{noon, "Not/A_Zone", "12:00 PM"},
		{noon, "", "12:00 PM"},
		{noon, "Local", "12:00 PM"},
	}

	for _, test := range table {
		t.Run(test.tz, func(t *testing.T) {
			if got := FormatTime(test.t, test.tz); got != test.want {
				t.Errorf("got %q, wanted %q", got, test.want)
			}
		})
	}
}

func berlin() pipeline.Days {
	return pipeline.Days{
		Today: sunapi.Results{
			Sunrise:            sunapi.Time(instant("2024-06-01T02:47:12Z")),
			Sunset:             sunapi.Time(instant("2024-06-01T19:19:40Z")),
			SolarNoon:          sunapi.Time(instant("2024-06-01T11:03:26Z")),
			DayLength:          59548,
			CivilTwilightBegin: sunapi.Time(instant("2024-06-01T02:03:05Z")),
			CivilTwilightEnd:   sunapi.Time(instant("2024-06-01T20:03:47Z")),
			Timezone:           "Europe/Berlin",
		},
		Tomorrow: sunapi.Results{
			Sunrise:            sunapi.Time(instant("2024-06-02T02:46:20Z")),
			Sunset:             sunapi.Time(instant("2024-06-02T19:20:51Z")),
			SolarNoon:          sunapi.Time(instant("2024-06-02T11:03:35Z")),
			DayLength:          59671,
			CivilTwilightBegin: sunapi.Time(instant("2024-06-02T02:02:01Z")),
			CivilTwilightEnd:   sunapi.Time(instant("2024-06-02T20:05:10Z")),
			Timezone:           "Europe/Berlin",
		},
	}
}

func TestNewReport(t *testing.T) {
	want := Report{
		Location: "Berlin",
		Today: Day{
			Date: "Saturday, June 1, 2024",
			Fields: Fields{
				Sunrise:   "4:47 AM",
				Sunset:    "9:19 PM",
				Dawn:      "4:03 AM",
				Dusk:      "10:03 PM",
				DayLength: "16h 32m",
				SolarNoon: "1:03 PM",
				Timezone:  "Europe/Berlin",
			},
		},
		Tomorrow: Day{
			Date: "Sunday, June 2, 2024",
			Fields: Fields{
				Sunrise:   "4:46 AM",
				Sunset:    "9:20 PM",
				Dawn:      "4:02 AM",
				Dusk:      "10:05 PM",
				DayLength: "16h 34m",
				SolarNoon: "1:03 PM",
				Timezone:  "Europe/Berlin",
			},
		},
	}

	got := NewReport("Berlin", berlin())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrong report (-want,+got):\n%s", diff)
	}
}

package sunapi

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const berlinToday = `{"results":{"sunrise":"2024-06-01T02:47:12+00:00","sunset":"2024-06-01T19:19:40+00:00","solar_noon":"2024-06-01T11:03:26+00:00","day_length":59548,"civil_twilight_begin":"2024-06-01T02:03:05+00:00","civil_twilight_end":"2024-06-01T20:03:47+00:00","nautical_twilight_begin":"2024-06-01T00:54:13+00:00","nautical_twilight_end":"2024-06-01T21:12:39+00:00","astronomical_twilight_begin":"1970-01-01T00:00:01+00:00","astronomical_twilight_end":"1970-01-01T00:00:01+00:00","timezone":"Europe/Berlin"},"status":"OK","tzid":"Europe/Berlin"}`

func utc(s string) Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return Time(t)
}

func TestParseResponse(t *testing.T) {
	table := []struct {
		input string
		want  Response
	}{{
		input: berlinToday,
		want: Response{
			Results: &Results{
				Sunrise:                   utc("2024-06-01T02:47:12Z"),
				Sunset:                    utc("2024-06-01T19:19:40Z"),
				SolarNoon:                 utc("2024-06-01T11:03:26Z"),
				DayLength:                 59548,
				CivilTwilightBegin:        utc("2024-06-01T02:03:05Z"),
				CivilTwilightEnd:          utc("2024-06-01T20:03:47Z"),
				NauticalTwilightBegin:     utc("2024-06-01T00:54:13Z"),
				NauticalTwilightEnd:       utc("2024-06-01T21:12:39Z"),
				AstronomicalTwilightBegin: utc("1970-01-01T00:00:01Z"),
				AstronomicalTwilightEnd:   utc("1970-01-01T00:00:01Z"),
				Timezone:                  "Europe/Berlin",
			},
			Status: "OK",
			TZID:   "Europe/Berlin",
		},
	}, {
		input: `{"results":"","status":"INVALID_REQUEST"}`,
	}, {
		input: `{"status":"INVALID_REQUEST"}`,
		want:  Response{Status: "INVALID_REQUEST"},
	}}

	for i, test := range table {
		t.Run(test.want.Status, func(t *testing.T) {
			var got Response
			err := json.NewDecoder(bytes.NewBufferString(test.input)).Decode(&got)
			if i == 1 {
				if err == nil {
					t.Errorf("wanted error decoding %q", test.input)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %+v", err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("incorrect parse (-want,+got): %s", diff)
			}
		})
	}
}

func TestTimeRejectsFormatted(t *testing.T) {
	var got Time
	if err := json.Unmarshal([]byte(`"5:47:12 AM"`), &got); err == nil {
		t.Errorf("parsed formatted time as %s", got)
	}
	if err := json.Unmarshal([]byte(`12`), &got); err == nil {
		t.Errorf("parsed number as %s", got)
	}
}

package handlers

import (
	"net/http"

	"github.com/spencer-p/suntimes/pkg/present"
	"github.com/spencer-p/suntimes/pkg/sunset"
)

// estimateDay is a computed day. Twilight is not estimated.
type estimateDay struct {
	Date      string `json:"date"`
	Sunrise   string `json:"sunrise"`
	Sunset    string `json:"sunset"`
	SolarNoon string `json:"solar_noon"`
	DayLength string `json:"day_length"`
	Timezone  string `json:"timezone"`
}

type estimateReport struct {
	Location string      `json:"location"`
	Today    estimateDay `json:"today"`
	Tomorrow estimateDay `json:"tomorrow"`
}

// makeEstimateHandler computes sun times for "lat,lng" coordinates without
// calling the API. The zone comes from the tz parameter and defaults to UTC.
func (s *Server) makeEstimateHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		location := r.FormValue("location")
		place, err := sunset.ParsePlace(location, r.FormValue("tz"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{err.Error()})
			return
		}

		days := sunset.GetDays(s.now(), 2, place)
		zone := place.Location.String()
		writeJSON(w, http.StatusOK, estimateReport{
			Location: location,
			Today:    toEstimateDay(days[0], zone),
			Tomorrow: toEstimateDay(days[1], zone),
		})
	})
}

func toEstimateDay(d sunset.Day, zone string) estimateDay {
	return estimateDay{
		Date:      present.FormatDate(d.Sunrise),
		Sunrise:   present.FormatTime(d.Sunrise, zone),
		Sunset:    present.FormatTime(d.Sunset, zone),
		SolarNoon: present.FormatTime(d.SolarNoon(), zone),
		DayLength: present.DayLength(int64(d.Length().Seconds())),
		Timezone:  zone,
	}
}

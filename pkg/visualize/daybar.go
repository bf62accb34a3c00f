package visualize

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/spencer-p/suntimes/pkg/present"
	"github.com/spencer-p/suntimes/pkg/sunapi"
	"github.com/spencer-p/suntimes/pkg/timetricks"
)

const (
	width  = 1200
	height = 60
)

// DayBar draws one day as a strip from local midnight to midnight, with
// daylight drawn over civil twilight over night.
type DayBar struct {
	results sunapi.Results
	date    time.Time
}

func NewDayBar(r sunapi.Results) *DayBar {
	loc := present.Location(r.Timezone)
	return &DayBar{
		results: r,
		date:    timetricks.Midnight(r.SolarNoon.T().In(loc)),
	}
}

func (img *DayBar) Encode(w io.Writer) (int, error) {
	var n int
	var err error
	io := func(nextn int, nexterr error) {
		n += nextn
		if nexterr != nil {
			err = nexterr
		}
	}

	r := img.results
	io(fmt.Fprintf(w, `<svg viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`, width, height))

	// Night is the background; twilight and daylight are drawn over it.
	io(fmt.Fprintf(w, `<rect class="night" fill="midnightblue" x="0" y="0" width="%d" height="%d"/>`,
		width, height))

	dawnx := img.timeToX(r.CivilTwilightBegin.T())
	duskx := img.timeToX(r.CivilTwilightEnd.T())
	io(fmt.Fprintf(w, `<rect class="twilight" fill="slateblue" x="%d" y="0" width="%d" height="%d"/>`,
		dawnx, duskx-dawnx, height))

	risex := img.timeToX(r.Sunrise.T())
	setx := img.timeToX(r.Sunset.T())
	io(fmt.Fprintf(w, `<rect class="daytime" fill="lightyellow" x="%d" y="0" width="%d" height="%d"/>`,
		risex, setx-risex, height))

	noonx := img.timeToX(r.SolarNoon.T())
	io(fmt.Fprintf(w, `<line class="solar-noon" stroke="orange" stroke-width="4" x1="%d" y1="0" x2="%d" y2="%d"/>`,
		noonx, noonx, height))

	// Insert date of this graph as unix.
	io(fmt.Fprintf(w, `<text class="unixtime" visibility="hidden">%d</text>`, img.date.Unix()))

	io(fmt.Fprintf(w, `</svg>`))

	return n, err
}

// HTML renders the bar for inclusion in a page.
func (img *DayBar) HTML() template.HTML {
	var b bytes.Buffer
	img.Encode(&b)
	return template.HTML(b.String())
}

// timeToX maps t onto the strip, clamping events outside the day (such as
// the placeholder instants sent for polar day and night) to the edges.
func (img *DayBar) timeToX(t time.Time) int {
	span := timetricks.DayLength(img.date)
	x := int(t.Sub(img.date).Seconds() * width / span.Seconds())
	if x < 0 {
		return 0
	}
	if x > width {
		return width
	}
	return x
}

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/spencer-p/suntimes/pkg/pipeline"
	"github.com/spencer-p/suntimes/pkg/present"
	"github.com/spencer-p/suntimes/pkg/sunapi"
)

type Config struct {
	APIURL string `envconfig:"SUNTIMES_API_URL" default:"https://api.sunrise-sunset.org/json"`
	APIKey string `envconfig:"SUNTIMES_API_KEY"`
}

func main() {
	var env Config
	if err := envconfig.Process("", &env); err != nil {
		log.Fatal(err.Error())
	}
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <location>\n", os.Args[0])
		os.Exit(2)
	}
	location := strings.Join(os.Args[1:], " ")

	p := pipeline.New(sunapi.New(env.APIURL, env.APIKey))
	days, err := p.Fetch(context.Background(), location)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error fetching data")
		os.Exit(1)
	}
	printReport(os.Stdout, present.NewReport(location, days))
}

func printReport(w io.Writer, r present.Report) {
	for _, d := range []present.Day{r.Today, r.Tomorrow} {
		fmt.Fprintf(w, "%s\n", d.Date)
		fmt.Fprintf(w, "  Sunrise    %s (dawn %s)\n", d.Sunrise, d.Dawn)
		fmt.Fprintf(w, "  Sunset     %s (dusk %s)\n", d.Sunset, d.Dusk)
		fmt.Fprintf(w, "  Day length %s\n", d.DayLength)
		fmt.Fprintf(w, "  Solar noon %s\n", d.SolarNoon)
		fmt.Fprintf(w, "  Time zone  %s\n", d.Timezone)
	}
}

// Package pipeline fetches today's and tomorrow's sun times for a location.
//
// Fetch never returns the cause of a failure. Causes are logged here and the
// caller only sees ErrFetch.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/spencer-p/suntimes/pkg/metrics"
	"github.com/spencer-p/suntimes/pkg/sunapi"
)

// ErrFetch is the only error Fetch returns.
var ErrFetch = errors.New("error fetching data")

// Getter fetches one day of results; *sunapi.Client implements it.
type Getter interface {
	Get(ctx context.Context, q sunapi.Query) (*sunapi.Results, error)
}

// Days pairs the results for today and tomorrow.
type Days struct {
	Today    sunapi.Results `json:"today"`
	Tomorrow sunapi.Results `json:"tomorrow"`
}

type Pipeline struct {
	api Getter
}

func New(api Getter) *Pipeline {
	return &Pipeline{api: api}
}

// fetched is the outcome of one of the two requests.
type fetched struct {
	results *sunapi.Results
	err     error
}

// Fetch requests both days concurrently and waits for both. Either both
// succeed and their results are returned unmodified, or the error is
// ErrFetch. No timeout is applied beyond ctx and the transport's own.
func (p *Pipeline) Fetch(ctx context.Context, location string) (Days, error) {
	var today, tomorrow fetched

	var wg sync.WaitGroup
	wg.Add(2)
	go p.fetch(ctx, &wg, sunapi.Query{Location: location, Date: sunapi.Today}, &today)
	go p.fetch(ctx, &wg, sunapi.Query{Location: location, Date: sunapi.Tomorrow}, &tomorrow)
	wg.Wait()

	if today.err != nil || tomorrow.err != nil {
		for _, f := range []fetched{today, tomorrow} {
			if f.err != nil {
				log.Printf("Error fetching sun times for %q: %v", location, f.err)
			}
		}
		metrics.ObserveQuery(false)
		return Days{}, ErrFetch
	}

	metrics.ObserveQuery(true)
	return Days{
		Today:    *today.results,
		Tomorrow: *tomorrow.results,
	}, nil
}

func (p *Pipeline) fetch(ctx context.Context, wg *sync.WaitGroup, q sunapi.Query, out *fetched) {
	defer wg.Done()
	start := time.Now()

	// A panicking Getter must not take the caller down with it.
	defer func() {
		if r := recover(); r != nil {
			out.results, out.err = nil, fmt.Errorf("%s: panic: %v", q.Date, r)
		}
		metrics.ObserveUpstream(string(q.Date), out.err == nil, time.Since(start))
	}()

	results, err := p.api.Get(ctx, q)
	if err == nil && results == nil {
		err = sunapi.ErrNoResults
	}
	if err != nil {
		out.err = fmt.Errorf("%s: %w", q.Date, err)
		return
	}
	out.results = results
}

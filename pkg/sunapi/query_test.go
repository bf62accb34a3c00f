package sunapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestQueryURL(t *testing.T) {
	table := []struct {
		client Client
		query  Query
		want   string
	}{{
		client: Client{URL: DefaultURL, APIKey: "k3y"},
		query:  Query{Location: "Berlin", Date: Today},
		want:   "https://api.sunrise-sunset.org/json?apiKey=k3y&date=today&formatted=0&location=Berlin&timezone=auto",
	}, {
		client: Client{URL: DefaultURL},
		query:  Query{Location: "Santa Cruz, CA", Date: Tomorrow},
		want:   "https://api.sunrise-sunset.org/json?date=tomorrow&formatted=0&location=Santa+Cruz%2C+CA&timezone=auto",
	}, {
		client: Client{URL: DefaultURL},
		query:  Query{Location: "36.97,-122.03&date=2020-01-01", Date: Today},
		want:   "https://api.sunrise-sunset.org/json?date=today&formatted=0&location=36.97%2C-122.03%26date%3D2020-01-01&timezone=auto",
	}, {
		client: Client{URL: "http://localhost:9000/json?extra=1"},
		query:  Query{Location: "", Date: Today},
		want:   "http://localhost:9000/json?date=today&extra=1&formatted=0&location=&timezone=auto",
	}}

	for _, test := range table {
		t.Run(test.want, func(t *testing.T) {
			got, err := test.client.url(test.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != test.want {
				t.Errorf("got  %q", got)
				t.Errorf("want %q", test.want)
			}
		})
	}
}

func TestGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("location") {
		case "Berlin":
			fmt.Fprint(w, berlinToday)
		case "nowhere":
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"results":"","status":"INVALID_REQUEST"}`)
		case "empty":
			fmt.Fprint(w, `{"status":"OK"}`)
		default:
			fmt.Fprint(w, `<html>`)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	c.HTTP = srv.Client()
	ctx := context.Background()

	got, err := c.Get(ctx, Query{Location: "Berlin", Date: Today})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Timezone != "Europe/Berlin" || got.DayLength != 59548 {
		t.Errorf("got %+v", got)
	}

	_, err = c.Get(ctx, Query{Location: "nowhere", Date: Today})
	var serr *StatusError
	if !errors.As(err, &serr) || serr.StatusCode != http.StatusBadRequest {
		t.Errorf("got err %v, wanted status 400", err)
	}

	if _, err := c.Get(ctx, Query{Location: "empty", Date: Today}); !errors.Is(err, ErrNoResults) {
		t.Errorf("got err %v, wanted %v", err, ErrNoResults)
	}

	if _, err := c.Get(ctx, Query{Location: "garbage", Date: Today}); err == nil {
		t.Errorf("decoded garbage body")
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"

	"github.com/spencer-p/suntimes/pkg/pipeline"
	"github.com/spencer-p/suntimes/pkg/present"
)

const (
	// ErrorMessage is all a user is told when a lookup fails.
	ErrorMessage = "Error fetching data"

	supersededMessage = "superseded by a newer query"
	indexTemplate     = "static/index.template.html"
)

// Fetcher runs the lookup for a location; *pipeline.Pipeline implements it.
type Fetcher interface {
	Fetch(ctx context.Context, location string) (pipeline.Days, error)
}

// Recorder keeps a log of lookups. It may be nil.
type Recorder interface {
	Record(ctx context.Context, location string, ok bool, latency time.Duration) error
}

type Options struct {
	Fetcher   Fetcher
	Sequencer *pipeline.Sequencer
	Store     sessions.Store
	Recorder  Recorder
	// Content holds static/ and the page templates.
	Content fs.FS
	Prefix  string
}

type Server struct {
	fetcher  Fetcher
	seq      *pipeline.Sequencer
	store    sessions.Store
	recorder Recorder
	index    *template.Template
	now      func() time.Time
}

func NewServer(opts Options) *Server {
	seq := opts.Sequencer
	if seq == nil {
		seq = pipeline.NewSequencer(time.Hour)
	}
	return &Server{
		fetcher:  opts.Fetcher,
		seq:      seq,
		store:    opts.Store,
		recorder: opts.Recorder,
		index:    template.Must(template.ParseFS(opts.Content, indexTemplate)),
		now:      time.Now,
	}
}

func Register(r *mux.Router, opts Options) *Server {
	s := NewServer(opts)

	r.Handle("/", s.makeIndexHandler()).Methods(http.MethodGet)
	r.Handle("/api/v1/suntimes", s.makeSunTimesHandler()).Methods(http.MethodGet)
	r.Handle("/api/v1/estimate", s.makeEstimateHandler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "text/plain")
		w.Write([]byte("ok\n"))
	})
	r.PathPrefix("/static/").Handler(http.StripPrefix(opts.Prefix, http.FileServer(http.FS(opts.Content))))
	return s
}

// makeIndexHandler serves the search page. With a location parameter, even
// an empty one, it also runs the lookup and shows the result or a banner.
func (s *Server) makeIndexHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shell := &htmlShell{w: w, tmpl: s.index}

		locations, asked := r.URL.Query()["location"]
		if !asked {
			session, _ := s.session(r)
			if err := session.Save(r, w); err != nil {
				log.Println("save session err", err)
			}
			shell.input.Location = lastLocation(session)
			shell.render(http.StatusOK)
			return
		}

		shell.input.Location = locations[0]
		s.lookup(w, r, shell, locations[0])
	})
}

// makeSunTimesHandler is the JSON equivalent of the index.
func (s *Server) makeSunTimesHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lookup(w, r, jsonShell{w: w}, r.URL.Query().Get("location"))
	})
}

// lookup runs the pipeline for one query and hands the outcome to shell.
// Results of a query overtaken by a newer one from the same client are
// discarded.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request, shell Shell, location string) {
	session, client := s.session(r)
	session.Values[sessionLocation] = location
	if err := session.Save(r, w); err != nil {
		log.Println("save session err", err)
	}

	token := s.seq.Begin(client)
	start := time.Now()
	days, err := s.fetcher.Fetch(r.Context(), location)
	s.record(r.Context(), location, err == nil, time.Since(start))

	if !s.seq.Latest(token) {
		shell.Discard()
		return
	}
	if err != nil {
		shell.ShowError(ErrorMessage)
		return
	}
	shell.ShowResult(days, present.NewReport(location, days))
}

func (s *Server) record(ctx context.Context, location string, ok bool, latency time.Duration) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(ctx, location, ok, latency); err != nil {
		log.Printf("Failed to record query: %v", err)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode JSON result: %+v", err)
	}
}

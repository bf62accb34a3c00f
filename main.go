package main

import (
	"embed"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spencer-p/suntimes/pkg/data"
	"github.com/spencer-p/suntimes/pkg/handlers"
	"github.com/spencer-p/suntimes/pkg/metrics"
	"github.com/spencer-p/suntimes/pkg/pipeline"
	"github.com/spencer-p/suntimes/pkg/sunapi"
)

//go:embed static
var content embed.FS

type Config struct {
	Port   string `default:"8080"`
	Prefix string `default:"/"`

	APIURL string `envconfig:"SUNTIMES_API_URL" default:"https://api.sunrise-sunset.org/json"`
	APIKey string `envconfig:"SUNTIMES_API_KEY"`

	SessionKey    string `envconfig:"SESSION_KEY" default:"deadbeef"`
	EncryptionKey string `envconfig:"ENCRYPTION_KEY" default:"deadbeef"`
	SecureCookies bool   `envconfig:"SECURE_COOKIES" default:"true"`

	// How long to remember a client's latest query.
	SequenceTTL time.Duration `envconfig:"SEQUENCE_TTL" default:"1h"`

	Postgres data.Postgres `ignored:"true"`
}

func main() {
	var env Config
	if err := envconfig.Process("", &env); err != nil {
		log.Fatal(err.Error())
	}
	if err := envconfig.Process("", &env.Postgres); err != nil {
		log.Fatal(err.Error())
	}

	opts := handlers.Options{
		Fetcher:   pipeline.New(sunapi.New(env.APIURL, env.APIKey)),
		Sequencer: pipeline.NewSequencer(env.SequenceTTL),
		Store:     handlers.NewCookieStore(env.SessionKey, env.EncryptionKey, env.SecureCookies),
		Content:   content,
		Prefix:    env.Prefix,
	}
	if env.Postgres.Enabled() {
		queryLog, err := data.Open(env.Postgres)
		if err != nil {
			log.Fatal(err.Error())
		}
		opts.Recorder = queryLog
		log.Printf("Recording queries to %s", env.Postgres.Host)
	}

	r := mux.NewRouter().StrictSlash(true)
	r.Use(metrics.LatencyHandler)
	r.Handle("/metrics", promhttp.Handler())
	s := r.PathPrefix(env.Prefix).Subrouter()
	handlers.Register(s, opts)

	srv := &http.Server{
		Handler:      r,
		Addr:         "0.0.0.0:" + env.Port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
	log.Printf("Listening and serving on %s/%s", srv.Addr, env.Prefix[1:])
	log.Fatal(srv.ListenAndServe())
}

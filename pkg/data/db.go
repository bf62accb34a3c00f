package data

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Query is one location lookup. Only the outcome is kept, never the sun
// times themselves.
type Query struct {
	gorm.Model
	Location string
	OK       bool
	Latency  time.Duration
}

// Postgres holds connection settings, read from the standard PG* variables.
type Postgres struct {
	Host     string `envconfig:"PGHOST"`
	Port     string `envconfig:"PGPORT" default:"5432"`
	User     string `envconfig:"PGUSER" default:"postgres"`
	Password string `envconfig:"PGPASSWORD"`
	Database string `envconfig:"PGDATABASE" default:"suntimes"`
}

// Enabled reports whether a database was configured.
func (p Postgres) Enabled() bool {
	return p.Host != ""
}

// DSN renders the settings as quoted keyword/value pairs. Empty settings are
// left out.
func (p Postgres) DSN() string {
	pairs := []string{}
	for _, kv := range [][2]string{
		{"host", p.Host},
		{"user", p.User},
		{"password", p.Password},
		{"dbname", p.Database},
		{"port", p.Port},
	} {
		if kv[1] != "" {
			pairs = append(pairs, kv[0]+"="+quote(kv[1]))
		}
	}
	pairs = append(pairs, "sslmode=disable", "TimeZone=UTC")
	return strings.Join(pairs, " ")
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// quote wraps a value in single quotes, escaping backslashes and quotes.
func quote(v string) string {
	return "'" + dsnEscaper.Replace(v) + "'"
}

// QueryLog appends lookups to the queries table.
type QueryLog struct {
	db *gorm.DB
}

// Open connects to Postgres and migrates the queries table.
func Open(p Postgres) (*QueryLog, error) {
	db, err := gorm.Open(postgres.Open(p.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&Query{}); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}
	return &QueryLog{db: db}, nil
}

func (l *QueryLog) Record(ctx context.Context, location string, ok bool, latency time.Duration) error {
	q := Query{
		Location: location,
		OK:       ok,
		Latency:  latency,
	}
	if tx := l.db.WithContext(ctx).Create(&q); tx.Error != nil {
		return fmt.Errorf("failed to record query for %q: %w", location, tx.Error)
	}
	return nil
}

// Package sunapi implements queries to the sunrise-sunset.org API. A query
// names a free-text location and a relative day ("today" or "tomorrow"). A
// successful query returns the day's results record (see Results). Instants
// are absolute; the time zone is only a display hint.
package sunapi

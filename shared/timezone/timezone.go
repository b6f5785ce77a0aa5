// Package timezone holds the application location used for event timestamps.
// It is configured via APP_TIMEZONE and defaults to UTC until Init is called.
package timezone

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

var appLocation atomic.Pointer[time.Location]

// Init loads the named IANA location, falling back to UTC when the name is
// empty or unknown.
func Init(name string) *time.Location {
	if name == "" {
		name = "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC")

		loc = time.UTC
	}

	appLocation.Store(loc)
	log.Debug().Str("location", loc.String()).Msg("Application timezone initialized")

	return loc
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(Location())
}

func Location() *time.Location {
	if loc := appLocation.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

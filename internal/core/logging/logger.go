package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component derives a logger tagged with the subsystem name under the
// "cmp" key. Every subsystem (engine, loader, matcher, events) logs
// through one of these so log lines are filterable by component.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// Package logging configures the global zerolog logger for CLI diagnostics.
package logging

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var once sync.Once

// Setup initialises the global logger exactly once. Diagnostics go to stderr
// as console output; verbose enables debug level, otherwise only warnings
// and errors surface.
func Setup(verbose bool) {
	once.Do(func() {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		if env := os.Getenv("LINTRIG_LOG_LEVEL"); env != "" {
			if parsed, err := zerolog.ParseLevel(env); err == nil {
				level = parsed
			}
		}
		zerolog.SetGlobalLevel(level)

		writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
		log.Logger = zerolog.New(writer).With().Timestamp().Logger()
	})
}

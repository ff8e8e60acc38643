package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger. Level comes from LOG_LEVEL and output
// format from LOG_FORMAT ("pretty" for console output, anything else is
// JSON). Reading the environment directly keeps the logger usable before
// configuration has loaded.
func New() zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if os.Getenv("LOG_FORMAT") == "pretty" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stdout)
	}

	return logger.Level(level).
		With().
		Timestamp().
		Str("service", "markdown-blog-api").
		Logger()
}

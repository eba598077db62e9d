package observability

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger wires a console-formatted zerolog.Logger tagged with the
// station's team number and installs it as the package-level default.
// An unparseable level falls back to info, rather than failing startup
// over a log-level typo.
func InitLogger(teamNumber uint16, level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).Level(parsed).With().Timestamp().Uint16("team", teamNumber).Logger()
	log.Logger = logger
	return logger
}

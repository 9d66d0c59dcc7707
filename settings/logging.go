package settings

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogging points the global logger at the writer, at the configured level
func (s *Settings) SetupLogging(writer io.Writer) {
	level, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	output := zerolog.ConsoleWriter{Out: writer, TimeFormat: time.Kitchen}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}

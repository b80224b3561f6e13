package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New crée le logger structuré du batch avec la configuration par défaut
func New() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

// NewWithWriter crée un logger écrivant sur un writer donné (tests)
func NewWithWriter(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

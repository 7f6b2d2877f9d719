package logger

import (
	"io"
	"log/slog"
	"os"
)

type Config struct {
	Env       string // dev, prod or test
	Level     string // explicit level override, empty means env default
	AddSource bool
	Output    io.Writer // defaults to stdout

	// SourcePathLength limits source paths to the last N segments
	// when AddSource is enabled. Zero keeps full paths.
	SourcePathLength int
}

// Logger is a wrapper around slog.Logger with additional methods
type Logger struct {
	*slog.Logger
}

func New(config Config) (*Logger, error) {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	handler, err := createHandler(config)
	if err != nil {
		return nil, err
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return &Logger{Logger: logger}, nil
}

package logger

import (
	"fmt"
	"io"
)

// Must panics if logger creation fails
// Useful for package-level initialization where errors are unrecoverable
func Must(logger *Logger, err error) *Logger {
	if err != nil {
		panic(fmt.Sprintf("failed to create logger: %v", err))
	}
	return logger
}

// Discard returns a logger that drops everything. Handy in tests that
// exercise components which require a logger.
func Discard() *Logger {
	return Must(New(Config{Env: "test", Output: io.Discard}))
}

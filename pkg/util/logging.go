package util

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is silent until RedirectLogger is called, so tracing never lands on
// the line being animated.
var Logger zerolog.Logger

func init() {
	Logger = zerolog.Nop()
}

// RedirectLogger sends debug tracing to w.
func RedirectLogger(w io.Writer) {
	Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		With().
		Timestamp().
		Logger().
		Level(zerolog.TraceLevel)
}

// LogToFile opens (truncating) the named file and redirects the logger to it.
// The returned closer should be closed once logging is no longer needed.
func LogToFile(name string) (io.Closer, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}

	RedirectLogger(f)

	return f, nil
}

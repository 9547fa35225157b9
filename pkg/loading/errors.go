package loading

import (
	"errors"
	"fmt"

	"github.com/elseano/loading/pkg/term"
)

var (
	ErrEmptyFrames     = errors.New("frame set is empty")
	ErrInvalidInterval = errors.New("interval must be positive")
	ErrInvalidOption   = errors.New("unknown option value")
	ErrNotTerminal     = term.ErrNotTerminal

	// ErrRendererFault is returned by Close when the render goroutine died
	// before End asked it to stop.
	ErrRendererFault = errors.New("renderer stopped unexpectedly")
)

// ConfigurationError is returned when a Loading cannot be constructed. No
// render goroutine exists when it is returned.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid loading configuration: %s: %s", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func configError(field string, err error) error {
	return &ConfigurationError{Field: field, Err: err}
}

package term

import (
	"io"

	"github.com/mattn/go-isatty"
	"golang.org/x/crypto/ssh/terminal"
)

type fileDescriptor interface {
	Fd() uintptr
}

// IsTerminal reports whether w writes to an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fileDescriptor)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ConsoleWidth returns the column count of the terminal behind w, or 0 when it
// cannot be determined.
func ConsoleWidth(w io.Writer) int {
	f, ok := w.(fileDescriptor)
	if !ok {
		return 0
	}

	width, _, err := terminal.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}

	return width
}

package term

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
)

var ErrNotTerminal = errors.New("output is not a terminal")

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

type Mode string

const (
	// ModeAuto animates on an interactive terminal outside CI, plain otherwise.
	ModeAuto Mode = "auto"
	// ModeAnimated redraws the live line in place.
	ModeAnimated Mode = "animated"
	// ModePlain only writes finished lines.
	ModePlain Mode = "plain"
)

const ellipsis = "…"

// Line breaks in a live line push the cursor below what ClearLine can erase.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

type Options struct {
	Color      ColorMode
	Mode       Mode
	Width      int
	RequireTTY bool
	HideCursor bool
}

// Sink is the byte stream a renderer draws into. Its helpers only build
// strings; Write is the single place bytes leave for the terminal.
type Sink struct {
	out        io.Writer
	tty        bool
	animated   bool
	hideCursor bool
	width      int
	colors     aurora.Aurora

	// detectWidth re-reads the terminal width on every Fit.
	detectWidth  bool
	consoleWidth func(io.Writer) int
}

func NewSink(out io.Writer, opts Options) (*Sink, error) {
	tty := IsTerminal(out)

	if opts.RequireTTY && !tty {
		return nil, ErrNotTerminal
	}

	s := &Sink{out: out, tty: tty, hideCursor: opts.HideCursor, consoleWidth: ConsoleWidth}

	switch opts.Mode {
	case ModeAnimated:
		s.animated = true
	case ModePlain:
		s.animated = false
	case ModeAuto, "":
		s.animated = tty && !GetCI().IsCI()
	default:
		return nil, fmt.Errorf("unknown mode %q", opts.Mode)
	}

	switch opts.Color {
	case ColorAlways:
		s.colors = aurora.NewAurora(true)
	case ColorNever:
		s.colors = aurora.NewAurora(false)
	case ColorAuto, "":
		profile := termenv.NewOutput(out).EnvColorProfile()
		s.colors = aurora.NewAurora(profile != termenv.Ascii)
	default:
		return nil, fmt.Errorf("unknown color mode %q", opts.Color)
	}

	switch {
	case opts.Width > 0:
		s.width = opts.Width
	case opts.Width == 0 && tty:
		s.detectWidth = true
	}

	return s, nil
}

func (s *Sink) Animated() bool {
	return s.animated
}

func (s *Sink) TTY() bool {
	return s.tty
}

// Width is the column limit for the live line, 0 when there is none.
func (s *Sink) Width() int {
	if s.detectWidth {
		return s.consoleWidth(s.out)
	}

	return s.width
}

func (s *Sink) Colors() aurora.Aurora {
	return s.colors
}

// ClearLine returns the cursor to column zero and erases the line.
func (s *Sink) ClearLine() string {
	if !s.animated {
		return ""
	}

	return "\r" + termenv.CSI + termenv.EraseEntireLineSeq
}

// Line replaces the live line with text, cut to the terminal width so it
// never wraps onto a line ClearLine cannot reach.
func (s *Sink) Line(text string) string {
	if !s.animated {
		return ""
	}

	return s.ClearLine() + s.Fit(lineBreaks.Replace(text))
}

// Commit replaces the live line with text and moves past it.
func (s *Sink) Commit(text string) string {
	return s.ClearLine() + text + "\n"
}

func (s *Sink) Fit(text string) string {
	width := s.Width()
	if width <= 1 {
		return text
	}

	// Leave the last column free; writing into it wraps on some terminals.
	return truncate.StringWithTail(text, uint(width-1), ellipsis)
}

func (s *Sink) HideCursor() string {
	if !s.hideCursor || !s.animated {
		return ""
	}

	return termenv.CSI + termenv.HideCursorSeq
}

func (s *Sink) ShowCursor() string {
	if !s.hideCursor || !s.animated {
		return ""
	}

	return termenv.CSI + termenv.ShowCursorSeq
}

// Write sends data in a single call and flushes buffered writers.
func (s *Sink) Write(data string) error {
	if data == "" {
		return nil
	}

	n, err := io.WriteString(s.out, data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return io.ErrShortWrite
	}

	if f, ok := s.out.(interface{ Flush() error }); ok {
		return f.Flush()
	}

	return nil
}

package term

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sink(t *testing.T, out io.Writer, opts Options) *Sink {
	t.Helper()

	s, err := NewSink(out, opts)
	require.NoError(t, err)
	return s
}

func TestAnimatedSinkRewritesLine(t *testing.T) {
	s := sink(t, &bytes.Buffer{}, Options{Mode: ModeAnimated, Color: ColorNever, Width: -1})

	assert.True(t, s.Animated())
	assert.False(t, s.TTY())
	assert.Equal(t, "\r\x1b[2K", s.ClearLine())
	assert.Equal(t, "\r\x1b[2Kworking", s.Line("working"))
	assert.Equal(t, "\r\x1b[2Kdone\n", s.Commit("done"))
}

func TestPlainSinkOnlyCommits(t *testing.T) {
	s := sink(t, &bytes.Buffer{}, Options{Mode: ModePlain, Color: ColorNever})

	assert.False(t, s.Animated())
	assert.Equal(t, "", s.ClearLine())
	assert.Equal(t, "", s.Line("working"))
	assert.Equal(t, "done\n", s.Commit("done"))
}

func TestAutoModeIsPlainOffTerminal(t *testing.T) {
	s := sink(t, &bytes.Buffer{}, Options{})

	assert.False(t, s.Animated())
	assert.Equal(t, 0, s.Width())
}

func TestFitTruncatesToWidth(t *testing.T) {
	s := sink(t, &bytes.Buffer{}, Options{Mode: ModeAnimated, Width: 10})

	fitted := s.Fit(strings.Repeat("x", 30))

	assert.Equal(t, "xxxxxxxx…", fitted)
	assert.Equal(t, "short", s.Fit("short"))
	assert.Equal(t, "\r\x1b[2Kxxxxxxxx…", s.Line(strings.Repeat("x", 30)))
}

func TestFitIgnoresEscapeSequences(t *testing.T) {
	s := sink(t, &bytes.Buffer{}, Options{Mode: ModeAnimated, Width: 10})

	colored := "\x1b[32mok\x1b[0m"

	assert.Equal(t, colored, s.Fit(colored))
}

func TestNegativeWidthDisablesTruncation(t *testing.T) {
	s := sink(t, &bytes.Buffer{}, Options{Mode: ModeAnimated, Width: -1})

	long := strings.Repeat("x", 500)

	assert.Equal(t, long, s.Fit(long))
}

func TestColorModes(t *testing.T) {
	always := sink(t, &bytes.Buffer{}, Options{Color: ColorAlways})
	never := sink(t, &bytes.Buffer{}, Options{Color: ColorNever})

	assert.Equal(t, "\x1b[32mok\x1b[0m", always.Colors().Green("ok").String())
	assert.Equal(t, "ok", never.Colors().Green("ok").String())
}

func TestRequireTTY(t *testing.T) {
	_, err := NewSink(&bytes.Buffer{}, Options{RequireTTY: true})

	assert.True(t, errors.Is(err, ErrNotTerminal))
}

func TestUnknownOptions(t *testing.T) {
	_, err := NewSink(&bytes.Buffer{}, Options{Mode: "fancy"})
	assert.Error(t, err)

	_, err = NewSink(&bytes.Buffer{}, Options{Color: "rainbow"})
	assert.Error(t, err)
}

func TestCursorSequences(t *testing.T) {
	hidden := sink(t, &bytes.Buffer{}, Options{Mode: ModeAnimated, HideCursor: true})
	assert.Equal(t, "\x1b[?25l", hidden.HideCursor())
	assert.Equal(t, "\x1b[?25h", hidden.ShowCursor())

	plain := sink(t, &bytes.Buffer{}, Options{Mode: ModePlain, HideCursor: true})
	assert.Equal(t, "", plain.HideCursor())
	assert.Equal(t, "", plain.ShowCursor())
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return len(p) / 2, nil
}

type flushingWriter struct {
	bytes.Buffer
	flushes int
}

func (w *flushingWriter) Flush() error {
	w.flushes++
	return nil
}

func TestWrite(t *testing.T) {
	out := &flushingWriter{}
	s := sink(t, out, Options{Mode: ModeAnimated})

	require.NoError(t, s.Write(""))
	assert.Equal(t, 0, out.flushes)

	require.NoError(t, s.Write("frame"))
	assert.Equal(t, "frame", out.String())
	assert.Equal(t, 1, out.flushes)

	short := sink(t, shortWriter{}, Options{Mode: ModeAnimated})
	assert.Equal(t, io.ErrShortWrite, short.Write("frame"))
}

func TestIsTerminalWithoutDescriptor(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
	assert.Equal(t, 0, ConsoleWidth(&bytes.Buffer{}))
}

func TestLineFlattensLineBreaks(t *testing.T) {
	s := sink(t, &bytes.Buffer{}, Options{Mode: ModeAnimated, Width: -1})

	assert.Equal(t, "\r\x1b[2Kstep one detail more", s.Line("step one\ndetail\r\nmore"))
	assert.Equal(t, "\r\x1b[2Ka b", s.Line("a\rb"))
}

func TestDetectedWidthFollowsResize(t *testing.T) {
	columns := 12

	s := sink(t, &bytes.Buffer{}, Options{Mode: ModeAnimated, Width: -1})
	s.detectWidth = true
	s.consoleWidth = func(io.Writer) int { return columns }

	assert.Equal(t, 12, s.Width())
	assert.Equal(t, "xxxxxxxxxx…", s.Fit(strings.Repeat("x", 30)))

	columns = 6

	assert.Equal(t, 6, s.Width())
	assert.Equal(t, "xxxx…", s.Fit(strings.Repeat("x", 30)))
}

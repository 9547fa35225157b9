// Package loading draws a single animated progress line on a terminal while
// the caller works, then replaces it with a finished status line.
//
//	l := loading.Default()
//	defer l.End()
//
//	for i := 0; i < 100; i++ {
//		l.Textf("Loading %d", i)
//		work(i)
//	}
//
//	l.Success("OK")
//
// All terminal output comes from one background goroutine per Loading; the
// methods below only change what that goroutine draws next.
package loading

import (
	"fmt"
	"runtime"

	"github.com/kyokomi/emoji"

	"github.com/elseano/loading/pkg/term"
	"github.com/elseano/loading/pkg/util"
)

type Loading struct {
	state    *sharedState
	renderer *renderer
	emoji    bool
}

// New validates cfg and starts rendering. On error nothing has been started.
func New(cfg Config) (*Loading, error) {
	cfg = cfg.withDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	frames, err := NewFrameSet(cfg.Frames)
	if err != nil {
		return nil, err
	}

	sink, err := term.NewSink(cfg.Output, term.Options{
		Color:      cfg.Color,
		Mode:       cfg.Mode,
		Width:      cfg.Width,
		RequireTTY: cfg.RequireTTY,
		HideCursor: cfg.HideCursor,
	})
	if err != nil {
		return nil, configError("Output", err)
	}

	l := &Loading{emoji: cfg.Emoji}
	l.state = newSharedState(l.expand(cfg.Text))
	l.renderer = newRenderer(l.state, frames, cfg.Glyphs, sink, cfg.Interval)
	l.renderer.start()

	// The renderer never references l, so an abandoned handle is collected
	// and its finalizer stops the renderer.
	runtime.SetFinalizer(l, (*Loading).release)

	return l, nil
}

// NewWithOptions applies opts on top of DefaultConfig.
func NewWithOptions(opts ...Option) (*Loading, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return New(cfg)
}

// Default renders to stdout with the default frames and interval.
func Default() *Loading {
	l, err := New(DefaultConfig())
	if err != nil {
		// Only RequireTTY can fail a default configuration, and it is off.
		panic(err)
	}

	return l
}

func (l *Loading) expand(message string) string {
	if !l.emoji {
		return message
	}

	return emoji.Sprint(message)
}

// Text replaces the message next to the spinner. It has no effect once a
// status has been set or the Loading has ended.
func (l *Loading) Text(message string) {
	if !l.state.setText(l.expand(message)) {
		util.Logger.Trace().Msgf("Ignoring text %q, line already finished", message)
	}
}

func (l *Loading) Textf(format string, args ...interface{}) {
	l.Text(fmt.Sprintf(format, args...))
}

// Status finishes the line with kind and message. The renderer keeps running
// until End; a later Status call replaces this one.
func (l *Loading) Status(kind StatusKind, message string) {
	l.state.setStatus(kind, l.expand(message))
}

func (l *Loading) Success(message string) {
	l.Status(StatusSuccess, message)
}

func (l *Loading) Fail(message string) {
	l.Status(StatusFail, message)
}

func (l *Loading) Warn(message string) {
	l.Status(StatusWarn, message)
}

func (l *Loading) Info(message string) {
	l.Status(StatusInfo, message)
}

// Persist writes a finished line above the spinner and keeps animating on a
// fresh line. The text is cleared; nothing is shown until the next Text.
func (l *Loading) Persist(kind StatusKind, message string) {
	l.state.persist(kind, l.expand(message))
}

// End stops the renderer and waits for its final draw. Calling End more than
// once is safe; later calls return immediately.
func (l *Loading) End() {
	l.state.terminate()
	l.renderer.signal()
	l.renderer.wait()

	runtime.SetFinalizer(l, nil)
}

// Close ends the Loading and reports whether the renderer failed on its own.
func (l *Loading) Close() error {
	l.End()

	return l.renderer.fault
}

func (l *Loading) Phase() Phase {
	return l.renderer.currentPhase()
}

// release runs when a Loading is garbage collected without End. It cannot
// block the finalizer goroutine, so the renderer finishes on its own.
func (l *Loading) release() {
	if l.state.terminate() {
		util.Logger.Debug().Msg("Loading collected without End, stopping renderer")
	}

	l.renderer.signal()
}

// Run starts a Loading for the duration of fn and always ends it, including
// when fn panics. An error from fn fails the line unless fn already set a
// status; a nil error turns the last text into a success line.
func Run(cfg Config, fn func(l *Loading) error) (err error) {
	l, err := New(cfg)
	if err != nil {
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			if !l.state.hasStatus() {
				l.Fail(fmt.Sprint(rec))
			}
			l.End()
			panic(rec)
		}

		l.End()
	}()

	err = fn(l)

	if !l.state.hasStatus() {
		if err != nil {
			l.Fail(err.Error())
		} else if text := l.state.currentText(); text.Valid {
			l.Success(text.String)
		}
	}

	return err
}

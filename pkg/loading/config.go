package loading

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/elseano/loading/pkg/term"
)

// DefaultInterval is the redraw period used when none is configured.
const DefaultInterval = 80 * time.Millisecond

// Config describes a Loading. The zero value of every field except Frames and
// Interval means "use the default"; start from DefaultConfig to be safe.
type Config struct {
	// Interval is the time between redraws.
	Interval time.Duration
	// Frames animate the live line, in order.
	Frames []string
	// Glyphs mark finished lines.
	Glyphs Glyphs
	// Text is shown from the first draw. Empty means nothing is drawn until
	// the first call to Text.
	Text string
	// Output receives every byte drawn. Defaults to os.Stdout.
	Output io.Writer
	// RequireTTY fails construction when Output is not a terminal.
	RequireTTY bool
	Color      term.ColorMode
	Mode       term.Mode
	// Width truncates the live line. 0 detects the terminal width, negative
	// disables truncation.
	Width int
	// Emoji expands :shortcode: sequences in messages.
	Emoji      bool
	HideCursor bool
}

func DefaultConfig() Config {
	return Config{
		Interval: DefaultInterval,
		Frames:   append([]string(nil), DefaultFrames...),
		Glyphs:   DefaultGlyphs(),
		Output:   os.Stdout,
		Color:    term.ColorAuto,
		Mode:     term.ModeAuto,
	}
}

// Validate checks the parts of the configuration that do not need a terminal.
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return configError("Interval", ErrInvalidInterval)
	}

	if len(c.Frames) == 0 {
		return configError("Frames", ErrEmptyFrames)
	}

	switch c.Mode {
	case term.ModeAuto, term.ModeAnimated, term.ModePlain, "":
	default:
		return configError("Mode", fmt.Errorf("%w %q", ErrInvalidOption, c.Mode))
	}

	switch c.Color {
	case term.ColorAuto, term.ColorAlways, term.ColorNever, "":
	default:
		return configError("Color", fmt.Errorf("%w %q", ErrInvalidOption, c.Color))
	}

	return nil
}

func (c Config) withDefaults() Config {
	if c.Output == nil {
		c.Output = os.Stdout
	}

	defaults := DefaultGlyphs()
	if c.Glyphs.Success == "" {
		c.Glyphs.Success = defaults.Success
	}
	if c.Glyphs.Fail == "" {
		c.Glyphs.Fail = defaults.Fail
	}
	if c.Glyphs.Warn == "" {
		c.Glyphs.Warn = defaults.Warn
	}
	if c.Glyphs.Info == "" {
		c.Glyphs.Info = defaults.Info
	}

	return c
}

type Option func(*Config)

func WithWriter(w io.Writer) Option {
	return func(c *Config) {
		c.Output = w
	}
}

func WithStdout() Option {
	return WithWriter(os.Stdout)
}

func WithStderr() Option {
	return WithWriter(os.Stderr)
}

func WithInterval(d time.Duration) Option {
	return func(c *Config) {
		c.Interval = d
	}
}

func WithFrames(frames ...string) Option {
	return func(c *Config) {
		c.Frames = frames
	}
}

func WithGlyphs(g Glyphs) Option {
	return func(c *Config) {
		c.Glyphs = g
	}
}

func WithText(text string) Option {
	return func(c *Config) {
		c.Text = text
	}
}

func WithColor(mode term.ColorMode) Option {
	return func(c *Config) {
		c.Color = mode
	}
}

func WithMode(mode term.Mode) Option {
	return func(c *Config) {
		c.Mode = mode
	}
}

func WithWidth(width int) Option {
	return func(c *Config) {
		c.Width = width
	}
}

func WithEmoji(enabled bool) Option {
	return func(c *Config) {
		c.Emoji = enabled
	}
}

func WithHideCursor(enabled bool) Option {
	return func(c *Config) {
		c.HideCursor = enabled
	}
}

func WithRequireTTY(required bool) Option {
	return func(c *Config) {
		c.RequireTTY = required
	}
}

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/elseano/loading/pkg/loading"
	"github.com/elseano/loading/pkg/term"
)

var (
	flagInterval   time.Duration
	flagFrames     string
	flagPreset     string
	flagStderr     bool
	flagColor      string
	flagMode       string
	flagWidth      int
	flagRequireTTY bool
	flagEmoji      bool
	flagHideCursor bool
	flagDebug      bool
	flagStep       time.Duration
)

// loadingConfig turns the persistent flags into a loading.Config writing to
// the command's output.
func loadingConfig(cmd *cobra.Command) (loading.Config, error) {
	cfg := loading.DefaultConfig()

	cfg.Interval = flagInterval
	cfg.Output = cmd.OutOrStdout()
	cfg.Color = term.ColorMode(flagColor)
	cfg.Mode = term.Mode(flagMode)
	cfg.Width = flagWidth
	cfg.RequireTTY = flagRequireTTY
	cfg.Emoji = flagEmoji
	cfg.HideCursor = flagHideCursor

	if flagStderr {
		cfg.Output = cmd.ErrOrStderr()
	}

	if flagPreset != "" {
		frames, err := loading.Preset(flagPreset)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s", ErrorArg, err)
		}

		cfg.Frames = frames
	}

	if frames := strings.Fields(flagFrames); len(frames) > 0 {
		cfg.Frames = frames
	}

	return cfg, nil
}

// startLoading builds a Loading from the flags and tracks it so a signal can
// end it. The returned func ends and untracks it.
func startLoading(cmd *cobra.Command, adjust func(*loading.Config)) (*loading.Loading, func() error, error) {
	cfg, err := loadingConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	if adjust != nil {
		adjust(&cfg)
	}

	l, err := loading.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	track(l)

	return l, func() error {
		untrack(l)
		return l.Close()
	}, nil
}

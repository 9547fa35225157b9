package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"

	"github.com/elseano/loading/pkg/loading"
	"github.com/elseano/loading/pkg/term"
	"github.com/elseano/loading/pkg/util"
)

var rootCmd = NewRootCmd()

func RootCmd() *cobra.Command {
	return rootCmd
}

func Execute(version string, gitCommit string) error {
	rootCmd.Version = version + " (" + gitCommit + ")"

	err := rootCmd.Execute()

	// Flag and argument errors come from cobra itself and have not been
	// printed yet.
	if err != nil && !errors.Is(err, ErrorArg) && !errors.Is(err, ErrorInternal) && !errors.Is(err, ErrorCommand) {
		fmt.Fprintf(os.Stderr, "\n%s: %s\n\n", aurora.Red("Error"), err)
		return ErrorArg
	}

	return err
}

func NewRootCmd() *cobra.Command {
	var logFile io.Closer

	rootCmd := &cobra.Command{
		Use:           "loading",
		Short:         "Terminal loading indicators",
		Long:          `Draws a single animated progress line and finishes it with a status.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !flagDebug {
				return nil
			}

			f, err := util.LogToFile("debug.log")
			if err != nil {
				return handleError(cmd.ErrOrStderr(), err)
			}

			logFile = f
			util.Logger.Debug().Msgf("Running %s %v", cmd.Name(), args)

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logFile != nil {
				logFile.Close()
				logFile = nil
			}
		},
	}

	flags := rootCmd.PersistentFlags()

	flags.DurationVar(&flagInterval, "interval", loading.DefaultInterval, "Time between redraws")
	flags.StringVar(&flagFrames, "frames", "", "Space separated animation frames")
	flags.StringVar(&flagPreset, "preset", "", "Named or numbered frame preset (see presets)")
	flags.BoolVar(&flagStderr, "stderr", false, "Draw on stderr instead of stdout")
	flags.StringVar(&flagColor, "color", string(term.ColorAuto), "Color status glyphs (auto, always, never)")
	flags.StringVar(&flagMode, "mode", string(term.ModeAuto), "Rendering mode (auto, animated, plain)")
	flags.IntVar(&flagWidth, "width", 0, "Truncate the live line to this many columns (0 detects, -1 disables)")
	flags.BoolVar(&flagRequireTTY, "require-tty", false, "Fail when the output is not a terminal")
	flags.BoolVar(&flagEmoji, "emoji", false, "Expand :shortcode: emoji in messages")
	flags.BoolVar(&flagHideCursor, "hide-cursor", false, "Hide the cursor while animating")
	flags.BoolVar(&flagDebug, "debug", false, "Write debugging info to debug.log")
	flags.DurationVar(&flagStep, "step", 50*time.Millisecond, "Pause between demo updates")

	rootCmd.AddCommand(newCountCmd())
	rootCmd.AddCommand(newDownloadCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newSpinnerCmd())
	rootCmd.AddCommand(newExecCmd())
	rootCmd.AddCommand(newPresetsCmd())
	rootCmd.AddCommand(newEmojiCmd())

	return rootCmd
}

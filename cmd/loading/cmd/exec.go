package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/elseano/loading/pkg/term"
	"github.com/elseano/loading/pkg/util"
)

func newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec -- COMMAND [ARGS]...",
		Short: "Run a command under a spinner, showing its output only if it fails",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handleError(cmd.ErrOrStderr(), execCommand(cmd, args))
		},
	}
}

func execCommand(cmd *cobra.Command, args []string) error {
	l, end, err := startLoading(cmd, nil)
	if err != nil {
		return err
	}

	name := strings.Join(args, " ")
	l.Textf("Running %s", name)

	var output bytes.Buffer

	child := exec.CommandContext(cmd.Context(), args[0], args[1:]...)
	child.Stdout = &output
	child.Stderr = &output

	started := time.Now()
	runErr := child.Run()
	elapsed := time.Since(started).Round(time.Millisecond)

	util.Logger.Debug().Err(runErr).Msgf("%s finished after %s", name, elapsed)

	if runErr != nil {
		l.Fail(fmt.Sprintf("%s failed after %s", name, elapsed))
	} else {
		l.Success(fmt.Sprintf("%s finished in %s", name, elapsed))
	}

	if err := end(); err != nil {
		return err
	}

	if runErr == nil {
		return nil
	}

	printFailure(cmd.OutOrStdout(), output.Bytes(), runErr)

	return fmt.Errorf("%w: %s", ErrorCommand, runErr)
}

// printFailure shows what the command wrote, then why it stopped.
func printFailure(dest io.Writer, output []byte, runErr error) {
	faint := summaryColor(color.Faint)
	failure := summaryColor(color.FgRed, color.Bold)

	if trimmed := strings.TrimRight(string(output), "\n"); trimmed != "" {
		for _, line := range strings.Split(trimmed, "\n") {
			faint.Fprintf(dest, "  │ ")
			fmt.Fprintln(dest, line)
		}
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		failure.Fprintf(dest, "  exit status %d\n", exitErr.ExitCode())
		return
	}

	failure.Fprintf(dest, "  %s\n", runErr)
}

// summaryColor honours --color rather than fatih/color's own stdout check.
func summaryColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)

	switch term.ColorMode(flagColor) {
	case term.ColorAlways:
		c.EnableColor()
	case term.ColorNever:
		c.DisableColor()
	}

	return c
}

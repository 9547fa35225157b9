package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/elseano/loading/pkg/loading"
)

func pause() {
	time.Sleep(flagStep)
}

func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Count from 0 to 100, then succeed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return handleError(cmd.ErrOrStderr(), count(cmd))
		},
	}
}

func count(cmd *cobra.Command) error {
	l, end, err := startLoading(cmd, nil)
	if err != nil {
		return err
	}

	for i := 0; i <= 100; i++ {
		l.Textf("Loading %d", i)
		pause()
	}

	l.Success("OK")

	return end()
}

func newDownloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "download",
		Short: "Fake two downloads, keeping the failed one on screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return handleError(cmd.ErrOrStderr(), download(cmd))
		},
	}
}

func download(cmd *cobra.Command) error {
	l, end, err := startLoading(cmd, nil)
	if err != nil {
		return err
	}

	for i := 0; i < 100; i++ {
		l.Textf("Download 'loading.rar' %d%%", i)
		pause()
	}

	l.Persist(loading.StatusFail, "Download 'loading.rar' failed")

	for i := 0; i < 100; i++ {
		l.Textf("Download 'loading.zip' %d%%", i)
		pause()
	}

	l.Success("Download 'loading.zip' successfully")

	return end()
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Finish one line with each status kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return handleError(cmd.ErrOrStderr(), status(cmd))
		},
	}
}

func status(cmd *cobra.Command) error {
	l, end, err := startLoading(cmd, nil)
	if err != nil {
		return err
	}

	steps := []struct {
		kind    loading.StatusKind
		message string
	}{
		{loading.StatusFail, "Fail ..."},
		{loading.StatusWarn, "Warn ..."},
		{loading.StatusInfo, "Info ..."},
	}

	for _, step := range steps {
		for i := 0; i < 5; i++ {
			l.Textf("Loading %d", i)
			pause()
		}

		l.Persist(step.kind, step.message)
	}

	for i := 0; i < 5; i++ {
		l.Textf("Loading %d", i)
		pause()
	}

	l.Success("Success ...")

	return end()
}

func newSpinnerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spinner",
		Short: "Custom frames on stdout, then on stderr",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return handleError(cmd.ErrOrStderr(), spinners(cmd))
		},
	}
}

func spinners(cmd *cobra.Command) error {
	runs := []struct {
		preset string
		stderr bool
		finish func(*loading.Loading)
	}{
		{"circle", false, func(l *loading.Loading) { l.Success("Success ...") }},
		{"bounce", true, func(l *loading.Loading) { l.Fail("Error ...") }},
	}

	for _, run := range runs {
		frames, err := loading.Preset(run.preset)
		if err != nil {
			return err
		}

		l, end, err := startLoading(cmd, func(cfg *loading.Config) {
			cfg.Frames = frames
			if run.stderr {
				cfg.Output = cmd.ErrOrStderr()
			}
		})
		if err != nil {
			return err
		}

		for i := 0; i < 10; i++ {
			l.Text(fmt.Sprintf("Loading %d", i))
			pause()
		}

		run.finish(l)

		if err := end(); err != nil {
			return err
		}
	}

	return nil
}

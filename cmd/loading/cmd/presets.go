package cmd

import (
	"errors"
	"io"
	"sort"
	"strings"

	"github.com/kyokomi/emoji"
	"github.com/logrusorgru/aurora"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/elseano/loading/pkg/loading"
)

func newTable(dest io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(dest)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	return table
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "Lists the named frame presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := newTable(cmd.OutOrStdout())

			for _, name := range loading.PresetNames() {
				frames, err := loading.Preset(name)
				if err != nil {
					return handleError(cmd.ErrOrStderr(), err)
				}

				table.Append([]string{name, strings.Join(frames, " ")})
			}

			table.Render()

			return nil
		},
	}
}

func newEmojiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "emoji TERM",
		Short: "Searches for an emoji shortcode to use with --emoji",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("Must specify at least a term")
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			table := newTable(cmd.OutOrStdout())
			table.SetColumnAlignment([]int{tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

			codes := []string{}
			for code := range emoji.CodeMap() {
				if strings.Contains(code, args[0]) {
					codes = append(codes, code)
				}
			}

			sort.Strings(codes)

			for _, code := range codes {
				value := emoji.CodeMap()[code]
				aliases := []string{}

				for _, alias := range emoji.RevCodeMap()[value] {
					if alias != code {
						aliases = append(aliases, alias)
					}
				}

				table.Append([]string{value, code, aurora.Faint(strings.Join(aliases, " ")).String()})
			}

			table.Render()

			return nil
		},
	}
}

package copy

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/winapps/internal/fzf"
	"github.com/Paintersrp/winapps/internal/label"
	"github.com/Paintersrp/winapps/internal/search"
	"github.com/Paintersrp/winapps/internal/state"
	"github.com/Paintersrp/winapps/pkg/shared/arg"
	"github.com/Paintersrp/winapps/pkg/shared/flags"
)

var writeClipboard = clipboard.WriteAll

func NewCmdCopy(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "copy [query] [--first]",
		Aliases: []string{"c"},
		Short:   "Copy an application's path or app name to the clipboard.",
		Long: heredoc.Doc(`
			This command chooses an application like the open command and copies its
			payload to the clipboard instead of launching it: the shortcut path for
			start menu entries, the display name for packaged apps.

			Examples:
			  winapps copy word
			  winapps c visual studio --first
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := flags.HandleFirst(cmd)
			if err != nil {
				return err
			}
			finder := fzf.NewFuzzyFinder(s.Engine, label.RenderEnv())
			return Run(cmd.OutOrStdout(), s, finder, arg.Query(args), first)
		},
	}

	flags.AddFirst(cmd)
	return cmd
}

// Run copies the payload of the one result chosen for query.
func Run(out io.Writer, s *state.State, finder *fzf.FuzzyFinder, query string, first bool) error {
	result, err := finder.Choose(s.Engine.Search(query), first)
	if err != nil {
		return fmt.Errorf("%q: %w", query, err)
	}

	action, err := search.ParseAction(result.Action)
	if err != nil {
		return fmt.Errorf("%s has no copyable action: %w", result.Title, err)
	}

	if err := writeClipboard(action.Payload); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}

	fmt.Fprintf(out, "Copied %s\n", action.Payload)
	return nil
}

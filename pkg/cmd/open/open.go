package open

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/winapps/internal/fzf"
	"github.com/Paintersrp/winapps/internal/label"
	"github.com/Paintersrp/winapps/internal/state"
	"github.com/Paintersrp/winapps/pkg/shared/arg"
	"github.com/Paintersrp/winapps/pkg/shared/flags"
)

func NewCmdOpen(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "open [query] [--first]",
		Aliases: []string{"o"},
		Short:   "Launch the application matching a query.",
		Long: heredoc.Doc(`
			This command searches like the search command and launches the result.
			A single match is launched directly. When several match, --first takes the
			first in title order; otherwise a fuzzy finder is shown on a terminal and
			the command fails elsewhere.

			Examples:
			  winapps open notepad
			  winapps o visual studio --first
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

// Run launches the one result chosen for query.
func Run(out io.Writer, s *state.State, finder *fzf.FuzzyFinder, query string, first bool) error {
	result, err := finder.Choose(s.Engine.Search(query), first)
	if err != nil {
		return fmt.Errorf("%q: %w", query, err)
	}

	if err := s.Engine.Execute(result); err != nil {
		return err
	}

	fmt.Fprintf(out, "Opened %s\n", result.Title)
	return nil
}

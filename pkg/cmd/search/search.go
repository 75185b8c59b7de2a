package search

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	appsearch "github.com/Paintersrp/winapps/internal/search"
	"github.com/Paintersrp/winapps/internal/state"
	"github.com/Paintersrp/winapps/pkg/shared/arg"
	"github.com/Paintersrp/winapps/pkg/shared/flags"
)

func NewCmdSearch(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search [query] [--actions]",
		Aliases: []string{"ls"},
		Short:   "List the applications matching a query.",
		Long: heredoc.Doc(`
			This command lists the start menu shortcuts and packaged apps whose title
			contains the query, ignoring case. With no query every application is listed.
			Results are sorted by title and each title appears once.

			With --actions only the action descriptors are printed, one per line,
			ready to be passed to the exec command.

			Examples:
			  winapps search word
			  winapps search visual studio
			  winapps search --actions note
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			actions, err := flags.HandleActions(cmd)
			if err != nil {
				return err
			}
			return Run(cmd.OutOrStdout(), s, arg.Query(args), actions)
		},
	}

	flags.AddActions(cmd)
	return cmd
}

// Run writes the results for query to out.
func Run(out io.Writer, s *state.State, query string, actions bool) error {
	results := s.Engine.Search(query)

	if actions {
		for _, r := range results {
			fmt.Fprintln(out, r.Action)
		}
		return nil
	}

	if len(results) == 0 {
		fmt.Fprintf(out, "No applications match %q\n", query)
		return nil
	}

	Print(out, results)
	return nil
}

// Print writes one styled line per result. Styling is dropped when out is
// not a terminal.
func Print(out io.Writer, results []appsearch.MatchResult) {
	r := lipgloss.NewRenderer(out)
	title := r.NewStyle().Bold(true)
	context := r.NewStyle().Faint(true)

	for _, res := range results {
		fmt.Fprintf(out, "%s  %s\n", title.Render(res.Title), context.Render(res.Context))
	}
}

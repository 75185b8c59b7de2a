package find

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/winapps/internal/fzf"
	"github.com/Paintersrp/winapps/internal/label"
	"github.com/Paintersrp/winapps/internal/state"
	"github.com/Paintersrp/winapps/pkg/shared/arg"
)

var ErrNotInteractive = errors.New("find needs a terminal, use search or open instead")

func NewCmdFind(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "find [query]",
		Aliases: []string{"f"},
		Short:   "Fuzzy find an application and launch it.",
		Long: heredoc.Doc(`
			This command shows every application in a fuzzy finder with a preview of
			its location and action descriptor. The optional query pre-fills the finder.
			The selected application is launched.

			Examples:
			  winapps find
			  winapps f code
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !fzf.Interactive() {
				return ErrNotInteractive
			}
			finder := fzf.NewFuzzyFinder(s.Engine, label.RenderEnv())
			finder.Out = cmd.OutOrStdout()
			return Run(finder, arg.Query(args))
		},
	}

	return cmd
}

// Run picks and launches. Aborting the finder is not an error.
func Run(finder *fzf.FuzzyFinder, query string) error {
	result, err := finder.Run(query, true)
	if err != nil {
		if fzf.Aborted(err) {
			return nil
		}
		if result.Title != "" {
			return fmt.Errorf("failed to launch %s: %w", result.Title, err)
		}
		return err
	}
	return nil
}

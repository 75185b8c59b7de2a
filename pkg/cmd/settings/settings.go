package settings

import (
	"fmt"
	"io"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/selection"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/winapps/internal/fzf"
	"github.com/Paintersrp/winapps/internal/state"
)

// promptToggle asks which toggle to flip.
var promptToggle = func(keys []string) (string, error) {
	sel := selection.New("Which setting do you want to flip?", keys)
	sel.Filter = nil
	return sel.RunPrompt()
}

var interactive = fzf.Interactive

func NewCmdSettings(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"cfg"},
		Short:   "Show and change search settings.",
		Long: heredoc.Doc(`
			This command shows the search toggles and lets you flip one from a prompt.
			Outside a terminal it only lists them.

			  include_uwp_apps         search packaged apps (Windows only)
			  include_start_menu_apps  search start menu shortcuts
			  return_error_messages    show discovery failures as results

			Examples:
			  winapps settings
			  winapps settings set return_error_messages true
			  winapps settings reset
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !interactive() {
				return List(cmd.OutOrStdout(), s)
			}
			return Prompt(cmd.OutOrStdout(), s)
		},
	}

	cmd.AddCommand(
		newCmdList(s),
		newCmdSet(s),
		newCmdReset(s),
	)

	return cmd
}

func newCmdList(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every toggle with its current value.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return List(cmd.OutOrStdout(), s)
		},
	}
}

func newCmdSet(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:     "set <key> <true|false>",
		Short:   "Set one toggle and save it.",
		Example: "winapps settings set include_uwp_apps false",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("invalid value %q for %s: expected true or false", args[1], args[0])
			}
			return Set(cmd.OutOrStdout(), s, args[0], value)
		},
	}
}

func newCmdReset(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore every toggle to its default.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.Config.Reset(); err != nil {
				return err
			}
			s.Engine.ApplyConfig(s.Config.Configuration())
			return List(cmd.OutOrStdout(), s)
		},
	}
}

// List writes each toggle as the engine currently sees it.
func List(out io.Writer, s *state.State) error {
	schema := s.Engine.ConfigSchema()
	current := s.Engine.Config()
	for _, key := range schema.Keys() {
		fmt.Fprintf(out, "%s: %t\n", key, current.Bool(key, schema.Bool(key, false)))
	}
	return nil
}

// Set persists one toggle and applies the new configuration.
func Set(out io.Writer, s *state.State, key string, value bool) error {
	if err := s.Config.SetToggle(key, value); err != nil {
		return err
	}
	s.Engine.ApplyConfig(s.Config.Configuration())
	s.Logger.Debug("toggle saved", "key", key, "value", value, "config", s.Config.Path())

	fmt.Fprintf(out, "%s: %t\n", key, value)
	return nil
}

// Prompt flips the toggle the user picks.
func Prompt(out io.Writer, s *state.State) error {
	schema := s.Engine.ConfigSchema()
	key, err := promptToggle(schema.Keys())
	if err != nil {
		return err
	}

	current := s.Engine.Config().Bool(key, schema.Bool(key, false))
	return Set(out, s, key, !current)
}

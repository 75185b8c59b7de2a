package root

import (
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/winapps/internal/constants"
	"github.com/Paintersrp/winapps/internal/fzf"
	"github.com/Paintersrp/winapps/internal/label"
	"github.com/Paintersrp/winapps/internal/state"
	"github.com/Paintersrp/winapps/pkg/cmd/copy"
	"github.com/Paintersrp/winapps/pkg/cmd/exec"
	"github.com/Paintersrp/winapps/pkg/cmd/find"
	"github.com/Paintersrp/winapps/pkg/cmd/open"
	"github.com/Paintersrp/winapps/pkg/cmd/search"
	"github.com/Paintersrp/winapps/pkg/cmd/settings"
	"github.com/Paintersrp/winapps/pkg/shared/arg"
)

var interactive = fzf.Interactive

// NewCmdRoot builds the command tree around s, which is loaded from opts and
// the global flags before any command runs.
func NewCmdRoot(s *state.State, opts state.Options) (*cobra.Command, error) {
	var cfgFile string

	cmd := &cobra.Command{
		Use:     constants.AppName + " [query]",
		Aliases: []string{"wa"},
		Short:   "Find and launch Windows applications from the terminal.",
		Long: heredoc.Doc(`
			A utility to find installed applications by name and launch them. It searches
			the start menu shortcuts of the machine and the current user, and on Windows
			the packaged apps of all users when run as administrator.

			Run without a command on a terminal to fuzzy find an application,
			otherwise every application is listed.

			  winapps search word
			  winapps open notepad
		`),
		Version:      constants.Version,
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if s.Loaded() {
				return nil
			}
			o := opts
			if cfgFile != "" {
				o.ConfigPath = cfgFile
			}
			return s.Load(o)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			query := arg.Query(args)
			if interactive() {
				finder := fzf.NewFuzzyFinder(s.Engine, label.RenderEnv())
				finder.Out = cmd.OutOrStdout()
				return find.Run(finder, query)
			}
			return search.Run(cmd.OutOrStdout(), s, query, false)
		},
	}

	cmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.winapps/cfg.yaml)")
	cmd.PersistentFlags().
		String("log-level", "", "log level: debug, info, warn, error (default is warn)")

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level")); err != nil {
		return nil, err
	}

	// Add Child Commands to Root
	cmd.AddCommand(
		search.NewCmdSearch(s),
		exec.NewCmdExec(s),
		open.NewCmdOpen(s),
		find.NewCmdFind(s),
		copy.NewCmdCopy(s),
		settings.NewCmdSettings(s),
	)

	return cmd, nil
}

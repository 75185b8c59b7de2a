package exec

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/winapps/internal/state"
)

func NewCmdExec(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "exec <action>",
		Aliases: []string{"x"},
		Short:   "Launch a stored action descriptor.",
		Long: heredoc.Doc(`
			This command launches the target named by an action descriptor, as printed
			by search --actions. A descriptor is a kind and a payload joined by a colon:

			  pth:<path>   opens the file with the operating system's default handler
			  uwp:<name>   launches the packaged app with that display name

			Unknown kinds and malformed descriptors are reported and nothing is launched.

			Examples:
			  winapps exec "pth:C:\ProgramData\Microsoft\Windows\Start Menu\Programs\Word.lnk"
			  winapps exec uwp:Calculator
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.Engine.ExecuteAction(args[0])
		},
	}

	return cmd
}

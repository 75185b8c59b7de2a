package flags

import (
	"github.com/spf13/cobra"
)

func AddActions(cmd *cobra.Command) {
	cmd.Flags().
		BoolP("actions", "a", false, "Print only the action descriptor of each result.")
}

func HandleActions(cmd *cobra.Command) (bool, error) {
	return cmd.Flags().GetBool("actions")
}

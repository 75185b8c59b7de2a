package flags

import (
	"github.com/spf13/cobra"
)

func AddFirst(cmd *cobra.Command) {
	cmd.Flags().
		BoolP("first", "f", false, "Take the first match instead of asking when several match.")
}

func HandleFirst(cmd *cobra.Command) (bool, error) {
	return cmd.Flags().GetBool("first")
}

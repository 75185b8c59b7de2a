package fzf

import (
	"os"

	"golang.org/x/term"
)

// Interactive reports whether both stdin and stdout are terminals, which the
// finder and prompts need.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

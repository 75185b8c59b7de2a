package arg

import "strings"

// Query joins positional arguments so an unquoted multi-word query works.
func Query(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Paintersrp/winapps/internal/constants"
)

// ErrMalformedAction reports an action descriptor without a kind separator.
var ErrMalformedAction = errors.New("action descriptor has no kind prefix")

// Action is the decoded form of MatchResult.Action: "<kind>:<payload>".
// The payload is kept verbatim and may itself contain ':'.
type Action struct {
	Kind    string
	Payload string
}

// PathAction returns the descriptor that opens path.
func PathAction(path string) string {
	return Action{Kind: constants.ActionPath, Payload: path}.String()
}

// PackageAction returns the descriptor that launches the named packaged app.
func PackageAction(name string) string {
	return Action{Kind: constants.ActionPackage, Payload: name}.String()
}

func (a Action) String() string {
	return a.Kind + ":" + a.Payload
}

// ParseAction splits s on its first ':'. Unrecognised kinds are not an error
// here; that is decided at dispatch time.
func ParseAction(s string) (Action, error) {
	kind, payload, found := strings.Cut(s, ":")
	if !found {
		return Action{}, fmt.Errorf("%w: %q", ErrMalformedAction, s)
	}
	return Action{Kind: kind, Payload: payload}, nil
}

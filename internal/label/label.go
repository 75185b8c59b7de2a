// Package label holds the colored display name shown for the application
// search. It is static data with no dependency on the engine.
package label

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Char is one glyph of the label with its color.
type Char struct {
	Rune       rune
	R, G, B, A uint8
}

func (c Char) hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

const Name = "Windows Apps"

var gray = [4]uint8{115, 115, 115, 255}

// Colored spells Name with the four-color "Apps".
var Colored = []Char{
	{'W', gray[0], gray[1], gray[2], gray[3]},
	{'i', gray[0], gray[1], gray[2], gray[3]},
	{'n', gray[0], gray[1], gray[2], gray[3]},
	{'d', gray[0], gray[1], gray[2], gray[3]},
	{'o', gray[0], gray[1], gray[2], gray[3]},
	{'w', gray[0], gray[1], gray[2], gray[3]},
	{'s', gray[0], gray[1], gray[2], gray[3]},
	{' ', gray[0], gray[1], gray[2], gray[3]},
	{'A', 242, 80, 34, 255},
	{'p', 127, 186, 0, 255},
	{'p', 0, 164, 239, 255},
	{'s', 255, 185, 0, 255},
}

// Render returns the label colored for the given profile. termenv.Ascii
// yields plain text.
func Render(profile termenv.Profile) string {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)

	var b strings.Builder
	for _, c := range Colored {
		style := r.NewStyle().Foreground(lipgloss.Color(c.hex()))
		b.WriteString(style.Render(string(c.Rune)))
	}
	return b.String()
}

// RenderEnv renders the label for the profile detected from the environment.
func RenderEnv() string {
	return Render(termenv.EnvColorProfile())
}

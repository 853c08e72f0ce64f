package render

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/roach88/truthtable/internal/table"
)

// ColorMode controls when the result column is coloured.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ValidColorModes lists the accepted ColorMode values.
var ValidColorModes = []ColorMode{ColorAuto, ColorAlways, ColorNever}

// ParseColorMode validates a user-supplied colour mode.
func ParseColorMode(s string) (ColorMode, error) {
	for _, m := range ValidColorModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid color mode %q: must be one of %v", s, ValidColorModes)
}

// UseColor resolves mode against the destination writer. In auto mode
// colour is used only when w is a terminal and NO_COLOR is unset.
func UseColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Colors paints result cells.
type Colors struct {
	True  func(string, ...any) string
	False func(string, ...any) string
}

// NewColors returns the palette used for terminals. Colour output is forced
// on; the caller decides whether to use a palette at all.
func NewColors() *Colors {
	green := color.New(color.FgGreen, color.Bold)
	green.EnableColor()
	red := color.New(color.FgRed)
	red.EnableColor()
	return &Colors{
		True:  green.SprintfFunc(),
		False: red.SprintfFunc(),
	}
}

func (c *Colors) paint(b table.Bit, s string) string {
	if c == nil {
		return s
	}
	if b == 1 {
		return c.True("%s", s)
	}
	return c.False("%s", s)
}

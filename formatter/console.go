package formatter

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Palette holds the colors for console output.
type Palette struct {
	Index *color.Color // index column
	Text  *color.Color // fragment text
	Empty *color.Color // placeholder for empty fragments
}

// DefaultPalette returns the palette used if a Config does not name one.
func DefaultPalette() *Palette {
	return &Palette{
		Index: color.New(color.FgBlue),
		Text:  color.New(color.FgGreen),
		Empty: color.New(color.FgRed, color.Bold),
	}
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are enabled for
// terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else {
				config.LineWidth = w
			}
		}
		config.Color = !color.NoColor
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

package render

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/gridls/internal/config"
)

// Theme holds the resolved terminal styles for every UI element. A color
// configured as "none" keeps the terminal default; for the path bar this
// means reverse video.
type Theme struct {
	PathBar       tcell.Style
	Selected      tcell.Style
	Directory     tcell.Style
	File          tcell.Style
	PreviewBorder tcell.Style
	Footer        tcell.Style
	Empty         tcell.Style
	Error         tcell.Style
	FuzzyBar      tcell.Style
	FuzzyMatch    tcell.Style
}

// NewTheme resolves the configured color table into tcell styles,
// substituting built-in defaults for unparsable values.
func NewTheme(c config.Colors) Theme {
	t := Theme{
		PathBar:       tcell.StyleDefault.Reverse(true),
		Selected:      tcell.StyleDefault.Foreground(tcell.ColorGreen),
		Directory:     tcell.StyleDefault.Foreground(tcell.ColorTeal),
		File:          tcell.StyleDefault,
		PreviewBorder: tcell.StyleDefault.Foreground(tcell.ColorGray),
		Footer:        tcell.StyleDefault.Foreground(tcell.ColorGray),
		Empty:         tcell.StyleDefault.Foreground(tcell.ColorYellow),
		Error:         tcell.StyleDefault.Foreground(tcell.ColorRed),
		FuzzyBar:      tcell.StyleDefault.Foreground(tcell.ColorYellow),
		FuzzyMatch: tcell.StyleDefault.
			Foreground(tcell.ColorYellow).
			Background(tcell.NewRGBColor(50, 50, 50)).
			Bold(true),
	}

	pathFg, fgOK := ParseColor(c.PathFg)
	pathBg, bgOK := ParseColor(c.PathBg)
	if fgOK || bgOK {
		style := tcell.StyleDefault
		if fgOK {
			style = style.Foreground(pathFg)
		}
		if bgOK {
			style = style.Background(pathBg)
		}
		t.PathBar = style
	}

	if fg, ok := ParseColor(c.SelectedFg); ok {
		t.Selected = t.Selected.Foreground(fg)
	}
	if bg, ok := ParseColor(c.SelectedBg); ok {
		t.Selected = t.Selected.Background(bg)
	}
	if fg, ok := ParseColor(c.DirectoryFg); ok {
		t.Directory = tcell.StyleDefault.Foreground(fg)
	}
	if fg, ok := ParseColor(c.PreviewBorderFg); ok {
		t.PreviewBorder = tcell.StyleDefault.Foreground(fg)
	}

	return t
}

// ParseColor turns a configured color value into a tcell color. It accepts
// the classic terminal color names and #RGB / #RRGGBB hex strings. The
// second return is false for "none", empty, or unparsable values.
func ParseColor(value string) (tcell.Color, bool) {
	name := strings.ToLower(strings.TrimSpace(value))
	if name == "" || name == "none" || name == "reverse" {
		return tcell.ColorDefault, false
	}

	if strings.HasPrefix(name, "#") {
		return parseHexColor(name)
	}

	switch name {
	case "black":
		return tcell.ColorBlack, true
	case "red":
		return tcell.ColorRed, true
	case "green":
		return tcell.ColorGreen, true
	case "yellow":
		return tcell.ColorYellow, true
	case "blue":
		return tcell.ColorBlue, true
	case "magenta":
		return tcell.ColorDarkMagenta, true
	case "cyan":
		return tcell.ColorTeal, true
	case "white":
		return tcell.ColorWhite, true
	case "grey", "gray":
		return tcell.ColorGray, true
	case "darkgrey", "darkgray":
		return tcell.ColorDarkGray, true
	case "darkred":
		return tcell.ColorDarkRed, true
	case "darkgreen":
		return tcell.ColorDarkGreen, true
	case "darkblue":
		return tcell.ColorDarkBlue, true
	case "darkcyan":
		return tcell.ColorDarkCyan, true
	case "darkmagenta":
		return tcell.ColorPurple, true
	default:
		return tcell.ColorDefault, false
	}
}

func parseHexColor(hex string) (tcell.Color, bool) {
	hex = strings.TrimPrefix(hex, "#")

	var r, g, b int64
	var err error
	switch len(hex) {
	case 6:
		if r, err = strconv.ParseInt(hex[0:2], 16, 32); err != nil {
			return tcell.ColorDefault, false
		}
		if g, err = strconv.ParseInt(hex[2:4], 16, 32); err != nil {
			return tcell.ColorDefault, false
		}
		if b, err = strconv.ParseInt(hex[4:6], 16, 32); err != nil {
			return tcell.ColorDefault, false
		}
	case 3:
		if r, err = strconv.ParseInt(hex[0:1], 16, 32); err != nil {
			return tcell.ColorDefault, false
		}
		if g, err = strconv.ParseInt(hex[1:2], 16, 32); err != nil {
			return tcell.ColorDefault, false
		}
		if b, err = strconv.ParseInt(hex[2:3], 16, 32); err != nil {
			return tcell.ColorDefault, false
		}
		// 0xF -> 0xFF
		r, g, b = r*17, g*17, b*17
	default:
		return tcell.ColorDefault, false
	}

	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), true
}

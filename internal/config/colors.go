package config

// Colors maps UI element names to color values. A value is a named terminal
// color ("cyan", "darkgrey"), a hex string ("#333333", "#fa0"), or "none" to
// keep the terminal default (reverse video for the path bar).
type Colors struct {
	PathFg          string `toml:"path_fg"`
	PathBg          string `toml:"path_bg"`
	SelectedFg      string `toml:"selected_fg"`
	SelectedBg      string `toml:"selected_bg"`
	DirectoryFg     string `toml:"directory_fg"`
	PreviewBorderFg string `toml:"preview_border_fg"`
}

// DefaultColors returns the built-in color table.
func DefaultColors() Colors {
	return Colors{
		PathFg:          "none",
		PathBg:          "none",
		SelectedFg:      "green",
		SelectedBg:      "none",
		DirectoryFg:     "cyan",
		PreviewBorderFg: "darkgrey",
	}
}

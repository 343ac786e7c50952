package config

// Keybindings maps each logical action to the list of key specifications
// that trigger it. Key specs are lowercase names ("up", "enter", "space"),
// single characters, or "shift+" prefixed characters.
type Keybindings struct {
	MoveUp                []string `toml:"move_up"`
	MoveDown              []string `toml:"move_down"`
	MoveLeft              []string `toml:"move_left"`
	MoveRight             []string `toml:"move_right"`
	Enter                 []string `toml:"enter"`
	Back                  []string `toml:"back"`
	Home                  []string `toml:"home"`
	Select                []string `toml:"select"`
	ToggleHidden          []string `toml:"toggle_hidden"`
	ToggleHelp            []string `toml:"toggle_help"`
	TogglePreview         []string `toml:"toggle_preview"`
	ScrollPreviewUp       []string `toml:"scroll_preview_up"`
	ScrollPreviewDown     []string `toml:"scroll_preview_down"`
	ScrollPreviewFastUp   []string `toml:"scroll_preview_fast_up"`
	ScrollPreviewFastDown []string `toml:"scroll_preview_fast_down"`
	IncreasePreviewHeight []string `toml:"increase_preview_height"`
	DecreasePreviewHeight []string `toml:"decrease_preview_height"`
	FuzzyFind             []string `toml:"fuzzy_find"`
	Quit                  []string `toml:"quit"`
}

// DefaultKeybindings returns the built-in bindings, matching the help screen.
func DefaultKeybindings() Keybindings {
	return Keybindings{
		MoveUp:                []string{"up", "w"},
		MoveDown:              []string{"down", "s"},
		MoveLeft:              []string{"left", "a"},
		MoveRight:             []string{"right", "d"},
		Enter:                 []string{"enter", "l"},
		Back:                  []string{"backspace", "j", "b"},
		Home:                  []string{"h"},
		Select:                []string{"space"},
		ToggleHidden:          []string{"."},
		ToggleHelp:            []string{"?"},
		TogglePreview:         []string{"p"},
		ScrollPreviewUp:       []string{"i"},
		ScrollPreviewDown:     []string{"o"},
		ScrollPreviewFastUp:   []string{"shift+i"},
		ScrollPreviewFastDown: []string{"shift+o"},
		IncreasePreviewHeight: []string{"+", "="},
		DecreasePreviewHeight: []string{"-", "_"},
		FuzzyFind:             []string{"/"},
		Quit:                  []string{"q", "esc"},
	}
}

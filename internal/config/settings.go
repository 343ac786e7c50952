package config

// Settings holds the miscellaneous tunables from settings.toml.
type Settings struct {
	// ExitAfterEdit makes a successful editor run behave like selecting the
	// current directory: the hand-off file is written and the browser exits.
	ExitAfterEdit bool `toml:"exit_after_edit"`

	// PreviewScrollAmount is the line step for the normal preview scroll
	// actions. The fast variants always scroll a full preview page.
	PreviewScrollAmount int `toml:"preview_scroll_amount"`

	// ShowDirSlash appends a trailing slash to directory names in the grid.
	ShowDirSlash bool `toml:"show_dir_slash"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		ExitAfterEdit:       false,
		PreviewScrollAmount: 10,
		ShowDirSlash:        false,
	}
}

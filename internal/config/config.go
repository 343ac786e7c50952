// Package config loads the per-user configuration consumed by the browser
// core. Everything is read once at startup and treated as immutable for the
// session; the lone exception is the preview ratio file, which is rewritten
// whenever the user adjusts the preview height.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	appDirName = "gridls"

	keybindingsFile  = "keybindings.toml"
	colorsFile       = "colors.toml"
	settingsFile     = "settings.toml"
	previewRatioFile = "preview_ratio"

	// DefaultPreviewRatio is the share of the screen given to the preview
	// pane when no preview_ratio file exists.
	DefaultPreviewRatio = 0.5

	// MinPreviewRatio and MaxPreviewRatio bound user adjustments.
	MinPreviewRatio = 0.1
	MaxPreviewRatio = 0.9
)

// Config aggregates every external configuration value the core consumes.
// Warnings records non-fatal parse problems; the caller logs them once.
type Config struct {
	Keybindings  Keybindings
	Colors       Colors
	Settings     Settings
	PreviewRatio float64
	Warnings     []string
}

// Dir returns the per-user configuration directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appDirName), nil
}

// Load reads every config file from dir. It never fails: a missing or
// malformed file falls back to built-in defaults and leaves a warning.
func Load(dir string) Config {
	cfg := Config{
		Keybindings:  DefaultKeybindings(),
		Colors:       DefaultColors(),
		Settings:     DefaultSettings(),
		PreviewRatio: DefaultPreviewRatio,
	}

	loadTOML(dir, keybindingsFile, &cfg.Keybindings, &cfg.Warnings)
	loadTOML(dir, colorsFile, &cfg.Colors, &cfg.Warnings)
	loadTOML(dir, settingsFile, &cfg.Settings, &cfg.Warnings)

	if ratio, ok := loadPreviewRatio(dir, &cfg.Warnings); ok {
		cfg.PreviewRatio = ratio
	}
	cfg.PreviewRatio = ClampPreviewRatio(cfg.PreviewRatio)

	if cfg.Settings.PreviewScrollAmount < 1 {
		cfg.Warnings = append(cfg.Warnings,
			fmt.Sprintf("%s: preview_scroll_amount must be positive, using default", settingsFile))
		cfg.Settings.PreviewScrollAmount = DefaultSettings().PreviewScrollAmount
	}

	return cfg
}

// loadTOML decodes dir/name into v when the file exists. v already holds the
// defaults, so keys absent from the file keep their default values.
func loadTOML(dir, name string, v interface{}, warnings *[]string) {
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err != nil {
		return
	}
	if _, err := toml.DecodeFile(path, v); err != nil {
		*warnings = append(*warnings, fmt.Sprintf("%s: %v, using defaults", name, err))
	}
}

func loadPreviewRatio(dir string, warnings *[]string) (float64, bool) {
	path := filepath.Join(dir, previewRatioFile)
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	ratio, err := strconv.ParseFloat(strings.TrimSpace(string(content)), 64)
	if err != nil {
		*warnings = append(*warnings, fmt.Sprintf("%s: %v, using default", previewRatioFile, err))
		return 0, false
	}
	return ratio, true
}

// ClampPreviewRatio restricts a ratio to the renderable range.
func ClampPreviewRatio(ratio float64) float64 {
	if ratio < MinPreviewRatio {
		return MinPreviewRatio
	}
	if ratio > MaxPreviewRatio {
		return MaxPreviewRatio
	}
	return ratio
}

// SavePreviewRatio persists the preview height ratio for the next launch.
func SavePreviewRatio(dir string, ratio float64) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, previewRatioFile)
	return os.WriteFile(path, []byte(strconv.FormatFloat(ratio, 'f', -1, 64)), 0o644)
}

// WriteDefaults creates any config file that does not exist yet and returns
// the paths it wrote. Used by --install and safe to re-run.
func WriteDefaults(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create config directory: %w", err)
	}

	var written []string

	files := []struct {
		name string
		v    interface{}
	}{
		{keybindingsFile, DefaultKeybindings()},
		{colorsFile, DefaultColors()},
		{settingsFile, DefaultSettings()},
	}
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		out, err := os.Create(path)
		if err != nil {
			return written, fmt.Errorf("cannot create %s: %w", f.name, err)
		}
		encodeErr := toml.NewEncoder(out).Encode(f.v)
		closeErr := out.Close()
		if encodeErr != nil {
			return written, fmt.Errorf("cannot encode %s: %w", f.name, encodeErr)
		}
		if closeErr != nil {
			return written, closeErr
		}
		written = append(written, path)
	}

	ratioPath := filepath.Join(dir, previewRatioFile)
	if _, err := os.Stat(ratioPath); err != nil {
		if err := SavePreviewRatio(dir, DefaultPreviewRatio); err != nil {
			return written, fmt.Errorf("cannot write %s: %w", previewRatioFile, err)
		}
		written = append(written, ratioPath)
	}

	return written, nil
}

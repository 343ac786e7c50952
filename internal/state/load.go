package state

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/unicode/norm"
)

// LoadDirectory replaces the entry list with the sorted, hidden-filtered
// listing of dirPath and resets the selection. On failure the prior state is
// left untouched.
func LoadDirectory(s *AppState, dirPath string) error {
	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("cannot resolve directory %s: %w", dirPath, err)
	}

	dirEntries, err := os.ReadDir(absPath)
	if err != nil {
		return fmt.Errorf("cannot read directory %s: %w", absPath, err)
	}

	entries := make([]FileEntry, 0, len(dirEntries))
	for _, e := range dirEntries {
		rawName := e.Name()
		fullPath := filepath.Join(absPath, rawName)

		isDir := e.IsDir()
		if e.Type()&os.ModeSymlink != 0 {
			// Symlinked directories navigate like directories.
			if targetInfo, err := os.Stat(fullPath); err == nil {
				isDir = targetInfo.IsDir()
			}
		}

		entry := FileEntry{
			Name:     norm.NFC.String(rawName),
			FullPath: fullPath,
			IsDir:    isDir,
		}
		if info, err := e.Info(); err == nil {
			entry.Size = info.Size()
			entry.Modified = info.ModTime()
			entry.Mode = info.Mode()
		}

		if !s.ShowHidden && entry.IsHidden() {
			continue
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})

	s.CurrentDir = absPath
	s.Entries = entries
	s.Selected = 0
	s.UpdateLayout()
	return nil
}

// RefreshDirectory reloads the current directory, keeping the previously
// selected path selected when it survives the reload.
func RefreshDirectory(s *AppState) error {
	var selectedPath string
	if sel := s.SelectedEntry(); sel != nil {
		selectedPath = sel.FullPath
	}

	if err := LoadDirectory(s, s.CurrentDir); err != nil {
		return err
	}
	reselectPath(s, selectedPath)
	return nil
}

// ToggleHidden flips the hidden-entry filter and reloads the current
// directory, keeping the previously selected path selected when it survives
// the reload.
func ToggleHidden(s *AppState) error {
	var selectedPath string
	if sel := s.SelectedEntry(); sel != nil {
		selectedPath = sel.FullPath
	}

	s.ShowHidden = !s.ShowHidden
	if err := LoadDirectory(s, s.CurrentDir); err != nil {
		s.ShowHidden = !s.ShowHidden
		return err
	}

	reselectPath(s, selectedPath)
	return nil
}

func reselectPath(s *AppState, path string) {
	if path == "" {
		return
	}
	for i, e := range s.Entries {
		if e.FullPath == path {
			s.Selected = i
			return
		}
	}
}

// EnterDirectory descends into the selected directory, pushing the current
// location onto the back-stack. Selecting a file is a no-op here; opening
// files is the Controller's concern.
func EnterDirectory(s *AppState) error {
	sel := s.SelectedEntry()
	if sel == nil || !sel.IsDir {
		return nil
	}

	prev := dirFrame{dir: s.CurrentDir, selected: s.Selected}
	if err := LoadDirectory(s, sel.FullPath); err != nil {
		return err
	}
	s.backStack = append(s.backStack, prev)
	return nil
}

// GoBack pops the back-stack and returns to the recorded directory,
// restoring the previous selection when still in range. With an empty stack
// it falls back to the parent directory.
func GoBack(s *AppState) error {
	if len(s.backStack) == 0 {
		parent := filepath.Dir(s.CurrentDir)
		if parent == s.CurrentDir {
			return nil
		}
		return LoadDirectory(s, parent)
	}

	frame := s.backStack[len(s.backStack)-1]
	if err := LoadDirectory(s, frame.dir); err != nil {
		return err
	}
	s.backStack = s.backStack[:len(s.backStack)-1]

	if frame.selected >= 0 && frame.selected < len(s.Entries) {
		s.Selected = frame.selected
	}
	return nil
}

// GoHome jumps to the user's home directory and clears the back-stack.
func GoHome(s *AppState) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot determine home directory: %w", err)
	}
	if err := LoadDirectory(s, home); err != nil {
		return err
	}
	s.backStack = nil
	return nil
}

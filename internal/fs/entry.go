package fs

import (
	"os"
	"time"
)

// Entry represents a single file or directory shown in the grid.
type Entry struct {
	Name     string
	FullPath string
	IsDir    bool
	Size     int64
	Modified time.Time
	Mode     os.FileMode
}

// IsHidden reports whether the entry should be treated as hidden.
func (e Entry) IsHidden() bool {
	return IsHidden(e.FullPath, e.Name)
}

// DisplayName returns the grid label for the entry. Directories carry a
// trailing slash marker when dirSlash is enabled.
func (e Entry) DisplayName(dirSlash bool) string {
	if e.IsDir && dirSlash {
		return e.Name + "/"
	}
	return e.Name
}

//go:build !windows

package fs

// IsHidden reports whether an entry is hidden. On Unix-likes that is the
// dot-prefix convention; the full path is unused.
func IsHidden(_ string, name string) bool {
	return len(name) > 0 && name[0] == '.'
}

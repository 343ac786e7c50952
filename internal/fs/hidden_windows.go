//go:build windows

package fs

import "syscall"

const fileAttributeHidden = 0x02

// IsHidden reports whether an entry is hidden. On Windows that is the
// HIDDEN file attribute; dot-prefixed names are treated as hidden too so
// cross-platform dotfiles behave consistently, and the attribute check
// degrades to the dot convention when the path cannot be queried.
func IsHidden(fullPath string, name string) bool {
	dotHidden := len(name) > 0 && name[0] == '.'

	target := fullPath
	if target == "" {
		target = name
	}
	if target == "" {
		return false
	}

	ptr, err := syscall.UTF16PtrFromString(target)
	if err != nil {
		return dotHidden
	}
	attrs, err := syscall.GetFileAttributes(ptr)
	if err != nil {
		return dotHidden
	}
	return dotHidden || attrs&fileAttributeHidden != 0
}

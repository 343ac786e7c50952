package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const handoffFileName = "gridls_cd"

// HandoffPath returns the fixed location of the shell hand-off file. The
// wrapper function installed by Install reads it after the process exits.
func HandoffPath() string {
	return filepath.Join(os.TempDir(), handoffFileName)
}

// RemoveStaleHandoff deletes any hand-off file a previous run left behind
// at path. A missing file is not an error.
func RemoveStaleHandoff(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// WriteHandoff records dir at path as the directory the wrapping shell
// should cd into. Failure here is fatal to the hand-off contract, so
// callers must propagate it and exit non-zero.
func WriteHandoff(path, dir string) error {
	if err := os.WriteFile(path, []byte(dir), 0o600); err != nil {
		return fmt.Errorf("cannot write hand-off file: %w", err)
	}
	return nil
}

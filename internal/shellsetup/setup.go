package shellsetup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kk-code-lab/gridls/internal/config"
)

// wrapperMarker identifies an already installed shell function so repeated
// installs never duplicate it.
const wrapperMarker = "gridls() {"

// Snippet returns the shell function users wrap the binary with. The
// function runs the browser, then reads and deletes the hand-off file:
// directories are cd'ed into, anything else is echoed.
func Snippet(executable string) string {
	quoted := strconv.Quote(executable)
	return fmt.Sprintf(`
gridls() {
    command %s "$@"
    gridls_status=$?

    gridls_result="${TMPDIR:-/tmp}/gridls_cd"
    if [ -f "$gridls_result" ] && [ ! -L "$gridls_result" ]; then
        gridls_dest=$(cat "$gridls_result" 2>/dev/null)
        rm -f "$gridls_result"
        if [ -d "$gridls_dest" ]; then
            cd "$gridls_dest"
        elif [ -n "$gridls_dest" ]; then
            echo "$gridls_dest"
        fi
    fi
    return $gridls_status
}
`, quoted)
}

// Install writes the default configuration files and appends the wrapper
// function to the rc files found in home. When no rc file exists the
// snippet is printed to out so users can place it themselves.
func Install(home, configDir string, out io.Writer) error {
	written, err := config.WriteDefaults(configDir)
	if err != nil {
		return fmt.Errorf("cannot write default config: %w", err)
	}
	for _, path := range written {
		fmt.Fprintf(out, "created %s\n", path)
	}

	executable, err := os.Executable()
	if err != nil {
		executable = "gridls"
	}
	snippet := Snippet(executable)

	installed := false
	for _, rc := range []string{".zshrc", ".bashrc"} {
		rcPath := filepath.Join(home, rc)
		ok, err := appendToRC(rcPath, snippet)
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintf(out, "installed shell function in %s\n", rcPath)
			installed = true
		}
	}

	if !installed {
		fmt.Fprintf(out, "no .zshrc or .bashrc found; add this to your shell rc:\n%s", snippet)
	}
	return nil
}

// appendToRC adds the snippet to an existing rc file. Missing files are
// skipped and files already carrying the wrapper are left alone.
func appendToRC(rcPath, snippet string) (bool, error) {
	data, err := os.ReadFile(rcPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("cannot read %s: %w", rcPath, err)
	}

	if strings.Contains(string(data), wrapperMarker) {
		return true, nil
	}

	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return false, fmt.Errorf("cannot open %s: %w", rcPath, err)
	}
	defer f.Close()

	if _, err := f.WriteString(snippet); err != nil {
		return false, fmt.Errorf("cannot update %s: %w", rcPath, err)
	}
	return true, nil
}

package app

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// EditorLauncher opens a file in an external editor, blocking until the
// editor exits. Tests substitute a fake.
type EditorLauncher interface {
	Open(path string) error
}

// systemEditorLauncher suspends the tcell screen, runs the configured
// editor attached to the terminal, and resumes.
type systemEditorLauncher struct {
	screen tcell.Screen
}

func newSystemEditorLauncher(screen tcell.Screen) *systemEditorLauncher {
	return &systemEditorLauncher{screen: screen}
}

func (l *systemEditorLauncher) Open(path string) error {
	editorCmd, ok := detectEditorCommand()
	if !ok {
		return fmt.Errorf("no editor available: set $EDITOR or $VISUAL")
	}

	args := make([]string, len(editorCmd)+1)
	copy(args, editorCmd)
	args[len(editorCmd)] = path

	useTTY := runtime.GOOS != "windows"
	var tty *os.File
	if useTTY {
		var err error
		tty, err = os.OpenFile("/dev/tty", os.O_RDWR, 0)
		if err != nil {
			return l.openFallback(args)
		}
		defer func() {
			_ = tty.Close()
		}()
	}

	if err := l.screen.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}

	cmd := exec.Command(args[0], args[1:]...)
	if useTTY {
		cmd.Stdin = tty
		cmd.Stdout = tty
		cmd.Stderr = tty
	} else {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	runErr := cmd.Run()

	if err := l.screen.Resume(); err != nil {
		return fmt.Errorf("failed to resume screen: %w", err)
	}
	l.screen.Sync()
	if runErr != nil {
		return fmt.Errorf("editor exited with error: %w", runErr)
	}
	return nil
}

func (l *systemEditorLauncher) openFallback(args []string) error {
	if err := l.screen.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}
	defer func() {
		_ = l.screen.Resume()
		l.screen.Sync()
	}()

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func detectEditorCommand() ([]string, bool) {
	return detectEditorCommandInternal(os.Getenv, exec.LookPath)
}

func detectEditorCommandInternal(getenv func(string) string, lookPath func(string) (string, error)) ([]string, bool) {
	candidates := []string{getenv("VISUAL"), getenv("EDITOR")}

	for _, candidate := range candidates {
		args := parseEditorCommand(candidate)
		if len(args) == 0 {
			continue
		}
		if resolved, ok := resolveEditorExecutable(args[0], lookPath); ok {
			args[0] = resolved
			return args, true
		}
	}

	return nil, false
}

// parseEditorCommand splits an $EDITOR value into argv, honoring single and
// double quotes so values like `code --wait` or `"my editor" -f` work.
func parseEditorCommand(cmd string) []string {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return nil
	}

	var args []string
	var current strings.Builder
	inSingle := false
	inDouble := false

	for _, r := range cmd {
		switch r {
		case '\'':
			if inDouble {
				current.WriteRune(r)
			} else {
				inSingle = !inSingle
			}
			continue
		case '"':
			if inSingle {
				current.WriteRune(r)
			} else {
				inDouble = !inDouble
			}
			continue
		default:
			if !inSingle && !inDouble && unicode.IsSpace(r) {
				if current.Len() > 0 {
					args = append(args, current.String())
					current.Reset()
				}
				continue
			}
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		args = append(args, current.String())
	}

	if len(args) > 0 {
		args[0] = expandUserPath(args[0])
	}

	return args
}

func expandUserPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	if len(path) == 1 {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	}

	sep := path[1]
	if sep != '/' && sep != '\\' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[2:])
}

func resolveEditorExecutable(cmd string, lookPath func(string) (string, error)) (string, bool) {
	if cmd == "" {
		return "", false
	}

	if expanded := expandUserPath(cmd); expanded != cmd {
		cmd = expanded
	}

	path, err := lookPath(cmd)
	if err != nil {
		return "", false
	}
	return path, true
}

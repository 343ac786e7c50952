package shellsetup

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSnippetQuotesExecutable(t *testing.T) {
	snippet := Snippet("/usr/local/bin/grid ls")
	if !strings.Contains(snippet, `"/usr/local/bin/grid ls"`) {
		t.Fatalf("executable path should be quoted:\n%s", snippet)
	}
	if !strings.Contains(snippet, "gridls_cd") {
		t.Fatalf("snippet should reference the hand-off file:\n%s", snippet)
	}
	if !strings.Contains(snippet, wrapperMarker) {
		t.Fatalf("snippet should carry the install marker:\n%s", snippet)
	}
}

func TestInstallAppendsToExistingRC(t *testing.T) {
	home := t.TempDir()
	rcPath := filepath.Join(home, ".zshrc")
	if err := os.WriteFile(rcPath, []byte("# existing config\n"), 0o644); err != nil {
		t.Fatalf("write rc: %v", err)
	}

	var out bytes.Buffer
	configDir := filepath.Join(home, ".config", "gridls")
	if err := Install(home, configDir, &out); err != nil {
		t.Fatalf("install: %v", err)
	}

	data, err := os.ReadFile(rcPath)
	if err != nil {
		t.Fatalf("read rc: %v", err)
	}
	if !strings.Contains(string(data), wrapperMarker) {
		t.Fatalf("rc should contain the wrapper function:\n%s", data)
	}
	if !strings.HasPrefix(string(data), "# existing config\n") {
		t.Fatalf("existing rc content should be preserved:\n%s", data)
	}

	for _, name := range []string{"keybindings.toml", "colors.toml", "settings.toml", "preview_ratio"} {
		if _, err := os.Stat(filepath.Join(configDir, name)); err != nil {
			t.Fatalf("expected default config file %s: %v", name, err)
		}
	}
}

func TestInstallIsIdempotent(t *testing.T) {
	home := t.TempDir()
	rcPath := filepath.Join(home, ".bashrc")
	if err := os.WriteFile(rcPath, []byte(""), 0o644); err != nil {
		t.Fatalf("write rc: %v", err)
	}

	configDir := filepath.Join(home, ".config", "gridls")
	var out bytes.Buffer
	if err := Install(home, configDir, &out); err != nil {
		t.Fatalf("first install: %v", err)
	}
	first, err := os.ReadFile(rcPath)
	if err != nil {
		t.Fatalf("read rc: %v", err)
	}

	if err := Install(home, configDir, &out); err != nil {
		t.Fatalf("second install: %v", err)
	}
	second, err := os.ReadFile(rcPath)
	if err != nil {
		t.Fatalf("read rc: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatalf("second install must not duplicate the wrapper")
	}
}

func TestInstallWithoutRCPrintsSnippet(t *testing.T) {
	home := t.TempDir()

	var out bytes.Buffer
	if err := Install(home, filepath.Join(home, "cfg"), &out); err != nil {
		t.Fatalf("install: %v", err)
	}

	if !strings.Contains(out.String(), wrapperMarker) {
		t.Fatalf("snippet should be printed when no rc file exists:\n%s", out.String())
	}
}

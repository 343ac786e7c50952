package highlight

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestPlainPreservesLineCount(t *testing.T) {
	lines := []string{"one", "", "three"}
	out := Plain(lines)
	if len(out) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(out))
	}
	if len(out[1]) != 0 {
		t.Errorf("empty input line should yield empty Line, got %v", out[1])
	}
	if LineText(out[2]) != "three" {
		t.Errorf("text mangled: %q", LineText(out[2]))
	}
}

func TestHighlightGoSource(t *testing.T) {
	h := New("monokai")
	lines := []string{"package main", "", "func main() {}"}

	out := h.Highlight("main.go", lines)

	if len(out) != len(lines) {
		t.Fatalf("expected %d lines, got %d", len(lines), len(out))
	}
	for i := range lines {
		if LineText(out[i]) != lines[i] {
			t.Errorf("line %d text changed: %q != %q", i, LineText(out[i]), lines[i])
		}
	}

	styled := false
	for _, span := range out[0] {
		if span.Style != tcell.StyleDefault {
			styled = true
		}
	}
	if !styled {
		t.Error("expected at least one styled span on a Go keyword line")
	}
}

func TestHighlightUnknownExtensionIsPlain(t *testing.T) {
	h := New("monokai")
	lines := []string{"just some text"}

	out := h.Highlight("notes.qqq", lines)

	if len(out) != 1 {
		t.Fatalf("expected 1 line, got %d", len(out))
	}
	if len(out[0]) != 1 || out[0][0].Style != tcell.StyleDefault {
		t.Errorf("unknown extension must stay unstyled: %v", out[0])
	}
}

func TestHighlightUnknownStyleName(t *testing.T) {
	h := New("definitely-not-a-style")
	out := h.Highlight("main.go", []string{"package main"})
	if LineText(out[0]) != "package main" {
		t.Errorf("fallback style mangled text: %q", LineText(out[0]))
	}
}

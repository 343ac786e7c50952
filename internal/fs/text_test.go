package fs

import "testing"

func TestIsTextFile(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content []byte
		want    bool
	}{
		{
			name:    "plain ascii",
			path:    "notes.txt",
			content: []byte("hello world\n"),
			want:    true,
		},
		{
			name:    "empty file is text",
			path:    "empty",
			content: nil,
			want:    true,
		},
		{
			name:    "nul byte means binary",
			path:    "data",
			content: []byte{0x01, 0x00, 0x02, 0x03},
			want:    false,
		},
		{
			name:    "binary extension short-circuits",
			path:    "archive.zip",
			content: []byte("PK looks like text"),
			want:    false,
		},
		{
			name:    "utf8 bom",
			path:    "bom.txt",
			content: []byte{0xEF, 0xBB, 0xBF, 'h', 'i'},
			want:    true,
		},
		{
			name:    "utf16 le bom",
			path:    "wide.txt",
			content: []byte{0xFF, 0xFE, 'h', 0x00},
			want:    true,
		},
		{
			name:    "valid utf8 multibyte",
			path:    "unicode.txt",
			content: []byte("żółć\n"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTextFile(tt.path, tt.content); got != tt.want {
				t.Errorf("IsTextFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestEntryDisplayName(t *testing.T) {
	dir := Entry{Name: "src", IsDir: true}
	if got := dir.DisplayName(true); got != "src/" {
		t.Errorf("expected trailing slash, got %q", got)
	}
	if got := dir.DisplayName(false); got != "src" {
		t.Errorf("expected bare name, got %q", got)
	}
	file := Entry{Name: "main.go"}
	if got := file.DisplayName(true); got != "main.go" {
		t.Errorf("files never get a slash, got %q", got)
	}
}

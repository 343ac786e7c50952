package fs

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const (
	textDetectionSampleSize      = 4096
	nonPrintableThresholdPercent = 30
)

var binaryExtensions = map[string]struct{}{
	".7z":    {},
	".bin":   {},
	".bmp":   {},
	".bz2":   {},
	".class": {},
	".dll":   {},
	".dylib": {},
	".exe":   {},
	".gif":   {},
	".gz":    {},
	".ico":   {},
	".jar":   {},
	".jpeg":  {},
	".jpg":   {},
	".mp3":   {},
	".mp4":   {},
	".o":     {},
	".otf":   {},
	".pdf":   {},
	".png":   {},
	".so":    {},
	".tar":   {},
	".tgz":   {},
	".ttf":   {},
	".wasm":  {},
	".woff":  {},
	".woff2": {},
	".xz":    {},
	".zip":   {},
}

// IsTextFile determines whether content looks like text rather than binary.
// The path is used to short-circuit obvious binary extensions before sniffing.
func IsTextFile(path string, content []byte) bool {
	if looksBinaryByExtension(path) {
		return false
	}

	if len(content) == 0 {
		return true
	}

	sample := content
	if len(sample) > textDetectionSampleSize {
		sample = sample[:textDetectionSampleSize]
	}

	if hasUnicodeBOM(sample) {
		return true
	}

	if bytes.IndexByte(sample, 0x00) != -1 {
		return false
	}

	if utf8.Valid(sample) {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isCommonTextByte(b) {
			nonPrintable++
		}
	}
	return nonPrintable*100/len(sample) < nonPrintableThresholdPercent
}

// ReadTextSample returns a small sample of the file for text/binary sniffing.
func ReadTextSample(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	return io.ReadAll(io.LimitReader(f, textDetectionSampleSize))
}

func looksBinaryByExtension(path string) bool {
	if path == "" {
		return false
	}
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := binaryExtensions[ext]
	return ok
}

func isCommonTextByte(b byte) bool {
	switch {
	case b == 0x09 || b == 0x0A || b == 0x0D:
		return true
	case b >= 0x20 && b <= 0x7E:
		return true
	case b == 0x1B:
		return true
	case b >= 0x80:
		return true
	default:
		return false
	}
}

func hasUnicodeBOM(sample []byte) bool {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return true
	}
	if len(sample) >= 2 {
		if (sample[0] == 0xFF && sample[1] == 0xFE) || (sample[0] == 0xFE && sample[1] == 0xFF) {
			return true
		}
	}
	return false
}

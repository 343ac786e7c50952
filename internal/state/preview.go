package state

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	fsutil "github.com/kk-code-lab/gridls/internal/fs"
	"github.com/kk-code-lab/gridls/internal/highlight"
)

const (
	// cacheSizeThreshold is the largest file fully read and kept as a
	// rendered line sequence. Larger files are re-scanned from the start on
	// every window request; the repeated I/O is the accepted cost of
	// bounding memory.
	cacheSizeThreshold = 256 * 1024

	// maxCachedFiles bounds the rendered-line cache; the least recently
	// used file is evicted first.
	maxCachedFiles = 32

	previewTabWidth = 4
)

type cachedLines struct {
	lines   []highlight.Line
	lastUse int
}

// PreviewManager lazily loads, highlights, and caches the visible window of
// a file. Scroll offsets persist per path for the whole session; rendered
// lines are cached only for files under the size threshold.
type PreviewManager struct {
	highlighter highlight.Highlighter
	scroll      map[string]int
	cache       map[string]*cachedLines
	useClock    int
}

// NewPreviewManager builds a manager around the given highlighter.
func NewPreviewManager(h highlight.Highlighter) *PreviewManager {
	return &PreviewManager{
		highlighter: h,
		scroll:      make(map[string]int),
		cache:       make(map[string]*cachedLines),
	}
}

// ScrollBy adjusts the remembered scroll offset for path. The lower bound
// is enforced here; the upper bound is clamped by Window, which knows the
// window height and, for cached files, the total line count.
func (p *PreviewManager) ScrollBy(path string, delta int) {
	offset := p.scroll[path] + delta
	if offset < 0 {
		offset = 0
	}
	p.scroll[path] = offset
}

// ScrollOffset returns the remembered offset for path.
func (p *PreviewManager) ScrollOffset(path string) int {
	return p.scroll[path]
}

// Window returns the clamped scroll offset and the rendered lines visible
// in a pane of the given height. Read failures never propagate: they become
// a single placeholder line.
func (p *PreviewManager) Window(path string, height int) (int, []highlight.Line) {
	if height <= 0 {
		return 0, nil
	}

	if cached, ok := p.cache[path]; ok {
		p.useClock++
		cached.lastUse = p.useClock
		return p.sliceCached(path, cached.lines, height)
	}

	sample, err := fsutil.ReadTextSample(path)
	if err != nil {
		return 0, placeholderLine(err)
	}
	textual := fsutil.IsTextFile(path, sample)

	info, err := os.Stat(path)
	if err != nil {
		return 0, placeholderLine(err)
	}

	if info.Size() <= cacheSizeThreshold {
		lines, err := readAllLines(path)
		if err != nil {
			return 0, placeholderLine(err)
		}
		rendered := p.render(path, lines, textual)
		p.store(path, rendered)
		return p.sliceCached(path, rendered, height)
	}

	return p.streamWindow(path, height, textual)
}

// streamWindow serves a window from a file too large to cache: skip the
// scrolled-past lines, read up to height lines, and retry once with a
// pulled-back offset when the read came up short.
func (p *PreviewManager) streamWindow(path string, height int, textual bool) (int, []highlight.Line) {
	scroll := p.scroll[path]
	if scroll < 0 {
		scroll = 0
	}

	lines, err := readLineWindow(path, scroll, height)
	if err != nil {
		return 0, placeholderLine(err)
	}

	if len(lines) < height && scroll > 0 {
		scroll -= height - len(lines)
		if scroll < 0 {
			scroll = 0
		}
		lines, err = readLineWindow(path, scroll, height)
		if err != nil {
			return 0, placeholderLine(err)
		}
	}

	p.scroll[path] = scroll
	return scroll, p.render(path, lines, textual)
}

func (p *PreviewManager) sliceCached(path string, lines []highlight.Line, height int) (int, []highlight.Line) {
	scroll := p.scroll[path]
	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if scroll > maxScroll {
		scroll = maxScroll
	}
	if scroll < 0 {
		scroll = 0
	}
	p.scroll[path] = scroll

	end := scroll + height
	if end > len(lines) {
		end = len(lines)
	}
	return scroll, lines[scroll:end]
}

func (p *PreviewManager) render(path string, lines []string, textual bool) []highlight.Line {
	if textual {
		return p.highlighter.Highlight(path, lines)
	}
	return highlight.Plain(lines)
}

func (p *PreviewManager) store(path string, lines []highlight.Line) {
	if len(p.cache) >= maxCachedFiles {
		oldestPath := ""
		oldestUse := int(^uint(0) >> 1)
		for cachedPath, c := range p.cache {
			if c.lastUse < oldestUse {
				oldestUse = c.lastUse
				oldestPath = cachedPath
			}
		}
		delete(p.cache, oldestPath)
	}
	p.useClock++
	p.cache[path] = &cachedLines{lines: lines, lastUse: p.useClock}
}

func placeholderLine(err error) []highlight.Line {
	return highlight.Plain([]string{fmt.Sprintf("(cannot read file: %v)", err)})
}

func readAllLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), cacheSizeThreshold+1)
	for scanner.Scan() {
		lines = append(lines, sanitizeLine(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func readLineWindow(path string, skip, count int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	lines := make([]string, 0, count)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for i := 0; scanner.Scan(); i++ {
		if i < skip {
			continue
		}
		lines = append(lines, sanitizeLine(scanner.Text()))
		if len(lines) == count {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// sanitizeLine expands tabs and drops control characters that would corrupt
// terminal cell positioning.
func sanitizeLine(line string) string {
	if !strings.ContainsAny(line, "\t\r\x00") && !hasControlRunes(line) {
		return line
	}
	var sb strings.Builder
	for _, r := range line {
		switch {
		case r == '\t':
			sb.WriteString(strings.Repeat(" ", previewTabWidth))
		case r == '\r':
		case r < 0x20 || r == 0x7F:
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func hasControlRunes(line string) bool {
	for _, r := range line {
		if r < 0x20 || r == 0x7F {
			return true
		}
	}
	return false
}

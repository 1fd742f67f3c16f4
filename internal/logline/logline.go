package logline

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
)

// Line is one loaded log line. Lines are immutable after load and keep the
// order they had in the source.
type Line struct {
	Text  string
	Level Level
}

// HasLevel reports whether the line carries a recognized severity marker.
func (l Line) HasLevel() bool {
	return l.Level != LevelNone
}

// Detector extracts a severity level from raw line text.
//
// The default convention recognizes a bracketed "[LEVEL]" token anywhere in
// the line, or a bare "LEVEL" / "LEVEL:" token at the start. A custom
// pattern replaces both; its first capture group must be the level name.
type Detector struct {
	pattern *regexp.Regexp
}

var (
	bracketRe = regexp.MustCompile(`\[([A-Za-z]+)\]`)
	leadingRe = regexp.MustCompile(`^([A-Za-z]+):?\s`)
)

// NewDetector returns a detector using the default marker convention.
func NewDetector() *Detector {
	return &Detector{}
}

// NewDetectorPattern returns a detector driven by a custom regex. The
// expression must contain at least one capture group naming the level.
func NewDetectorPattern(expr string) (*Detector, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile marker pattern: %w", err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("marker pattern %q has no capture group", expr)
	}
	return &Detector{pattern: re}, nil
}

// Detect returns the severity for a raw line, or LevelNone when no marker
// is recognized.
func (d *Detector) Detect(text string) Level {
	if d != nil && d.pattern != nil {
		if m := d.pattern.FindStringSubmatch(text); m != nil {
			if lvl, ok := ParseLevel(m[1]); ok {
				return lvl
			}
		}
		return LevelNone
	}
	if m := bracketRe.FindStringSubmatch(text); m != nil {
		if lvl, ok := ParseLevel(m[1]); ok {
			return lvl
		}
	}
	if m := leadingRe.FindStringSubmatch(text); m != nil {
		if lvl, ok := ParseLevel(m[1]); ok {
			return lvl
		}
	}
	return LevelNone
}

// Load reads every line from r in order, tagging each with its detected
// level. A nil detector uses the default convention.
func Load(r io.Reader, d *Detector) ([]Line, error) {
	var lines []Line
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		text := scanner.Text()
		lines = append(lines, Line{Text: text, Level: d.Detect(text)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return lines, nil
}

// LoadFile loads the file at path. When maxLines is positive only that many
// lines from the end of the file are kept, using a fixed-size ring so memory
// stays bounded by maxLines rather than file size.
func LoadFile(path string, d *Detector, maxLines int) ([]Line, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	if maxLines <= 0 {
		return Load(file, d)
	}

	ring := make([]Line, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		text := scanner.Text()
		ring[idx] = Line{Text: text, Level: d.Detect(text)}
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]Line, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

package logline

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"DEBUG", LevelDebug, true},
		{"debug", LevelDebug, true},
		{"INFO", LevelInfo, true},
		{"WARNING", LevelWarning, true},
		{"WARN", LevelWarning, true},
		{"ERROR", LevelError, true},
		{"ERR", LevelError, true},
		{"CRITICAL", LevelCritical, true},
		{"CRIT", LevelCritical, true},
		{"FATAL", LevelCritical, true},
		{"  info  ", LevelInfo, true},
		{"NOTICE", LevelNone, false},
		{"", LevelNone, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseLevel(tc.in)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("ParseLevel(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	if got := LevelWarning.String(); got != "WARNING" {
		t.Fatalf("LevelWarning.String() = %q, want WARNING", got)
	}
	if got := LevelNone.String(); got != "NONE" {
		t.Fatalf("LevelNone.String() = %q, want NONE", got)
	}
}

func TestDetect_DefaultConvention(t *testing.T) {
	d := NewDetector()
	cases := []struct {
		name string
		in   string
		want Level
	}{
		{"bracketed", "2024-03-01 10:00:00,123 [ERROR] worker - boom", LevelError},
		{"bracketed_alias", "[WARN] low disk", LevelWarning},
		{"leading_bare", "INFO starting up", LevelInfo},
		{"leading_colon", "CRITICAL: out of memory", LevelCritical},
		{"continuation", "    at main.run(main.go:42)", LevelNone},
		{"unknown_bracket", "[HTTP] GET /healthz", LevelNone},
		{"level_word_mid_line", "retrying after error from upstream", LevelNone},
		{"empty", "", LevelNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.Detect(tc.in); got != tc.want {
				t.Fatalf("Detect(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDetect_CustomPattern(t *testing.T) {
	d, err := NewDetectorPattern(`level=(\w+)`)
	if err != nil {
		t.Fatalf("NewDetectorPattern returned error: %v", err)
	}
	if got := d.Detect(`ts=123 level=warn msg="slow"`); got != LevelWarning {
		t.Fatalf("Detect = %v, want %v", got, LevelWarning)
	}
	// Custom pattern replaces the default convention entirely.
	if got := d.Detect("[ERROR] boom"); got != LevelNone {
		t.Fatalf("Detect = %v, want %v", got, LevelNone)
	}
}

func TestNewDetectorPattern_Invalid(t *testing.T) {
	if _, err := NewDetectorPattern(`level=[`); err == nil {
		t.Fatalf("NewDetectorPattern returned nil error, want compile error")
	}
	if _, err := NewDetectorPattern(`ERROR`); err == nil {
		t.Fatalf("NewDetectorPattern returned nil error, want missing-group error")
	}
}

func TestLoad_TagsLinesInOrder(t *testing.T) {
	src := strings.Join([]string{
		"[INFO] a",
		"[WARNING] b",
		"  continuation",
		"[CRITICAL] d",
	}, "\n")

	lines, err := Load(strings.NewReader(src), NewDetector())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := []Line{
		{Text: "[INFO] a", Level: LevelInfo},
		{Text: "[WARNING] b", Level: LevelWarning},
		{Text: "  continuation", Level: LevelNone},
		{Text: "[CRITICAL] d", Level: LevelCritical},
	}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("Load = %+v, want %+v", lines, want)
	}
}

func TestLoadFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	var content strings.Builder
	var expectedAll []Line
	for i := 1; i <= 10; i++ {
		text := fmt.Sprintf("[INFO] line %d", i)
		content.WriteString(text + "\n")
		expectedAll = append(expectedAll, Line{Text: text, Level: LevelInfo})
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []Line
	}{
		{"read all (0)", 0, expectedAll},
		{"read all (negative)", -1, expectedAll},
		{"tail partial (5)", 5, expectedAll[5:]},
		{"tail exactly all (10)", 10, expectedAll},
		{"tail more than exists (20)", 20, expectedAll},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadFile(logPath, NewDetector(), tt.maxLines)
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("LoadFile() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.log"), NewDetector(), 0)
	if err == nil {
		t.Fatalf("LoadFile returned nil error, want open error")
	}
	if !strings.Contains(err.Error(), "open log") {
		t.Fatalf("LoadFile error = %q, want it to mention open log", err.Error())
	}
}

package view

import (
	"errors"
	"reflect"
	"testing"

	"github.com/wtrock/loupe/internal/logline"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Command
	}{
		{"increase", "+", Increase{}},
		{"decrease", "-", Decrease{}},
		{"reset", "r", Reset{}},
		{"quit", "q", Quit{}},
		{"digit", "3", SetLevel{Level: logline.LevelError}},
		{"digit_zero", "0", SetLevel{Level: logline.LevelDebug}},
		{"range", "2-5", SetRange{Level: logline.LevelWarning, Context: 5}},
		{"range_zero_context", "4-0", SetRange{Level: logline.LevelCritical, Context: 0}},
		{"find", "f timeout", Find{Term: "timeout"}},
		{"find_multiword", "f connection reset", Find{Term: "connection reset"}},
		{"whitespace", "  +  ", Increase{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCommand(tc.in)
			if err != nil {
				t.Fatalf("ParseCommand(%q) returned error: %v", tc.in, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParseCommand(%q) = %#v, want %#v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseCommand_Malformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"unknown_word", "hello"},
		{"level_too_high", "7"},
		{"negative_level", "-1"},
		{"range_bad_level", "9-3"},
		{"range_bad_context", "2-x"},
		{"range_negative_context", "2--1"},
		{"find_without_term", "f"},
		{"find_blank_term", "f    "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCommand(tc.in)
			if err == nil {
				t.Fatalf("ParseCommand(%q) returned nil error, want CommandError", tc.in)
			}
			var cmdErr *CommandError
			if !errors.As(err, &cmdErr) {
				t.Fatalf("ParseCommand(%q) error type = %T, want *CommandError", tc.in, err)
			}
		})
	}
}

func TestApply_IncreaseDecreaseClamp(t *testing.T) {
	st := DefaultState()

	var err error
	for i := 0; i < 10; i++ {
		st, err = Apply(st, Increase{})
		if err != nil {
			t.Fatalf("Apply(Increase) returned error: %v", err)
		}
	}
	if st.MinLevel != logline.MaxLevel {
		t.Fatalf("MinLevel after repeated Increase = %v, want %v", st.MinLevel, logline.MaxLevel)
	}

	for i := 0; i < 10; i++ {
		st, err = Apply(st, Decrease{})
		if err != nil {
			t.Fatalf("Apply(Decrease) returned error: %v", err)
		}
	}
	if st.MinLevel != logline.LevelDebug {
		t.Fatalf("MinLevel after repeated Decrease = %v, want %v", st.MinLevel, logline.LevelDebug)
	}
}

func TestApply_SetRangeAndFind(t *testing.T) {
	st, err := Apply(DefaultState(), SetRange{Level: logline.LevelError, Context: 3})
	if err != nil {
		t.Fatalf("Apply(SetRange) returned error: %v", err)
	}
	if st.MinLevel != logline.LevelError || st.Context != 3 {
		t.Fatalf("state after SetRange = %+v", st)
	}

	st, err = Apply(st, Find{Term: "  timeout  "})
	if err != nil {
		t.Fatalf("Apply(Find) returned error: %v", err)
	}
	if st.Term != "timeout" {
		t.Fatalf("Term = %q, want trimmed %q", st.Term, "timeout")
	}
}

func TestApply_ResetIsIdempotent(t *testing.T) {
	st := State{MinLevel: logline.LevelCritical, Context: 7, Term: "boom"}

	once, err := Apply(st, Reset{})
	if err != nil {
		t.Fatalf("Apply(Reset) returned error: %v", err)
	}
	twice, err := Apply(once, Reset{})
	if err != nil {
		t.Fatalf("Apply(Reset) second time returned error: %v", err)
	}
	if once != DefaultState() || twice != once {
		t.Fatalf("Reset not idempotent: once=%+v twice=%+v", once, twice)
	}
}

func TestApply_ErrorsLeaveStateUnchanged(t *testing.T) {
	prior := State{MinLevel: logline.LevelWarning, Context: 2, Term: "x"}

	cases := []struct {
		name string
		cmd  Command
	}{
		{"level_out_of_range", SetLevel{Level: logline.Level(9)}},
		{"range_level_out_of_range", SetRange{Level: logline.Level(-2), Context: 1}},
		{"range_negative_context", SetRange{Level: logline.LevelInfo, Context: -1}},
		{"find_empty_term", Find{Term: "   "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Apply(prior, tc.cmd)
			if err == nil {
				t.Fatalf("Apply(%#v) returned nil error", tc.cmd)
			}
			var cmdErr *CommandError
			if !errors.As(err, &cmdErr) {
				t.Fatalf("Apply error type = %T, want *CommandError", err)
			}
			if got != prior {
				t.Fatalf("state changed on error: %+v, want %+v", got, prior)
			}
		})
	}
}

func TestApply_QuitKeepsState(t *testing.T) {
	prior := State{MinLevel: logline.LevelError, Context: 1, Term: "y"}
	got, err := Apply(prior, Quit{})
	if err != nil {
		t.Fatalf("Apply(Quit) returned error: %v", err)
	}
	if got != prior {
		t.Fatalf("Quit changed state: %+v, want %+v", got, prior)
	}
}

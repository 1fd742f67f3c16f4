package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wtrock/loupe/internal/logline"
)

// Command is one of the closed set of viewer commands. A Command mutates
// nothing itself; Apply derives the next State from it.
type Command interface {
	isCommand()
}

// Increase raises the minimum level by one, clamped at CRITICAL.
type Increase struct{}

// Decrease lowers the minimum level by one, clamped at DEBUG.
type Decrease struct{}

// SetLevel sets the minimum level directly.
type SetLevel struct {
	Level logline.Level
}

// SetRange sets the minimum level and the context window together.
type SetRange struct {
	Level   logline.Level
	Context int
}

// Find sets the search term.
type Find struct {
	Term string
}

// Reset clears the search term and restores the default level and context.
type Reset struct{}

// Quit ends the interactive loop. It never changes state.
type Quit struct{}

func (Increase) isCommand() {}
func (Decrease) isCommand() {}
func (SetLevel) isCommand() {}
func (SetRange) isCommand() {}
func (Find) isCommand()     {}
func (Reset) isCommand()    {}
func (Quit) isCommand()     {}

// CommandError reports malformed interactive input. It is always recovered:
// the caller shows the message and keeps the prior state.
type CommandError struct {
	Input  string
	Reason string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("bad command %q: %s", e.Input, e.Reason)
}

// ParseCommand parses one interactive token:
//
//	"+"      raise minimum level
//	"-"      lower minimum level
//	"0".."4" set minimum level
//	"x-y"    set minimum level x and context y
//	"f term" search for term
//	"r"      reset
//	"q"      quit
func ParseCommand(token string) (Command, error) {
	trimmed := strings.TrimSpace(token)
	switch trimmed {
	case "":
		return nil, &CommandError{Input: token, Reason: "empty command"}
	case "+":
		return Increase{}, nil
	case "-":
		return Decrease{}, nil
	case "r":
		return Reset{}, nil
	case "q":
		return Quit{}, nil
	case "f":
		return nil, &CommandError{Input: token, Reason: "empty search term"}
	}

	if rest, ok := strings.CutPrefix(trimmed, "f "); ok {
		term := strings.TrimSpace(rest)
		if term == "" {
			return nil, &CommandError{Input: token, Reason: "empty search term"}
		}
		return Find{Term: term}, nil
	}

	if x, y, ok := strings.Cut(trimmed, "-"); ok {
		return parseRange(token, x, y)
	}

	lvl, err := parseLevelDigit(token, trimmed)
	if err != nil {
		return nil, err
	}
	return SetLevel{Level: lvl}, nil
}

func parseRange(token, x, y string) (Command, error) {
	lvl, err := parseLevelDigit(token, x)
	if err != nil {
		return nil, err
	}
	count, convErr := strconv.Atoi(y)
	if convErr != nil {
		return nil, &CommandError{Input: token, Reason: fmt.Sprintf("context %q is not a number", y)}
	}
	if count < 0 {
		return nil, &CommandError{Input: token, Reason: "context must not be negative"}
	}
	return SetRange{Level: lvl, Context: count}, nil
}

func parseLevelDigit(token, s string) (logline.Level, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return logline.LevelNone, &CommandError{Input: token, Reason: fmt.Sprintf("level %q is not a number", s)}
	}
	lvl := logline.Level(n)
	if !lvl.Valid() {
		return logline.LevelNone, &CommandError{Input: token, Reason: fmt.Sprintf("level %d out of range 0-%d", n, int(logline.MaxLevel))}
	}
	return lvl, nil
}

// Apply returns the state produced by running c against st. On error the
// returned state equals st so callers can assign unconditionally.
func Apply(st State, c Command) (State, error) {
	switch cmd := c.(type) {
	case Increase:
		if st.MinLevel < logline.MaxLevel {
			st.MinLevel++
		}
		return st, nil
	case Decrease:
		if st.MinLevel > logline.LevelDebug {
			st.MinLevel--
		}
		return st, nil
	case SetLevel:
		if !cmd.Level.Valid() {
			return st, &CommandError{Input: "set level", Reason: fmt.Sprintf("level %d out of range 0-%d", int(cmd.Level), int(logline.MaxLevel))}
		}
		st.MinLevel = cmd.Level
		return st, nil
	case SetRange:
		if !cmd.Level.Valid() {
			return st, &CommandError{Input: "set range", Reason: fmt.Sprintf("level %d out of range 0-%d", int(cmd.Level), int(logline.MaxLevel))}
		}
		if cmd.Context < 0 {
			return st, &CommandError{Input: "set range", Reason: "context must not be negative"}
		}
		st.MinLevel = cmd.Level
		st.Context = cmd.Context
		return st, nil
	case Find:
		term := strings.TrimSpace(cmd.Term)
		if term == "" {
			return st, &CommandError{Input: "find", Reason: "empty search term"}
		}
		st.Term = term
		return st, nil
	case Reset:
		return DefaultState(), nil
	case Quit:
		return st, nil
	default:
		return st, &CommandError{Input: fmt.Sprintf("%T", c), Reason: "unknown command"}
	}
}

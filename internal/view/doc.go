// Package view computes the displayed subsequence of loaded log lines for
// the current session state.
//
// Render is a pure function over an immutable line slice and an explicit
// State struct; there is no hidden state. Interactive input is parsed into
// a closed set of Command variants and folded into the State by Apply,
// which reports malformed input as a recoverable *CommandError while
// leaving the prior state intact.
//
// Search is a case-insensitive substring match; occurrences are returned as
// byte ranges so the UI can highlight them in place.
package view

// Package term holds the ANSI color state shared by logging and display,
// and decides whether a stream gets colors at all.
//
// The color variables are empty until [Configure] enables them, so callers
// concatenate them unconditionally.
package term

import (
	"os"
	"strings"

	xterm "golang.org/x/term"

	"github.com/backmassage/nametag/internal/config"
)

// Colors in use. Each is empty while colors are disabled.
var (
	Red     string // errors
	Green   string // success, Year tokens
	Yellow  string // warnings, Delimiter tokens
	Blue    string // info
	Cyan    string // debug, Label tokens
	Magenta string // renames, Arg tokens, banner
	Dim     string // Text tokens
	NC      string // reset
)

// palette pairs each color variable with its escape sequence.
var palette = []struct {
	dst  *string
	code string
}{
	{&Red, "\033[1;91m"},
	{&Green, "\033[1;92m"},
	{&Yellow, "\033[1;93m"},
	{&Blue, "\033[1;94m"},
	{&Cyan, "\033[1;96m"},
	{&Magenta, "\033[1;95m"},
	{&Dim, "\033[2m"},
	{&NC, "\033[0m"},
}

// Configure sets every color variable on or off according to mode. It is
// called once at startup by logging.NewLogger.
func Configure(mode config.ColorMode) {
	on := wantColor(mode)
	for _, c := range palette {
		if on {
			*c.dst = c.code
		} else {
			*c.dst = ""
		}
	}
}

// Enabled reports whether colors are on.
func Enabled() bool { return NC != "" }

// wantColor applies mode; auto means stdout is a TTY, NO_COLOR is unset
// and TERM is not "dumb".
func wantColor(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || strings.EqualFold(os.Getenv("TERM"), "dumb") {
		return false
	}
	return IsTerminal(os.Stdout)
}

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	return f != nil && xterm.IsTerminal(int(f.Fd()))
}

// Package display renders human-facing output: the startup banner and token
// tables for --tokens.
package display

import (
	"fmt"
	"io"

	"github.com/backmassage/nametag/internal/term"
)

// PrintBanner writes the banner to w, in magenta when colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta)
	fmt.Fprint(w, `                        _
 _ __   __ _ _ __ ___   ___| |_ __ _  __ _
| '_ \ / _`+"`"+` | '_ `+"`"+` _ \ / _ \ __/ _`+"`"+` |/ _`+"`"+` |
| | | | (_| | | | | | |  __/ || (_| | (_| |
|_| |_|\__,_|_| |_| |_|\___|\__\__,_|\__, |
                                     |___/
`)
	if term.Enabled() {
		fmt.Fprintln(w, term.NC)
	}
}

// Package terminal provides the interactive pieces of the CLI: prompts that
// read registry credentials without echo, and clearing prompt lines once the
// answer has been read.
package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// linesFor returns how many terminal rows text of length n occupies at the
// given width, plus the row the cursor moved to when Enter was pressed.
func linesFor(n, width int) int {
	if width <= 0 {
		width = 80
	}
	rows := (n + width - 1) / width
	if rows < 1 {
		rows = 1
	}
	return rows + 1
}

// ClearPreviousLines clears textLength characters of prompt and input that
// were just printed to w, moving up as many rows as the text wrapped onto.
func ClearPreviousLines(w io.Writer, textLength int) {
	width := 0
	if f, ok := w.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil {
			width = cols
		}
	}

	n := linesFor(textLength, width)
	for i := 0; i < n; i++ {
		fmt.Fprint(w, "\r\x1b[2K") // start of line, clear it
		if i < n-1 {
			fmt.Fprint(w, "\x1b[1A") // up one line
		}
	}
}

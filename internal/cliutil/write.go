// Package cliutil holds small helpers shared by the specweld commands.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted command output. A failed write is reported on
// stderr rather than returned, so callers can print unconditionally.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

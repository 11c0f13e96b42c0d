package export

import (
	"fmt"
	"io"
	"os"
)

// Deliver writes payload to path, or to out when path is empty. A failed
// file write is recoverable: the payload goes to out anyway, with a warning
// naming the cause on errOut, so the computed result always reaches the
// user.
func Deliver(out, errOut io.Writer, path, payload string) {
	if path == "" {
		fmt.Fprintln(out, payload)
		return
	}
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		fmt.Fprintln(out, payload)
		fmt.Fprintf(errOut, "\n[warning] failed to write %s: %v\nOutput printed to stdout instead.\n", path, err)
		return
	}
	fmt.Fprintf(out, "Wrote output → %s\n", path)
}

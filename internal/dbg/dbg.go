// Package dbg provides the opt-in trace logging shared by ring and kem.
package dbg

import (
	"fmt"
	"io"
	"os"
)

var on = os.Getenv("NTRU_DEBUG") == "1"

// Printf writes a trace line to w when NTRU_DEBUG=1 is set in the environment.
func Printf(w io.Writer, f string, a ...any) {
	if on {
		fmt.Fprintf(w, f, a...)
	}
}

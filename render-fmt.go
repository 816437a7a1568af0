//go:build !uartlog_minfmt

package uartlog

import (
	"fmt"
	"io"
)

// Default rendering profile: the full fmt verb set, floats included.
// Firmware builds that cannot afford fmt select the reduced renderer
// with -tags uartlog_minfmt instead.
func render(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}

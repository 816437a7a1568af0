//go:build uartlog_minfmt

package uartlog

import "io"

// Reduced rendering profile, selected with -tags uartlog_minfmt: basic
// integer, string and character conversions only, which keeps fmt (and
// its reflection machinery) out of the binary. Add uartlog_minfmt_float
// to also get %f.
func render(w io.Writer, format string, args ...any) {
	renderMinimal(w, format, args)
}

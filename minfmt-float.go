//go:build uartlog_minfmt_float

package uartlog

// Float profile: the reduced renderer also links strconv's float
// formatting for %f.
const minFmtFloat = true

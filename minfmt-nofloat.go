//go:build !uartlog_minfmt_float

package uartlog

// Without the float tag the %f branch is constant-false and the float
// formatting code is never linked.
const minFmtFloat = false

//go:build uartlog_debug

package uartlog

// The highest tag wins, so uartlog_debug alone (or combined with any
// lower tag) enables everything.
const level = LevelDebug

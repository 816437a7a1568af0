//go:build !uartlog_error && !uartlog_warn && !uartlog_info && !uartlog_verbose && !uartlog_debug

package uartlog

// No level tag: logging is off and every entry point folds away.
const level = LevelOff

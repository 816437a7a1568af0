//go:build uartlog_error && !uartlog_warn && !uartlog_info && !uartlog_verbose && !uartlog_debug

package uartlog

const level = LevelError

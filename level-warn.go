//go:build uartlog_warn && !uartlog_info && !uartlog_verbose && !uartlog_debug

package uartlog

const level = LevelWarning

//go:build uartlog_info && !uartlog_verbose && !uartlog_debug

package uartlog

const level = LevelInfo

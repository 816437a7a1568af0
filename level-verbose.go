//go:build uartlog_verbose && !uartlog_debug

package uartlog

const level = LevelVerbose

//go:build !uartlog_error && !uartlog_warn && !uartlog_info && !uartlog_verbose && !uartlog_debug

package uartlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// With no level tag the build is silent: all twenty entry points must
// produce zero bytes and Init must never touch the transport.

func TestAllEntryPointsSilentWhenOff(t *testing.T) {
	rec := &recordSink{}
	swapSink(t, rec)

	Error("e %d", 1)
	BeginError("e")
	ContinueError("e")
	EndError("e")
	Warn("w %d", 2)
	BeginWarn("w")
	ContinueWarn("w")
	EndWarn("w")
	Info("i %d", 3)
	BeginInfo("i")
	ContinueInfo("i")
	EndInfo("i")
	Verbose("v %d", 4)
	BeginVerbose("v")
	ContinueVerbose("v")
	EndVerbose("v")
	Debug("d %d", 5)
	BeginDebug("d")
	ContinueDebug("d")
	EndDebug("d")

	assert.Zero(t, rec.Len())
}

func TestInitIsNoOpWhenOff(t *testing.T) {
	rec := &recordSink{}
	swapSink(t, rec)

	assert.NoError(t, Init(115200))
	assert.Empty(t, rec.initRates)
}

func TestNothingEnabledWhenOff(t *testing.T) {
	for tier := LevelError; tier <= LevelDebug; tier++ {
		assert.False(t, Enabled(tier), "tier %s", tier)
	}
}

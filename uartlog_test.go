package uartlog

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

// recordSink captures everything written through the sink. It locks
// internally so the concurrency hazard test can hammer it from two
// goroutines without tripping the race detector.
type recordSink struct {
	mu        sync.Mutex
	initRates []uint32
	buf       bytes.Buffer
}

func (s *recordSink) Init(baudRate uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initRates = append(s.initRates, baudRate)
	return nil
}

func (s *recordSink) WriteByte(b byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.WriteByte(b)
}

func (s *recordSink) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func (s *recordSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Len()
}

// swapSink installs s as the process-wide sink for one test.
func swapSink(t *testing.T, s Sink) {
	t.Helper()
	prev := sink
	SetSink(s)
	t.Cleanup(func() { sink = prev })
}

// --- Tests ---

func TestActivationMatrix(t *testing.T) {
	tiers := []Level{LevelError, LevelWarning, LevelInfo, LevelVerbose, LevelDebug}
	for configured := LevelOff; configured <= LevelDebug; configured++ {
		for _, tier := range tiers {
			want := configured >= tier
			assert.Equal(t, want, enabledAt(configured, tier),
				"configured=%s tier=%s", configured, tier)
		}
	}
	// Level 0 never counts as a tier either.
	for configured := LevelOff; configured <= LevelDebug; configured++ {
		assert.False(t, enabledAt(configured, LevelOff))
	}
}

func TestLineRendering(t *testing.T) {
	rec := &recordSink{}
	swapSink(t, rec)

	logLine("", LineTerminator, "%d-%s", 7, "x")
	assert.Equal(t, "7-x\r\n", rec.String())
}

func TestWarningFraming(t *testing.T) {
	rec := &recordSink{}
	swapSink(t, rec)

	logLine(WarningHeader, WarningTrailer, "low battery: %d%%", 12)
	assert.Equal(t, "*** WARNING: low battery: 12%\r\n", rec.String())
}

func TestErrorFraming(t *testing.T) {
	rec := &recordSink{}
	swapSink(t, rec)

	logLine(ErrorHeader, ErrorTrailer, "boom")
	want := "\r\n********** ERROR **********\r\n" +
		"boom" +
		"\r\n***************************\r\n\r\n"
	assert.Equal(t, want, rec.String())
}

func TestBeginContinueEndComposition(t *testing.T) {
	whole := &recordSink{}
	swapSink(t, whole)
	logLine(WarningHeader, WarningTrailer, "ABC")

	split := &recordSink{}
	SetSink(split)
	logBegin(WarningHeader, "A")
	logContinue("B")
	logEnd(WarningTrailer, "C")

	assert.Equal(t, whole.String(), split.String())
}

func TestPartialLineFragmentsTransmitImmediately(t *testing.T) {
	rec := &recordSink{}
	swapSink(t, rec)

	logBegin("", "waiting")
	assert.Equal(t, "waiting", rec.String(), "Begin must not buffer")
	logContinue(" - got %d", 3)
	assert.Equal(t, "waiting - got 3", rec.String())
	logEnd(LineTerminator, " - done.")
	assert.Equal(t, "waiting - got 3 - done.\r\n", rec.String())
}

func TestNilSinkDiscards(t *testing.T) {
	prev := sink
	t.Cleanup(func() { sink = prev })

	SetSink(nil)
	require.NotPanics(t, func() {
		logLine(ErrorHeader, ErrorTrailer, "dropped %d", 1)
	})
}

func TestOverriddenFraming(t *testing.T) {
	rec := &recordSink{}
	swapSink(t, rec)

	prev := WarningHeader
	WarningHeader = "W! "
	t.Cleanup(func() { WarningHeader = prev })

	logLine(WarningHeader, WarningTrailer, "x")
	assert.Equal(t, "W! x\r\n", rec.String())
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "off", LevelOff.String())
	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "warning", LevelWarning.String())
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "verbose", LevelVerbose.String())
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "unknown", Level(42).String())
}

// Two in-flight partial lines from different goroutines garble each
// other; the contract is only that nothing crashes and every byte still
// arrives.
func TestInterleavedPartialLinesDoNotCrash(t *testing.T) {
	rec := &recordSink{}
	swapSink(t, rec)

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2)
	for g := 0; g < 2; g++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				logBegin("", "g%d", id)
				logContinue(".")
				logEnd(LineTerminator, "!")
			}
		}(g)
	}
	wg.Wait()

	// "gN" + "." + "!" + CRLF per round per goroutine.
	assert.Equal(t, 2*rounds*6, rec.Len())
}

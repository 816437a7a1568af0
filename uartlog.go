// Package uartlog is a compile-time-gated logging facade for
// microcontroller firmware. Log levels are fixed at build time with
// build tags; every entry point of a disabled tier still type-checks
// but compiles down to nothing, so unused logging costs no flash.
//
// Select a level with one of the uartlog_error, uartlog_warn,
// uartlog_info, uartlog_verbose or uartlog_debug tags (the highest tag
// present wins, no tag means logging is off):
//
//	tinygo build -tags uartlog_debug ...
//
// Initialize the transport once at startup with Init(baudRate), then
// log with printf-style calls:
//
//	uartlog.Error("error connecting to server, http status was %d", status)
//
// Begin/Continue/End variants stream a single log line across several
// call sites without buffering:
//
//	uartlog.BeginVerbose("waiting for sensor readings")
//	for ... {
//		uartlog.ContinueVerbose(" - received %d", reading)
//	}
//	uartlog.EndVerbose(" - done.")
//
// The package is single-context by design: bytes go out synchronously
// through one process-wide sink, and concurrent callers (main loop plus
// an interrupt handler, say) will interleave their lines. Serialize
// externally if that matters.
package uartlog

import "io"

// Level is the severity of a log tier. Higher is chattier.
type Level uint8

const (
	LevelOff     Level = 0
	LevelError   Level = 1
	LevelWarning Level = 2
	LevelInfo    Level = 3
	LevelVerbose Level = 4
	LevelDebug   Level = 5
)

func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelInfo:
		return "info"
	case LevelVerbose:
		return "verbose"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// Per-tier framing literals. ERROR lines are fenced with banners so they
// stand out on a scrolling console; WARNING lines get a prefix; the rest
// are bare. Overridable before the first log call if the layout is not
// to your taste.
var (
	ErrorHeader    = "\r\n********** ERROR **********\r\n"
	ErrorTrailer   = "\r\n***************************\r\n\r\n"
	WarningHeader  = "*** WARNING: "
	WarningTrailer = "\r\n"
	LineTerminator = "\r\n"
)

// enabledAt reports whether a tier produces output under a given
// configured level.
func enabledAt(configured, tier Level) bool {
	return tier != LevelOff && configured >= tier
}

// Enabled reports whether the given tier is active in this build.
// Useful to skip expensive argument preparation at call sites.
func Enabled(tier Level) bool {
	return enabledAt(level, tier)
}

// sinkWriter adapts the process-wide sink to io.Writer for the
// renderer, pushing one byte at a time. Transmit failures are not
// reported at this layer; log output is a diagnostic aid, not a
// guaranteed-delivery channel.
type sinkWriter struct {
	s Sink
}

func (w sinkWriter) Write(p []byte) (int, error) {
	for _, b := range p {
		w.s.WriteByte(b)
	}
	return len(p), nil
}

// logLine emits header, rendered body and trailer as one complete line.
func logLine(header, trailer, format string, args ...any) {
	w := sinkWriter{s: sink}
	io.WriteString(w, header)
	render(w, format, args...)
	io.WriteString(w, trailer)
}

// logBegin opens a partial line: header plus body, no terminator. The
// caller must finish the line with logEnd before starting another one.
func logBegin(header, format string, args ...any) {
	w := sinkWriter{s: sink}
	io.WriteString(w, header)
	render(w, format, args...)
}

// logContinue appends to an open partial line.
func logContinue(format string, args ...any) {
	render(sinkWriter{s: sink}, format, args...)
}

// logEnd closes a partial line with the tier trailer.
func logEnd(trailer, format string, args ...any) {
	w := sinkWriter{s: sink}
	render(w, format, args...)
	io.WriteString(w, trailer)
}

// The twenty entry points below are all gated on the level constant, so
// disabled tiers fold away entirely. Arguments are still evaluated
// before the call as usual; keep side effects out of them if a tier may
// be compiled out.

// Error logs a complete banner-framed ERROR line.
func Error(format string, args ...any) {
	if level < LevelError {
		return
	}
	logLine(ErrorHeader, ErrorTrailer, format, args...)
}

// BeginError opens a partial ERROR line.
func BeginError(format string, args ...any) {
	if level < LevelError {
		return
	}
	logBegin(ErrorHeader, format, args...)
}

// ContinueError appends to an open ERROR line.
func ContinueError(format string, args ...any) {
	if level < LevelError {
		return
	}
	logContinue(format, args...)
}

// EndError closes an open ERROR line.
func EndError(format string, args ...any) {
	if level < LevelError {
		return
	}
	logEnd(ErrorTrailer, format, args...)
}

// Warn logs a complete WARNING line.
func Warn(format string, args ...any) {
	if level < LevelWarning {
		return
	}
	logLine(WarningHeader, WarningTrailer, format, args...)
}

// BeginWarn opens a partial WARNING line.
func BeginWarn(format string, args ...any) {
	if level < LevelWarning {
		return
	}
	logBegin(WarningHeader, format, args...)
}

// ContinueWarn appends to an open WARNING line.
func ContinueWarn(format string, args ...any) {
	if level < LevelWarning {
		return
	}
	logContinue(format, args...)
}

// EndWarn closes an open WARNING line.
func EndWarn(format string, args ...any) {
	if level < LevelWarning {
		return
	}
	logEnd(WarningTrailer, format, args...)
}

// Info logs a complete INFO line.
func Info(format string, args ...any) {
	if level < LevelInfo {
		return
	}
	logLine("", LineTerminator, format, args...)
}

// BeginInfo opens a partial INFO line.
func BeginInfo(format string, args ...any) {
	if level < LevelInfo {
		return
	}
	logBegin("", format, args...)
}

// ContinueInfo appends to an open INFO line.
func ContinueInfo(format string, args ...any) {
	if level < LevelInfo {
		return
	}
	logContinue(format, args...)
}

// EndInfo closes an open INFO line.
func EndInfo(format string, args ...any) {
	if level < LevelInfo {
		return
	}
	logEnd(LineTerminator, format, args...)
}

// Verbose logs a complete VERBOSE line.
func Verbose(format string, args ...any) {
	if level < LevelVerbose {
		return
	}
	logLine("", LineTerminator, format, args...)
}

// BeginVerbose opens a partial VERBOSE line.
func BeginVerbose(format string, args ...any) {
	if level < LevelVerbose {
		return
	}
	logBegin("", format, args...)
}

// ContinueVerbose appends to an open VERBOSE line.
func ContinueVerbose(format string, args ...any) {
	if level < LevelVerbose {
		return
	}
	logContinue(format, args...)
}

// EndVerbose closes an open VERBOSE line.
func EndVerbose(format string, args ...any) {
	if level < LevelVerbose {
		return
	}
	logEnd(LineTerminator, format, args...)
}

// Debug logs a complete DEBUG line.
func Debug(format string, args ...any) {
	if level < LevelDebug {
		return
	}
	logLine("", LineTerminator, format, args...)
}

// BeginDebug opens a partial DEBUG line.
func BeginDebug(format string, args ...any) {
	if level < LevelDebug {
		return
	}
	logBegin("", format, args...)
}

// ContinueDebug appends to an open DEBUG line.
func ContinueDebug(format string, args ...any) {
	if level < LevelDebug {
		return
	}
	logContinue(format, args...)
}

// EndDebug closes an open DEBUG line.
func EndDebug(format string, args ...any) {
	if level < LevelDebug {
		return
	}
	logEnd(LineTerminator, format, args...)
}

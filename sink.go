package uartlog

import "io"

var sink Sink = &nopSink{}

// SetSink binds the process-wide output sink. Passing nil restores a
// sink that discards everything. There is no locking: swap sinks before
// logging starts, not while a partial line is in flight.
func SetSink(s Sink) {
	if s == nil {
		sink = &nopSink{}
		return
	}
	sink = s
}

// Init configures the bound sink's transport for the given rate. Call
// it once from startup code before the first log call; calling it again
// re-initializes the transport and the last call wins. In a build with
// logging off it compiles to nothing and the transport is never
// touched.
func Init(baudRate uint32) error {
	if level == LevelOff {
		return nil
	}
	return sink.Init(baudRate)
}

// nopSink discards everything.
type nopSink struct{}

func (s *nopSink) Init(baudRate uint32) error { return nil }
func (s *nopSink) WriteByte(b byte) error     { return nil }

// WriterSink adapts any io.Writer into a Sink. The rate is ignored.
// Handy on hosts (stdout, files) and as a test double.
type WriterSink struct {
	W io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{W: w}
}

func (s *WriterSink) Init(baudRate uint32) error { return nil }

func (s *WriterSink) WriteByte(b byte) error {
	var buf [1]byte
	buf[0] = b
	_, err := s.W.Write(buf[:])
	return err
}

package uartlog

import "io"

// Sink is the byte-output capability all log bytes go through. Exactly
// one sink is bound process-wide; firmware injects it (or keeps the
// platform default) before the first log call.
type Sink interface {
	// Init configures the underlying transport for the given rate.
	// It must complete before the first WriteByte and may be called
	// again to re-configure; the last call wins.
	Init(baudRate uint32) error

	// WriteByte blocks until the transport accepts b, then transmits
	// it. No buffering: the byte is on the wire (or in the hardware
	// shift register) when the call returns.
	io.ByteWriter
}

// Reg8 is volatile access to an 8-bit peripheral register. TinyGo's
// *runtime/volatile.Register8 satisfies it directly; tests use plain
// fakes.
type Reg8 interface {
	Get() uint8
	Set(v uint8)
}

//go:build tinygo

package uartlog

import "machine"

func init() {
	// On TinyGo targets the default console UART is the sink.
	sink = &serialSink{}
}

// serialSink drives machine.Serial directly. On boards whose console is
// USB-CDC the configured rate is accepted but has no effect.
type serialSink struct{}

func (s *serialSink) Init(baudRate uint32) error {
	return machine.Serial.Configure(machine.UARTConfig{BaudRate: baudRate})
}

func (s *serialSink) WriteByte(b byte) error {
	return machine.Serial.WriteByte(b)
}

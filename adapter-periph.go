//go:build !tinygo

package uartlog

import (
	"errors"
	"fmt"
	"os"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/uart"
	"periph.io/x/conn/v3/uart/uartreg"
	"periph.io/x/host/v3"
)

var ErrNoPort = errors.New("serial port not initialized")

func init() {
	// Host builds log to stdout until firmware-style code injects a
	// real transport.
	sink = NewWriterSink(os.Stdout)
}

// UARTSink drives a host serial port through periph.io. Useful when the
// same application code runs on a Linux SBC with a real UART instead of
// a microcontroller.
type UARTSink struct {
	// PortName is the periph.io port name or device path,
	// e.g. "/dev/ttyUSB0". Empty picks the first registered port.
	PortName string

	port uart.PortCloser
	conn conn.Conn
}

func NewUARTSink(portName string) *UARTSink {
	return &UARTSink{PortName: portName}
}

// Init opens the port and configures it 8N1 at the given rate.
// Re-initialization closes the previous port first; the last call wins.
func (s *UARTSink) Init(baudRate uint32) error {
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("failed to initialize periph.io host: %w", err)
	}

	if s.port != nil {
		s.port.Close()
		s.port = nil
		s.conn = nil
	}

	p, err := uartreg.Open(s.PortName)
	if err != nil {
		return fmt.Errorf("failed to open UART port %q: %w", s.PortName, err)
	}

	c, err := p.Connect(physic.Frequency(baudRate)*physic.Hertz, uart.One, uart.NoParity, uart.NoFlow, 8)
	if err != nil {
		p.Close()
		return fmt.Errorf("failed to configure UART port %q: %w", s.PortName, err)
	}

	s.port = p
	s.conn = c
	return nil
}

func (s *UARTSink) WriteByte(b byte) error {
	if s.conn == nil {
		return ErrNoPort
	}
	var buf [1]byte
	buf[0] = b
	return s.conn.Tx(buf[:], nil)
}

// Close releases the port. Firmware never calls this; host tools and
// tests do.
func (s *UARTSink) Close() error {
	if s.port == nil {
		return nil
	}
	err := s.port.Close()
	s.port = nil
	s.conn = nil
	return err
}

package uartlog

import (
	"errors"
	"fmt"
)

var ErrNotReady = errors.New("transmit data register never ready")

// AVR USARTn register bits.
const (
	_U2X  = 1 << 1 // double-speed transmission (UCSRnA)
	_UDRE = 1 << 5 // data register empty (UCSRnA)
	_TXEN = 1 << 3 // transmitter enable (UCSRnB)
	_RXEN = 1 << 4 // receiver enable (UCSRnB)

	_UCSZ0 = 1 << 1 // character size bit 0 (UCSRnC)
	_UCSZ1 = 1 << 2 // character size bit 1 (UCSRnC)
)

// USARTRegs names the registers of one AVR-style USART peripheral. The
// hosting firmware supplies the concrete register accessors (on TinyGo,
// *runtime/volatile.Register8 values pointing at the device addresses).
type USARTRegs struct {
	BaudHigh Reg8 // UBRRnH
	BaudLow  Reg8 // UBRRnL
	CtrlA    Reg8 // UCSRnA
	CtrlB    Reg8 // UCSRnB
	CtrlC    Reg8 // UCSRnC
	Data     Reg8 // UDRn
}

// USARTSink is the bare-metal transport: it programs the baud divisor
// itself and busy-waits on the ready flag for every byte, for targets
// without a managed serial object.
type USARTSink struct {
	// ClockHz is the CPU clock feeding the baud generator (F_CPU).
	ClockHz uint32

	// Regs are the peripheral's registers.
	Regs USARTRegs

	// PollLimit bounds the ready-flag busy-wait in WriteByte; when
	// exceeded, WriteByte gives up with ErrNotReady. Zero keeps the
	// classic contract: wait forever, hanging the calling context if
	// the hardware never drains. Leave it zero on size-sensitive
	// builds.
	PollLimit uint32
}

func NewUSARTSink(clockHz uint32, regs USARTRegs) *USARTSink {
	return &USARTSink{ClockHz: clockHz, Regs: regs}
}

// Init programs double-speed operation and an 8-bit frame and enables
// the transceiver. Calling it again simply reprograms the divisor.
func (s *USARTSink) Init(baudRate uint32) error {
	if baudRate == 0 {
		return fmt.Errorf("invalid baud rate %d", baudRate)
	}
	div := s.ClockHz/(8*baudRate) - 1
	s.Regs.BaudHigh.Set(uint8(div >> 8))
	s.Regs.BaudLow.Set(uint8(div))
	s.Regs.CtrlA.Set(_U2X)
	s.Regs.CtrlC.Set(_UCSZ1 | _UCSZ0)
	s.Regs.CtrlB.Set(_RXEN | _TXEN)
	return nil
}

// WriteByte polls until the data register is empty, then loads b. With
// a PollLimit of zero this can block indefinitely; calling it from an
// interrupt handler stalls that handler for the transmission time.
func (s *USARTSink) WriteByte(b byte) error {
	for polls := uint32(0); s.Regs.CtrlA.Get()&_UDRE == 0; polls++ {
		if s.PollLimit != 0 && polls >= s.PollLimit {
			return ErrNotReady
		}
	}
	s.Regs.Data.Set(b)
	return nil
}

package uartlog

import (
	"io"
	"strconv"
	"unicode/utf8"
)

// renderMinimal is the reduced-footprint formatter behind the
// uartlog_minfmt build tag. It handles the conversions firmware logging
// actually uses: %d, %x, %X, %c, %s, %% on the integer widths, strings
// and byte slices, plus %f when minFmtFloat is set. Anything it does
// not recognize is echoed verbatim; an argument of the wrong type for
// its verb is a caller error and renders as the raw verb, mirroring the
// loose printf contract rather than fmt's %! diagnostics.
func renderMinimal(w io.Writer, format string, args []any) {
	var buf [32]byte
	next := 0
	for i := 0; i < len(format); {
		start := i
		for i < len(format) && format[i] != '%' {
			i++
		}
		if i > start {
			io.WriteString(w, format[start:i])
		}
		if i >= len(format) {
			break
		}
		i++ // consume '%'
		if i >= len(format) {
			io.WriteString(w, "%")
			break
		}
		verb := format[i]
		i++
		if verb == '%' {
			io.WriteString(w, "%")
			continue
		}
		if next >= len(args) {
			w.Write([]byte{'%', verb})
			continue
		}
		arg := args[next]
		next++
		switch verb {
		case 'd':
			if n, u, signed, ok := asInteger(arg); ok {
				if signed {
					w.Write(strconv.AppendInt(buf[:0], n, 10))
				} else {
					w.Write(strconv.AppendUint(buf[:0], u, 10))
				}
			} else {
				w.Write([]byte{'%', verb})
			}
		case 'x', 'X':
			if n, u, signed, ok := asInteger(arg); ok {
				if signed {
					u = uint64(n)
				}
				out := strconv.AppendUint(buf[:0], u, 16)
				if verb == 'X' {
					for j, c := range out {
						if c >= 'a' && c <= 'f' {
							out[j] = c - 'a' + 'A'
						}
					}
				}
				w.Write(out)
			} else {
				w.Write([]byte{'%', verb})
			}
		case 'c':
			if n, u, signed, ok := asInteger(arg); ok {
				r := rune(u)
				if signed {
					r = rune(n)
				}
				w.Write(utf8.AppendRune(buf[:0], r))
			} else {
				w.Write([]byte{'%', verb})
			}
		case 's':
			switch v := arg.(type) {
			case string:
				io.WriteString(w, v)
			case []byte:
				w.Write(v)
			default:
				w.Write([]byte{'%', verb})
			}
		case 'f':
			if f, ok := asFloat(arg); minFmtFloat && ok {
				w.Write(strconv.AppendFloat(buf[:0], f, 'f', 6, 64))
			} else {
				w.Write([]byte{'%', verb})
			}
		default:
			w.Write([]byte{'%', verb})
		}
	}
}

func asInteger(arg any) (n int64, u uint64, signed, ok bool) {
	switch v := arg.(type) {
	case int:
		return int64(v), 0, true, true
	case int8:
		return int64(v), 0, true, true
	case int16:
		return int64(v), 0, true, true
	case int32:
		return int64(v), 0, true, true
	case int64:
		return v, 0, true, true
	case uint:
		return 0, uint64(v), false, true
	case uint8:
		return 0, uint64(v), false, true
	case uint16:
		return 0, uint64(v), false, true
	case uint32:
		return 0, uint64(v), false, true
	case uint64:
		return 0, v, false, true
	case uintptr:
		return 0, uint64(v), false, true
	}
	return 0, 0, false, false
}

func asFloat(arg any) (float64, bool) {
	switch v := arg.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

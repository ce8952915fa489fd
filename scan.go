package httphead

// delimSet is a byte lookup table used by scanUntil.
type delimSet [256]bool

func newDelimSet(s string) (d delimSet) {
	for i := 0; i < len(s); i++ {
		d[s[i]] = true
	}
	return
}

var (
	spaceDelims = newDelimSet(" ")
	crlfDelims  = newDelimSet("\r\n")
	lfDelims    = newDelimSet("\n")
	nameDelims  = newDelimSet(": \r\n")
)

// DetectHeadLength reports whether buf holds a complete head.
//
// It returns the head length including the terminating "\r\n\r\n" when
// one is found, 0 when more bytes are needed and -1 when buf contains a
// control byte other than CR or LF before the terminator. Calling it again
// on a longer buffer with the same prefix yields the same verdict.
func DetectHeadLength(buf []byte) int {
	for i, c := range buf {
		if c < 0x20 && c != rChar && c != nChar {
			return malformed
		}
		// the terminator can't be the very first bytes
		if i > 4 && c == nChar && buf[i-1] == rChar && buf[i-2] == nChar && buf[i-3] == rChar {
			return i + 1
		}
	}
	return incomplete
}

// scanUntil collects b[start:] into tok until '\n', a byte in d, or end,
// then skips the run of d bytes that follows. next is the first byte
// after that run.
//
// tok has its capacity capped so appending to it never writes into b.
func scanUntil(b []byte, start, end int, d *delimSet) (tok []byte, next int) {
	i := start
	for i < end && b[i] != nChar && !d[b[i]] {
		i++
	}
	tok = b[start:i:i]
	for i < end && d[b[i]] {
		i++
	}
	return tok, i
}

const (
	rChar = '\r'
	nChar = '\n'
)

package httphead

import (
	"math"
	"strconv"
)

// Length is the byte length of a body or a whole message.
//
// It is either a concrete count (see Known) or UntilClose, meaning the
// body continues until the peer closes the connection. The zero value is
// Known(0).
type Length struct {
	n          int64
	untilClose bool
}

// UntilClose is the length of a body that is delimited by connection closure.
var UntilClose = Length{untilClose: true}

// Known returns a concrete length. Negative values collapse to 0.
func Known(n int64) Length {
	if n < 0 {
		n = 0
	}
	return Length{n: n}
}

// Value returns the concrete length and true, or 0 and false for UntilClose.
func (l Length) Value() (int64, bool) {
	if l.untilClose {
		return 0, false
	}
	return l.n, true
}

// IsUntilClose reports whether l is UntilClose.
func (l Length) IsUntilClose() bool {
	return l.untilClose
}

func (l Length) String() string {
	if l.untilClose {
		return "until-close"
	}
	return strconv.FormatInt(l.n, 10)
}

func (l Length) add(n int64) Length {
	if l.untilClose {
		return l
	}
	if n > 0 && l.n > math.MaxInt64-n {
		return Length{n: math.MaxInt64}
	}
	return Known(l.n + n)
}

// Span is an extent of the caller's receive buffer starting at Off.
//
// Body and message spans may reach past the bytes received so far: they
// describe how many bytes belong to the message, not how many are present.
type Span struct {
	Off int
	Len Length
}

// End returns Off+Len and true, or 0 and false when Len is UntilClose.
func (s Span) End() (int64, bool) {
	n, ok := s.Len.Value()
	if !ok {
		return 0, false
	}
	return int64(s.Off) + n, true
}

package httphead

import "bytes"

// Parse decomposes the head at the start of buf into m.
//
// On success it returns the head length. It returns (0, ErrIncomplete) while
// the head is not fully buffered yet and (-1, ErrMalformed) when buf can never
// form a valid head; m is left zeroed in both cases. Parse neither allocates
// nor modifies buf: everything stored in m aliases it.
//
// The body length is taken from Content-Length when present. Otherwise
// requests other than PUT and POST and "204" responses get an empty body,
// and everything else is delimited by connection closure.
func Parse(buf []byte, m *Message) (n int, err error) {
	m.Reset()
	n = DetectHeadLength(buf)
	switch {
	case n == incomplete:
		return 0, ErrIncomplete
	case n < 0:
		return malformed, ErrMalformed
	}

	m.Head = Span{Len: Known(int64(n))}
	m.Body = Span{Off: n, Len: UntilClose}
	m.Chunk = Span{Off: n}
	m.Total = Span{Len: UntilClose}

	pos := 0
	m.Method, pos = scanUntil(buf, pos, n, &spaceDelims)
	m.URI, pos = scanUntil(buf, pos, n, &spaceDelims)
	m.Proto, pos = scanUntil(buf, pos, n, &crlfDelims)
	if len(m.Method) == 0 || len(m.URI) == 0 {
		m.Reset()
		return malformed, ErrMalformed
	}
	if q := bytes.IndexByte(m.URI, '?'); q >= 0 {
		m.Query = m.URI[q+1:]
		m.URI = m.URI[:q:q]
	}

	m.parseHeaders(buf, pos, n)
	m.inferBodyLength()
	return
}

// parseHeaders fills m.headers from buf[pos:end]. It stops at the blank
// line, at a line whose name runs to the end of the line (CR included),
// or when m.headers is full. A CRLF line without a colon is therefore kept
// as a field with an empty value.
func (m *Message) parseHeaders(buf []byte, pos, end int) {
	for pos < end {
		line, lineEnd := scanUntil(buf, pos, end, &lfDelims)
		name, p := scanUntil(buf, pos, lineEnd, &nameDelims)
		value, _ := scanUntil(buf, p, lineEnd, &crlfDelims)
		if len(name) == 0 || len(name) == len(line) {
			return
		}
		if !m.addHeader(name, trimTrailingSpace(value)) {
			return
		}
		pos = lineEnd
	}
}

func (m *Message) inferBodyLength() {
	if v, ok := m.Header(HeaderContentLength); ok {
		m.setBodyLength(ParseContentLength(v))
		return
	}
	if !m.IsResponse() {
		if !caseInsensitiveCompare(m.Method, strPUT) && !caseInsensitiveCompare(m.Method, strPOST) {
			m.setBodyLength(0)
		}
		return
	}
	if caseInsensitiveCompare(m.URI, strNoContent) {
		m.setBodyLength(0)
	}
}

func (m *Message) setBodyLength(n int64) {
	m.Body.Len = Known(n)
	m.Total.Len = m.Head.Len.add(m.Body.Len.n)
}

func trimTrailingSpace(b []byte) []byte {
	n := len(b)
	for n > 0 && (b[n-1] == ' ' || b[n-1] == '\t') {
		n--
	}
	return b[:n:n]
}

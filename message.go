package httphead

// MaxHeaders bounds how many header fields Parse keeps. Fields past the
// bound are dropped without error.
const MaxHeaders = 30

// Header is a single header field. Name and Value alias the parsed buffer.
type Header struct {
	Name  []byte
	Value []byte
}

// Message is a decomposed HTTP/1.x head.
//
// All byte slices alias the buffer passed to Parse and are only valid while
// that buffer is neither modified nor reused. A Message holds no resources
// and may be reused across Parse calls.
//
// For a response Method holds the protocol version, URI the status code and
// Proto the reason phrase.
type Message struct {
	Method []byte
	URI    []byte
	Query  []byte
	Proto  []byte

	headers  [MaxHeaders]Header
	nheaders int

	// Head covers the start line, headers and the blank line.
	Head Span
	// Body starts right after Head.
	Body Span
	// Chunk is left for chunked-body bookkeeping by the caller. Parse only
	// points it at the body start.
	Chunk Span
	// Total covers Head and Body. Its length is UntilClose when the body's is.
	Total Span
}

// Reset clears m.
func (m *Message) Reset() {
	*m = Message{}
}

// Headers returns the parsed header fields in wire order.
func (m *Message) Headers() []Header {
	return m.headers[:m.nheaders]
}

// Header returns the value of the first field whose name matches name
// ignoring ASCII case.
func (m *Message) Header(name string) ([]byte, bool) {
	for i := 0; i < m.nheaders; i++ {
		h := &m.headers[i]
		if len(h.Name) == 0 {
			break
		}
		if caseInsensitiveCompare(h.Name, name) {
			return h.Value, true
		}
	}
	return nil, false
}

// IsResponse reports whether the first start-line token looks like a
// protocol version, i.e. the head is a status line.
func (m *Message) IsResponse() bool {
	return hasPrefixFold(m.Method, strHTTPSlash)
}

// StatusCode returns the numeric status of a response, or 0 for requests
// and non-numeric status tokens.
func (m *Message) StatusCode() int {
	if !m.IsResponse() {
		return 0
	}
	if n := parseUint(m.URI); n > 0 {
		return n
	}
	return 0
}

// ContentLength returns the body length declared by the Content-Length
// header, clamped at 0.
func (m *Message) ContentLength() (int64, bool) {
	v, ok := m.Header(HeaderContentLength)
	if !ok {
		return 0, false
	}
	n := ParseContentLength(v)
	if n < 0 {
		n = 0
	}
	return n, true
}

func (m *Message) addHeader(name, value []byte) bool {
	if m.nheaders >= MaxHeaders {
		return false
	}
	m.headers[m.nheaders] = Header{Name: name, Value: value}
	m.nheaders++
	return true
}

const (
	HeaderContentLength = "Content-Length"

	strHTTPSlash = "HTTP/"
	strPUT       = "PUT"
	strPOST      = "POST"
	strNoContent = "204"
)

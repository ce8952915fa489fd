// Package headreader reads HTTP/1.x messages from a connection using the
// httphead parser. It owns the receive buffer: it feeds httphead.Parse
// until a head is complete, then reads the body according to the length
// the parser inferred.
package headreader

import (
	"bufio"
	"fmt"
	"io"

	"github.com/newacorn/httphead"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	ErrHeadTooLarge      = errors.New("headreader: head exceeds MaxHeadSize")
	ErrUnexpectedHeadEOF = errors.New("headreader: unexpected EOF reading head")
	ErrBodyTooLarge      = errors.New("headreader: body exceeds MaxBodySize")
	ErrUnexpectedBodyEOF = errors.New("headreader: unexpected EOF reading body")

	errNeedMore = errors.New("need more data: head not terminated")
)

// Reader reads consecutive messages from one connection.
type Reader struct {
	cfg Config
	br  *bufio.Reader
	log *zerolog.Logger
}

// NewReader returns a Reader consuming r.
func NewReader(r io.Reader, cfg Config) *Reader {
	cfg = cfg.withDefaults()
	return &Reader{
		cfg: cfg,
		br:  bufio.NewReaderSize(r, cfg.MaxHeadSize),
		log: cfg.Logger,
	}
}

// Reset discards buffered data and switches to r.
func (r *Reader) Reset(rd io.Reader) {
	r.br.Reset(rd)
}

// Stats returns the counters the reader updates.
func (r *Reader) Stats() *Stats {
	return r.cfg.Stats
}

// ReadHead reads the next head into m and returns its raw bytes.
//
// The returned bytes and every slice in m alias the receive buffer and are
// only valid until the next call on r. io.EOF is returned if the peer
// closed the connection before sending any byte. Malformed input yields an
// error wrapping httphead.ErrMalformed; the connection must not be read
// further in that case.
func (r *Reader) ReadHead(m *httphead.Message) (head []byte, err error) {
	start := absoluteNano()
	n := 1
	for {
		head, err = r.tryRead(m, n)
		if err == nil {
			r.cfg.Stats.heads.Inc()
			r.log.Debug().
				Bytes("method", m.Method).
				Bytes("uri", m.URI).
				Int("head", len(head)).
				Stringer("body", m.Body.Len).
				Dur("latency", since(start)).
				Msg("head read")
			return
		}
		if err != errNeedMore {
			return
		}
		r.cfg.Stats.retries.Inc()
		n = r.br.Buffered() + 1
	}
}

func (r *Reader) tryRead(m *httphead.Message, n int) (head []byte, err error) {
	b, err := r.br.Peek(n)
	if len(b) != n {
		switch {
		case err == bufio.ErrBufferFull:
			r.cfg.Stats.tooLarge.Inc()
			r.log.Warn().Int("limit", r.cfg.MaxHeadSize).Bytes("head", bufferSnippet(b)).Msg("head too large")
			err = ErrHeadTooLarge
		case err == io.EOF && n > 1:
			err = ErrUnexpectedHeadEOF
		}
		return nil, err
	}
	b = mustPeekBuffered(r.br)
	headLen, errParse := httphead.Parse(b, m)
	if errParse != nil {
		if errParse == httphead.ErrIncomplete {
			return nil, errNeedMore
		}
		r.cfg.Stats.malformed.Inc()
		r.log.Warn().Int("buffered", len(b)).Bytes("head", bufferSnippet(b)).Msg("malformed head")
		return nil, errors.Wrapf(errParse, "buffer size=%d", len(b))
	}
	head = b[:headLen:headLen]
	mustDiscard(r.br, headLen)
	return head, nil
}

// ReadBody appends the body of m to dst.
//
// A declared body is read exactly; a body delimited by connection closure
// is read until io.EOF. Both are bounded by Config.MaxBodySize. Reading
// invalidates the slices of m that alias the receive buffer.
func (r *Reader) ReadBody(m *httphead.Message, dst []byte) ([]byte, error) {
	var (
		offset = len(dst)
		err    error
	)
	if n, ok := m.Body.Len.Value(); ok {
		if n > r.cfg.MaxBodySize {
			return dst, errors.Wrapf(ErrBodyTooLarge, "declared %d", n)
		}
		dst, err = appendBodyFixedSize(r.br, dst, int(n))
	} else {
		dst, err = appendBodyUntilClose(r.br, dst, r.cfg.MaxBodySize)
	}
	r.cfg.Stats.bodyBytes.Add(int64(len(dst) - offset))
	return dst, err
}

func appendBodyFixedSize(r *bufio.Reader, dst []byte, n int) ([]byte, error) {
	if n == 0 {
		return dst, nil
	}

	offset := len(dst)
	dstLen := offset + n
	if cap(dst) < dstLen {
		b := make([]byte, roundUpForSliceCap(dstLen))
		copy(b, dst)
		dst = b
	}
	dst = dst[:dstLen]

	for {
		nn, err := r.Read(dst[offset:])
		if nn <= 0 {
			if err == nil {
				return dst[:offset], errors.Errorf("bufio.Read() returned (%d, nil)", nn)
			}
			if err == io.EOF {
				err = ErrUnexpectedBodyEOF
			}
			return dst[:offset], err
		}
		offset += nn
		if offset == dstLen {
			return dst, nil
		}
	}
}

const untilCloseChunk = 4 * 1024

func appendBodyUntilClose(r *bufio.Reader, dst []byte, maxBodySize int64) ([]byte, error) {
	start := len(dst)
	for {
		if int64(len(dst)-start) > maxBodySize {
			return dst[:start+int(maxBodySize)], ErrBodyTooLarge
		}
		if cap(dst)-len(dst) < untilCloseChunk {
			b := make([]byte, len(dst), roundUpForSliceCap(len(dst)+untilCloseChunk))
			copy(b, dst)
			dst = b
		}
		nn, err := r.Read(dst[len(dst):cap(dst)])
		dst = dst[:len(dst)+nn]
		if err == io.EOF {
			if int64(len(dst)-start) > maxBodySize {
				return dst[:start+int(maxBodySize)], ErrBodyTooLarge
			}
			return dst, nil
		}
		if err != nil {
			return dst, err
		}
	}
}

func roundUpForSliceCap(n int) int {
	if n <= 0 {
		return 0
	}

	// Above 100MB, we don't round up as the overhead is too large.
	if n > 100*1024*1024 {
		return n
	}

	x := uint32(n - 1)
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16

	// Make sure we don't return 0 due to overflow, even on 32 bit systems
	if x >= uint32(1<<31-1) {
		return n
	}

	return int(x + 1)
}

func mustPeekBuffered(r *bufio.Reader) []byte {
	buf, err := r.Peek(r.Buffered())
	if len(buf) == 0 || err != nil {
		panic(fmt.Sprintf("bufio.Reader.Peek() returned unexpected data (%q, %v)", buf, err))
	}
	return buf
}

func mustDiscard(r *bufio.Reader, n int) {
	if _, err := r.Discard(n); err != nil {
		panic(fmt.Sprintf("bufio.Reader.Discard(%d) failed: %v", n, err))
	}
}

package headreader

import (
	"sync"

	"github.com/newacorn/httphead"
	"github.com/pkg/errors"
	"github.com/valyala/bytebufferpool"
)

// Exchange is one complete message read off a connection. Unlike the
// results of ReadHead it owns its bytes: Msg aliases the Exchange's own
// head buffer and stays valid until ReleaseExchange.
type Exchange struct {
	Msg httphead.Message

	head *bytebufferpool.ByteBuffer
	body *bytebufferpool.ByteBuffer
}

var (
	exchangePool sync.Pool
	headPool     bytebufferpool.Pool
	bodyPool     bytebufferpool.Pool
)

// AcquireExchange returns an empty Exchange from the pool.
func AcquireExchange() *Exchange {
	v := exchangePool.Get()
	if v == nil {
		return &Exchange{}
	}
	return v.(*Exchange)
}

// ReleaseExchange returns e to the pool. e and everything obtained from it
// must not be used afterwards.
func ReleaseExchange(e *Exchange) {
	e.Reset()
	exchangePool.Put(e)
}

// Reset releases the buffers of e.
func (e *Exchange) Reset() {
	e.Msg.Reset()
	if e.head != nil {
		headPool.Put(e.head)
		e.head = nil
	}
	if e.body != nil {
		bodyPool.Put(e.body)
		e.body = nil
	}
}

// Head returns the raw head bytes.
func (e *Exchange) Head() []byte {
	if e.head == nil {
		return nil
	}
	return e.head.B
}

// Body returns the body bytes.
func (e *Exchange) Body() []byte {
	if e.body == nil {
		return nil
	}
	return e.body.B
}

// ReadMessage reads the next message into an Exchange from the pool. The
// caller releases it with ReleaseExchange.
func (r *Reader) ReadMessage() (*Exchange, error) {
	e := AcquireExchange()
	if err := r.ReadExchange(e); err != nil {
		ReleaseExchange(e)
		return nil, err
	}
	return e, nil
}

// ReadExchange reads the next message into e, reusing its buffers.
func (r *Reader) ReadExchange(e *Exchange) error {
	head, err := r.ReadHead(&e.Msg)
	if err != nil {
		return err
	}
	if e.head == nil {
		e.head = headPool.Get()
	}
	// head aliases the receive buffer, which the body read below reuses.
	e.head.B = append(e.head.B[:0], head...)
	if _, err = httphead.Parse(e.head.B, &e.Msg); err != nil {
		return errors.Wrap(err, "reparse copied head")
	}

	if e.body == nil {
		e.body = bodyPool.Get()
	}
	e.body.B, err = r.ReadBody(&e.Msg, e.body.B[:0])
	return err
}

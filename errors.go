package httphead

import "github.com/pkg/errors"

// ErrIncomplete is returned by Parse while the buffer does not yet hold
// the terminating blank line. Read more bytes and call Parse again.
var ErrIncomplete = errors.New("httphead: incomplete head")

// ErrMalformed is returned by Parse when the buffer can never form a valid
// head. The connection should be rejected rather than read further.
var ErrMalformed = errors.New("httphead: malformed head")

// ErrInvalidHeader is returned by Message.Validate.
var ErrInvalidHeader = errors.New("httphead: invalid header field")

const (
	// verdicts of DetectHeadLength
	incomplete = 0
	malformed  = -1
)

package httphead

import (
	"github.com/pkg/errors"
	"golang.org/x/net/http/httpguts"
)

// Validate checks the parsed header fields against RFC 7230 token and
// field-value syntax. Parse never calls it.
//
// The returned error wraps ErrInvalidHeader.
func (m *Message) Validate() error {
	for _, h := range m.Headers() {
		if !httpguts.ValidHeaderFieldName(string(h.Name)) {
			return errors.Wrapf(ErrInvalidHeader, "name %q", h.Name)
		}
		if !httpguts.ValidHeaderFieldValue(string(h.Value)) {
			return errors.Wrapf(ErrInvalidHeader, "value of %q", h.Name)
		}
	}
	return nil
}

// Error value construction and inspection
package aierrors

import (
	"encoding/json"
	"errors"
)

// CustomData is the structured diagnostic payload attached to an Error,
// distinct from its human-readable message. Only the fields declared by the
// constructing kind's Params variant are ever populated.
type CustomData struct {
	URL          string        `json:"url,omitempty"`
	Status       int           `json:"status,omitempty"`
	StatusText   string        `json:"statusText,omitempty"`
	ErrorDetails []ErrorDetail `json:"errorDetails,omitempty"`
	Response     any           `json:"response,omitempty"`
}

// Error is a standardized SDK error: a kind tag, a rendered human-readable
// message, and a CustomData diagnostic bag. Values are immutable after
// construction.
type Error struct {
	Kind       Kind
	Message    string
	CustomData CustomData

	cause error
}

// New constructs an Error from a Params variant. It renders the kind's
// message template from the variant's fields and assembles CustomData from
// the diagnostic subset. Construction is pure and total: it cannot fail and
// has no side effects. The returned value is meant to be returned up the
// call stack by the caller, never raised here.
func New(p Params) *Error {
	fields, data := bind(p)
	kind := p.ErrorKind()
	return &Error{
		Kind:       kind,
		Message:    renderTemplate(templates[kind], fields),
		CustomData: data,
	}
}

// Wrap constructs an Error exactly like New and records cause as the
// underlying error for errors.Is/errors.As chains.
func Wrap(cause error, p Params) *Error {
	e := New(p)
	e.cause = cause
	return e
}

// Error returns the rendered message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf returns the kind of the first *Error in err's chain, or the empty
// kind when the chain contains none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err's chain contains an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// errorJSON is the wire representation of an Error.
type errorJSON struct {
	Kind       Kind       `json:"kind"`
	Message    string     `json:"message"`
	CustomData CustomData `json:"customData"`
	Cause      string     `json:"cause,omitempty"`
}

var (
	_ json.Marshaler   = (*Error)(nil)
	_ json.Unmarshaler = (*Error)(nil)
)

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	j := errorJSON{
		Kind:       e.Kind,
		Message:    e.Message,
		CustomData: e.CustomData,
	}
	if e.cause != nil {
		j.Cause = e.cause.Error()
	}
	return json.Marshal(j)
}

// UnmarshalJSON implements json.Unmarshaler. A serialized cause is restored
// as an opaque error value carrying only its text.
func (e *Error) UnmarshalJSON(data []byte) error {
	var j errorJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	e.Kind = j.Kind
	e.Message = j.Message
	e.CustomData = j.CustomData
	if j.Cause != "" {
		e.cause = errors.New(j.Cause)
	} else {
		e.cause = nil
	}
	return nil
}

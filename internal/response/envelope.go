package response

import (
	"encoding/json"
	"errors"
	"fmt"

	"brickset/client/internal/codec"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// RemoteError is the message Brickset returns with status "error".
type RemoteError struct {
	Message string `json:"message"`
}

func (e *RemoteError) Error() string {
	return e.Message
}

// Envelope wraps every Brickset response. It holds either a success payload
// of type T or a RemoteError, selected by the "status" field.
type Envelope[T any] struct {
	status  Status
	payload T
	err     *RemoteError
}

func Success[T any](payload T) Envelope[T] {
	return Envelope[T]{status: StatusSuccess, payload: payload}
}

func Failure[T any](message string) Envelope[T] {
	return Envelope[T]{status: StatusError, err: &RemoteError{Message: message}}
}

// Decode parses a response body. Any failure is a *codec.DecodeError.
func Decode[T any](body []byte) (*Envelope[T], error) {
	var env Envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, codec.AsDecodeError(err)
	}
	return &env, nil
}

func (e Envelope[T]) Status() Status {
	return e.status
}

// Get returns the payload, or false when the envelope holds an error.
func (e Envelope[T]) Get() (T, bool) {
	if e.status != StatusSuccess {
		var zero T
		return zero, false
	}
	return e.payload, true
}

// Err returns the remote error, or false when the envelope holds a payload.
func (e Envelope[T]) Err() (*RemoteError, bool) {
	if e.status != StatusError {
		return nil, false
	}
	return e.err, true
}

// Result converts the envelope into ordinary Go error handling.
func (e Envelope[T]) Result() (T, error) {
	switch e.status {
	case StatusSuccess:
		return e.payload, nil
	case StatusError:
		var zero T
		return zero, e.err
	default:
		var zero T
		return zero, errors.New("empty response envelope")
	}
}

func (e *Envelope[T]) UnmarshalJSON(data []byte) error {
	var head struct {
		Status  *string `json:"status"`
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	if head.Status == nil {
		return &codec.DecodeError{
			Kind:  codec.KindSchemaMismatch,
			Field: "status",
			Err:   errors.New("missing status tag"),
		}
	}

	switch Status(*head.Status) {
	case StatusSuccess:
		var payload T
		if err := json.Unmarshal(data, &payload); err != nil {
			return err
		}
		*e = Success(payload)

	case StatusError:
		if head.Message == nil {
			return &codec.DecodeError{
				Kind:  codec.KindSchemaMismatch,
				Field: "message",
				Err:   errors.New("error response without message"),
			}
		}
		*e = Failure[T](*head.Message)

	default:
		return &codec.DecodeError{
			Kind:  codec.KindSchemaMismatch,
			Field: "status",
			Token: *head.Status,
			Err:   fmt.Errorf("unknown status %q", *head.Status),
		}
	}

	return nil
}

func (e Envelope[T]) MarshalJSON() ([]byte, error) {
	switch e.status {
	case StatusError:
		return json.Marshal(struct {
			Status  Status `json:"status"`
			Message string `json:"message"`
		}{Status: StatusError, Message: e.err.Message})

	case StatusSuccess:
		data, err := json.Marshal(e.payload)
		if err != nil {
			return nil, err
		}

		fields := make(map[string]json.RawMessage)
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, fmt.Errorf("payload must encode as a JSON object: %w", err)
		}
		fields["status"] = json.RawMessage(`"success"`)
		return json.Marshal(fields)

	default:
		return nil, errors.New("cannot encode an empty response envelope")
	}
}

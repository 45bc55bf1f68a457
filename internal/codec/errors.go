package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// DecodeErrorKind classifies why a response could not be decoded
type DecodeErrorKind string

const (
	KindSyntax             DecodeErrorKind = "syntax"
	KindSchemaMismatch     DecodeErrorKind = "schema-mismatch"
	KindInvalidFlagValue   DecodeErrorKind = "invalid-flag-value"
	KindInvalidIntegerList DecodeErrorKind = "invalid-integer-list"
)

// DecodeError is returned when JSON received from Brickset cannot be mapped
// onto the typed models. Field and Token are filled in where known.
type DecodeError struct {
	Kind  DecodeErrorKind
	Field string
	Token string
	Err   error
}

func (e *DecodeError) Error() string {
	msg := "decode error (" + string(e.Kind) + ")"
	if e.Field != "" {
		msg += fmt.Sprintf(" at field %q", e.Field)
	}
	if e.Token != "" {
		msg += fmt.Sprintf(" on token %q", e.Token)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AsDecodeError normalizes any error produced while unmarshalling into a
// *DecodeError. Errors that already are DecodeErrors are returned as is.
func AsDecodeError(err error) *DecodeError {
	if err == nil {
		return nil
	}

	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return decodeErr
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &DecodeError{Kind: KindSyntax, Err: err}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &DecodeError{
			Kind:  KindSchemaMismatch,
			Field: typeErr.Field,
			Token: typeErr.Value,
			Err:   err,
		}
	}

	return &DecodeError{Kind: KindSchemaMismatch, Err: err}
}

// mismatch reports a JSON value of the wrong kind. It is returned as a
// *json.UnmarshalTypeError so encoding/json attaches the field path.
func mismatch(data []byte, target any) error {
	return &json.UnmarshalTypeError{
		Value: jsonKind(data),
		Type:  reflect.TypeOf(target),
	}
}

func jsonKind(data []byte) string {
	if len(data) == 0 {
		return "empty"
	}
	switch data[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

func isNull(data []byte) bool {
	return string(data) == "null"
}

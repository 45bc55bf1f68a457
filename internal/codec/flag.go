package codec

import (
	"fmt"
	"strconv"
)

// Flag is a boolean the remote service only understands as "1" or absent.
// Use it with `omitempty` so an unset flag is left out entirely.
type Flag bool

func (f Flag) MarshalJSON() ([]byte, error) {
	if !f {
		return []byte("null"), nil
	}
	return []byte("1"), nil
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*f = false
		return nil
	}

	if jsonKind(data) != "number" {
		return mismatch(data, *f)
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil || n != 1 {
		return &DecodeError{
			Kind:  KindInvalidFlagValue,
			Token: string(data),
			Err:   fmt.Errorf("flag must be 1, was %s", data),
		}
	}

	*f = true
	return nil
}

package codec

import (
	"encoding/json"
	"strconv"
	"strings"
)

// IntList is a list of integers serialized as a comma separated string,
// e.g. "1999, 2001". A bare JSON integer decodes as a one element list.
type IntList []int

func (l IntList) MarshalJSON() ([]byte, error) {
	parts := make([]string, 0, len(l))
	for _, n := range l {
		parts = append(parts, strconv.Itoa(n))
	}
	return json.Marshal(strings.Join(parts, ", "))
}

func (l *IntList) UnmarshalJSON(data []byte) error {
	switch jsonKind(data) {
	case "null":
		*l = nil
		return nil

	case "number":
		n, err := strconv.Atoi(string(data))
		if err != nil {
			return &DecodeError{Kind: KindInvalidIntegerList, Token: string(data), Err: err}
		}
		*l = IntList{n}
		return nil

	case "string":
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		list, err := ParseIntList(text)
		if err != nil {
			return err
		}
		*l = list
		return nil

	default:
		return mismatch(data, IntList{})
	}
}

// ParseIntList parses a comma separated list of integers. Each token is
// trimmed before parsing.
func ParseIntList(text string) (IntList, error) {
	tokens := strings.Split(text, ",")
	result := make(IntList, 0, len(tokens))

	for _, token := range tokens {
		token = strings.TrimSpace(token)
		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, &DecodeError{Kind: KindInvalidIntegerList, Token: token, Err: err}
		}
		result = append(result, n)
	}

	return result, nil
}

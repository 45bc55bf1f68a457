package codec

import "encoding/json"

// NotSpecified is the literal Brickset uses instead of null for unknown text.
const NotSpecified = "{Not specified}"

// SentinelString is an optional string whose absent state travels on the
// wire as NotSpecified.
type SentinelString struct {
	value string
	valid bool
}

// Specified returns a present SentinelString holding s.
func Specified(s string) SentinelString {
	return SentinelString{value: s, valid: true}
}

// Get returns the value and whether it is present.
func (s SentinelString) Get() (string, bool) {
	return s.value, s.valid
}

func (s SentinelString) Valid() bool {
	return s.valid
}

// OrElse returns the value, or def when absent.
func (s SentinelString) OrElse(def string) string {
	if !s.valid {
		return def
	}
	return s.value
}

func (s SentinelString) String() string {
	return s.OrElse(NotSpecified)
}

func (s SentinelString) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SentinelString) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*s = SentinelString{}
		return nil
	}

	if jsonKind(data) != "string" {
		return mismatch(data, "")
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}

	if text == NotSpecified {
		*s = SentinelString{}
		return nil
	}

	*s = Specified(text)
	return nil
}

package codec

import "strconv"

// ZeroInt is an optional integer encoded as 0 when absent. Only use it for
// fields where zero carries no meaning of its own (e.g. sub-ratings).
type ZeroInt struct {
	value int
	valid bool
}

// NonZero wraps n; zero yields an absent value.
func NonZero(n int) ZeroInt {
	if n == 0 {
		return ZeroInt{}
	}
	return ZeroInt{value: n, valid: true}
}

func (z ZeroInt) Get() (int, bool) {
	return z.value, z.valid
}

func (z ZeroInt) Valid() bool {
	return z.valid
}

func (z ZeroInt) MarshalJSON() ([]byte, error) {
	if !z.valid {
		return []byte("0"), nil
	}
	return []byte(strconv.Itoa(z.value)), nil
}

func (z *ZeroInt) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*z = ZeroInt{}
		return nil
	}

	if jsonKind(data) != "number" {
		return mismatch(data, 0)
	}

	n, err := strconv.Atoi(string(data))
	if err != nil {
		return mismatch(data, 0)
	}

	*z = NonZero(n)
	return nil
}

package codec

import (
	"encoding/json"
	"time"
)

// DateLayout is the yyyy-mm-dd format used by the "updatedSince" filter.
const DateLayout = "2006-01-02"

// Date is a calendar day. The zero Date is treated as unset (`omitzero`).
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*d = Date{}
		return nil
	}

	if jsonKind(data) != "string" {
		return mismatch(data, "")
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}

	t, err := time.Parse(DateLayout, text)
	if err != nil {
		return &DecodeError{Kind: KindSchemaMismatch, Token: text, Err: err}
	}

	*d = Date{Time: t}
	return nil
}

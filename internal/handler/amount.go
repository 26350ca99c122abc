package handler

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// jsonAmount binds a monetary field that clients send either as a JSON
// number or as a numeric string. A present but unparseable value is
// recorded instead of failing the whole bind, so it can be reported as a
// validation detail alongside the other field checks.
type jsonAmount struct {
	value   *decimal.Decimal
	invalid bool
}

func (a *jsonAmount) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		a.invalid = true
		return nil
	}
	a.value = &d
	return nil
}

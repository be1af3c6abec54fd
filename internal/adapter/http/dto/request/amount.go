package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid amount")

// AmountText is a monetary value accepted either as a JSON number (12.5) or as
// typed text ("12,50"). It keeps the text; parsing happens in the domain.
type AmountText string

func (a *AmountText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = AmountText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return ErrInvalidAmount
	}
	*a = AmountText(n.String())
	return nil
}

func (a AmountText) String() string {
	return strings.TrimSpace(string(a))
}

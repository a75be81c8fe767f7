package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Number is a numeric field the service may send as a JSON number or as a
// string. It keeps the textual form so any value can be shown.
type Number string

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("number: %w", err)
	}
	*n = Number(num.String())
	return nil
}

// String prints numeric values in their shortest form, so 40.0 reads "40".
// Non-numeric text is returned unchanged.
func (n Number) String() string {
	if f, ok := n.Float(); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return string(n)
}

func (n Number) Float() (float64, bool) {
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

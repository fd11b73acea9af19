package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexInt decodes JSON numbers that some backend versions serialize as strings
// ("42" vs 42). It marshals back as a plain number.
type FlexInt int64

// UnmarshalJSON accepts a number, a quoted number or null.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if len(data) > 1 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("models: parse int %q: %w", s, err)
		}
		*f = FlexInt(parsed)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

// MarshalJSON emits a plain number.
func (f FlexInt) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(f), 10)), nil
}

// Int returns the value as int64.
func (f FlexInt) Int() int64 { return int64(f) }

// FlexFloat is FlexInt's counterpart for decimal fields (fees, hourly prices)
// that may arrive as "12.50" or 12.5.
type FlexFloat float64

// UnmarshalJSON accepts a number, a quoted number or null.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if len(data) > 1 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("models: parse float %q: %w", s, err)
		}
		*f = FlexFloat(parsed)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexFloat(n)
	return nil
}

// MarshalJSON emits a plain number.
func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(f), 'f', -1, 64)), nil
}

// Float returns the value as float64.
func (f FlexFloat) Float() float64 { return float64(f) }

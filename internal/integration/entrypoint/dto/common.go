// Package dto defines data transfer objects for API requests and responses.
package dto

import "encoding/json"

// ErrorResponse represents an error payload returned by the API.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// NumericString carries a numeric field that clients may send either as a
// JSON number or as text, the way HTML inputs deliver values. The raw text
// is kept so the use-case layer owns the coercion rules.
type NumericString string

// UnmarshalJSON accepts both representations.
func (n *NumericString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericString(s)
		return nil
	}
	*n = NumericString(data)
	return nil
}

// MarshalJSON renders the raw text as a JSON string.
func (n NumericString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(n))
}

// String returns the raw text.
func (n NumericString) String() string {
	return string(n)
}

package models

import "encoding/json"

// FlexString is a string that also accepts JSON numbers when decoding.
// Form state and shared-URL payloads send numeric fields as strings, but
// older snapshots stored them as raw numbers.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = FlexString(n.String())
	return nil
}

func (s FlexString) String() string {
	return string(s)
}

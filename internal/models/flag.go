package models

import (
	"bytes"
	"encoding/json"
)

// Flag holds a JSON scalar exactly as the server sent it. The upstream is not
// consistent about whether status codes arrive as numbers or strings, so
// comparisons are made against the raw token type.
type Flag struct {
	raw json.RawMessage
}

// NewFlag builds a Flag from a Go value, mostly for fixtures.
func NewFlag(v interface{}) Flag {
	b, err := json.Marshal(v)
	if err != nil {
		return Flag{}
	}
	return Flag{raw: b}
}

func (f *Flag) UnmarshalJSON(b []byte) error {
	f.raw = append(f.raw[:0], b...)
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	if len(f.raw) == 0 {
		return []byte("null"), nil
	}
	return f.raw, nil
}

// IsNumber reports whether the flag is a JSON number equal to n.
// A string "1" is not the number 1.
func (f Flag) IsNumber(n float64) bool {
	b := bytes.TrimSpace(f.raw)
	if len(b) == 0 || !(b[0] == '-' || (b[0] >= '0' && b[0] <= '9')) {
		return false
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return false
	}
	return v == n
}

// IsString reports whether the flag is a JSON string equal to s.
func (f Flag) IsString(s string) bool {
	b := bytes.TrimSpace(f.raw)
	if len(b) == 0 || b[0] != '"' {
		return false
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return false
	}
	return v == s
}

func (f Flag) String() string {
	return string(bytes.TrimSpace(f.raw))
}

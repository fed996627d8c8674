// Package columns stores string sequences as JSON text columns.
package columns

import (
	"encoding/json"
	"fmt"
)

// EncodeList stores an ordered string sequence as a JSON array. nil becomes "[]".
func EncodeList(v []string) (string, error) {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(b), nil
}

// DecodeList is the inverse of EncodeList. An empty column decodes to an empty slice.
func DecodeList(s string) ([]string, error) {
	out := []string{}
	if s == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return out, nil
}

// Package conv converts loosely formatted model output into strict data.
package conv

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

var ErrNoJSON = errors.New("no JSON object found")

// ExtractJSON returns the first JSON object in text, dropping markdown code
// fences and any prose the model wrapped around it.
func ExtractJSON(text string) (string, error) {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if nl := strings.IndexByte(s, '\n'); nl >= 0 {
			s = s[nl+1:]
		}
		if end := strings.LastIndex(s, "```"); end >= 0 {
			s = s[:end]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", ErrNoJSON
	}
	end := strings.LastIndexByte(s, '}')
	if end < start {
		// Truncated object; let the repair step close it.
		return s[start:], nil
	}
	return s[start : end+1], nil
}

// Normalize returns data as valid JSON, repairing it when it does not parse.
func Normalize(data []byte) ([]byte, error) {
	if json.Valid(data) {
		return data, nil
	}
	fixed, err := jsonrepair.JSONRepair(string(data))
	if err != nil {
		return nil, err
	}
	return []byte(fixed), nil
}

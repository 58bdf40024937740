package disambig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var ErrInvalidAnalysis = errors.New("invalid analysis")

const analysisSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["landmark", "original", "confidence", "reasoning"],
  "properties": {
    "landmark": {"type": ["string", "null"]},
    "original": {"type": "string"},
    "confidence": {"type": "string", "enum": ["high", "medium", "low"]},
    "reasoning": {"type": "string"}
  }
}`

var analysisLoader = gojsonschema.NewStringLoader(analysisSchema)

func validate(data []byte) error {
	result, err := gojsonschema.Validate(analysisLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidAnalysis, strings.Join(msgs, "; "))
}

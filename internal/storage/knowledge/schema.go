package knowledge

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["landmarks"],
  "properties": {
    "landmarks": {
      "type": "object",
      "minProperties": 1,
      "additionalProperties": {"$ref": "#/definitions/record"}
    }
  },
  "definitions": {
    "strings": {"type": "array", "items": {"type": "string"}},
    "year": {"type": ["string", "integer"]},
    "namesake": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "name": {"type": "string"},
        "role": {"type": "string"},
        "years": {"type": "string"}
      }
    },
    "record": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "built": {"$ref": "#/definitions/year"},
        "established": {"$ref": "#/definitions/year"},
        "dedicated": {"$ref": "#/definitions/year"},
        "significance": {"type": "string"},
        "management": {"type": "string"},
        "namesake": {"$ref": "#/definitions/namesake"},
        "events": {"$ref": "#/definitions/strings"},
        "history": {
          "type": "object",
          "properties": {
            "evolution": {"type": "string"},
            "origins": {"type": "string"},
            "original_purpose": {"type": "string"},
            "builder": {"type": "string"},
            "significance": {"type": "string"},
            "namesake": {"$ref": "#/definitions/namesake"},
            "timeline": {
              "type": "array",
              "items": {
                "type": "object",
                "required": ["year", "event"],
                "properties": {
                  "year": {"$ref": "#/definitions/year"},
                  "event": {"type": "string"}
                }
              }
            }
          }
        },
        "architecture": {
          "type": "object",
          "properties": {
            "style": {"type": "string"},
            "features": {"$ref": "#/definitions/strings"},
            "architect": {"type": "string"}
          }
        },
        "current_use": {
          "type": "object",
          "properties": {
            "department": {"type": "string"},
            "departments": {"$ref": "#/definitions/strings"},
            "facilities": {"$ref": "#/definitions/strings"}
          }
        },
        "features": {
          "type": "object",
          "properties": {
            "student_activities": {
              "type": "object",
              "properties": {
                "clubs": {"type": "string"},
                "types": {"$ref": "#/definitions/strings"}
              }
            },
            "facilities": {"$ref": "#/definitions/strings"}
          }
        }
      },
      "not": {
        "anyOf": [
          {"required": ["built", "established"]},
          {"required": ["built", "dedicated"]},
          {"required": ["established", "dedicated"]}
        ]
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(documentSchema)

// validate checks a JSON knowledge document against the document schema.
func validate(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
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
	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}

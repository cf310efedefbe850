package coverage

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// summarySchema is the structural contract for coverage-summary.json: every
// entry carries all four metric blocks, and the synthetic "total" entry is
// required. Extra fields are tolerated.
const summarySchema = `{
  "type": "object",
  "required": ["total"],
  "additionalProperties": {
    "type": "object",
    "required": ["lines", "statements", "functions", "branches"],
    "additionalProperties": true,
    "properties": {
      "lines":      {"$ref": "#/definitions/datum"},
      "statements": {"$ref": "#/definitions/datum"},
      "functions":  {"$ref": "#/definitions/datum"},
      "branches":   {"$ref": "#/definitions/datum"}
    }
  },
  "definitions": {
    "datum": {
      "type": "object",
      "required": ["total", "covered", "pct"],
      "properties": {
        "total":   {"type": "integer", "minimum": 0},
        "covered": {"type": "integer", "minimum": 0},
        "skipped": {"type": "integer", "minimum": 0},
        "pct":     {"type": "number", "minimum": 0, "maximum": 100}
      }
    }
  }
}`

// validateSummary checks raw summary bytes against summarySchema and
// folds any violations into a single schema mismatch error.
func validateSummary(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(summarySchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	if result.Valid() {
		return nil
	}

	fields := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		fields = append(fields, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return fmt.Errorf("schema mismatch: %s", strings.Join(fields, "; "))
}

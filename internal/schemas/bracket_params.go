// Package schemas provides JSON Schema validation for parameter files
// supplied to the CLI.
package schemas

// BracketParamsSchema is the JSON Schema for a mounting bracket parameter
// file. It mirrors the constraints enforced by types.BracketParams so that a
// malformed file is rejected with field-level messages before unmarshalling.
const BracketParamsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "MountingBracketParams",
  "type": "object",
  "required": ["width", "height", "thickness", "hole_diameter", "hole_count"],
  "additionalProperties": false,
  "properties": {
    "width": {"type": "number", "exclusiveMinimum": 0, "description": "Bracket width in mm"},
    "height": {"type": "number", "exclusiveMinimum": 0, "description": "Bracket height in mm"},
    "thickness": {"type": "number", "exclusiveMinimum": 0, "description": "Material thickness in mm"},
    "hole_diameter": {"type": "number", "exclusiveMinimum": 0, "description": "Mounting hole diameter in mm"},
    "hole_count": {"type": "integer", "minimum": 1, "maximum": 10, "description": "Number of mounting holes"},
    "material": {"type": "string", "description": "Material specification"},
    "bracket_type": {"type": "string", "description": "Bracket type: 'L' or 'flat', case-insensitive"}
  }
}`

// ValidateBracketParamsJSON validates a bracket parameter file's content
// against BracketParamsSchema.
func ValidateBracketParamsJSON(content []byte) error {
	return ValidateJSONString(BracketParamsSchema, string(content))
}

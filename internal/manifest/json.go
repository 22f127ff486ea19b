package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Document is the JSON form of the manifest.
type Document struct {
	Summary Summary `json:"summary"`
	Rows    []Row   `json:"rows"`
}

// BuildJSONSchema returns the JSON Schema (draft 2020-12 subset) the JSON manifest
// must satisfy.
func BuildJSONSchema() map[string]any {
	code := map[string]any{"type": "string", "pattern": `^[A-Z]{2}\d{3}$`}
	count := map[string]any{"type": "integer", "minimum": 0}
	positive := map[string]any{"type": "integer", "minimum": 1}

	row := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"survey_no":   code,
			"pdf_file":    map[string]any{"type": "string", "minLength": 1},
			"page":        positive,
			"image_num":   count,
			"output_file": map[string]any{"type": "string", "pattern": `^[A-Z]{2}\d{3}/[A-Z]{2}\d{3}_\d{3,}\.[A-Za-z0-9]+$`},
			"title":       map[string]any{"type": "string"},
			"width":       count,
			"height":      count,
		},
		"required": Header,
	}
	summary := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"total_images":      count,
			"surveys":           count,
			"images_with_title": count,
			"per_survey": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"survey_no", "images"},
					"properties": map[string]any{
						"survey_no": code,
						"images":    positive,
					},
				},
			},
		},
		"required": []string{"total_images", "surveys", "images_with_title", "per_survey"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"summary": summary,
			"rows":    map[string]any{"type": "array", "items": row},
		},
		"required": []string{"summary", "rows"},
	}
}

// BuildJSON encodes the manifest and validates it against BuildJSONSchema.
func BuildJSON(rows []Row, s Summary) ([]byte, error) {
	if rows == nil {
		rows = []Row{}
	}
	data, err := json.MarshalIndent(Document{Summary: s, Rows: rows}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	if err := ValidateJSONAgainstSchema(BuildJSONSchema(), data); err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

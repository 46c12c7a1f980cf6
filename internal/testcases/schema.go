package testcases

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildTestCaseJSONSchema returns the record shape as a JSON-Schema
// (draft 2020-12 subset) generic map. Output records are validated against it
// before anything is written to disk.
func BuildTestCaseJSONSchema(allowedOperations []string) map[string]any {
	props := map[string]any{
		"name":      map[string]any{"type": "string", "minLength": 1},
		"operation": map[string]any{"type": "string", "minLength": 1},
		"args": map[string]any{
			"type":          "object",
			"minProperties": 1,
		},
		"use_case": map[string]any{"type": "string", "minLength": 1},
	}

	// Constrain operation if a rule set is provided.
	if len(allowedOperations) > 0 {
		props["operation"] = map[string]any{
			"type": "string",
			"enum": allowedOperations,
		}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"name", "operation", "args", "use_case"},
	}
}

// Operations lists the distinct operation identifiers of a rule set, in rule
// order.
func Operations(rules []Rule) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range rules {
		if _, ok := seen[r.Operation]; ok {
			continue
		}
		seen[r.Operation] = struct{}{}
		out = append(out, r.Operation)
	}
	return out
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

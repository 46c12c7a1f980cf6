package entity

// TestCase is one generated tool-invocation record, serialized to the JSON
// output file. Args keys are operation-specific.
type TestCase struct {
	Name      string         `json:"name"`
	Operation string         `json:"operation"`
	Args      map[string]any `json:"args"`
	UseCase   string         `json:"use_case"` // source text, truncated
}

package testcases

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dhenenjay/orbital-insights/internal/entity"
)

// WriteFile schema-checks every record and writes the batch to path as
// pretty-printed JSON. Nothing is written if any record fails validation.
func WriteFile(path string, cases []entity.TestCase, rules []Rule, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if rules == nil {
		rules = DefaultRules
	}
	start := time.Now()

	schema := BuildTestCaseJSONSchema(Operations(rules))
	for i, tc := range cases {
		raw, err := json.Marshal(tc)
		if err != nil {
			return fmt.Errorf("marshal record %d: %w", i, err)
		}
		if err := ValidateJSONAgainstSchema(schema, raw); err != nil {
			return fmt.Errorf("record %d (%s): %w", i, tc.Name, err)
		}
	}

	// An empty batch still produces a valid file, same as the source pipeline.
	if cases == nil {
		cases = []entity.TestCase{}
	}
	b, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal test cases: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	logger.Info("testcases.write.ok",
		"path", path,
		"records", len(cases),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// Package testcases turns classified survey answers into tool-invocation
// records for the imagery server, and writes them out as JSON.
package testcases

import (
	"strings"

	"github.com/dhenenjay/orbital-insights/internal/entity"
)

// Rule maps trigger keywords found in a use case to one canned operation
// invocation. A record is only ever emitted for a use case whose text hit one
// of the rule's triggers.
type Rule struct {
	Name      string
	Operation string
	Triggers  []string
	Args      map[string]any
}

// DefaultRules cover the index computations and risk assessment the server
// already supports.
var DefaultRules = []Rule{
	{
		Name:      "Vegetation Monitoring",
		Operation: "earth_engine_process",
		Triggers:  []string{"ndvi", "vegetation"},
		Args: map[string]any{
			"operation":            "index",
			"indexType":            "NDVI",
			"region":               "Los Angeles",
			"startDate":            "2024-01-01",
			"endDate":              "2024-01-31",
			"includeVisualization": true,
		},
	},
	{
		Name:      "Water Resources Monitoring",
		Operation: "earth_engine_process",
		Triggers:  []string{"water"},
		Args: map[string]any{
			"operation":            "index",
			"indexType":            "NDWI",
			"region":               "San Francisco",
			"startDate":            "2024-01-01",
			"endDate":              "2024-01-31",
			"includeVisualization": true,
		},
	},
	{
		Name:      "Wildfire Risk Assessment",
		Operation: "wildfire_risk_assessment",
		Triggers:  []string{"wildfire", "fire"},
		Args: map[string]any{
			"region":    "Los Angeles",
			"startDate": "2024-06-01",
			"endDate":   "2024-08-31",
		},
	},
}

// Build emits one record per (use case, matched rule) pair over the first
// limit use cases. limit <= 0 means all. Source text is truncated to
// truncateAt characters in the emitted record.
func Build(useCases []entity.UseCase, rules []Rule, limit, truncateAt int) []entity.TestCase {
	if rules == nil {
		rules = DefaultRules
	}
	if limit > 0 && len(useCases) > limit {
		useCases = useCases[:limit]
	}

	var out []entity.TestCase
	for _, uc := range useCases {
		lowered := strings.ToLower(uc.Text)
		for _, rule := range rules {
			if !hitsAny(lowered, rule.Triggers) {
				continue
			}
			out = append(out, entity.TestCase{
				Name:      rule.Name,
				Operation: rule.Operation,
				Args:      cloneArgs(rule.Args),
				UseCase:   truncate(uc.Text, truncateAt),
			})
		}
	}
	return out
}

func hitsAny(lowered string, triggers []string) bool {
	for _, t := range triggers {
		if strings.Contains(lowered, t) {
			return true
		}
	}
	return false
}

func cloneArgs(args map[string]any) map[string]any {
	out := make(map[string]any, len(args))
	for k, v := range args {
		out[k] = v
	}
	return out
}

// truncate cuts s to n characters. Counting runes, not bytes, so a multi-byte
// character is never split.
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// Package classify buckets free-text use cases into geospatial-analysis
// categories and scores them against the toolchain's capabilities.
package classify

import (
	"strings"

	"github.com/dhenenjay/orbital-insights/constants"
)

// Categorize assigns text to the first category (in declared order) whose
// keyword list has a substring hit. Matching is case-insensitive. Texts with
// no hit report Uncategorized and ok=false.
func Categorize(text string) (constants.Category, bool) {
	lowered := strings.ToLower(text)
	for _, cat := range constants.Categories() {
		for _, kw := range constants.CategoryKeywords[cat] {
			if strings.Contains(lowered, kw) {
				return cat, true
			}
		}
	}
	return constants.Uncategorized, false
}

// CapabilitiesFor returns every capability whose trigger phrases appear in
// text, in declared capability order. Unlike categories, a use case may need
// several capabilities.
func CapabilitiesFor(text string) []constants.Capability {
	lowered := strings.ToLower(text)
	var out []constants.Capability
	for _, c := range constants.Capabilities() {
		for _, kw := range constants.CapabilityKeywords[c] {
			if strings.Contains(lowered, kw) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// SupportFor maps a capability-hit count to a support level.
func SupportFor(hits int) constants.SupportLevel {
	switch {
	case hits >= 2:
		return constants.SupportFull
	case hits == 1:
		return constants.SupportPartial
	default:
		return constants.SupportNeedsExtension
	}
}

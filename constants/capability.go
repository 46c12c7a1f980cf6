package constants

type Capability string

const (
	CapNDVI       Capability = "NDVI Calculation"
	CapNDWI       Capability = "Water Index (NDWI)"
	CapComposites Capability = "Cloud-free Composites"
	CapWildfire   Capability = "Wildfire Risk"
	CapTimeSeries Capability = "Time Series Analysis"
	CapExport     Capability = "Export/Visualization"
	CapCustom     Capability = "Custom Analysis"
)

var allCapabilities = []Capability{
	CapNDVI,
	CapNDWI,
	CapComposites,
	CapWildfire,
	CapTimeSeries,
	CapExport,
	CapCustom,
}

// CapabilityKeywords maps each server capability to the phrases that signal a
// use case needs it.
var CapabilityKeywords = map[Capability][]string{
	CapNDVI:       {"ndvi", "vegetation index", "vegetation health"},
	CapNDWI:       {"water", "ndwi", "water bodies", "moisture"},
	CapComposites: {"composite", "cloud-free", "median", "mosaic"},
	CapWildfire:   {"wildfire", "fire risk", "fire detection"},
	CapTimeSeries: {"time series", "temporal", "change detection", "monitoring"},
	CapExport:     {"export", "map", "visualization", "thumbnail"},
	CapCustom:     {"custom", "algorithm", "classification", "machine learning"},
}

func Capabilities() []Capability {
	out := make([]Capability, len(allCapabilities))
	copy(out, allCapabilities)
	return out
}

// SupportLevel summarizes how well the current toolchain covers a use case.
type SupportLevel string

const (
	SupportFull           SupportLevel = "FULLY_SUPPORTED"     // two or more capability hits
	SupportPartial        SupportLevel = "PARTIALLY_SUPPORTED" // exactly one hit
	SupportNeedsExtension SupportLevel = "NEEDS_EXTENSION"     // no hits
)

package classify

import (
	"log/slog"
	"sort"
	"time"

	"github.com/dhenenjay/orbital-insights/constants"
	"github.com/dhenenjay/orbital-insights/internal/entity"
)

// CapabilityCount is one entry of the capability demand ranking.
type CapabilityCount struct {
	Capability constants.Capability
	Count      int
}

// Summary is the aggregate result of classifying one batch of use cases.
type Summary struct {
	Total         int
	Buckets       map[constants.Category][]entity.ClassifiedUseCase
	Uncategorized []entity.ClassifiedUseCase
	Capabilities  []CapabilityCount // sorted by demand, descending
	SupportTally  map[constants.SupportLevel]int
	Detailed      int // how many cases fed the support tally
}

// Analyze classifies every use case: one category each (first match wins,
// misses go to the Uncategorized bucket), any number of capabilities.
// Support levels are tallied over the first detailLimit cases only, matching
// the detailed-analysis window of the report.
func Analyze(useCases []entity.UseCase, detailLimit int, logger *slog.Logger) *Summary {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	s := &Summary{
		Total:        len(useCases),
		Buckets:      make(map[constants.Category][]entity.ClassifiedUseCase),
		SupportTally: make(map[constants.SupportLevel]int),
	}
	capCounts := make(map[constants.Capability]int)

	for i, uc := range useCases {
		classified := entity.ClassifiedUseCase{UseCase: uc}

		cat, ok := Categorize(uc.Text)
		classified.Category = cat

		caps := CapabilitiesFor(uc.Text)
		classified.Capabilities = caps
		for _, c := range caps {
			capCounts[c]++
		}

		if detailLimit <= 0 || i < detailLimit {
			classified.Support = SupportFor(len(caps))
			s.SupportTally[classified.Support]++
			s.Detailed++
		}

		if ok {
			s.Buckets[cat] = append(s.Buckets[cat], classified)
		} else {
			s.Uncategorized = append(s.Uncategorized, classified)
		}
	}

	for c, n := range capCounts {
		s.Capabilities = append(s.Capabilities, CapabilityCount{Capability: c, Count: n})
	}
	sort.SliceStable(s.Capabilities, func(i, j int) bool {
		if s.Capabilities[i].Count != s.Capabilities[j].Count {
			return s.Capabilities[i].Count > s.Capabilities[j].Count
		}
		return s.Capabilities[i].Capability < s.Capabilities[j].Capability
	})

	logger.Info("classify.analyze.ok",
		"use_cases", s.Total,
		"uncategorized", len(s.Uncategorized),
		"detailed", s.Detailed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return s
}

// BucketCount returns how many use cases landed in cat.
func (s *Summary) BucketCount(cat constants.Category) int {
	return len(s.Buckets[cat])
}

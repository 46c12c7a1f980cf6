package utils

import (
	"time"

	"github.com/dhenenjay/orbital-insights/constants"
	insightspb "github.com/dhenenjay/orbital-insights/gen/proto/insights/v1"
	"github.com/dhenenjay/orbital-insights/internal/classify"
	"github.com/dhenenjay/orbital-insights/internal/entity"
)

func ToPBExportJob(j *entity.ExportJob) *insightspb.ExportJob {
	return &insightspb.ExportJob{
		Id:             j.ID.String(),
		Description:    j.Description,
		Collection:     j.Collection,
		StartDate:      j.StartDate,
		EndDate:        j.EndDate,
		Folder:         j.Folder,
		FilenamePrefix: j.FilenamePrefix,
		OperationName:  j.OperationName,
		Status:         string(j.Status),
		ErrorMessage:   j.ErrorMessage,
		SubmittedAt:    j.SubmittedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBBuckets(s *classify.Summary) []*insightspb.CategoryCount {
	var out []*insightspb.CategoryCount
	for _, cat := range constants.Categories() {
		cases := s.Buckets[cat]
		if len(cases) == 0 {
			continue
		}
		out = append(out, &insightspb.CategoryCount{
			Category: string(cat),
			Count:    uint32(len(cases)),
		})
	}
	if n := len(s.Uncategorized); n > 0 {
		out = append(out, &insightspb.CategoryCount{
			Category: string(constants.Uncategorized),
			Count:    uint32(n),
		})
	}
	return out
}

func ToPBCapabilities(s *classify.Summary) []*insightspb.CapabilityCount {
	out := make([]*insightspb.CapabilityCount, 0, len(s.Capabilities))
	for _, cc := range s.Capabilities {
		out = append(out, &insightspb.CapabilityCount{
			Capability: string(cc.Capability),
			Count:      uint32(cc.Count),
		})
	}
	return out
}

func ToPBSupport(s *classify.Summary) []*insightspb.SupportCount {
	levels := []constants.SupportLevel{
		constants.SupportFull,
		constants.SupportPartial,
		constants.SupportNeedsExtension,
	}
	out := make([]*insightspb.SupportCount, 0, len(levels))
	for _, level := range levels {
		out = append(out, &insightspb.SupportCount{
			Level: string(level),
			Count: uint32(s.SupportTally[level]),
		})
	}
	return out
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

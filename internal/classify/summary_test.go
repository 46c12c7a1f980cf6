package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhenenjay/orbital-insights/constants"
	"github.com/dhenenjay/orbital-insights/internal/entity"
)

func useCase(user int, text string) entity.UseCase {
	return entity.UseCase{Respondent: user, Column: "Use case", Text: text}
}

func TestAnalyzeBucketsAndTally(t *testing.T) {
	cases := []entity.UseCase{
		useCase(1, "NDVI time series for deforestation monitoring"), // Forest/Vegetation, 2 caps
		useCase(2, "water reservoir level tracking"),                // Water Resources, 1 cap
		useCase(3, "counting penguins from balloons"),               // no category, no caps
		useCase(4, "crop yield forecasting"),                        // Agriculture
	}

	s := Analyze(cases, 10, nil)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 1, s.BucketCount(constants.ForestVegetation))
	assert.Equal(t, 1, s.BucketCount(constants.WaterResources))
	assert.Equal(t, 1, s.BucketCount(constants.Agriculture))
	require.Len(t, s.Uncategorized, 1)
	assert.Equal(t, 3, s.Uncategorized[0].Respondent)
	assert.Equal(t, constants.Uncategorized, s.Uncategorized[0].Category)

	// every case was inside the detail window
	assert.Equal(t, 4, s.Detailed)
	assert.Equal(t, 1, s.SupportTally[constants.SupportFull])    // case 1
	assert.Equal(t, 1, s.SupportTally[constants.SupportPartial]) // case 2
	assert.Equal(t, 2, s.SupportTally[constants.SupportNeedsExtension])
}

func TestAnalyzeCapabilityRanking(t *testing.T) {
	cases := []entity.UseCase{
		useCase(1, "ndvi for vegetation health"),
		useCase(2, "ndvi change detection"),
		useCase(3, "water bodies mapping"),
	}

	s := Analyze(cases, 10, nil)

	require.NotEmpty(t, s.Capabilities)
	assert.Equal(t, constants.CapNDVI, s.Capabilities[0].Capability)
	assert.Equal(t, 2, s.Capabilities[0].Count)

	// ranking is sorted by demand, descending
	for i := 1; i < len(s.Capabilities); i++ {
		assert.GreaterOrEqual(t, s.Capabilities[i-1].Count, s.Capabilities[i].Count)
	}
}

func TestAnalyzeDetailLimitBoundsSupportTally(t *testing.T) {
	cases := []entity.UseCase{
		useCase(1, "ndvi and water analysis"),
		useCase(2, "ndvi and water analysis"),
		useCase(3, "ndvi and water analysis"),
	}

	s := Analyze(cases, 2, nil)

	assert.Equal(t, 2, s.Detailed)
	assert.Equal(t, 2, s.SupportTally[constants.SupportFull])
	// classification itself still covers all cases
	assert.Equal(t, 3, s.BucketCount(constants.ForestVegetation))
}

func TestAnalyzeEmptyInput(t *testing.T) {
	s := Analyze(nil, 10, nil)
	assert.Equal(t, 0, s.Total)
	assert.Empty(t, s.Uncategorized)
	assert.Empty(t, s.Capabilities)
}

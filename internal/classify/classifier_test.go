package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhenenjay/orbital-insights/constants"
)

func TestCategorizeFirstMatchWins(t *testing.T) {
	tests := []struct {
		name string
		text string
		want constants.Category
	}{
		{
			name: "single category",
			text: "Monitoring crop health across the season",
			want: constants.Agriculture,
		},
		{
			name: "agriculture declared before water",
			text: "Track irrigation water usage on farms",
			want: constants.Agriculture,
		},
		{
			name: "flood resolves to water resources not disaster",
			text: "Early flood warnings for river basins",
			want: constants.WaterResources,
		},
		{
			name: "case insensitive",
			text: "URBAN expansion mapping for the city council",
			want: constants.UrbanPlanning,
		},
		{
			name: "substring hit inside a word",
			text: "Reforestation progress tracking",
			want: constants.ForestVegetation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Categorize(tt.text)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategorizeUnmatched(t *testing.T) {
	got, ok := Categorize("I want to count penguins from balloons")
	assert.False(t, ok)
	assert.Equal(t, constants.Uncategorized, got)
}

func TestCategorizeAssignsAtMostOneCategory(t *testing.T) {
	// a text hitting keywords of several categories still gets exactly one
	text := "wildfire damage to crops and urban water supply"
	got, ok := Categorize(text)
	assert.True(t, ok)
	assert.Equal(t, constants.Agriculture, got, "first declared category with a hit")
}

func TestCapabilitiesFor(t *testing.T) {
	caps := CapabilitiesFor("NDVI time series over water bodies, exported as a map")
	assert.Equal(t, []constants.Capability{
		constants.CapNDVI,
		constants.CapNDWI,
		constants.CapTimeSeries,
		constants.CapExport,
	}, caps)

	assert.Empty(t, CapabilitiesFor("nothing relevant here"))
}

func TestSupportFor(t *testing.T) {
	assert.Equal(t, constants.SupportNeedsExtension, SupportFor(0))
	assert.Equal(t, constants.SupportPartial, SupportFor(1))
	assert.Equal(t, constants.SupportFull, SupportFor(2))
	assert.Equal(t, constants.SupportFull, SupportFor(7))
}

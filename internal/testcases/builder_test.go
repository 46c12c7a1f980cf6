package testcases

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhenenjay/orbital-insights/internal/entity"
)

func uc(text string) entity.UseCase {
	return entity.UseCase{Respondent: 1, Column: "Use case", Text: text}
}

func TestBuildEmitsOnlyTriggeredRecords(t *testing.T) {
	cases := Build([]entity.UseCase{
		uc("I need NDVI maps for my vineyard"),
		uc("flood extent from radar, no optical"),
		uc("wildfire spread modelling"),
		uc("counting penguins"),
	}, DefaultRules, 0, 100)

	// every record's source text must contain a trigger of its operation
	for _, tc := range cases {
		lowered := strings.ToLower(tc.UseCase)
		var rule *Rule
		for i := range DefaultRules {
			if DefaultRules[i].Name == tc.Name {
				rule = &DefaultRules[i]
				break
			}
		}
		require.NotNil(t, rule, "record references unknown rule %q", tc.Name)
		assert.True(t, hitsAny(lowered, rule.Triggers),
			"record %q not triggered by its source text %q", tc.Name, tc.UseCase)
	}

	names := make([]string, len(cases))
	for i, tc := range cases {
		names[i] = tc.Name
	}
	assert.Equal(t, []string{
		"Vegetation Monitoring",      // ndvi
		"Wildfire Risk Assessment",   // wildfire
	}, names)
}

func TestBuildOneRecordPerMatchedRule(t *testing.T) {
	cases := Build([]entity.UseCase{
		uc("ndvi over water bodies near an active fire zone"),
	}, DefaultRules, 0, 100)

	require.Len(t, cases, 3)
	assert.Equal(t, "earth_engine_process", cases[0].Operation)
	assert.Equal(t, "NDVI", cases[0].Args["indexType"])
	assert.Equal(t, "NDWI", cases[1].Args["indexType"])
	assert.Equal(t, "wildfire_risk_assessment", cases[2].Operation)
}

func TestBuildHonorsLimitAndTruncation(t *testing.T) {
	long := "ndvi " + strings.Repeat("x", 200)
	cases := Build([]entity.UseCase{uc(long), uc("ndvi again")}, DefaultRules, 1, 100)

	require.Len(t, cases, 1)
	assert.Equal(t, long[:100], cases[0].UseCase)
}

func TestBuildTruncatesByRunes(t *testing.T) {
	// 97 ASCII runes plus a multi-byte tail crossing the cut point
	long := "ndvi " + strings.Repeat("x", 92) + "日本語日本語"
	cases := Build([]entity.UseCase{uc(long)}, DefaultRules, 0, 100)
	require.Len(t, cases, 1)

	got := cases[0].UseCase
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 100, utf8.RuneCountInString(got))
	assert.Equal(t, string([]rune(long)[:100]), got)
}

func TestBuildClonesArgs(t *testing.T) {
	cases := Build([]entity.UseCase{uc("ndvi one"), uc("ndvi two")}, DefaultRules, 0, 100)
	require.Len(t, cases, 2)

	cases[0].Args["region"] = "mutated"
	assert.Equal(t, "Los Angeles", cases[1].Args["region"])
	assert.Equal(t, "Los Angeles", DefaultRules[0].Args["region"])
}

func TestOperationsDeduplicates(t *testing.T) {
	ops := Operations(DefaultRules)
	assert.Equal(t, []string{"earth_engine_process", "wildfire_risk_assessment"}, ops)
}

func TestWriteFileValidRecords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cases.json")

	cases := Build([]entity.UseCase{uc("ndvi for vineyards")}, DefaultRules, 0, 100)
	require.NoError(t, WriteFile(path, cases, DefaultRules, nil))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []entity.TestCase
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Vegetation Monitoring", decoded[0].Name)
}

func TestWriteFileEmptyBatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cases.json")

	require.NoError(t, WriteFile(path, nil, DefaultRules, nil))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(b))
}

func TestWriteFileRejectsInvalidRecord(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cases.json")

	bad := []entity.TestCase{{
		Name:      "Broken",
		Operation: "not_a_known_operation",
		Args:      map[string]any{"region": "x"},
		UseCase:   "text",
	}}
	err := WriteFile(path, bad, DefaultRules, nil)
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "invalid batch must not produce a file")
}

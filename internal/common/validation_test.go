package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	assert.Nil(t, Required("f", "value"))
	assert.NotNil(t, Required("f", ""))
	assert.NotNil(t, Required("f", "   "))
	assert.NotNil(t, Required("f", nil))
}

func TestDateYMD(t *testing.T) {
	assert.Nil(t, DateYMD("f", "2024-08-01"))
	assert.NotNil(t, DateYMD("f", "08/01/2024"))
	assert.NotNil(t, DateYMD("f", "2024-8-1"))
	assert.NotNil(t, DateYMD("f", 20240801))
}

func TestMaxLength(t *testing.T) {
	assert.Nil(t, MaxLength("f", "short", 10))
	assert.NotNil(t, MaxLength("f", strings.Repeat("x", 11), 10))
	// runes, not bytes
	assert.Nil(t, MaxLength("f", strings.Repeat("日", 10), 10))
	// non-string values pass through
	assert.Nil(t, MaxLength("f", 42, 1))
}

func TestValidatorCollectsErrors(t *testing.T) {
	v := NewValidator()
	v.Field("start_date", "", Required, DateYMD)
	v.Field("end_date", "2024-09-01", Required, DateYMD)

	require.True(t, v.HasErrors())
	msg := v.ErrorMessage()
	assert.Contains(t, msg, "start_date")
	assert.NotContains(t, msg, "end_date")

	err := ValidateAndReturnError(v)
	require.Error(t, err)

	assert.NoError(t, ValidateAndReturnError(NewValidator()))
}

package earthengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloudFree(t *testing.T) {
	const (
		cloud  = 1 << 10
		cirrus = 1 << 11
	)

	tests := []struct {
		name string
		qa   uint16
		want bool
	}{
		{"all clear", 0, true},
		{"cloud bit set", cloud, false},
		{"cirrus bit set", cirrus, false},
		{"both set", cloud | cirrus, false},
		{"unrelated bits only", 0x03FF, true},
		{"cloud plus unrelated bits", cloud | 0x0001, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CloudFree(tt.qa))
		})
	}
}

func TestCloudMaskBodyShape(t *testing.T) {
	body := cloudMaskBody()

	// outermost op rescales reflectance
	assert.Equal(t, "Image.divide", body.FunctionInvocationValue.FunctionName)

	sel := body.FunctionInvocationValue.Arguments["image1"]
	assert.Equal(t, "Image.select", sel.FunctionInvocationValue.FunctionName)

	masked := sel.FunctionInvocationValue.Arguments["input"]
	assert.Equal(t, "Image.updateMask", masked.FunctionInvocationValue.FunctionName)

	mask := masked.FunctionInvocationValue.Arguments["mask"]
	assert.Equal(t, "Image.and", mask.FunctionInvocationValue.FunctionName,
		"both bit tests must pass for a pixel to survive")
}

package printing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestResolveGeometry_Presets(t *testing.T) {
	tests := []struct {
		preset     PageSize
		wantWidth  float64
		wantHeight float64
	}{
		{PageSizeA7, 75, 50},
		{PageSizeA6, 100, 75},
		{PageSizeA5, 148, 105},
		{PageSizeA4, 210, 297},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			g := ResolveGeometry(tt.preset, nil, nil)
			assert.Equal(t, tt.preset, g.Preset)
			assert.Equal(t, tt.wantWidth, g.WidthMm)
			assert.Equal(t, tt.wantHeight, g.HeightMm)
		})
	}
}

func TestResolveGeometry_EmptyPresetDefaultsToA4(t *testing.T) {
	g := ResolveGeometry("", nil, nil)
	assert.Equal(t, PageSizeA4, g.Preset)
	assert.Equal(t, 210.0, g.WidthMm)
	assert.Equal(t, 297.0, g.HeightMm)
}

func TestResolveGeometry_UnrecognizedPresetDefaultsToA4(t *testing.T) {
	g := ResolveGeometry("LETTER", nil, nil)
	assert.Equal(t, PageSizeA4, g.Preset)
	assert.Equal(t, 210.0, g.WidthMm)
}

func TestResolveGeometry_ExplicitOverridesBothDimensions(t *testing.T) {
	g := ResolveGeometry(PageSizeA6, floatPtr(58), floatPtr(40))
	assert.Equal(t, 58.0, g.WidthMm)
	assert.Equal(t, 40.0, g.HeightMm)
}

func TestResolveGeometry_OverridesAreIndependent(t *testing.T) {
	// width pinned, height inherited from the preset
	g := ResolveGeometry(PageSizeA6, floatPtr(58), nil)
	assert.Equal(t, 58.0, g.WidthMm)
	assert.Equal(t, 75.0, g.HeightMm)

	// height pinned, width inherited from the preset
	g = ResolveGeometry(PageSizeA6, nil, floatPtr(40))
	assert.Equal(t, 100.0, g.WidthMm)
	assert.Equal(t, 40.0, g.HeightMm)
}

func TestResolveGeometry_ZeroOverrideIsIgnored(t *testing.T) {
	g := ResolveGeometry(PageSizeA7, floatPtr(0), floatPtr(0))
	assert.Equal(t, 75.0, g.WidthMm)
	assert.Equal(t, 50.0, g.HeightMm)
}

package printing

// PageGeometry is the physical size, in millimeters, that a rendered
// document targets. It is derived per print call and never stored.
type PageGeometry struct {
	Preset   PageSize
	WidthMm  float64
	HeightMm float64
}

// ResolveGeometry maps a page-size preset plus optional explicit
// millimeter overrides to concrete dimensions. An unknown or empty
// preset falls back to A4. Explicit width and height each override
// the preset's corresponding dimension independently, so a template
// may pin one axis and inherit the other.
func ResolveGeometry(preset PageSize, widthMm, heightMm *float64) PageGeometry {
	if !preset.IsValid() {
		preset = PageSizeA4
	}
	w, h := preset.Dimensions()
	if widthMm != nil && *widthMm > 0 {
		w = *widthMm
	}
	if heightMm != nil && *heightMm > 0 {
		h = *heightMm
	}
	return PageGeometry{Preset: preset, WidthMm: w, HeightMm: h}
}

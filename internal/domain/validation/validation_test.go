package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHexColor(t *testing.T) {
	assert.True(t, IsHexColor("#1e1e2e"))
	assert.True(t, IsHexColor("#ABCDEF"))
	assert.False(t, IsHexColor("1e1e2e"))
	assert.False(t, IsHexColor("#fff"))
	assert.False(t, IsHexColor("#gggggg"))
}

func TestValidatePaletteHex(t *testing.T) {
	errs := ValidatePaletteHex("appearance.palette",
		NamedValue{Name: "background", Value: "#000000"},
		NamedValue{Name: "text", Value: "white"},
		NamedValue{Name: "accent", Value: ""},
	)
	assert.Equal(t, []string{
		"appearance.palette.text must be a hex color like #RRGGBB",
		"appearance.palette.accent must be a hex color like #RRGGBB",
	}, errs)
}

func TestValidateLength(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		optional bool
		wantErr  bool
	}{
		{name: "percent", value: "30%"},
		{name: "em", value: "21em"},
		{name: "cells", value: "24"},
		{name: "empty optional", value: "", optional: true},
		{name: "empty required", value: "", wantErr: true},
		{name: "zero", value: "0", wantErr: true},
		{name: "garbage", value: "wide", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateLength("panels[0].width", tt.value, tt.optional)
			if tt.wantErr {
				assert.NotEmpty(t, errs)
				assert.Contains(t, errs[0], "panels[0].width")
				return
			}
			assert.Empty(t, errs)
		})
	}
}

func TestValidatePositionAndMode(t *testing.T) {
	assert.Empty(t, ValidatePosition("p", "left"))
	assert.NotEmpty(t, ValidatePosition("p", "top"))

	assert.Empty(t, ValidateMode("m", "under", false))
	assert.Empty(t, ValidateMode("m", "", true))
	assert.NotEmpty(t, ValidateMode("m", "slide", false))
}

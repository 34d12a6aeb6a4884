package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeHex(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"#fff", true},
		{"#00FFAB", true},
		{"#1b1b2f8f", true},
		{"#abcd", true},
		{"  #123456  ", true},
		{"#12", false},
		{"#123456789", false},
		{"00FFAB", false},
		{"#ggg", false},
		{"rgb(1,2,3)", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksLikeHex(tt.input))
		})
	}
}

func TestToHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "six digit", input: "#00FFAB", want: "#00ffab"},
		{name: "three digit expands", input: "#0af", want: "#00aaff"},
		{name: "alpha is dropped", input: "#1b1b2f8f", want: "#1b1b2f"},
		{name: "rgb", input: "rgb(255, 128, 0)", want: "#ff8000"},
		{name: "rgba", input: "rgba(0,132,255,0.5)", want: "#0084ff"},
		{name: "rgb clamps", input: "rgb(300, 0, 0)", want: "#ff0000"},
		{name: "named", input: "HotPink", want: "#ff69b4"},
		{name: "surrounding space", input: "  #ffffff ", want: "#ffffff"},
		{name: "empty", input: "", want: Fallback},
		{name: "unknown name", input: "not-a-color", want: Fallback},
		{name: "four digit is not resolvable", input: "#abcd", want: Fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToHex(tt.input))
		})
	}
}

func TestAdjust(t *testing.T) {
	t.Run("hue wraps around", func(t *testing.T) {
		red := "#ff0000"
		assert.Equal(t, red, Adjust(red, Hue, 360))
		assert.Equal(t, Adjust(red, Hue, -120), Adjust(red, Hue, 240))
	})

	t.Run("lightness clamps", func(t *testing.T) {
		assert.Equal(t, "#ffffff", Adjust("#808080", Lightness, 200))
		assert.Equal(t, "#000000", Adjust("#808080", Lightness, -200))
	})

	t.Run("saturation clamps to gray", func(t *testing.T) {
		got := Adjust("#ff0000", Saturation, -100)
		h, s, _ := HSL(got)
		assert.InDelta(t, 0, s, 0.5)
		assert.InDelta(t, 0, h, 0.5)
	})

	t.Run("garbage input still yields a hex color", func(t *testing.T) {
		got := Adjust("nonsense", Lightness, 10)
		assert.True(t, LooksLikeHex(got))
		assert.Len(t, got, 7)
	})
}

func TestChannelNext(t *testing.T) {
	assert.Equal(t, Saturation, Hue.Next())
	assert.Equal(t, Lightness, Saturation.Next())
	assert.Equal(t, Hue, Lightness.Next())
	assert.Equal(t, "L", Lightness.String())
}

package scrim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"default", ColorDefault},
		{"", ColorDefault},
		{"terminal default", ColorDefault},
		{"red", Red},
		{"RED", Red},
		{" blue ", Blue},
		{"dark green", Green},
		{"light red", LightRed},
		{"Light White", LightWhite},
		{"#ff8000", RGB(0xff, 0x80, 0x00)},
		{"#F00", RGB(0xff, 0x00, 0x00)},
		{"#abc", RGB(0xaa, 0xbb, 0xcc)},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		require.NoError(t, err, "parse %q", c.in)
		assert.Equal(t, c.want, got, "parse %q", c.in)
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{
		"chartreuse",
		"light chartreuse",
		"dark chartreuse",
		"#12",
		"#12345",
		"#gggggg",
	} {
		_, err := ParseColor(in)
		assert.Error(t, err, "parse %q", in)
	}
}

func TestColorANSI(t *testing.T) {
	idx, isRGB := Red.ANSI()
	assert.Equal(t, uint8(1), idx)
	assert.False(t, isRGB)

	idx, isRGB = LightBlue.ANSI()
	assert.Equal(t, uint8(12), idx, "bright variants live at 8-15")
	assert.False(t, isRGB)

	idx, isRGB = Color256(99).ANSI()
	assert.Equal(t, uint8(99), idx)
	assert.False(t, isRGB)

	_, isRGB = RGB(1, 2, 3).ANSI()
	assert.True(t, isRGB)
	r, g, b := RGB(1, 2, 3).RGBValues()
	assert.Equal(t, [3]uint8{1, 2, 3}, [3]uint8{r, g, b})

	idx, isRGB = ColorDefault.ANSI()
	assert.Equal(t, uint8(0), idx)
	assert.False(t, isRGB)
	assert.True(t, ColorDefault.IsDefault())
	assert.False(t, Black.IsDefault(), "black is a real color, not the default")
}

func TestEffectHas(t *testing.T) {
	e := EffectBold | EffectUnderline
	assert.True(t, e.Has(EffectBold))
	assert.True(t, e.Has(EffectBold|EffectUnderline))
	assert.False(t, e.Has(EffectDim))
	assert.False(t, e.Has(EffectBold|EffectDim))
	assert.True(t, e.Has(0), "the empty mask is always present")
}

// Package skycolor maps the sun's altitude to an approximate sky tone,
// for status lines, lamps and other ambient displays.
package skycolor

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// A Tone is a named sky color.
type Tone struct {
	Name string
	Hex  string
}

// stop anchors the palette at one sun altitude; between stops the color is
// interpolated perceptually.
type stop struct {
	altitude float64
	color    colorful.Color
}

// The anchors run deep night, end of astronomical darkness, end of
// nautical darkness, start of civil twilight, horizon glow at sunrise,
// morning haze, and flat daylight blue from 40 degrees up.
var stops = []stop{
	{-90, colorfulColorFromHexString("#070d21")},
	{-18, colorfulColorFromHexString("#070d21")},
	{-12, colorfulColorFromHexString("#17224a")},
	{-6, colorfulColorFromHexString("#31416f")},
	{-0.833, colorfulColorFromHexString("#d1784a")},
	{10, colorfulColorFromHexString("#a8c8ee")},
	{40, colorfulColorFromHexString("#4f94db")},
	{90, colorfulColorFromHexString("#4f94db")},
}

// ToneAt returns the sky tone for a sun altitude in degrees. Altitudes
// outside [-90, 90] are clamped.
func ToneAt(altitude float64) Tone {
	return Tone{
		Name: bandName(altitude),
		Hex:  blend(altitude).Hex(),
	}
}

func bandName(altitude float64) string {
	switch {
	case altitude < -18:
		return "night"
	case altitude < -12:
		return "astronomical twilight"
	case altitude < -6:
		return "nautical twilight"
	case altitude < -0.833:
		return "civil twilight"
	case altitude < 10:
		return "golden hour"
	default:
		return "daylight"
	}
}

func blend(altitude float64) colorful.Color {
	if altitude <= stops[0].altitude {
		return stops[0].color
	}
	for i := 1; i < len(stops); i++ {
		if altitude <= stops[i].altitude {
			lower, upper := stops[i-1], stops[i]
			f := (altitude - lower.altitude) / (upper.altitude - lower.altitude)
			return lower.color.BlendLuv(upper.color, f).Clamped()
		}
	}
	return stops[len(stops)-1].color
}

func colorfulColorFromHexString(hex string) colorful.Color {
	color, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("unable to create colorful.Color from '%s' due to error: '%s'", hex, err.Error()))
	}
	return color
}

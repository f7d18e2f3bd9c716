package astro

import "math"

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
func rad2deg(r float64) float64 { return r * 180 / math.Pi }

// Normalize360 wraps an angle in degrees into [0, 360).
func Normalize360(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// compassPoints lists the sixteen points clockwise from North, each owning
// a 22.5 degree sector centered on its nominal azimuth.
var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

// AzimuthToDirection returns the compass point nearest the given azimuth.
// Sector boundaries round up: 11.25 is already NNE.
func AzimuthToDirection(azimuthDeg float64) string {
	sector := int(math.Floor(Normalize360(azimuthDeg)/22.5+0.5)) % 16
	return compassPoints[sector]
}

package astro

import (
	"math"
	"time"
)

// lunarArgs holds the Moon's fundamental arguments in degrees.
type lunarArgs struct {
	Lp float64 // mean longitude L'
	D  float64 // mean elongation from the Sun
	M  float64 // Sun's mean anomaly
	Mp float64 // Moon's mean anomaly M'
	F  float64 // argument of latitude (distance from ascending node)
}

func lunarArgsAt(T float64) lunarArgs {
	return lunarArgs{
		Lp: Normalize360(218.3164477 + T*(481267.88123421+T*(-0.0015786+T*(1/538841.0-T/65194000)))),
		D:  Normalize360(297.8501921 + T*(445267.1114034+T*(-0.0018819+T*(1/545868.0-T/113065000)))),
		M:  Normalize360(357.5291092 + T*(35999.0502909+T*(-0.0001536+T/24490000))),
		Mp: Normalize360(134.9633964 + T*(477198.8675055+T*(0.0087414+T*(1/69699.0-T/14712000)))),
		F:  Normalize360(93.2720950 + T*(483202.0175233+T*(-0.0036539+T*(-1/3526000.0+T/863310000)))),
	}
}

// lunarTerm is one periodic correction: a coefficient in units of 1e-6
// degrees applied to the sine of an integer combination of the fundamental
// arguments D, M, M' and F.
type lunarTerm struct {
	d, m, mp, f int
	coeff       float64
}

func (lt lunarTerm) sin(a lunarArgs) float64 {
	arg := float64(lt.d)*a.D + float64(lt.m)*a.M + float64(lt.mp)*a.Mp + float64(lt.f)*a.F
	return lt.coeff * math.Sin(deg2rad(arg))
}

// The dominant periodic terms of the lunar longitude and latitude series.
// Truncating after these keeps the worst-case error near J2000 inside a
// couple of tenths of a degree, well under the lunar disk's half width as
// seen from the accuracy this package aims for.
var (
	lunarLonTerms = []lunarTerm{
		{0, 0, 1, 0, 6288774},
		{2, 0, -1, 0, 1274027},
		{2, 0, 0, 0, 658314},
		{0, 0, 2, 0, 213618},
		{0, 1, 0, 0, -185116},
		{0, 0, 0, 2, -114332},
		{2, 0, -2, 0, 58793},
		{2, -1, -1, 0, 57066},
		{2, 0, 1, 0, 53322},
		{2, -1, 0, 0, 45758},
		{0, 1, -1, 0, -40923},
		{1, 0, 0, 0, -34720},
		{0, 1, 1, 0, -30383},
	}

	lunarLatTerms = []lunarTerm{
		{0, 0, 0, 1, 5128122},
		{0, 0, 1, 1, 280602},
		{0, 0, 1, -1, 277693},
		{2, 0, 0, -1, 173237},
		{2, 0, -1, 1, 55413},
		{2, 0, -1, -1, 46271},
		{2, 0, 0, 1, 32573},
		{0, 0, 2, 1, 17198},
	}
)

// MoonEcliptic returns the Moon's geocentric ecliptic longitude and
// latitude in degrees for T Julian centuries since J2000.0.
func MoonEcliptic(T float64) (lonDeg, latDeg float64) {
	args := lunarArgsAt(T)

	var sumLon, sumLat float64
	for _, term := range lunarLonTerms {
		sumLon += term.sin(args)
	}
	for _, term := range lunarLatTerms {
		sumLat += term.sin(args)
	}

	return Normalize360(args.Lp + sumLon*1e-6), sumLat * 1e-6
}

// MoonEquatorial returns the Moon's geocentric right ascension and
// declination in degrees for the given Julian Date.
func MoonEquatorial(jd float64) Equatorial {
	lon, lat := MoonEcliptic(JulianCenturies(jd))
	return EclipticToEquatorial(lon, lat, MeanObliquity(jd))
}

// MoonHorizontal returns the Moon's unrounded azimuth and altitude for an
// observer at latDeg/lonDeg at time t. The position is geocentric; lunar
// parallax (up to about a degree) is not applied.
func MoonHorizontal(latDeg, lonDeg float64, t time.Time) Horizontal {
	jd := JulianDate(t)
	return EquatorialToHorizontal(MoonEquatorial(jd), latDeg, lonDeg, jd)
}

package astro

import (
	"math"
	"time"
)

// solarTerms bundles the low-precision solar ephemeris quantities that the
// position pipeline and the rise/set solver share.
type solarTerms struct {
	T         float64 // Julian centuries since J2000.0
	meanLon   float64 // geometric mean longitude L0, degrees
	meanAnom  float64 // mean anomaly M, degrees
	center    float64 // equation of center C, degrees
	trueLon   float64 // true longitude L0 + C, degrees
	obliquity float64 // mean obliquity of the ecliptic, degrees
}

func solarTermsAt(jd float64) solarTerms {
	T := JulianCenturies(jd)

	L0 := Normalize360(280.46646 + T*(36000.76983+T*0.0003032))
	M := Normalize360(357.52911 + T*(35999.05029-T*0.0001537))

	Mr := deg2rad(M)
	C := (1.914602-T*(0.004817+T*0.000014))*math.Sin(Mr) +
		(0.019993-T*0.000101)*math.Sin(2*Mr) +
		0.000289*math.Sin(3*Mr)

	return solarTerms{
		T:         T,
		meanLon:   L0,
		meanAnom:  M,
		center:    C,
		trueLon:   Normalize360(L0 + C),
		obliquity: MeanObliquity(jd),
	}
}

// declination returns the Sun's declination in degrees. The Sun's ecliptic
// latitude never exceeds about 1.2 arcseconds, so it is taken as zero.
func (s solarTerms) declination() float64 {
	return rad2deg(math.Asin(math.Sin(deg2rad(s.obliquity)) *
		math.Sin(deg2rad(s.trueLon))))
}

// equationOfTime returns apparent minus mean solar time in minutes: how far
// the sundial runs ahead of the clock. Roughly -14 to +16 over a year.
func (s solarTerms) equationOfTime() float64 {
	L0 := deg2rad(s.meanLon)
	M := deg2rad(s.meanAnom)

	e := 0.016708634 - s.T*(0.000042037+s.T*0.0000001267)
	y := math.Tan(deg2rad(s.obliquity) / 2)
	y *= y

	E := y*math.Sin(2*L0) -
		2*e*math.Sin(M) +
		4*e*y*math.Sin(M)*math.Cos(2*L0) -
		0.5*y*y*math.Sin(4*L0) -
		1.25*e*e*math.Sin(2*M)

	return 4 * rad2deg(E)
}

// SunEquatorial returns the Sun's geocentric right ascension and
// declination in degrees for the given Julian Date.
func SunEquatorial(jd float64) Equatorial {
	s := solarTermsAt(jd)
	return EclipticToEquatorial(s.trueLon, 0, s.obliquity)
}

// SunHorizontal returns the Sun's unrounded azimuth and altitude for an
// observer at latDeg/lonDeg at time t.
func SunHorizontal(latDeg, lonDeg float64, t time.Time) Horizontal {
	jd := JulianDate(t)
	return EquatorialToHorizontal(SunEquatorial(jd), latDeg, lonDeg, jd)
}

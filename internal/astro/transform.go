package astro

import "math"

// MeanObliquity returns the mean obliquity of the ecliptic in degrees for
// the given Julian Date, from the IAU 2006 polynomial (coefficients in
// arcseconds). Nutation is ignored throughout this package.
func MeanObliquity(jd float64) float64 {
	T := JulianCenturies(jd)
	arcsec := 84381.406 + T*(-46.836769+T*(-0.0001831+T*0.00200340))
	return arcsec / 3600
}

// GreenwichMeanSiderealTime returns GMST in degrees for the given Julian
// Date, normalized to [0, 360).
func GreenwichMeanSiderealTime(jd float64) float64 {
	d := DaysSinceJ2000(jd)
	T := JulianCenturies(jd)
	gmst := 280.46061837 + 360.98564736629*d + T*T*(0.000387933-T/38710000)
	return Normalize360(gmst)
}

// LocalSiderealTime returns the local sidereal time in degrees for an
// east-positive longitude.
func LocalSiderealTime(jd, lonDeg float64) float64 {
	return Normalize360(GreenwichMeanSiderealTime(jd) + lonDeg)
}

// EclipticToEquatorial rotates geocentric ecliptic coordinates (longitude
// and latitude, degrees) into equatorial ones, given the obliquity of the
// ecliptic in degrees.
func EclipticToEquatorial(lonDeg, latDeg, obliquityDeg float64) Equatorial {
	lambda := deg2rad(lonDeg)
	beta := deg2rad(latDeg)
	eps := deg2rad(obliquityDeg)

	dec := math.Asin(math.Sin(beta)*math.Cos(eps) +
		math.Cos(beta)*math.Sin(eps)*math.Sin(lambda))
	ra := math.Atan2(math.Sin(lambda)*math.Cos(eps)-math.Tan(beta)*math.Sin(eps),
		math.Cos(lambda))

	return Equatorial{RA: Normalize360(rad2deg(ra)), Dec: rad2deg(dec)}
}

// EquatorialToHorizontal converts a geocentric equatorial position into
// azimuth and altitude for an observer at latDeg/lonDeg (degrees, east and
// north positive) at the given Julian Date.
func EquatorialToHorizontal(eq Equatorial, latDeg, lonDeg, jd float64) Horizontal {
	hourAngle := deg2rad(LocalSiderealTime(jd, lonDeg) - eq.RA)
	phi := deg2rad(latDeg)
	dec := deg2rad(eq.Dec)

	altitude := math.Asin(math.Sin(phi)*math.Sin(dec) +
		math.Cos(phi)*math.Cos(dec)*math.Cos(hourAngle))
	azimuth := math.Atan2(-math.Sin(hourAngle),
		math.Tan(dec)*math.Cos(phi)-math.Sin(phi)*math.Cos(hourAngle))

	return Horizontal{
		Azimuth:  Normalize360(rad2deg(azimuth)),
		Altitude: rad2deg(altitude),
	}
}

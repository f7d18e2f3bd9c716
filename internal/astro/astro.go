// Package astro implements the low-precision ephemeris the rest of the
// program is built on: Julian Date conversion, the obliquity of the
// ecliptic, solar and lunar positions, lunar phase, and the NOAA
// sunrise/sunset equations.
//
// All angles cross package boundaries in degrees; radians appear only
// inside individual computations. Time arguments are interpreted on the
// UTC timeline regardless of their Location. Accuracy targets are modest
// (arcminutes for positions, a minute or two for rise/set), which the
// truncated series used here comfortably meet for the years around J2000.
package astro

// Equatorial holds a geocentric position on the celestial sphere:
// right ascension and declination, both in degrees.
type Equatorial struct {
	RA  float64
	Dec float64
}

// Horizontal holds an observer-relative position in degrees. Azimuth is
// measured from North through East (0 = N, 90 = E); altitude is positive
// above the horizon.
type Horizontal struct {
	Azimuth  float64
	Altitude float64
}

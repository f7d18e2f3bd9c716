package astro

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestMeanObliquity(t *testing.T) {
	// 84381.406 arcseconds at the epoch.
	if got := MeanObliquity(J2000); !almostEqual(got, 23.4392794, 1e-6) {
		t.Errorf("obliquity at J2000 = %.7f, want 23.4392794", got)
	}

	// One century on the linear term dominates: -46.8 arcseconds.
	jd2100 := JulianDate(time.Date(2100, 1, 1, 12, 0, 0, 0, time.UTC))
	if got := MeanObliquity(jd2100); !almostEqual(got, 23.4262697, 1e-6) {
		t.Errorf("obliquity at 2100.0 = %.7f, want 23.4262697", got)
	}

	// The ecliptic is slowly straightening up for now.
	prev := MeanObliquity(JulianDate(time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)))
	for year := 1950; year <= 2100; year += 50 {
		cur := MeanObliquity(JulianDate(time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)))
		if cur >= prev {
			t.Errorf("obliquity not decreasing at %d: %v >= %v", year, cur, prev)
		}
		prev = cur
	}
}

func TestGreenwichMeanSiderealTime(t *testing.T) {
	// Reference instants with published GMST values.
	for _, tc := range []struct {
		name string
		in   time.Time
		want float64
	}{
		{"1987-04-10 0h UT", time.Date(1987, 4, 10, 0, 0, 0, 0, time.UTC), 197.693195},
		{"1987-04-10 19:21 UT", time.Date(1987, 4, 10, 19, 21, 0, 0, time.UTC), 128.73787},
	} {
		got := GreenwichMeanSiderealTime(JulianDate(tc.in))
		if !almostEqual(got, tc.want, 5e-4) {
			t.Errorf("%s: GMST = %.6f, want %.6f", tc.name, got, tc.want)
		}
	}
}

func TestLocalSiderealTime(t *testing.T) {
	jd := JulianDate(time.Date(1987, 4, 10, 0, 0, 0, 0, time.UTC))

	if gmst, lst := GreenwichMeanSiderealTime(jd), LocalSiderealTime(jd, 0); lst != gmst {
		t.Errorf("LST at Greenwich %v != GMST %v", lst, gmst)
	}
	// 90 degrees east puts the observer a quarter turn ahead.
	want := Normalize360(GreenwichMeanSiderealTime(jd) + 90)
	if got := LocalSiderealTime(jd, 90); !almostEqual(got, want, 1e-9) {
		t.Errorf("LST at 90E = %v, want %v", got, want)
	}
}

func TestEclipticToEquatorial(t *testing.T) {
	const eps = 23.4392794

	// The vernal point maps to the origin of both systems.
	if eq := EclipticToEquatorial(0, 0, eps); !almostEqual(eq.RA, 0, 1e-9) || !almostEqual(eq.Dec, 0, 1e-9) {
		t.Errorf("vernal point: got RA %v Dec %v, want 0, 0", eq.RA, eq.Dec)
	}

	// A body at ecliptic longitude 90 sits at the solstitial colure: its
	// declination equals the obliquity.
	if eq := EclipticToEquatorial(90, 0, eps); !almostEqual(eq.RA, 90, 1e-9) || !almostEqual(eq.Dec, eps, 1e-9) {
		t.Errorf("solstitial point: got RA %v Dec %v, want 90, %v", eq.RA, eq.Dec, eps)
	}

	// The north ecliptic pole lands 90-eps from the celestial equator.
	if eq := EclipticToEquatorial(0, 90, eps); !almostEqual(eq.Dec, 90-eps, 1e-9) {
		t.Errorf("ecliptic pole: got Dec %v, want %v", eq.Dec, 90-eps)
	}

	// RA comes back normalized.
	if eq := EclipticToEquatorial(200, 5, eps); eq.RA < 0 || eq.RA >= 360 {
		t.Errorf("RA out of range: %v", eq.RA)
	}
}

func TestEquatorialToHorizontal(t *testing.T) {
	const lat, lon = 48.0, 11.0
	jd := JulianDate(time.Date(2024, 3, 20, 21, 30, 0, 0, time.UTC))

	// A body on the meridian south of the zenith: azimuth 180, altitude
	// 90 - lat + dec. Put it on the meridian by construction.
	onMeridian := Equatorial{RA: LocalSiderealTime(jd, lon), Dec: 10}
	got := EquatorialToHorizontal(onMeridian, lat, lon, jd)
	if !almostEqual(got.Azimuth, 180, 1e-6) {
		t.Errorf("transit azimuth = %v, want 180", got.Azimuth)
	}
	if want := 90 - lat + 10; !almostEqual(got.Altitude, want, 1e-6) {
		t.Errorf("transit altitude = %v, want %v", got.Altitude, want)
	}

	// Six sidereal hours before transit a body on the celestial equator
	// stands due east.
	rising := Equatorial{RA: Normalize360(LocalSiderealTime(jd, lon) + 90), Dec: 0}
	got = EquatorialToHorizontal(rising, lat, lon, jd)
	if !almostEqual(got.Azimuth, 90, 1e-6) {
		t.Errorf("rising azimuth = %v, want 90", got.Azimuth)
	}
	if !almostEqual(got.Altitude, 0, 1e-6) {
		t.Errorf("equator body at H=-90: altitude = %v, want 0", got.Altitude)
	}

	// The north celestial pole stands at altitude = latitude.
	pole := Equatorial{RA: 123, Dec: 90}
	got = EquatorialToHorizontal(pole, lat, lon, jd)
	if !almostEqual(got.Altitude, lat, 1e-6) {
		t.Errorf("pole altitude = %v, want %v", got.Altitude, lat)
	}
}

package skycolor_test

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lcrow/almanac/internal/skycolor"
)

func TestToneAtBands(t *testing.T) {
	for _, tc := range []struct {
		altitude float64
		wantName string
	}{
		{-90, "night"},
		{-30, "night"},
		{-15, "astronomical twilight"},
		{-8, "nautical twilight"},
		{-3, "civil twilight"},
		{-0.833, "golden hour"},
		{5, "golden hour"},
		{10, "daylight"},
		{60, "daylight"},
	} {
		if got := skycolor.ToneAt(tc.altitude); got.Name != tc.wantName {
			t.Errorf("ToneAt(%v).Name = %q, want %q", tc.altitude, got.Name, tc.wantName)
		}
	}
}

func TestToneAtAnchors(t *testing.T) {
	// Deep night is flat: the same color everywhere below -18.
	if a, b := skycolor.ToneAt(-90).Hex, skycolor.ToneAt(-40).Hex; a != b {
		t.Errorf("deep night not flat: %s vs %s", a, b)
	}
	// High day is flat too.
	if a, b := skycolor.ToneAt(40).Hex, skycolor.ToneAt(90).Hex; a != b {
		t.Errorf("high day not flat: %s vs %s", a, b)
	}
	// Clamping beyond the physical range.
	if a, b := skycolor.ToneAt(-120).Hex, skycolor.ToneAt(-90).Hex; a != b {
		t.Errorf("below -90 not clamped: %s vs %s", a, b)
	}
}

func TestToneAtAlwaysValidHex(t *testing.T) {
	for alt := -95.0; alt <= 95; alt += 0.7 {
		tone := skycolor.ToneAt(alt)
		if _, err := colorful.Hex(tone.Hex); err != nil {
			t.Fatalf("ToneAt(%v) produced unparseable hex %q: %v", alt, tone.Hex, err)
		}
		if tone.Name == "" {
			t.Fatalf("ToneAt(%v) has no band name", alt)
		}
	}
}

func TestTwilightBrightensTowardSunrise(t *testing.T) {
	// Climbing from deep night to the horizon the sky must get lighter.
	prev := luminance(skycolor.ToneAt(-20).Hex)
	for _, alt := range []float64{-15, -9, -4, -1} {
		cur := luminance(skycolor.ToneAt(alt).Hex)
		if cur <= prev {
			t.Errorf("sky got darker towards sunrise at altitude %v", alt)
		}
		prev = cur
	}
}

func luminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	l, _, _ := c.Luv()
	return l
}

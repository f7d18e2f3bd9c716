package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lcrow/almanac"
	"github.com/lcrow/almanac/internal/config"
	"github.com/lcrow/almanac/internal/model"
)

// baseDirPath is the almanac config directory, '~/.config/almanac' unless
// overridden via ALMANAC_HOME.
func baseDirPath() string {
	almanacHome := os.Getenv("ALMANAC_HOME")
	if almanacHome == "" {
		return os.Getenv("HOME") + "/.config/almanac"
	}
	return strings.TrimRight(almanacHome, "/")
}

// loadConfig reads the config file and augments the defaults with it. A
// missing file is fine; the defaults then apply as-is.
func loadConfig() (config.Config, error) {
	yamlData, err := os.ReadFile(baseDirPath() + "/" + "config.yaml")
	if err != nil {
		log.Warn().Err(err).Msg("can't read config file, using defaults")
		yamlData = make([]byte, 0)
	}
	return config.ParseConfigAugmentDefaults(yamlData)
}

// An observer is the resolved place to compute for.
type observer struct {
	coords almanac.Coordinates
	loc    *time.Location
	name   string
}

// resolveObserver decides where to compute for: explicit coordinate flags
// win, then the LATITUDE/LONGITUDE environment variables, then the named
// (or default) place from the config.
func resolveObserver(cfg config.Config, placeName, latStr, lonStr string) (observer, error) {
	if latStr == "" {
		latStr = os.Getenv("LATITUDE")
	}
	if lonStr == "" {
		lonStr = os.Getenv("LONGITUDE")
	}

	if latStr != "" || lonStr != "" {
		if latStr == "" || lonStr == "" {
			return observer{}, fmt.Errorf("latitude and longitude must both be given")
		}
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return observer{}, fmt.Errorf("cannot parse latitude '%s' (%w)", latStr, err)
		}
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			return observer{}, fmt.Errorf("cannot parse longitude '%s' (%w)", lonStr, err)
		}
		return observer{
			coords: almanac.Coordinates{Latitude: lat, Longitude: lon},
			loc:    time.Local,
			name:   fmt.Sprintf("%.4f,%.4f", lat, lon),
		}, nil
	}

	place, err := cfg.PlaceByName(placeName)
	if err != nil {
		return observer{}, err
	}
	loc, err := place.Location()
	if err != nil {
		return observer{}, err
	}
	return observer{
		coords: almanac.Coordinates{Latitude: place.Latitude, Longitude: place.Longitude},
		loc:    loc,
		name:   place.Name,
	}, nil
}

// resolveWhen turns the --on/--at flag values into a concrete instant in
// the observer's zone. Empty values mean the current date respectively the
// current time.
func resolveWhen(dateStr, atStr string, loc *time.Location) (time.Time, error) {
	now := time.Now().In(loc)

	date := model.Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
	if dateStr != "" {
		var err error
		date, err = model.FromString(dateStr)
		if err != nil {
			return time.Time{}, err
		}
	}

	ts := *model.NewTimestampFromGotime(now)
	if atStr != "" {
		var err error
		ts, err = model.NewTimestamp(atStr)
		if err != nil {
			return time.Time{}, err
		}
	}

	return time.Date(date.Year, time.Month(date.Month), date.Day, ts.Hour, ts.Minute, 0, 0, loc), nil
}

// clock formats a time's clock reading, rendering the zero value (e.g. no
// sunrise on a polar day) as dashes.
func clock(t time.Time) string {
	if t.IsZero() {
		return "--:--"
	}
	return t.Format("15:04")
}

// dayLength renders fractional hours as "15h01m".
func dayLength(hours float64) string {
	minutes := int(math.Round(hours * 60))
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

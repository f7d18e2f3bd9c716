package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file at
// '${ALMANAC_HOME}/config.yaml'.
type Config struct {
	DefaultPlace string   `yaml:"default-place,omitempty"`
	Places       []Place  `yaml:"places,omitempty"`
	Windows      []Window `yaml:"windows,omitempty"`
}

// A Place is a named observer location as defined in a config file.
type Place struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	// Timezone is an IANA zone name such as "Europe/Berlin"; empty means
	// the system's local zone.
	Timezone string `yaml:"timezone,omitempty"`
}

// A Window is a named window orientation for shade recommendations.
// Facing is the azimuth the window looks out at, in degrees from North.
type Window struct {
	Name   string  `yaml:"name"`
	Facing float64 `yaml:"facing"`
}

// Location resolves the place's timezone.
func (p Place) Location() (*time.Location, error) {
	if p.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return nil, fmt.Errorf("cannot load timezone '%s' of place '%s' (%w)", p.Timezone, p.Name, err)
	}
	return loc, nil
}

// Default returns the configuration used when no config file is present:
// a single place at the Royal Observatory, where else.
func Default() Config {
	return Config{
		DefaultPlace: "greenwich",
		Places: []Place{
			{
				Name:      "greenwich",
				Latitude:  51.4779,
				Longitude: -0.0015,
				Timezone:  "Europe/London",
			},
		},
	}
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment the default configuration.
func ParseConfigAugmentDefaults(yamlData []byte) (Config, error) {
	defaultConfig := Default()

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%s)", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)

	return result, nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	if len(augment.Places) > 0 {
		result.Places = augment.Places
		// The default default-place only makes sense with the default
		// places; drop it so the first configured place takes over.
		result.DefaultPlace = ""
	}
	if len(augment.Windows) > 0 {
		result.Windows = augment.Windows
	}
	if augment.DefaultPlace != "" {
		result.DefaultPlace = augment.DefaultPlace
	}

	return result
}

// PlaceByName finds a configured place. An empty name selects the default
// place, falling back to the first configured one.
func (c Config) PlaceByName(name string) (Place, error) {
	if name == "" {
		name = c.DefaultPlace
	}
	if name == "" {
		if len(c.Places) == 0 {
			return Place{}, fmt.Errorf("no places configured")
		}
		return c.Places[0], nil
	}

	for _, p := range c.Places {
		if p.Name == name {
			return p, nil
		}
	}
	return Place{}, fmt.Errorf("no place named '%s' configured", name)
}

// WindowByName finds a configured window orientation.
func (c Config) WindowByName(name string) (Window, error) {
	for _, w := range c.Windows {
		if w.Name == name {
			return w, nil
		}
	}
	return Window{}, fmt.Errorf("no window named '%s' configured", name)
}

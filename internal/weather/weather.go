// Package weather provides a handler for fetching weather data from
// OpenWeatherMap and rating the sky-viewing conditions it implies.
package weather

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/lcrow/almanac/internal/model"
)

// OWMWeather represents the weather data from OpenWeatherMap.
type OWMWeather struct {
	ID          int    `json:"id"`          // 801,
	Main        string `json:"main"`        // "Clouds",
	Description string `json:"description"` // "few clouds",
	Icon        string `json:"icon"`        // "02d"
}

// OWMHourly represents the hourly weather data from OpenWeatherMap.
type OWMHourly struct {
	Dt         uint64       `json:"dt"`         // 1630429200,
	Temp       float64      `json:"temp"`       // 290.85,
	Clouds     int          `json:"clouds"`     // 20,
	Visibility int          `json:"visibility"` // 10000,
	Weather    []OWMWeather `json:"weather"`    //
}

// OWMFull represents the full weather data from OpenWeatherMap.
type OWMFull struct {
	Lat            float64     `json:"lat"`             // 53.18,
	Lon            float64     `json:"lon"`             // 8.6,
	Timezone       string      `json:"timezone"`        // "Europe/Berlin",
	TimezoneOffset int         `json:"timezone_offset"` // 7200,
	Hourly         []OWMHourly `json:"hourly"`
}

// Conditions summarizes an hour of weather as relevant to sky watching.
type Conditions struct {
	Info       string
	TempC      float64
	Clouds     int
	Visibility int
}

// Viewing rates the conditions for observing the sky as "good", "fair" or
// "poor", going by cloud cover.
func (c Conditions) Viewing() string {
	switch {
	case c.Clouds < 30:
		return "good"
	case c.Clouds < 70:
		return "fair"
	default:
		return "poor"
	}
}

// Handler is a handler of retrieved weather data and querying for it.
type Handler struct {
	Data       map[model.DayAndTime]Conditions
	lat, lon   float64
	apiKey     string
	mutex      sync.Mutex
	queryCount int
}

// NewHandler creates a new weather handler for the given coordinates.
func NewHandler(lat, lon float64, key string) *Handler {
	var h Handler
	h.lat, h.lon, h.apiKey = lat, lon, key
	return &h
}

// Update updates the weather data.
func (h *Handler) Update() error {
	// cannot query without a key
	if h.apiKey == "" {
		return fmt.Errorf("no API key provided for weather query")
	}

	h.mutex.Lock()
	h.queryCount++
	owmdata, err := getHourlyInfo(h.lat, h.lon, h.apiKey)
	newData := convertHourlyDataToTimestamped(&owmdata)
	if h.Data == nil {
		h.Data = newData
	} else {
		for timestamp, data := range newData {
			h.Data[timestamp] = data
		}
	}
	h.mutex.Unlock()
	return err
}

// ConditionsAt looks up the stored conditions for the hour containing the
// given time, if any were retrieved for it.
func (h *Handler) ConditionsAt(t time.Time) (Conditions, bool) {
	// hourly data is keyed in the process-local zone
	t = t.Local()
	index := model.DayAndTime{
		Date:      model.Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()},
		Timestamp: model.Timestamp{Hour: t.Hour(), Minute: 0},
	}

	h.mutex.Lock()
	c, ok := h.Data[index]
	h.mutex.Unlock()
	return c, ok
}

func kelvinToCelsius(kelvin float64) (celsius float64) {
	return kelvin - 273.15
}

func convertHourlyDataToTimestamped(data *[]OWMHourly) map[model.DayAndTime]Conditions {
	result := make(map[model.DayAndTime]Conditions)

	for i := range *data {
		hourly := (*data)[i]
		t := time.Unix(int64(hourly.Dt), 0)

		info := ""
		if len(hourly.Weather) > 0 {
			info = hourly.Weather[0].Description
		}

		result[*model.FromTime(t)] = Conditions{
			Info:       info,
			TempC:      kelvinToCelsius(hourly.Temp),
			Clouds:     hourly.Clouds,
			Visibility: hourly.Visibility,
		}
	}

	return result
}

func getHourlyInfo(lat, lon float64, apiKey string) ([]OWMHourly, error) {

	call := fmt.Sprintf("https://api.openweathermap.org/data/2.5/onecall?lat=%.4f&lon=%.4f&exclude=daily,minutely,current,alerts&appid=%s", lat, lon, apiKey)

	response, err := http.Get(call)
	if err != nil {
		return make([]OWMHourly, 0), err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return make([]OWMHourly, 0), err
	}

	data := OWMFull{}
	err = json.Unmarshal(body, &data)
	if err != nil {
		return make([]OWMHourly, 0), err
	}

	return data.Hourly, nil
}

package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

type WeatherInput struct {
	City string `json:"city" jsonschema_description:"City name to report current weather for, e.g. \"Seoul\"."`
}

var WeatherInputSchema = GenerateSchema[WeatherInput]()

var WeatherDefinition = ToolDefinition{
	Name:        "weather",
	Description: "Get the current weather (temperature, conditions, wind) for a city.",
	InputSchema: WeatherInputSchema,
	Function:    Weather,
}

const (
	geocodingEndpoint = "https://geocoding-api.open-meteo.com/v1/search"
	forecastEndpoint  = "https://api.open-meteo.com/v1/forecast"
)

// weatherCodes maps WMO weather interpretation codes to readable conditions.
var weatherCodes = map[int64]string{
	0: "clear sky", 1: "mainly clear", 2: "partly cloudy", 3: "overcast",
	45: "fog", 48: "depositing rime fog",
	51: "light drizzle", 53: "drizzle", 55: "dense drizzle",
	56: "freezing drizzle", 57: "dense freezing drizzle",
	61: "light rain", 63: "rain", 65: "heavy rain",
	66: "freezing rain", 67: "heavy freezing rain",
	71: "light snow", 73: "snow", 75: "heavy snow", 77: "snow grains",
	80: "light rain showers", 81: "rain showers", 82: "violent rain showers",
	85: "snow showers", 86: "heavy snow showers",
	95: "thunderstorm", 96: "thunderstorm with hail", 99: "thunderstorm with heavy hail",
}

// Weather geocodes the city, then reads the current conditions from the
// forecast API.
func Weather(ctx context.Context, input json.RawMessage) (string, error) {
	var in WeatherInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	city := strings.TrimSpace(in.City)
	if city == "" {
		return "", fmt.Errorf("city is required")
	}

	geoBody, err := getJSON(ctx, fmt.Sprintf("%s?name=%s&count=1&language=en&format=json", geocodingEndpoint, url.QueryEscape(city)))
	if err != nil {
		return "", fmt.Errorf("geocoding: %w", err)
	}
	place := gjson.GetBytes(geoBody, "results.0")
	if !place.Exists() {
		return "", fmt.Errorf("no location found for %q", city)
	}
	lat := place.Get("latitude").Float()
	lon := place.Get("longitude").Float()
	label := place.Get("name").String()
	if country := place.Get("country").String(); country != "" {
		label += ", " + country
	}

	fcBody, err := getJSON(ctx, fmt.Sprintf("%s?latitude=%.4f&longitude=%.4f&current=temperature_2m,weather_code,wind_speed_10m&wind_speed_unit=kmh", forecastEndpoint, lat, lon))
	if err != nil {
		return "", fmt.Errorf("forecast: %w", err)
	}
	current := gjson.GetBytes(fcBody, "current")
	if !current.Exists() {
		return "", fmt.Errorf("forecast response had no current conditions")
	}

	conditions := weatherCodes[current.Get("weather_code").Int()]
	if conditions == "" {
		conditions = "unknown conditions"
	}
	return fmt.Sprintf("%s: %.1f°C, %s, wind %.0f km/h",
		label,
		current.Get("temperature_2m").Float(),
		conditions,
		current.Get("wind_speed_10m").Float(),
	), nil
}

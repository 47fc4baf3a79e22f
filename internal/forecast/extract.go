package forecast

import (
	"github.com/evanhutnik/cityweather-service/internal/types"
	"math"
	"strconv"
)

type astroDay struct {
	date    string
	sunrise string
	sunset  string
}

type temperatureDay struct {
	date          string
	max, avg, min int
}

type humidityDay struct {
	date          string
	max, avg, min string
}

type windDay struct {
	date      string
	name      string
	level     int
	direction string
}

type skyConDay struct {
	date  string
	label string
}

type airQualityDay struct {
	date  string
	aqi   int
	level string
}

func extractAstro(data []types.Astro) ([]astroDay, error) {
	out := make([]astroDay, 0, len(data))
	for _, entry := range data {
		date, err := DateKey(entry.Date)
		if err != nil {
			return nil, err
		}
		out = append(out, astroDay{date: date, sunrise: entry.Sunrise, sunset: entry.Sunset})
	}
	return out, nil
}

func extractTemperature(data []types.Temperature) ([]temperatureDay, error) {
	out := make([]temperatureDay, 0, len(data))
	for _, entry := range data {
		date, err := DateKey(entry.Date)
		if err != nil {
			return nil, err
		}
		out = append(out, temperatureDay{
			date: date,
			max:  int(math.RoundToEven(entry.Max)),
			avg:  int(math.RoundToEven(entry.Avg)),
			min:  int(math.RoundToEven(entry.Min)),
		})
	}
	return out, nil
}

func percent(fraction float64) string {
	return strconv.FormatFloat(fraction*100, 'f', 0, 64)
}

func extractHumidity(data []types.Humidity) ([]humidityDay, error) {
	out := make([]humidityDay, 0, len(data))
	for _, entry := range data {
		date, err := DateKey(entry.Date)
		if err != nil {
			return nil, err
		}
		out = append(out, humidityDay{
			date: date,
			max:  percent(entry.Max),
			avg:  percent(entry.Avg),
			min:  percent(entry.Min),
		})
	}
	return out, nil
}

// extractWind classifies the daily maximum only.
func extractWind(data []types.Wind) ([]windDay, error) {
	out := make([]windDay, 0, len(data))
	for _, entry := range data {
		date, err := DateKey(entry.Date)
		if err != nil {
			return nil, err
		}
		name, level := WindSpeed(entry.Max.Speed)
		out = append(out, windDay{
			date:      date,
			name:      name,
			level:     level,
			direction: WindDirection(entry.Max.Direction),
		})
	}
	return out, nil
}

func extractSkyCon(data []types.SkyCon) ([]skyConDay, error) {
	out := make([]skyConDay, 0, len(data))
	for _, entry := range data {
		date, err := DateKey(entry.Date)
		if err != nil {
			return nil, err
		}
		out = append(out, skyConDay{date: date, label: SkyCon(entry.Value)})
	}
	return out, nil
}

func extractAirQuality(data types.AirQuality) ([]airQualityDay, error) {
	out := make([]airQualityDay, 0, len(data.AQI))
	for _, entry := range data.AQI {
		date, err := DateKey(entry.Date)
		if err != nil {
			return nil, err
		}
		aqi := entry.Max.Chn
		out = append(out, airQualityDay{date: date, aqi: aqi, level: AirQualityLevel(aqi)})
	}
	return out, nil
}

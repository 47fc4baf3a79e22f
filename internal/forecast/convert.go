// Package forecast turns the Caiyun daily payload into display records.
//
// Every daily field list carries its own timestamps. Lists are joined on the
// derived date key rather than by position, with the astro list deciding
// which dates are emitted and in what order.
package forecast

import (
	"fmt"
	"github.com/evanhutnik/cityweather-service/internal/types"
)

// MissingDateError is returned when a date present in the astro list has no
// entry in another field list.
type MissingDateError struct {
	Field string
	Date  string
}

func (e *MissingDateError) Error() string {
	return fmt.Sprintf("no %s entry for %s", e.Field, e.Date)
}

// Convert builds display records from the "result" object of a Caiyun daily
// response. An empty result means the provider had nothing usable and yields
// no records.
func Convert(result map[string]any) ([]types.DisplayRecord, error) {
	if len(result) == 0 {
		return []types.DisplayRecord{}, nil
	}
	daily, err := types.DailyFromMap(result)
	if err != nil {
		return nil, err
	}
	return Assemble(daily.Daily)
}

// byDate keeps the first entry seen for each date.
func byDate[T any](items []T, key func(T) string) map[string]T {
	m := make(map[string]T, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := m[k]; !ok {
			m[k] = item
		}
	}
	return m
}

func Assemble(f types.DailyForecast) ([]types.DisplayRecord, error) {
	astro, err := extractAstro(f.Astro)
	if err != nil {
		return nil, err
	}
	temperature, err := extractTemperature(f.Temperature)
	if err != nil {
		return nil, err
	}
	humidity, err := extractHumidity(f.Humidity)
	if err != nil {
		return nil, err
	}
	wind, err := extractWind(f.Wind)
	if err != nil {
		return nil, err
	}
	skycon, err := extractSkyCon(f.SkyCon)
	if err != nil {
		return nil, err
	}
	airQuality, err := extractAirQuality(f.AirQuality)
	if err != nil {
		return nil, err
	}

	temperatureByDate := byDate(temperature, func(d temperatureDay) string { return d.date })
	humidityByDate := byDate(humidity, func(d humidityDay) string { return d.date })
	windByDate := byDate(wind, func(d windDay) string { return d.date })
	skyconByDate := byDate(skycon, func(d skyConDay) string { return d.date })
	airQualityByDate := byDate(airQuality, func(d airQualityDay) string { return d.date })

	records := make([]types.DisplayRecord, 0, len(astro))
	seen := make(map[string]bool, len(astro))
	for _, a := range astro {
		if seen[a.date] {
			continue
		}
		seen[a.date] = true

		t, ok := temperatureByDate[a.date]
		if !ok {
			return nil, &MissingDateError{Field: "temperature", Date: a.date}
		}
		h, ok := humidityByDate[a.date]
		if !ok {
			return nil, &MissingDateError{Field: "humidity", Date: a.date}
		}
		w, ok := windByDate[a.date]
		if !ok {
			return nil, &MissingDateError{Field: "wind", Date: a.date}
		}
		s, ok := skyconByDate[a.date]
		if !ok {
			return nil, &MissingDateError{Field: "skycon", Date: a.date}
		}
		aq, ok := airQualityByDate[a.date]
		if !ok {
			return nil, &MissingDateError{Field: "air_quality", Date: a.date}
		}

		records = append(records, types.DisplayRecord{
			Date:        a.date,
			Sunrise:     a.sunrise,
			Sunset:      a.sunset,
			Temperature: types.TemperatureRange{Max: t.max, Min: t.min},
			Humidity:    types.HumidityRange{Max: h.max, Avg: h.avg, Min: h.min},
			SkyCon:      s.label,
			Wind:        types.WindDescription{Name: w.name, Level: w.level, Direction: w.direction},
			AirQuality:  types.AirQualityDescription{AQI: aq.aqi, Level: aq.level},
		})
	}
	return records, nil
}

// ToMaps renders records in wire form with camelCase keys.
func ToMaps(records []types.DisplayRecord) []any {
	maps := make([]map[string]any, len(records))
	for i, r := range records {
		maps[i] = r.ToMap()
	}
	return types.CamelizeKeys(maps).([]any)
}

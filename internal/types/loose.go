package types

import (
	"encoding/json"
	"fmt"
	"math"
)

// FieldError reports a key the constructors needed but could not use.
type FieldError struct {
	Path    string
	Problem string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Path, e.Problem)
}

func missing(path string) error {
	return &FieldError{Path: path, Problem: "missing"}
}

func mismatch(path, want string, got any) error {
	return &FieldError{Path: path, Problem: fmt.Sprintf("expected %s, got %T", want, got)}
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func index(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func getValue(m map[string]any, key, path string) (any, error) {
	v, ok := m[key]
	if !ok {
		return nil, missing(join(path, key))
	}
	return v, nil
}

func getMap(m map[string]any, key, path string) (map[string]any, error) {
	v, err := getValue(m, key, path)
	if err != nil {
		return nil, err
	}
	mv, ok := v.(map[string]any)
	if !ok {
		return nil, mismatch(join(path, key), "object", v)
	}
	return mv, nil
}

func getList(m map[string]any, key, path string) ([]map[string]any, error) {
	v, err := getValue(m, key, path)
	if err != nil {
		return nil, err
	}
	lv, ok := v.([]any)
	if !ok {
		return nil, mismatch(join(path, key), "array", v)
	}
	out := make([]map[string]any, 0, len(lv))
	for i, item := range lv {
		mv, ok := item.(map[string]any)
		if !ok {
			return nil, mismatch(index(join(path, key), i), "object", item)
		}
		out = append(out, mv)
	}
	return out, nil
}

func getString(m map[string]any, key, path string) (string, error) {
	v, err := getValue(m, key, path)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", mismatch(join(path, key), "string", v)
	}
	return s, nil
}

func getFloat(m map[string]any, key, path string) (float64, error) {
	v, err := getValue(m, key, path)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, mismatch(join(path, key), "number", v)
		}
		return f, nil
	default:
		return 0, mismatch(join(path, key), "number", v)
	}
}

func getInt(m map[string]any, key, path string) (int, error) {
	f, err := getFloat(m, key, path)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, &FieldError{Path: join(path, key), Problem: fmt.Sprintf("expected integer, got %v", f)}
	}
	return int(f), nil
}

// DailyFromMap builds the Caiyun daily result from a decoded JSON object.
// Keys that are not read are ignored.
func DailyFromMap(m map[string]any) (Daily, error) {
	var d Daily
	daily, err := getMap(m, "daily", "")
	if err != nil {
		return d, err
	}
	if d.Daily, err = DailyForecastFromMap(daily, "daily"); err != nil {
		return d, err
	}
	if d.Primary, err = getInt(m, "primary", ""); err != nil {
		return d, err
	}
	return d, nil
}

func DailyForecastFromMap(m map[string]any, path string) (DailyForecast, error) {
	var f DailyForecast
	var err error

	if f.Status, err = getString(m, "status", path); err != nil {
		return f, err
	}

	astro, err := getList(m, "astro", path)
	if err != nil {
		return f, err
	}
	for i, item := range astro {
		a, err := AstroFromMap(item, index(join(path, "astro"), i))
		if err != nil {
			return f, err
		}
		f.Astro = append(f.Astro, a)
	}

	temperature, err := getList(m, "temperature", path)
	if err != nil {
		return f, err
	}
	for i, item := range temperature {
		t, err := TemperatureFromMap(item, index(join(path, "temperature"), i))
		if err != nil {
			return f, err
		}
		f.Temperature = append(f.Temperature, t)
	}

	humidity, err := getList(m, "humidity", path)
	if err != nil {
		return f, err
	}
	for i, item := range humidity {
		h, err := HumidityFromMap(item, index(join(path, "humidity"), i))
		if err != nil {
			return f, err
		}
		f.Humidity = append(f.Humidity, h)
	}

	wind, err := getList(m, "wind", path)
	if err != nil {
		return f, err
	}
	for i, item := range wind {
		w, err := WindFromMap(item, index(join(path, "wind"), i))
		if err != nil {
			return f, err
		}
		f.Wind = append(f.Wind, w)
	}

	skycon, err := getList(m, "skycon", path)
	if err != nil {
		return f, err
	}
	for i, item := range skycon {
		s, err := SkyConFromMap(item, index(join(path, "skycon"), i))
		if err != nil {
			return f, err
		}
		f.SkyCon = append(f.SkyCon, s)
	}

	aq, err := getMap(m, "air_quality", path)
	if err != nil {
		return f, err
	}
	if f.AirQuality, err = AirQualityFromMap(aq, join(path, "air_quality")); err != nil {
		return f, err
	}
	return f, nil
}

func AstroFromMap(m map[string]any, path string) (Astro, error) {
	var a Astro
	var err error
	if a.Date, err = getString(m, "date", path); err != nil {
		return a, err
	}
	sunrise, err := getMap(m, "sunrise", path)
	if err != nil {
		return a, err
	}
	if a.Sunrise, err = getString(sunrise, "time", join(path, "sunrise")); err != nil {
		return a, err
	}
	sunset, err := getMap(m, "sunset", path)
	if err != nil {
		return a, err
	}
	if a.Sunset, err = getString(sunset, "time", join(path, "sunset")); err != nil {
		return a, err
	}
	return a, nil
}

func TemperatureFromMap(m map[string]any, path string) (Temperature, error) {
	var t Temperature
	var err error
	if t.Date, err = getString(m, "date", path); err != nil {
		return t, err
	}
	if t.Max, err = getFloat(m, "max", path); err != nil {
		return t, err
	}
	if t.Avg, err = getFloat(m, "avg", path); err != nil {
		return t, err
	}
	if t.Min, err = getFloat(m, "min", path); err != nil {
		return t, err
	}
	return t, nil
}

func HumidityFromMap(m map[string]any, path string) (Humidity, error) {
	var h Humidity
	var err error
	if h.Date, err = getString(m, "date", path); err != nil {
		return h, err
	}
	if h.Max, err = getFloat(m, "max", path); err != nil {
		return h, err
	}
	if h.Avg, err = getFloat(m, "avg", path); err != nil {
		return h, err
	}
	if h.Min, err = getFloat(m, "min", path); err != nil {
		return h, err
	}
	return h, nil
}

func WindValueFromMap(m map[string]any, path string) (WindValue, error) {
	var w WindValue
	var err error
	if w.Speed, err = getFloat(m, "speed", path); err != nil {
		return w, err
	}
	if w.Direction, err = getFloat(m, "direction", path); err != nil {
		return w, err
	}
	return w, nil
}

func WindFromMap(m map[string]any, path string) (Wind, error) {
	var w Wind
	var err error
	if w.Date, err = getString(m, "date", path); err != nil {
		return w, err
	}
	for _, part := range []struct {
		key string
		dst *WindValue
	}{
		{"max", &w.Max},
		{"avg", &w.Avg},
		{"min", &w.Min},
	} {
		raw, err := getMap(m, part.key, path)
		if err != nil {
			return w, err
		}
		if *part.dst, err = WindValueFromMap(raw, join(path, part.key)); err != nil {
			return w, err
		}
	}
	return w, nil
}

func SkyConFromMap(m map[string]any, path string) (SkyCon, error) {
	var s SkyCon
	var err error
	if s.Date, err = getString(m, "date", path); err != nil {
		return s, err
	}
	if s.Value, err = getString(m, "value", path); err != nil {
		return s, err
	}
	return s, nil
}

// AQIValueFromMap reads the national indices. Only chn is required; usa
// defaults to zero when the provider omits it.
func AQIValueFromMap(m map[string]any, path string) (AQIValue, error) {
	var v AQIValue
	var err error
	if v.Chn, err = getInt(m, "chn", path); err != nil {
		return v, err
	}
	if _, ok := m["usa"]; ok {
		if v.Usa, err = getInt(m, "usa", path); err != nil {
			return v, err
		}
	}
	return v, nil
}

func AQIEntryFromMap(m map[string]any, path string) (AQIEntry, error) {
	var e AQIEntry
	var err error
	if e.Date, err = getString(m, "date", path); err != nil {
		return e, err
	}
	for _, part := range []struct {
		key string
		dst *AQIValue
	}{
		{"max", &e.Max},
		{"avg", &e.Avg},
		{"min", &e.Min},
	} {
		raw, err := getMap(m, part.key, path)
		if err != nil {
			return e, err
		}
		if *part.dst, err = AQIValueFromMap(raw, join(path, part.key)); err != nil {
			return e, err
		}
	}
	return e, nil
}

func PM25EntryFromMap(m map[string]any, path string) (PM25Entry, error) {
	var p PM25Entry
	var err error
	if p.Date, err = getString(m, "date", path); err != nil {
		return p, err
	}
	if p.Max, err = getFloat(m, "max", path); err != nil {
		return p, err
	}
	if p.Avg, err = getFloat(m, "avg", path); err != nil {
		return p, err
	}
	if p.Min, err = getFloat(m, "min", path); err != nil {
		return p, err
	}
	return p, nil
}

// AirQualityFromMap requires the aqi list. pm25 is optional since nothing
// downstream displays it.
func AirQualityFromMap(m map[string]any, path string) (AirQuality, error) {
	var aq AirQuality
	aqi, err := getList(m, "aqi", path)
	if err != nil {
		return aq, err
	}
	for i, item := range aqi {
		e, err := AQIEntryFromMap(item, index(join(path, "aqi"), i))
		if err != nil {
			return aq, err
		}
		aq.AQI = append(aq.AQI, e)
	}
	if _, ok := m["pm25"]; !ok {
		return aq, nil
	}
	pm25, err := getList(m, "pm25", path)
	if err != nil {
		return aq, err
	}
	for i, item := range pm25 {
		p, err := PM25EntryFromMap(item, index(join(path, "pm25"), i))
		if err != nil {
			return aq, err
		}
		aq.PM25 = append(aq.PM25, p)
	}
	return aq, nil
}

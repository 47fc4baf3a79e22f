package types

import (
	"reflect"
	"testing"
)

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"date", "date"},
		{"sky_con", "skyCon"},
		{"air_quality", "airQuality"},
		{"api_STATUS", "apiStatus"},
		{"a__b", "aB"},
		{"skyCon", "skyCon"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ToCamelCase(tt.in); got != tt.want {
			t.Errorf("ToCamelCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCamelizeKeysNested(t *testing.T) {
	rec := DisplayRecord{
		Date:        "2024-05-01",
		Sunrise:     "05:48",
		Sunset:      "18:51",
		Temperature: TemperatureRange{Max: 27, Min: 19},
		Humidity:    HumidityRange{Max: "90", Avg: "75", Min: "60"},
		SkyCon:      "light rain",
		Wind:        WindDescription{Name: "gentle breeze", Level: 3, Direction: "southeast"},
		AirQuality:  AirQualityDescription{AQI: 38, Level: "excellent"},
	}

	out, ok := CamelizeKeys([]map[string]any{rec.ToMap()}).([]any)
	if !ok || len(out) != 1 {
		t.Fatalf("unexpected camelized shape: %#v", out)
	}
	m := out[0].(map[string]any)
	if _, ok := m["sky_con"]; ok {
		t.Errorf("snake_case key survived conversion")
	}
	if m["skyCon"] != "light rain" {
		t.Errorf("skyCon = %v", m["skyCon"])
	}
	aq, ok := m["airQuality"].(map[string]any)
	if !ok {
		t.Fatalf("airQuality missing or wrong type: %#v", m["airQuality"])
	}
	if aq["aqi"] != 38 || aq["level"] != "excellent" {
		t.Errorf("airQuality = %#v", aq)
	}
}

func TestCamelizeKeysIdempotent(t *testing.T) {
	rec := DisplayRecord{Date: "2024-05-01", SkyCon: "fog"}
	once := CamelizeKeys(rec.ToMap())
	twice := CamelizeKeys(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second conversion changed the result:\n%#v\n%#v", once, twice)
	}
}

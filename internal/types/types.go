package types

type Coordinate struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

type DisplayRecord struct {
	Date        string
	Sunrise     string
	Sunset      string
	Temperature TemperatureRange
	Humidity    HumidityRange
	SkyCon      string
	Wind        WindDescription
	AirQuality  AirQualityDescription
}

type TemperatureRange struct {
	Max int
	Min int
}

// HumidityRange holds integer percentages already formatted for display.
type HumidityRange struct {
	Max string
	Avg string
	Min string
}

type WindDescription struct {
	Name      string
	Level     int
	Direction string
}

type AirQualityDescription struct {
	AQI   int
	Level string
}

// ToMap renders the record with snake_case keys. Callers that need the
// wire format run the result through CamelizeKeys.
func (d DisplayRecord) ToMap() map[string]any {
	return map[string]any{
		"date":    d.Date,
		"sunrise": d.Sunrise,
		"sunset":  d.Sunset,
		"temperature": map[string]any{
			"max": d.Temperature.Max,
			"min": d.Temperature.Min,
		},
		"humidity": map[string]any{
			"max": d.Humidity.Max,
			"avg": d.Humidity.Avg,
			"min": d.Humidity.Min,
		},
		"sky_con": d.SkyCon,
		"wind": map[string]any{
			"name":      d.Wind.Name,
			"level":     d.Wind.Level,
			"direction": d.Wind.Direction,
		},
		"air_quality": map[string]any{
			"aqi":   d.AirQuality.AQI,
			"level": d.AirQuality.Level,
		},
	}
}

// External Objects

type Daily struct {
	Daily   DailyForecast
	Primary int
}

type DailyForecast struct {
	Status      string
	Astro       []Astro
	Temperature []Temperature
	Humidity    []Humidity
	Wind        []Wind
	SkyCon      []SkyCon
	AirQuality  AirQuality
}

type Astro struct {
	Date    string
	Sunrise string
	Sunset  string
}

type Temperature struct {
	Date string
	Max  float64
	Avg  float64
	Min  float64
}

type Humidity struct {
	Date string
	Max  float64
	Avg  float64
	Min  float64
}

type WindValue struct {
	Speed     float64
	Direction float64
}

type Wind struct {
	Date string
	Max  WindValue
	Avg  WindValue
	Min  WindValue
}

type SkyCon struct {
	Date  string
	Value string
}

type AQIValue struct {
	Chn int
	Usa int
}

type AQIEntry struct {
	Date string
	Max  AQIValue
	Avg  AQIValue
	Min  AQIValue
}

type PM25Entry struct {
	Date string
	Max  float64
	Avg  float64
	Min  float64
}

type AirQuality struct {
	AQI  []AQIEntry
	PM25 []PM25Entry
}

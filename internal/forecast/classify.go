package forecast

import "math"

const Unknown = "unknown"

type speedRange struct {
	lower, upper int
	name         string
	level        int
}

// 103-117 and 117+ overlap at 117. Lookups take the first match, so 117 is
// level 11. Four-digit speeds are treated as bad readings.
var windSpeedTable = []speedRange{
	{0, 0, "no wind", 0},
	{1, 5, "light air", 1},
	{6, 11, "light breeze", 2},
	{12, 19, "gentle breeze", 3},
	{20, 28, "moderate breeze", 4},
	{29, 38, "fresh breeze", 5},
	{39, 49, "strong breeze", 6},
	{50, 61, "near gale", 7},
	{62, 74, "gale", 8},
	{75, 88, "strong gale", 9},
	{89, 102, "storm", 10},
	{103, 117, "violent storm", 11},
	{117, 999, "hurricane", 12},
}

// Wind direction in degrees, 0 is due north, 90 due east, 180 due south and
// 270 due west. The exact cardinal points are listed first.
type directionRange struct {
	lower, upper float64
	name         string
	singleton    bool
}

var windDirectionTable = []directionRange{
	{0, 0, "north", true},
	{90, 90, "east", true},
	{180, 180, "south", true},
	{270, 270, "west", true},
	{0, 90, "northeast", false},
	{90, 180, "southeast", false},
	{180, 270, "southwest", false},
	{270, 360, "northwest", false},
}

var skyConTable = map[string]string{
	"CLEAR_DAY":           "clear (day)",
	"CLEAR_NIGHT":         "clear (night)",
	"PARTLY_CLOUDY_DAY":   "partly cloudy (day)",
	"PARTLY_CLOUDY_NIGHT": "partly cloudy (night)",
	"CLOUDY":              "overcast",
	"LIGHT_HAZE":          "light haze",
	"MODERATE_HAZE":       "moderate haze",
	"HEAVY_HAZE":          "heavy haze",
	"LIGHT_RAIN":          "light rain",
	"MODERATE_RAIN":       "moderate rain",
	"HEAVY_RAIN":          "heavy rain",
	"STORM_RAIN":          "rainstorm",
	"FOG":                 "fog",
	"LIGHT_SNOW":          "light snow",
	"MODERATE_SNOW":       "moderate snow",
	"HEAVY_SNOW":          "heavy snow",
	"STORM_SNOW":          "blizzard",
	"DUST":                "floating dust",
	"SAND":                "sandstorm",
	"WIND":                "strong wind",
}

type aqiRange struct {
	lower, upper int
	level        string
}

var aqiTable = []aqiRange{
	{0, 50, "excellent"},
	{51, 100, "good"},
	{101, 150, "lightly polluted"},
	{151, 200, "moderately polluted"},
	{201, 300, "heavily polluted"},
	{300, math.MaxInt32, "severely polluted"},
}

// WindSpeed rounds speed half to even and returns the intensity name and
// scale level, or Unknown and -1 when no range matches.
func WindSpeed(speed float64) (string, int) {
	if math.IsNaN(speed) || math.IsInf(speed, 0) {
		return Unknown, -1
	}
	rounded := math.RoundToEven(speed)
	if rounded < math.MinInt32 || rounded > math.MaxInt32 {
		return Unknown, -1
	}
	v := int(rounded)
	for _, r := range windSpeedTable {
		if r.lower <= v && v <= r.upper {
			return r.name, r.level
		}
	}
	return Unknown, -1
}

// WindDirection returns the compass name for a bearing in [0, 360).
func WindDirection(direction float64) string {
	for _, r := range windDirectionTable {
		if r.singleton {
			if direction == r.lower {
				return r.name
			}
			continue
		}
		if r.lower <= direction && direction < r.upper {
			return r.name
		}
	}
	return Unknown
}

func SkyCon(code string) string {
	if label, ok := skyConTable[code]; ok {
		return label
	}
	return Unknown
}

func AirQualityLevel(aqi int) string {
	for _, r := range aqiTable {
		if r.lower <= aqi && aqi <= r.upper {
			return r.level
		}
	}
	return Unknown
}

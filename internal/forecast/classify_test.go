package forecast

import (
	"math"
	"testing"
)

func TestWindSpeed(t *testing.T) {
	tests := []struct {
		speed     float64
		wantName  string
		wantLevel int
	}{
		{0, "no wind", 0},
		{0.4, "no wind", 0},
		{0.5, "no wind", 0},
		{1.5, "light air", 1},
		{5, "light air", 1},
		{6, "light breeze", 2},
		{15, "gentle breeze", 3},
		{19.4, "gentle breeze", 3},
		{102, "storm", 10},
		{103, "violent storm", 11},
		// 117 sits in both the 103-117 and 117+ ranges; the lower one wins.
		{117, "violent storm", 11},
		{118, "hurricane", 12},
		{999, "hurricane", 12},
		{1000, Unknown, -1},
		{-3, Unknown, -1},
		{math.NaN(), Unknown, -1},
		{math.Inf(1), Unknown, -1},
	}
	for _, tt := range tests {
		name, level := WindSpeed(tt.speed)
		if name != tt.wantName || level != tt.wantLevel {
			t.Errorf("WindSpeed(%v) = (%q, %d), want (%q, %d)", tt.speed, name, level, tt.wantName, tt.wantLevel)
		}
	}
}

func TestWindDirection(t *testing.T) {
	tests := []struct {
		direction float64
		want      string
	}{
		{0, "north"},
		{45, "northeast"},
		{89.9, "northeast"},
		{90, "east"},
		{135, "southeast"},
		{180, "south"},
		{200, "southwest"},
		{270, "west"},
		{359, "northwest"},
		{360, Unknown},
		{-1, Unknown},
		{math.NaN(), Unknown},
	}
	for _, tt := range tests {
		if got := WindDirection(tt.direction); got != tt.want {
			t.Errorf("WindDirection(%v) = %q, want %q", tt.direction, got, tt.want)
		}
	}
}

func TestSkyCon(t *testing.T) {
	if got := SkyCon("CLEAR_DAY"); got != "clear (day)" {
		t.Errorf("SkyCon(CLEAR_DAY) = %q", got)
	}
	if got := SkyCon("STORM_SNOW"); got != "blizzard" {
		t.Errorf("SkyCon(STORM_SNOW) = %q", got)
	}
	if got := SkyCon("THUNDER_SHOWER"); got != Unknown {
		t.Errorf("unrecognized code should map to %q, got %q", Unknown, got)
	}
	if got := SkyCon("clear_day"); got != Unknown {
		t.Errorf("lookup must be exact, got %q", got)
	}
}

func TestAirQualityLevel(t *testing.T) {
	tests := []struct {
		aqi  int
		want string
	}{
		{0, "excellent"},
		{50, "excellent"},
		{51, "good"},
		{100, "good"},
		{101, "lightly polluted"},
		{151, "moderately polluted"},
		{201, "heavily polluted"},
		{300, "heavily polluted"},
		{301, "severely polluted"},
		{5000, "severely polluted"},
		{-5, Unknown},
	}
	for _, tt := range tests {
		if got := AirQualityLevel(tt.aqi); got != tt.want {
			t.Errorf("AirQualityLevel(%d) = %q, want %q", tt.aqi, got, tt.want)
		}
	}
}

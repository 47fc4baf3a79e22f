package cityweather

import (
	"context"
	"errors"
	"fmt"
	"github.com/evanhutnik/cityweather-service/internal/common"
	"github.com/evanhutnik/cityweather-service/internal/forecast"
	t "github.com/evanhutnik/cityweather-service/internal/types"
	"go.uber.org/zap"
	"strings"
)

type Geocoder interface {
	GeoCode(ctx context.Context, city string) (*t.Coordinate, error)
}

type Forecaster interface {
	GetDaily(ctx context.Context, coord t.Coordinate) (map[string]any, error)
}

type Locator interface {
	City(ctx context.Context) (string, error)
}

type RecentStore interface {
	Record(ctx context.Context, city string) error
	Recent(ctx context.Context, n int) ([]string, error)
}

type WeatherResponse struct {
	City       string       `json:"city"`
	Coordinate t.Coordinate `json:"coordinate"`
	Forecast   []any        `json:"forecast"`
}

type CodeError struct {
	code int
	msg  string
}

func (c CodeError) Error() string {
	return c.msg
}

func (c CodeError) Code() int {
	return c.code
}

type ServiceOption func(*Service)

type Service struct {
	geo          Geocoder
	weather      Forecaster
	locator      Locator
	recent       RecentStore
	disableRedis bool

	Logger *zap.SugaredLogger
}

func GeocoderOption(geo Geocoder) ServiceOption {
	return func(s *Service) {
		s.geo = geo
	}
}

func ForecasterOption(weather Forecaster) ServiceOption {
	return func(s *Service) {
		s.weather = weather
	}
}

func LocatorOption(locator Locator) ServiceOption {
	return func(s *Service) {
		s.locator = locator
	}
}

func RecentStoreOption(recent RecentStore) ServiceOption {
	return func(s *Service) {
		s.recent = recent
	}
}

func DisableRedisOption(disable bool) ServiceOption {
	return func(s *Service) {
		s.disableRedis = disable
	}
}

func LoggerOption(logger *zap.SugaredLogger) ServiceOption {
	return func(s *Service) {
		s.Logger = logger
	}
}

func New(opts ...ServiceOption) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}

	if s.geo == nil {
		panic("Missing geocoder in cityweather service")
	}
	if s.weather == nil {
		panic("Missing forecaster in cityweather service")
	}
	if s.Logger == nil {
		s.Logger = zap.NewNop().Sugar()
	}
	if s.recent == nil {
		s.disableRedis = true
	}
	return s
}

// Weather resolves city, fetches its daily forecast and converts it into
// display records. An empty city is resolved from the public IP location.
func (s *Service) Weather(ctx context.Context, city string) (*WeatherResponse, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		located, err := s.locate(ctx)
		if err != nil {
			return nil, err
		}
		city = located
	}

	coord, err := s.geoCode(ctx, city)
	if err != nil {
		return nil, err
	}

	records, err := s.forecast(ctx, city, *coord)
	if err != nil {
		return nil, err
	}

	s.record(ctx, city)

	return &WeatherResponse{
		City:       city,
		Coordinate: *coord,
		Forecast:   forecast.ToMaps(records),
	}, nil
}

// Recent returns the most recently searched cities, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]string, error) {
	if s.disableRedis {
		return []string{}, nil
	}
	cities, err := s.recent.Recent(ctx, limit)
	if err != nil {
		s.Logger.Errorw(err.Error(), "limit", limit, "action", "Recent")
		return nil, CodeError{code: 500, msg: "Internal error reading recent searches."}
	}
	return cities, nil
}

func (s *Service) locate(ctx context.Context) (string, error) {
	if s.locator == nil {
		return "", CodeError{code: 400, msg: "Missing 'city' in request"}
	}
	city, err := s.locator.City(ctx)
	if err != nil {
		return "", s.upstreamError(err, "", "Locate", "locating the caller")
	}
	return city, nil
}

func (s *Service) geoCode(ctx context.Context, city string) (*t.Coordinate, error) {
	coord, err := s.geo.GeoCode(ctx, city)
	if err != nil {
		return nil, s.upstreamError(err, city, "GeoCode", fmt.Sprintf("geocoding city '%v'", city))
	} else if coord == nil {
		return nil, CodeError{code: 404, msg: fmt.Sprintf("Unrecognized city '%v'. Check spelling or be more specific.", city)}
	}
	return coord, nil
}

func (s *Service) forecast(ctx context.Context, city string, coord t.Coordinate) ([]t.DisplayRecord, error) {
	result, err := s.weather.GetDaily(ctx, coord)
	if err != nil {
		return nil, s.upstreamError(err, city, "GetDaily", fmt.Sprintf("retrieving forecast for '%v'", city))
	}
	if len(result) == 0 {
		s.Logger.Warnw("forecast provider returned no usable data",
			"city", city, "longitude", coord.Longitude, "latitude", coord.Latitude)
		return []t.DisplayRecord{}, nil
	}

	records, err := forecast.Convert(result)
	if err != nil {
		s.Logger.Errorw(err.Error(), "city", city, "action", "Convert")
		return nil, CodeError{code: 500, msg: fmt.Sprintf("Internal error processing forecast for '%v'.", city)}
	}
	return records, nil
}

func (s *Service) record(ctx context.Context, city string) {
	if s.disableRedis {
		return
	}
	if err := s.recent.Record(ctx, city); err != nil {
		s.Logger.Warnf("Error recording search for '%v': %v", city, err.Error())
	}
}

// upstreamError logs err once and maps it to the status a caller should see.
func (s *Service) upstreamError(err error, city, action, doing string) error {
	s.Logger.Errorw(err.Error(), "city", city, "action", action)
	switch {
	case errors.Is(err, common.ErrTimeout):
		return CodeError{code: 504, msg: fmt.Sprintf("Timed out %v.", doing)}
	case errors.Is(err, common.ErrUnreachable):
		return CodeError{code: 502, msg: fmt.Sprintf("Upstream unavailable while %v.", doing)}
	case errors.Is(err, common.ErrMalformed):
		return CodeError{code: 502, msg: fmt.Sprintf("Unexpected upstream response while %v.", doing)}
	default:
		return CodeError{code: 500, msg: fmt.Sprintf("Internal error %v.", doing)}
	}
}

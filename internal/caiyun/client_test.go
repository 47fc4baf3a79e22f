package caiyun

import (
	"context"
	"errors"
	"github.com/evanhutnik/cityweather-service/internal/common"
	"github.com/evanhutnik/cityweather-service/internal/types"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

var coord = types.Coordinate{Longitude: 113.28064, Latitude: 23.12518}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...ClientOption) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	opts = append([]ClientOption{TokenOption("tok"), BaseUrlOption(ts.URL + "/v2.6/")}, opts...)
	return New(opts...)
}

func TestGetDaily(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2.6/tok/113.28064,23.12518/daily" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("dailysteps") != "5" {
			t.Errorf("dailysteps = %s", r.URL.Query().Get("dailysteps"))
		}
		_, _ = w.Write([]byte(`{"status": "ok", "api_version": "v2.6", "location": [23.1, 113.2],
			"result": {"daily": {"status": "ok"}, "primary": 0}}`))
	}, DailyStepsOption(5))

	result, err := c.GetDaily(context.Background(), coord)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	daily, ok := result["daily"].(map[string]any)
	if !ok || daily["status"] != "ok" {
		t.Errorf("result = %#v", result)
	}
}

func TestGetDailyNoUsableData(t *testing.T) {
	tests := map[string]struct {
		status int
		body   string
	}{
		"failed status": {http.StatusOK, `{"status": "failed", "error": "token is invalid"}`},
		"not found":     {http.StatusNotFound, `not found`},
	}
	for name, tt := range tests {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			_, _ = w.Write([]byte(tt.body))
		})
		result, err := c.GetDaily(context.Background(), coord)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if result == nil || len(result) != 0 {
			t.Errorf("%s: expected empty map, got %#v", name, result)
		}
	}
}

func TestGetDailyMalformed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ok", "result": [`))
	})
	_, err := c.GetDaily(context.Background(), coord)
	if !errors.Is(err, common.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestGetDailyTimeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}, TimeoutOption(20*time.Millisecond))

	_, err := c.GetDaily(context.Background(), coord)
	if !errors.Is(err, common.ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

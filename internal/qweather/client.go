package qweather

import (
	"context"
	"fmt"
	"github.com/evanhutnik/cityweather-service/internal/common"
	t "github.com/evanhutnik/cityweather-service/internal/types"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const upstream = "qweather"

// Status codes carried in the response body.
const (
	okCode       = "200"
	notFoundCode = "404"
)

type ClientOption func(*Client)

func ApiKeyOption(apiKey string) ClientOption {
	return func(c *Client) {
		c.apiKey = apiKey
	}
}

func BaseUrlOption(baseUrl string) ClientOption {
	return func(c *Client) {
		c.baseUrl = baseUrl
	}
}

func TimeoutOption(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

type Client struct {
	apiKey  string
	baseUrl string
	timeout time.Duration
	doer    *common.Doer
}

func New(opts ...ClientOption) *Client {
	c := &Client{timeout: 5 * time.Second}
	for _, opt := range opts {
		opt(c)
	}

	if c.apiKey == "" {
		panic("Missing apikey in qweather client")
	}
	if c.baseUrl == "" {
		panic("Missing baseUrl in qweather client")
	}
	c.doer = common.NewDoer(upstream, c.timeout)
	return c
}

// GeoCode looks up a place name and returns the best match. A nil coordinate
// with a nil error means the provider answered but did not recognise the name.
// Rejected keys, exhausted quotas and server errors come back as errors.
func (c *Client) GeoCode(ctx context.Context, city string) (*t.Coordinate, error) {
	req, err := url.Parse(c.baseUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse qweather baseUrl %s: %w", c.baseUrl, err)
	}

	q := req.Query()
	q.Add("location", city)
	q.Add("key", c.apiKey)
	req.RawQuery = q.Encode()

	ctxReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build qweather request: %w", err)
	}
	resp, err := c.doer.Do(ctxReq)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 500 {
		return nil, &common.UpstreamError{
			Kind:     common.KindUnreachable,
			Upstream: upstream,
			Err:      fmt.Errorf("error code %d returned from qweather", resp.StatusCode),
		}
	}
	if !resp.OK() {
		return nil, common.Malformed(upstream, fmt.Errorf("error code %d returned from qweather", resp.StatusCode))
	}

	var respObj GeoResponse
	if err := resp.Decode(upstream, &respObj); err != nil {
		return nil, err
	}
	switch {
	case respObj.Code == notFoundCode:
		return nil, nil
	case respObj.Code != okCode:
		return nil, common.Malformed(upstream, fmt.Errorf("qweather returned code %q", respObj.Code))
	case len(respObj.Location) == 0:
		return nil, nil
	}

	loc := respObj.Location[0]
	lon, err := strconv.ParseFloat(loc.Lon, 64)
	if err != nil {
		return nil, common.Malformed(upstream, fmt.Errorf("bad longitude %q: %w", loc.Lon, err))
	}
	lat, err := strconv.ParseFloat(loc.Lat, 64)
	if err != nil {
		return nil, common.Malformed(upstream, fmt.Errorf("bad latitude %q: %w", loc.Lat, err))
	}
	return &t.Coordinate{Longitude: lon, Latitude: lat}, nil
}

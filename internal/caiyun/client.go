package caiyun

import (
	"context"
	"fmt"
	"github.com/evanhutnik/cityweather-service/internal/common"
	"github.com/evanhutnik/cityweather-service/internal/types"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const upstream = "caiyun"

// Response is the envelope of the daily endpoint. Result is kept loose and
// handed to the forecast pipeline as is.
type Response struct {
	Status     string         `json:"status"`
	ApiVersion string         `json:"api_version"`
	ApiStatus  string         `json:"api_status"`
	Lang       string         `json:"lang"`
	Unit       string         `json:"unit"`
	Tzshift    int            `json:"tzshift"`
	Timezone   string         `json:"timezone"`
	ServerTime int64          `json:"server_time"`
	Location   []float64      `json:"location"`
	Result     map[string]any `json:"result"`
}

type ClientOption func(*Client)

type Client struct {
	token      string
	baseUrl    string
	dailySteps int
	timeout    time.Duration
	doer       *common.Doer
}

func TokenOption(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

func BaseUrlOption(baseUrl string) ClientOption {
	return func(c *Client) {
		c.baseUrl = strings.TrimRight(baseUrl, "/")
	}
}

func DailyStepsOption(days int) ClientOption {
	return func(c *Client) {
		c.dailySteps = days
	}
}

func TimeoutOption(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func New(opts ...ClientOption) *Client {
	c := &Client{dailySteps: 4, timeout: 5 * time.Second}

	for _, opt := range opts {
		opt(c)
	}

	if c.token == "" {
		panic("Missing token in caiyun client")
	}
	if c.baseUrl == "" {
		panic("Missing baseUrl in caiyun client")
	}
	c.doer = common.NewDoer(upstream, c.timeout)
	return c
}

// GetDaily fetches the daily forecast for coord. An empty map means the
// provider answered without usable data (non-200 or status other than "ok").
func (c Client) GetDaily(ctx context.Context, coord types.Coordinate) (map[string]any, error) {
	reqUrl := fmt.Sprintf("%v/%v/%v,%v/daily", c.baseUrl, c.token,
		strconv.FormatFloat(coord.Longitude, 'f', -1, 64),
		strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	req, err := url.Parse(reqUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse caiyun url %s: %w", reqUrl, err)
	}

	q := req.Query()
	q.Add("dailysteps", strconv.Itoa(c.dailySteps))
	req.RawQuery = q.Encode()

	ctxReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build caiyun request: %w", err)
	}
	resp, err := c.doer.Do(ctxReq)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return map[string]any{}, nil
	}

	var respObj Response
	if err := resp.Decode(upstream, &respObj); err != nil {
		return nil, err
	}
	if respObj.Status != "ok" || respObj.Result == nil {
		return map[string]any{}, nil
	}
	return respObj.Result, nil
}

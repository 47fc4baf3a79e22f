package iplocation

import (
	"context"
	"errors"
	"fmt"
	"github.com/evanhutnik/cityweather-service/internal/common"
	"net/http"
	"strings"
	"time"
)

const upstream = "iplocation"

type Response struct {
	Ip   string `json:"ip"`
	Area string `json:"area"`
}

type ClientOption func(*Client)

type Client struct {
	baseUrl string
	timeout time.Duration
	doer    *common.Doer
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

func New(opts ...ClientOption) *Client {
	c := &Client{timeout: 5 * time.Second}
	for _, opt := range opts {
		opt(c)
	}

	if c.baseUrl == "" {
		panic("Missing baseUrl in iplocation client")
	}
	c.doer = common.NewDoer(upstream, c.timeout)
	return c
}

// City resolves the service's public IP address to a city name.
func (c *Client) City(ctx context.Context) (string, error) {
	ctxReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseUrl, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build iplocation request: %w", err)
	}
	resp, err := c.doer.Do(ctxReq)
	if err != nil {
		return "", err
	}
	if !resp.OK() {
		return "", common.Malformed(upstream, fmt.Errorf("error code %d returned from iplocation", resp.StatusCode))
	}

	var respObj Response
	if err := resp.Decode(upstream, &respObj); err != nil {
		return "", err
	}
	city := ExtractCity(respObj.Area)
	if city == "" {
		return "", common.Malformed(upstream, errors.New("response has no area"))
	}
	return city, nil
}

// ExtractCity pulls the city out of an area string such as
// "广东省广州市 电信" or "北京市 联通". The carrier suffix is dropped.
func ExtractCity(area string) string {
	var city string
	if _, rest, ok := strings.Cut(area, "省"); ok {
		city = firstField(rest)
	} else if _, rest, ok := strings.Cut(area, "自治区"); ok {
		city = firstField(rest)
	} else if before, _, ok := strings.Cut(area, "市"); ok {
		city = before
	} else {
		city = area
	}
	return strings.TrimSpace(city)
}

func firstField(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

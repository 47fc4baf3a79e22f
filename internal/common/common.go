package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/sony/gobreaker"
	"io"
	"net"
	"net/http"
	"time"
)

var (
	ErrTimeout     = errors.New("upstream timeout")
	ErrUnreachable = errors.New("upstream unreachable")
	ErrMalformed   = errors.New("malformed upstream response")
)

type Kind int

const (
	KindTimeout Kind = iota + 1
	KindUnreachable
	KindMalformed
)

func (k Kind) sentinel() error {
	switch k {
	case KindTimeout:
		return ErrTimeout
	case KindUnreachable:
		return ErrUnreachable
	default:
		return ErrMalformed
	}
}

// UpstreamError wraps a failure talking to a third party api. It matches
// ErrTimeout, ErrUnreachable or ErrMalformed with errors.Is.
type UpstreamError struct {
	Kind     Kind
	Upstream string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Upstream, e.Kind.sentinel().Error(), e.Err.Error())
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func (e *UpstreamError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func Malformed(upstream string, err error) error {
	return &UpstreamError{Kind: KindMalformed, Upstream: upstream, Err: err}
}

// Response is a fully read upstream response.
type Response struct {
	StatusCode int
	Body       []byte
}

func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

// Decode unmarshals the body, reporting failures as malformed responses.
func (r *Response) Decode(upstream string, v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return Malformed(upstream, fmt.Errorf("error unmarshalling response: %w", err))
	}
	return nil
}

var errServerStatus = errors.New("server error")

// Doer sends single-attempt requests to one upstream. Server errors and
// transport failures trip a circuit breaker so a dead upstream fails fast.
type Doer struct {
	name   string
	client *http.Client
	cb     *gobreaker.CircuitBreaker
}

func NewDoer(name string, timeout time.Duration) *Doer {
	return NewDoerWithClient(name, &http.Client{Timeout: timeout})
}

func NewDoerWithClient(name string, client *http.Client) *Doer {
	return &Doer{
		name:   name,
		client: client,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

func (d *Doer) Name() string {
	return d.name
}

// Do executes req once. Non-2xx responses are returned to the caller, which
// decides what a given status means for its api.
func (d *Doer) Do(req *http.Request) (*Response, error) {
	var resp *Response
	_, err := d.cb.Execute(func() (interface{}, error) {
		r, err := d.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer r.Body.Close()

		body, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading %v response body: %w", d.name, err)
		}
		resp = &Response{StatusCode: r.StatusCode, Body: body}
		if r.StatusCode >= 500 {
			return nil, fmt.Errorf("%w: status %d", errServerStatus, r.StatusCode)
		}
		return nil, nil
	})
	if err == nil || (errors.Is(err, errServerStatus) && resp != nil) {
		return resp, nil
	}
	return nil, d.classify(err)
}

func (d *Doer) classify(err error) error {
	kind := KindUnreachable
	if errors.Is(err, context.DeadlineExceeded) {
		kind = KindTimeout
	} else {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			kind = KindTimeout
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("circuit open: %w", err)
	}
	return &UpstreamError{Kind: kind, Upstream: d.name, Err: err}
}

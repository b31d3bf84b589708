package http

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/jumppad-labs/matrixpanel/pkg/clients/logger"
	"github.com/sethvargo/go-retry"
)

// HTTP defines an interface for a HTTP client
//
//go:generate mockery --name HTTP --filename http.go
type HTTP interface {
	// HealthCheckHTTP makes a HTTP GET request to the given URI and
	// if a successful status []codes is returned the method returns a nil error.
	// If it is not possible to contact the URI or if any status other than the passed codes is returned
	// by the upstream, then the URI is retried until the timeout elapses.
	HealthCheckHTTP(uri string, codes []int, timeout time.Duration) error
}

type HTTPImpl struct {
	backoff time.Duration
	httpc   *http.Client
	l       logger.Logger
}

type option func(h *HTTPImpl)

func WithTransport(transport *http.Transport) option {
	return func(h *HTTPImpl) {
		h.httpc.Transport = transport
	}
}

func NewHTTP(backoff time.Duration, l logger.Logger, opts ...option) HTTP {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext
	transport.TLSHandshakeTimeout = 5 * time.Second
	transport.ResponseHeaderTimeout = 30 * time.Second
	// the server may be using a self signed certificate
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}

	httpc := &http.Client{
		Transport: transport,
	}

	h := &HTTPImpl{backoff, httpc, l}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// HealthCheckHTTP checks a http or HTTPS endpoint for one of the given status codes
func (h *HTTPImpl) HealthCheckHTTP(address string, codes []int, timeout time.Duration) error {
	h.l.Debug("Performing HTTP health check for address", "address", address, "codes", codes)

	if len(codes) == 0 {
		codes = []int{http.StatusOK}
	}

	b := retry.WithMaxDuration(timeout, retry.NewConstant(h.backoff))

	err := retry.Do(context.Background(), b, func(ctx context.Context) error {
		rq, err := http.NewRequestWithContext(ctx, http.MethodGet, address, nil)
		if err != nil {
			return fmt.Errorf("unable to construct http request: %w", err)
		}

		resp, err := h.httpc.Do(rq)
		if err != nil {
			h.l.Debug("HTTP health check failed, retrying", "address", address, "error", err)
			return retry.RetryableError(err)
		}
		resp.Body.Close()

		if !assertResponseCode(codes, resp.StatusCode) {
			h.l.Debug("HTTP health check failed, retrying", "address", address, "response", resp.StatusCode)
			return retry.RetryableError(fmt.Errorf("unexpected status code %d", resp.StatusCode))
		}

		return nil
	})

	if err != nil {
		h.l.Error("Timeout waiting for HTTP health check", "address", address)
		return fmt.Errorf("timeout waiting for HTTP health check %s: %w", address, err)
	}

	h.l.Debug("HTTP health check complete", "address", address)
	return nil
}

func assertResponseCode(codes []int, responseCode int) bool {
	for _, c := range codes {
		if responseCode == c {
			return true
		}
	}

	return false
}

package http

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jumppad-labs/matrixpanel/pkg/clients/logger"
	"github.com/stretchr/testify/require"
)

func setupHTTP(t *testing.T) HTTP {
	return NewHTTP(10*time.Millisecond, logger.NewTestLogger(t))
}

func TestHealthCheckHTTPSucceeds(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer ts.Close()

	err := setupHTTP(t).HealthCheckHTTP(ts.URL, nil, time.Second)
	require.NoError(t, err)
}

func TestHealthCheckHTTPSRetriesUntilReady(t *testing.T) {
	calls := int32(0)
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	defer ts.Close()

	err := setupHTTP(t).HealthCheckHTTP(ts.URL, []int{http.StatusOK}, 2*time.Second)
	require.NoError(t, err)
	require.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(3))
}

func TestHealthCheckHTTPTimesOut(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	err := setupHTTP(t).HealthCheckHTTP(ts.URL, []int{http.StatusOK}, 100*time.Millisecond)
	require.Error(t, err)
}

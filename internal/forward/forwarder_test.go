package forward

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForward_RelaysResponseVerbatim(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"results":[{"name":"cachorro"}]}`))
	}))
	defer srv.Close()

	f := NewHTTPForwarder(Config{BaseURL: srv.URL})

	params := url.Values{}
	params.Set("keywords", "cachorro")
	params.Set("page", "2")

	result, err := f.Forward(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "application/json", result.ContentType)
	assert.JSONEq(t, `{"results":[{"name":"cachorro"}]}`, string(result.Body))
	assert.Equal(t, "cachorro", gotQuery.Get("keywords"))
	assert.Equal(t, "2", gotQuery.Get("page"))
}

func TestForward_UpstreamErrorStatusIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	f := NewHTTPForwarder(Config{BaseURL: srv.URL})

	result, err := f.Forward(context.Background(), url.Values{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, result.StatusCode)
	assert.Contains(t, string(result.Body), "backend exploded")
}

func TestForward_UnreachableBackend(t *testing.T) {
	f := NewHTTPForwarder(Config{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond})

	_, err := f.Forward(context.Background(), url.Values{})
	assert.Error(t, err)
}

func TestForward_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	f := NewHTTPForwarder(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})

	_, err := f.Forward(context.Background(), url.Values{})
	assert.Error(t, err)
}

func TestForward_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	f := NewHTTPForwarder(Config{
		BaseURL:     "http://127.0.0.1:1",
		Timeout:     100 * time.Millisecond,
		MaxFailures: 2,
	})

	for i := 0; i < 3; i++ {
		_, _ = f.Forward(context.Background(), url.Values{})
	}

	assert.Equal(t, gobreaker.StateOpen, f.BreakerState())

	// With the circuit open, calls fail fast.
	start := time.Now()
	_, err := f.Forward(context.Background(), url.Values{})
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

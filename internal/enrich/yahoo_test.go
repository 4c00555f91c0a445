package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYahooClient_Lookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != yahooSearchPath {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("q") {
		case "Intel":
			w.Write([]byte(`{"quotes":[{"symbol":"INTC","exchange":"NMS","exchDisp":"NASDAQ","quoteType":"EQUITY"}]}`))
		case "Bare":
			w.Write([]byte(`{"quotes":[{"symbol":"","exchange":"NYQ"},{"symbol":"BR","exchange":"NYQ"}]}`))
		case "Down":
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{}`))
		default:
			w.Write([]byte(`{"quotes":[]}`))
		}
	}))
	defer srv.Close()

	c := NewYahooClient(srv.URL, 2*time.Second, discardLogger())
	ctx := context.Background()

	m, err := c.Lookup(ctx, "Intel")
	require.NoError(t, err)
	assert.Equal(t, "Intel", m.Name)
	assert.Equal(t, "INTC", m.Symbol)
	assert.Equal(t, "NASDAQ", m.Exchange)

	m, err = c.Lookup(ctx, "Bare")
	require.NoError(t, err)
	assert.Equal(t, "BR", m.Symbol)
	assert.Equal(t, "NYQ", m.Exchange)

	_, err = c.Lookup(ctx, "Nobody")
	assert.ErrorIs(t, err, ErrNoQuote)

	_, err = c.Lookup(ctx, "Down")
	assert.Error(t, err)
}

func TestYahooClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewYahooClient(url, time.Second, discardLogger())
	_, err := c.Lookup(context.Background(), "Intel")
	assert.Error(t, err)
}

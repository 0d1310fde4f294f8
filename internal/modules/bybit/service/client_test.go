package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, func()) {
	srv := httptest.NewServer(handler)
	c := NewClient()
	c.SetBaseURL(srv.URL)
	return c, srv.Close
}

func TestGetCandles_ReversesToChronological(t *testing.T) {
	// Bybit отдаёт newest-first
	body := `{"retCode":0,"retMsg":"OK","result":{"category":"linear","symbol":"BTCUSDT","list":[
		["1724668800000","101","102","100","101.5","20","2030"],
		["1724668500000","100","101","99","101","10","1010"]
	]}}`
	c, done := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v5/market/kline", r.URL.Path)
		assert.Equal(t, "BTCUSDT", r.URL.Query().Get("symbol"))
		assert.Equal(t, "5", r.URL.Query().Get("interval"))
		_, _ = w.Write([]byte(body))
	})
	defer done()

	candles, err := c.GetCandles(context.Background(), "BTCUSDT", "5", 25)
	require.NoError(t, err)
	require.Len(t, candles, 2)
	assert.True(t, candles[0].OpenTime.Before(candles[1].OpenTime))
	assert.Equal(t, 101.5, candles[1].Close)
	assert.Equal(t, 2030.0, candles[1].Turnover)
}

func TestGetCandles_RateLimitHTTP429(t *testing.T) {
	c, done := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	defer done()

	_, err := c.GetCandles(context.Background(), "BTCUSDT", "5", 25)
	assert.True(t, errors.Is(err, ErrRateLimited))
}

func TestGetCandles_RateLimitRetCode(t *testing.T) {
	c, done := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"retCode":10006,"retMsg":"too many visits"}`))
	})
	defer done()

	_, err := c.GetCandles(context.Background(), "BTCUSDT", "5", 25)
	assert.True(t, errors.Is(err, ErrRateLimited))
}

func TestGetCandles_TransientOnServerError(t *testing.T) {
	c, done := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer done()

	_, err := c.GetCandles(context.Background(), "BTCUSDT", "5", 25)
	assert.True(t, errors.Is(err, ErrTransient))
}

func TestGetCandles_TransientOnMalformedBody(t *testing.T) {
	c, done := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"retCode":0,"result":`))
	})
	defer done()

	_, err := c.GetCandles(context.Background(), "BTCUSDT", "5", 25)
	assert.True(t, errors.Is(err, ErrTransient))
}

func TestGetInstruments_FiltersActiveAndQuote(t *testing.T) {
	body := `{"retCode":0,"retMsg":"OK","result":{"list":[
		{"symbol":"BTCUSDT","status":"Trading","quoteCoin":"USDT"},
		{"symbol":"ETHUSDC","status":"Trading","quoteCoin":"USDC"},
		{"symbol":"OLDUSDT","status":"Closed","quoteCoin":"USDT"},
		{"symbol":"SOLUSDT","status":"Trading","quoteCoin":"USDT"}
	]}}`
	c, done := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v5/market/instruments-info", r.URL.Path)
		assert.Equal(t, "linear", r.URL.Query().Get("category"))
		_, _ = w.Write([]byte(body))
	})
	defer done()

	symbols, err := c.GetInstruments(context.Background(), "USDT")
	require.NoError(t, err)
	assert.Equal(t, []string{"BTCUSDT", "SOLUSDT"}, symbols)
}

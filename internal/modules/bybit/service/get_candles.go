package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"

	"pump_scanner/internal/models"
)

// GetCandles отдаёт окно закрытых свечей, хронологически, свежая — последняя.
// Bybit отдаёт newest-first, поэтому разворачиваем.
func (c *Client) GetCandles(ctx context.Context, symbol, interval string, limit int) ([]models.Candle, error) {
	if limit <= 0 {
		limit = 25
	}

	u := fmt.Sprintf("%s/v5/market/kline?category=%s&symbol=%s&interval=%s&limit=%d",
		c.base, c.category, url.QueryEscape(symbol), url.QueryEscape(interval), limit,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(ErrTransient, err.Error())
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(ErrTransient, err.Error())
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode/100 != 2 {
		return nil, errors.Wrapf(ErrTransient, "http %d: %s", resp.StatusCode, string(b))
	}

	var r klineResponse
	if err := sonic.Unmarshal(b, &r); err != nil {
		return nil, errors.Wrap(ErrTransient, err.Error())
	}
	if r.RetCode == retCodeRateLimit {
		return nil, ErrRateLimited
	}
	if r.RetCode != 0 {
		return nil, errors.Wrapf(ErrTransient, "bybit kline error: code=%d msg=%s", r.RetCode, r.RetMsg)
	}

	out := make([]models.Candle, 0, len(r.Result.List))
	for i := len(r.Result.List) - 1; i >= 0; i-- {
		row := r.Result.List[i]
		if len(row) < 7 {
			continue
		}

		tsMs, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			continue
		}
		open, _ := strconv.ParseFloat(row[1], 64)
		high, _ := strconv.ParseFloat(row[2], 64)
		low, _ := strconv.ParseFloat(row[3], 64)
		closep, _ := strconv.ParseFloat(row[4], 64)
		volume, _ := strconv.ParseFloat(row[5], 64)
		turnover, _ := strconv.ParseFloat(row[6], 64)
		if closep <= 0 {
			continue
		}

		out = append(out, models.Candle{
			OpenTime: time.UnixMilli(tsMs),
			Open:     open,
			High:     high,
			Low:      low,
			Close:    closep,
			Volume:   volume,
			Turnover: turnover,
		})
	}

	return out, nil
}

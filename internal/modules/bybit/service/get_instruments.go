package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
)

// GetInstruments возвращает символы торгуемых перпетуалов с нужной
// котируемой валютой (BTCUSDT, ...), в порядке выдачи биржи.
func (c *Client) GetInstruments(ctx context.Context, quote string) ([]string, error) {
	u := fmt.Sprintf("%s/v5/market/instruments-info?category=%s&limit=1000",
		c.base, url.QueryEscape(c.category),
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

	var r instrumentsResponse
	if err := sonic.Unmarshal(b, &r); err != nil {
		return nil, errors.Wrap(ErrTransient, err.Error())
	}
	if r.RetCode == retCodeRateLimit {
		return nil, ErrRateLimited
	}
	if r.RetCode != 0 {
		return nil, errors.Wrapf(ErrTransient, "bybit instruments error: code=%d msg=%s", r.RetCode, r.RetMsg)
	}

	symbols := make([]string, 0, len(r.Result.List))
	for _, inst := range r.Result.List {
		if inst.Status != "Trading" {
			continue
		}
		if quote != "" && inst.QuoteCoin != quote {
			continue
		}
		symbols = append(symbols, inst.Symbol)
	}
	return symbols, nil
}

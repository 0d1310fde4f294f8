package service

import (
	"net/http"
	"time"
)

const baseURL = "https://api.bybit.com"

// Client — тонкий REST-клиент публичного рынка Bybit (линейные перпетуалы).
// Ключи не нужны: сканер читает только публичные данные.
type Client struct {
	http     *http.Client
	base     string
	category string
}

func NewClient() *Client {
	return &Client{
		http:     &http.Client{Timeout: 10 * time.Second},
		base:     baseURL,
		category: "linear",
	}
}

// SetBaseURL — для тестов с httptest-сервером.
func (c *Client) SetBaseURL(u string) { c.base = u }

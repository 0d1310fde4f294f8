package service

// Ответы Bybit v5. kline-строка: [startMs, open, high, low, close, volume, turnover].
type klineResponse struct {
	RetCode int    `json:"retCode"`
	RetMsg  string `json:"retMsg"`
	Result  struct {
		Category string     `json:"category"`
		Symbol   string     `json:"symbol"`
		List     [][]string `json:"list"`
	} `json:"result"`
}

type instrumentsResponse struct {
	RetCode int    `json:"retCode"`
	RetMsg  string `json:"retMsg"`
	Result  struct {
		List []instrument `json:"list"`
	} `json:"result"`
}

type instrument struct {
	Symbol    string `json:"symbol"`
	Status    string `json:"status"`
	QuoteCoin string `json:"quoteCoin"`
}

package service

import "github.com/pkg/errors"

// Классы ошибок провайдера. Раннер разбирает их через errors.Is:
// rate limit — короткий бэкофф и продолжаем, transient — пропуск
// инструмента в этом цикле.
var (
	ErrRateLimited = errors.New("bybit: rate limited")
	ErrTransient   = errors.New("bybit: transient failure")
)

const retCodeRateLimit = 10006

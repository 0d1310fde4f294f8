package notify

import (
	"context"
	"log"
)

// Notifier — канал доставки сигналов. Доставка best-effort:
// реализация никогда не возвращает ошибку в цикл сканирования.
type Notifier interface {
	Broadcast(ctx context.Context, text string)
}

// Stdout — деградированный режим без Telegram-токена: сканируем,
// сигналы пишем только в лог.
type Stdout struct{}

func NewStdout() *Stdout { return &Stdout{} }

func (s *Stdout) Broadcast(_ context.Context, text string) {
	log.Println(text)
}

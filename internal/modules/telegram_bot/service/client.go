package service

import (
	"context"
	"sync"

	tgbot "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pump_scanner/pkg/logger"
)

// Telegram — пассивный нотифайер-рассыльщик. Получатели не настраиваются:
// рассылаем во все чаты, которые хоть раз писали боту (getUpdates).
type Telegram struct {
	bot *tgbot.BotAPI

	mu    sync.Mutex
	chats map[int64]struct{} // запомненные чаты на случай пустого getUpdates
}

func NewTelegram(token string) (*Telegram, error) {
	b, err := tgbot.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Telegram{
		bot:   b,
		chats: make(map[int64]struct{}),
	}, nil
}

// discoverChats подмешивает в известные чаты всё, что видно в getUpdates.
// Telegram хранит апдейты ограниченно, поэтому набор аккумулируем.
func (t *Telegram) discoverChats() []int64 {
	u := tgbot.NewUpdate(0)
	u.Timeout = 0

	updates, err := t.bot.GetUpdates(u)
	if err != nil {
		logger.Error("telegram getUpdates: %v", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for _, upd := range updates {
		if upd.Message != nil && upd.Message.Chat != nil {
			t.chats[upd.Message.Chat.ID] = struct{}{}
		}
	}

	out := make([]int64, 0, len(t.chats))
	for id := range t.chats {
		out = append(out, id)
	}
	return out
}

// Broadcast шлёт текст во все обнаруженные чаты. Ошибки доставки
// глотаем: недоставленный сигнал не повод останавливать сканер.
func (t *Telegram) Broadcast(ctx context.Context, text string) {
	if t == nil || t.bot == nil {
		return
	}
	for _, chatID := range t.discoverChats() {
		select {
		case <-ctx.Done():
			return
		default:
		}
		msg := tgbot.NewMessage(chatID, text)
		msg.ParseMode = tgbot.ModeHTML
		if _, err := t.bot.Send(msg); err != nil {
			logger.Error("telegram send chat=%d: %v", chatID, err)
		}
	}
}

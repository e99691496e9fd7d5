package share

import (
	"fmt"
	"log"

	"menu-planner/internal/shopping"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramSharer delivers formatted shopping lists to a Telegram chat. It is
// the system's share facility; the core never calls it directly.
type TelegramSharer struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramSharer initializes the Telegram API client.
func NewTelegramSharer(token string, chatID int64) (*TelegramSharer, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}
	log.Printf("Authorized on account %s", api.Self.UserName)

	return &TelegramSharer{api: api, chatID: chatID}, nil
}

// ShareShoppingList formats and sends the list as a single message.
func (s *TelegramSharer) ShareShoppingList(list shopping.List) error {
	text := shopping.FormatText(list)
	msg := tgbotapi.NewMessage(s.chatID, text)
	if _, err := s.api.Send(msg); err != nil {
		return fmt.Errorf("failed to share shopping list: %w", err)
	}
	return nil
}

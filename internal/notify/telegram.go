package notify

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"reclamations/backend/internal/models"
)

// htmlToText flattens the HTML email body into something readable in a
// Telegram message. Only the tags BuildReclamationEmail produces are
// handled.
var htmlToText = strings.NewReplacer(
	"</p>", "\n",
	"</h3>", "\n",
	"<br>", "\n",
	"<p>", "",
	"<h3>", "",
	"<strong>", "",
	"</strong>", "",
)

// TelegramSink mirrors notifications to a support chat so the team
// sees new reclamations without watching the mailbox.
type TelegramSink struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramSink authenticates the bot and targets the given chat.
func NewTelegramSink(token string, chatID int64) (*TelegramSink, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	return &TelegramSink{bot: bot, chatID: chatID}, nil
}

// Send posts a plain-text rendering of the notification.
func (t *TelegramSink) Send(n models.Notification) error {
	text := fmt.Sprintf("%s (→ %s)\n\n%s", n.Subject, n.To, htmlToText.Replace(n.Body))
	_, err := t.bot.Send(tgbotapi.NewMessage(t.chatID, text))
	return err
}

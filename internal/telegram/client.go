package telegram

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"
)

// Client delivers messages via the Telegram Bot API using telebot.
// It is send-only: no poller is configured and updates are never consumed,
// so approve/reject button presses are handled outside this service.
type Client struct {
	bot *tele.Bot
}

// NewClient constructs a bot from the token. The timeout bounds every
// outbound API call; telebot's Send does not take a context, so the limit
// is enforced on the underlying HTTP client instead.
func NewClient(token string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("telegram bot token is empty")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	b, err := tele.NewBot(tele.Settings{
		Token:  token,
		Client: &http.Client{Timeout: timeout},
	})
	if err != nil {
		return nil, err
	}
	return &Client{bot: b}, nil
}

// Send posts one message to the given chat, attaching the inline keyboard
// when button rows are present. The context is accepted for interface
// symmetry; cancellation is covered by the client-level timeout.
func (c *Client) Send(ctx context.Context, chatID int64, msg Message) error {
	opts := &tele.SendOptions{
		ParseMode:             msg.ParseMode,
		DisableWebPagePreview: true,
	}
	if rm := inlineMarkup(msg.Buttons); rm != nil {
		opts.ReplyMarkup = rm
	}
	_, err := c.bot.Send(tele.ChatID(chatID), msg.Text, opts)
	return err
}

func inlineMarkup(rows [][]Button) *tele.ReplyMarkup {
	if len(rows) == 0 {
		return nil
	}
	kb := make([][]tele.InlineButton, 0, len(rows))
	for _, row := range rows {
		r := make([]tele.InlineButton, 0, len(row))
		for _, b := range row {
			r = append(r, tele.InlineButton{Text: b.Label, Data: b.Data})
		}
		kb = append(kb, r)
	}
	return &tele.ReplyMarkup{InlineKeyboard: kb}
}

// compile-time check that Client implements Sender
var _ Sender = (*Client)(nil)

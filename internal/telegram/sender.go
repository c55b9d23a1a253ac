package telegram

import "context"

// ModeMarkdown is the Telegram legacy Markdown parse mode.
const ModeMarkdown = "Markdown"

// Button is a single inline-keyboard button carrying an opaque callback
// payload. The payload is attached for admins pressing buttons in the group
// chat; this service only generates it, nothing here consumes presses.
type Button struct {
	Label string
	Data  string
}

// Message is one outbound Telegram message: text, optional parse mode
// ("Markdown", "HTML", or empty for plain), and optional inline-keyboard
// rows.
type Message struct {
	Text      string
	ParseMode string
	Buttons   [][]Button
}

// Sender abstracts delivery to the Telegram Bot API.
// Mocking this interface in tests gives full control over outbound behaviour
// without making real API calls.
type Sender interface {
	Send(ctx context.Context, chatID int64, msg Message) error
}

package telegram

import (
	"context"
	"sync"
)

// SendCall records a single Send invocation made against the mock.
type SendCall struct {
	ChatID int64
	Msg    Message
}

// MockSender is a hand-written, in-memory Sender used in unit tests.
// No mock-generation library needed.
type MockSender struct {
	mu    sync.Mutex
	calls []SendCall

	// Optional error overrides — set in tests to simulate failure paths.
	// ErrByChat takes precedence over Err for the matching chat id.
	Err       error
	ErrByChat map[int64]error
}

func NewMockSender() *MockSender {
	return &MockSender{}
}

func (m *MockSender) Send(_ context.Context, chatID int64, msg Message) error {
	m.mu.Lock()
	m.calls = append(m.calls, SendCall{ChatID: chatID, Msg: msg})
	m.mu.Unlock()

	if err, ok := m.ErrByChat[chatID]; ok {
		return err
	}
	return m.Err
}

// Calls returns a copy of every recorded send, in order.
func (m *MockSender) Calls() []SendCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SendCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallsTo returns the recorded sends addressed to the given chat.
func (m *MockSender) CallsTo(chatID int64) []SendCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []SendCall
	for _, c := range m.calls {
		if c.ChatID == chatID {
			out = append(out, c)
		}
	}
	return out
}

// compile-time check that MockSender implements Sender
var _ Sender = (*MockSender)(nil)

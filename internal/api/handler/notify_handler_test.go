package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/notifyhub/registration-notifier/internal/api"
	"github.com/notifyhub/registration-notifier/internal/notifier"
	"github.com/notifyhub/registration-notifier/internal/telegram"
)

const (
	groupID = int64(-100200300)
	adminID = int64(42)
)

var errTelegramDown = errors.New("telegram: Bad Gateway (502)")

type envelope struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func newServer(t *testing.T) (*httptest.Server, *telegram.MockSender) {
	t.Helper()
	sender := telegram.NewMockSender()
	svc := notifier.New(sender, groupID, adminID, zap.NewNop(), notifier.MetricHooks{})
	router := api.NewRouter(svc, prometheus.NewRegistry(), zap.NewNop())
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, sender
}

func postNotify(t *testing.T, srv *httptest.Server, body string) (int, envelope) {
	t.Helper()
	resp, err := http.Post(srv.URL+"/notify/", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, env
}

func TestNotify_Success(t *testing.T) {
	srv, sender := newServer(t)

	status, env := postNotify(t, srv, `{"name":"Alice","phone":"9876543210","fees_paid":true}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if env.Status != "success" {
		t.Fatalf("expected status=success, got %q", env.Status)
	}
	if env.Data["name"] != "Alice" || env.Data["phone"] != "9876543210" || env.Data["fees_paid"] != true {
		t.Fatalf("unexpected echoed data: %v", env.Data)
	}

	if got := len(sender.CallsTo(groupID)); got != 1 {
		t.Fatalf("expected 1 group send, got %d", got)
	}
	if got := len(sender.CallsTo(adminID)); got != 1 {
		t.Fatalf("expected 1 admin confirmation, got %d", got)
	}
}

func TestNotify_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing name", `{"phone":"9876543210"}`, "name"},
		{"missing phone", `{"name":"Alice"}`, "phone"},
		{"missing both", `{}`, "missing required fields"},
		{"short phone", `{"name":"Alice","phone":"12345"}`, "at least 10 digits"},
		{"non-digit phone", `{"name":"Alice","phone":"98765x3210"}`, "at least 10 digits"},
		{"fees_paid string", `{"name":"Alice","phone":"9876543210","fees_paid":"yes"}`, "boolean"},
		{"fees_paid number", `{"name":"Alice","phone":"9876543210","fees_paid":1}`, "boolean"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv, sender := newServer(t)

			status, env := postNotify(t, srv, tc.body)
			if status != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", status)
			}
			if env.Status != "error" {
				t.Fatalf("expected status=error, got %q", env.Status)
			}
			if !strings.Contains(env.Message, tc.wantMsg) {
				t.Fatalf("expected message containing %q, got %q", tc.wantMsg, env.Message)
			}
			if len(sender.Calls()) != 0 {
				t.Fatal("nothing should be sent on validation failure")
			}
		})
	}
}

func TestNotify_InvalidJSON(t *testing.T) {
	srv, _ := newServer(t)

	status, env := postNotify(t, srv, `{"name":`)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if env.Message != "invalid JSON body" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}

func TestNotify_TelegramFailure(t *testing.T) {
	srv, sender := newServer(t)
	sender.ErrByChat = map[int64]error{groupID: errTelegramDown}

	status, env := postNotify(t, srv, `{"name":"Alice","phone":"9876543210"}`)
	if status != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", status)
	}
	if env.Message != "Failed to send notification to Telegram" {
		t.Fatalf("unexpected message %q", env.Message)
	}
	// The underlying error detail must not leak to the caller.
	if strings.Contains(env.Message, errTelegramDown.Error()) {
		t.Fatal("error detail leaked to the response")
	}

	alerts := sender.CallsTo(adminID)
	if len(alerts) != 1 {
		t.Fatalf("expected an admin alert attempt, got %d", len(alerts))
	}
}

func TestNotify_RepeatedRequestsAreIndependent(t *testing.T) {
	srv, sender := newServer(t)
	body := `{"name":"Alice","phone":"9876543210","fees_paid":true}`

	for i := 0; i < 2; i++ {
		if status, _ := postNotify(t, srv, body); status != http.StatusOK {
			t.Fatalf("send %d: expected 200, got %d", i+1, status)
		}
	}

	group := sender.CallsTo(groupID)
	if len(group) != 2 {
		t.Fatalf("expected 2 group sends, got %d", len(group))
	}
	if group[0].Msg.Text == group[1].Msg.Text {
		t.Fatal("expected distinct request ids across repeated submissions")
	}
}

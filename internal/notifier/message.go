package notifier

import (
	"fmt"
	"strings"

	"github.com/notifyhub/registration-notifier/internal/domain"
	"github.com/notifyhub/registration-notifier/internal/telegram"
)

// FormatRegistration renders the group-chat message body in Telegram
// Markdown. Name and phone lines are always present, email and course only
// when supplied, and the request id is appended last.
func FormatRegistration(reg domain.Registration, requestID string) string {
	var b strings.Builder
	b.WriteString("🎓 *New Registration Request*\n\n")
	fmt.Fprintf(&b, "👤 *Name:* %s\n", reg.Name)
	fmt.Fprintf(&b, "📞 *Phone:* %s\n", reg.Phone)
	if reg.Email != "" {
		fmt.Fprintf(&b, "📧 *Email:* %s\n", reg.Email)
	}
	if reg.Course != "" {
		fmt.Fprintf(&b, "📚 *Course:* %s\n", reg.Course)
	}
	fees := "❌ No"
	if reg.FeesPaid {
		fees = "✅ Yes"
	}
	fmt.Fprintf(&b, "💰 *Fees Paid:* %s\n\n", fees)
	fmt.Fprintf(&b, "🆔 *Request ID:* %s", requestID)
	return b.String()
}

// ActionButtons builds the inline-keyboard layout for a request: one row
// with Approve/Reject, a second row with More Info. Callback payloads carry
// the action and the phone number; no handler in this service consumes them.
func ActionButtons(phone string) [][]telegram.Button {
	return [][]telegram.Button{
		{
			{Label: "✅ Approve", Data: "approve_" + phone},
			{Label: "❌ Reject", Data: "reject_" + phone},
		},
		{
			{Label: "ℹ️ More Info", Data: "info_" + phone},
		},
	}
}

package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const defaultTimeout = 10 * time.Second

// WhatsAppNotifier delivers messages through the external WhatsApp bot's
// HTTP API: POST {baseURL}/send-message with {"phone": ..., "message": ...}.
// Any non-200 response or transport error is reported as a failure; the
// notifier never retries.
type WhatsAppNotifier struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewWhatsAppNotifier builds a notifier for the bot at baseURL. If timeout
// is zero or negative a 10 second default is applied.
func NewWhatsAppNotifier(baseURL string, timeout time.Duration, log zerolog.Logger) *WhatsAppNotifier {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &WhatsAppNotifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

type sendMessageRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Send posts the message to the bot. The destination is reduced to digits
// only before use — the bot expects a bare number with country code.
func (n *WhatsAppNotifier) Send(ctx context.Context, destination, message string) error {
	phone := digitsOnly(destination)
	if phone == "" {
		return fmt.Errorf("send message: destination %q has no digits", destination)
	}

	payload, err := json.Marshal(sendMessageRequest{Phone: phone, Message: message})
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/send-message", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		n.log.Warn().Int("status", resp.StatusCode).Msg("whatsapp bot rejected message")
		return fmt.Errorf("send message: bot returned status %d", resp.StatusCode)
	}
	return nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

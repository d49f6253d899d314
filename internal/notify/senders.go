package notify

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
)

// LogSender writes messages to the log. Used when no webhook is configured.
type LogSender struct {
	log *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{log: logger}
}

func (ls *LogSender) Send(_ context.Context, msg Message) error {
	ls.log.Info("notification", slog.Int64("uid", msg.UserID), slog.String("kind", msg.Kind), slog.String("text", msg.Text))
	return nil
}

// WebhookSender posts messages as JSON to the front-end.
type WebhookSender struct {
	url        string
	client     *http.Client
	maxRetries uint64
}

func NewWebhookSender(url string, client *http.Client) *WebhookSender {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &WebhookSender{
		url:        url,
		client:     client,
		maxRetries: 2,
	}
}

func (ws *WebhookSender) Send(ctx context.Context, msg Message) error {
	body, err := sonic.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshalling notification error: %w", err)
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), ws.maxRetries), ctx)
	return backoff.Retry(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, ws.url, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("building webhook request error: %w", err))
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := ws.client.Do(req)
		if err != nil {
			return fmt.Errorf("posting webhook error: %w", err)
		}
		defer resp.Body.Close()
		switch {
		case resp.StatusCode >= 500:
			return fmt.Errorf("webhook responded %d", resp.StatusCode)
		case resp.StatusCode >= 300:
			return backoff.Permanent(fmt.Errorf("webhook rejected notification: %d", resp.StatusCode))
		}
		return nil
	}, policy)
}

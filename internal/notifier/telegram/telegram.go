// Package telegram delivers watcher notifications through the Telegram Bot
// API. Delivery is fire-and-forget: failures surface as DeliveryError for
// the caller to log, never to retry.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"post_watcher/internal/domain"
)

type Config struct {
	BotToken   string
	APIBaseURL string
	Timeout    time.Duration
}

type Notifier struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *slog.Logger
}

func NewNotifier(cfg Config, logger *slog.Logger) *Notifier {
	return &Notifier{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		token:   cfg.BotToken,
		logger:  logger.With("component", "telegram"),
	}
}

type sendMessageRequest struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (n *Notifier) Send(ctx context.Context, recipientID int64, text string) error {
	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    recipientID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return &domain.DeliveryError{Recipient: recipientID, Err: fmt.Errorf("marshal message: %w", err)}
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return &domain.DeliveryError{Recipient: recipientID, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return &domain.DeliveryError{Recipient: recipientID, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer resp.Body.Close()

	var decoded apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return &domain.DeliveryError{Recipient: recipientID, Err: fmt.Errorf("decode response: %w", err)}
	}
	if !decoded.OK {
		return &domain.DeliveryError{Recipient: recipientID, Err: fmt.Errorf("telegram: %s", decoded.Description)}
	}

	return nil
}

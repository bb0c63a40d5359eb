// Package bot is the thin command surface for managing tracked posts over
// Telegram long polling.
package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"post_watcher/internal/domain"
)

type UserStore interface {
	Ensure(ctx context.Context, user *domain.User) (*domain.User, error)
	Get(ctx context.Context, tgID int64) (*domain.User, error)
	SetAdmin(ctx context.Context, tgID int64, isAdmin bool) error
}

type TweetStore interface {
	Add(ctx context.Context, tweet *domain.Tweet) error
	Deactivate(ctx context.Context, tweetID string, userID int64) error
}

// Replier sends a response back to the chat the command came from.
type Replier interface {
	Send(ctx context.Context, recipientID int64, text string) error
}

type Config struct {
	BotToken    string
	APIBaseURL  string
	PollTimeout time.Duration
}

type Bot struct {
	httpClient  *http.Client
	baseURL     string
	token       string
	pollTimeout time.Duration
	users       UserStore
	tweets      TweetStore
	replier     Replier
	logger      *slog.Logger
}

func New(cfg Config, users UserStore, tweets TweetStore, replier Replier, logger *slog.Logger) *Bot {
	return &Bot{
		httpClient: &http.Client{
			// Must outlive the long-poll window.
			Timeout: cfg.PollTimeout + 10*time.Second,
		},
		baseURL:     strings.TrimRight(cfg.APIBaseURL, "/"),
		token:       cfg.BotToken,
		pollTimeout: cfg.PollTimeout,
		users:       users,
		tweets:      tweets,
		replier:     replier,
		logger:      logger.With("component", "bot"),
	}
}

type update struct {
	UpdateID int64    `json:"update_id"`
	Message  *message `json:"message"`
}

type message struct {
	From *tgUser `json:"from"`
	Chat struct {
		ID int64 `json:"id"`
	} `json:"chat"`
	Text string `json:"text"`
}

type tgUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type updatesResponse struct {
	OK     bool     `json:"ok"`
	Result []update `json:"result"`
}

// Run long-polls getUpdates until the context is cancelled. Poll failures
// are logged and retried after a short pause; a broken poll never takes the
// watcher down.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("command bot started")

	var offset int64
	for {
		if ctx.Err() != nil {
			b.logger.Info("command bot stopped")
			return ctx.Err()
		}

		updates, err := b.getUpdates(ctx, offset)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			b.logger.Error("get updates", "error", err)
			select {
			case <-ctx.Done():
			case <-time.After(5 * time.Second):
			}
			continue
		}

		for _, upd := range updates {
			offset = upd.UpdateID + 1
			if upd.Message == nil || upd.Message.From == nil {
				continue
			}
			b.handleMessage(ctx, upd.Message)
		}
	}
}

func (b *Bot) getUpdates(ctx context.Context, offset int64) ([]update, error) {
	q := url.Values{}
	q.Set("timeout", strconv.Itoa(int(b.pollTimeout/time.Second)))
	if offset > 0 {
		q.Set("offset", strconv.FormatInt(offset, 10))
	}

	reqURL := fmt.Sprintf("%s/bot%s/getUpdates?%s", b.baseURL, b.token, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var decoded updatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if !decoded.OK {
		return nil, fmt.Errorf("telegram returned ok=false")
	}

	return decoded.Result, nil
}

func (b *Bot) reply(ctx context.Context, chatID int64, text string) {
	if err := b.replier.Send(ctx, chatID, text); err != nil {
		b.logger.Error("reply failed", "chat_id", chatID, "error", err)
	}
}

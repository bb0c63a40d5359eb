package bot

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"post_watcher/internal/domain"
)

var (
	statusRe    = regexp.MustCompile(`/status/(\d+)`)
	communityRe = regexp.MustCompile(`/communities/(\d+)`)
)

const usageText = "Hi! Quick reference:\n\n" +
	"Track a post: /add <tweet_url> <community_url>(optional)\n" +
	"Stop tracking: /remove <tweet_url>\n" +
	"Grant access: /allow <user_telegram_id>"

func (b *Bot) handleMessage(ctx context.Context, msg *message) {
	fields := strings.Fields(msg.Text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return
	}
	command := stripBotSuffix(fields[0])
	args := fields[1:]

	user, err := b.ensureUser(ctx, msg.From)
	if err != nil {
		b.logger.Error("ensure user", "tg_id", msg.From.ID, "error", err)
		return
	}

	if command == "/start" {
		if !user.IsAdmin {
			b.reply(ctx, msg.Chat.ID, "No access 🖕")
			return
		}
		b.reply(ctx, msg.Chat.ID, usageText)
		return
	}

	if !user.IsAdmin {
		b.reply(ctx, msg.Chat.ID, "No access 🖕")
		return
	}

	switch command {
	case "/add":
		b.handleAdd(ctx, msg, args)
	case "/remove":
		b.handleRemove(ctx, msg, args)
	case "/allow":
		b.handleAllow(ctx, msg, args)
	}
}

func (b *Bot) handleAdd(ctx context.Context, msg *message, args []string) {
	if len(args) < 1 {
		b.reply(ctx, msg.Chat.ID, "Track a post: /add <tweet_url> <community_url>(optional)")
		return
	}

	tweetURL := args[0]
	tweetID, ok := extractTweetID(tweetURL)
	if !ok {
		b.reply(ctx, msg.Chat.ID, "That doesn't look like a post URL 🤔")
		return
	}

	var communityID *string
	if len(args) >= 2 {
		id, ok := extractCommunityID(args[1])
		if !ok {
			b.reply(ctx, msg.Chat.ID, "That doesn't look like a community URL 🤔")
			return
		}
		communityID = &id
	}

	tweet := &domain.Tweet{
		UserID:      msg.From.ID,
		TweetURL:    tweetURL,
		TweetID:     tweetID,
		CommunityID: communityID,
	}
	if err := b.tweets.Add(ctx, tweet); err != nil {
		b.logger.Error("add tweet", "tweet_id", tweetID, "error", err)
		b.reply(ctx, msg.Chat.ID, "Could not save that post, try again later")
		return
	}

	b.reply(ctx, msg.Chat.ID, "Okay, watching it! 🦈")
}

func (b *Bot) handleRemove(ctx context.Context, msg *message, args []string) {
	if len(args) < 1 {
		b.reply(ctx, msg.Chat.ID, "Stop tracking: /remove <tweet_url>")
		return
	}

	tweetID, ok := extractTweetID(args[0])
	if !ok {
		b.reply(ctx, msg.Chat.ID, "That doesn't look like a post URL 🤔")
		return
	}

	if err := b.tweets.Deactivate(ctx, tweetID, msg.From.ID); err != nil {
		b.logger.Error("deactivate tweet", "tweet_id", tweetID, "error", err)
		b.reply(ctx, msg.Chat.ID, "Could not remove that post, try again later")
		return
	}

	b.reply(ctx, msg.Chat.ID, "Bye bye, post! 🦈")
}

func (b *Bot) handleAllow(ctx context.Context, msg *message, args []string) {
	if len(args) < 1 {
		b.reply(ctx, msg.Chat.ID, "Grant access: /allow <user_telegram_id>")
		return
	}

	tgID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		b.reply(ctx, msg.Chat.ID, "User ID must be a number")
		return
	}

	if err := b.users.SetAdmin(ctx, tgID, true); err != nil {
		b.logger.Error("set admin", "tg_id", tgID, "error", err)
		b.reply(ctx, msg.Chat.ID, "Could not grant access, try again later")
		return
	}

	b.reply(ctx, msg.Chat.ID, fmt.Sprintf("Access granted to user %d", tgID))
}

func (b *Bot) ensureUser(ctx context.Context, from *tgUser) (*domain.User, error) {
	user := &domain.User{TgID: from.ID}
	if from.Username != "" {
		user.Username = &from.Username
	}
	if from.FirstName != "" {
		user.FirstName = &from.FirstName
	}
	if from.LastName != "" {
		user.LastName = &from.LastName
	}
	return b.users.Ensure(ctx, user)
}

// stripBotSuffix removes the "@BotName" part Telegram appends to commands in
// group chats, e.g. "/add@Watcher_Bot" -> "/add".
func stripBotSuffix(command string) string {
	name, _, _ := strings.Cut(command, "@")
	return name
}

func extractTweetID(tweetURL string) (string, bool) {
	m := statusRe.FindStringSubmatch(tweetURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func extractCommunityID(communityURL string) (string, bool) {
	m := communityRe.FindStringSubmatch(communityURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

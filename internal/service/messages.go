package service

import (
	"fmt"
	"strings"

	"post_watcher/internal/domain"
)

func deletedMessage(t domain.Tweet) string {
	var b strings.Builder
	b.WriteString("❌⚠️ POST DELETED ⚠️❌\n")
	writeTweetLines(&b, t)
	return b.String()
}

func rankChangeMessage(t domain.Tweet, onTop bool) string {
	var b strings.Builder
	if onTop {
		b.WriteString("✅⚠️ POST ON TOP ⚠️✅\n")
	} else {
		b.WriteString("❌⚠️ POST NOT ON TOP ⚠️❌\n")
	}
	writeTweetLines(&b, t)
	return b.String()
}

func writeTweetLines(b *strings.Builder, t domain.Tweet) {
	fmt.Fprintf(b, "Tweet Url: %s\n", t.TweetURL)
	fmt.Fprintf(b, "Tweet ID: <code>%s</code>\n", t.TweetID)
	if t.InCommunity() {
		fmt.Fprintf(b, "Community URL: https://x.com/i/communities/%s\n", t.Community())
	}
}

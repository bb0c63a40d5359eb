package domain

import "time"

// Tweet is a post under surveillance for deletion and community-top changes.
type Tweet struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`
	TweetURL    string    `db:"tweet_url"`
	TweetID     string    `db:"tweet_id"`
	CommunityID *string   `db:"community_id"`
	IsActive    bool      `db:"is_active"`
	OnTop       bool      `db:"on_top"`
	CreatedAt   time.Time `db:"created_at"`
}

// InCommunity reports whether the tweet belongs to a community and is
// therefore eligible for top-rank tracking.
func (t Tweet) InCommunity() bool {
	return t.CommunityID != nil && *t.CommunityID != ""
}

// Community returns the community ID or "" when the tweet has none.
func (t Tweet) Community() string {
	if t.CommunityID == nil {
		return ""
	}
	return *t.CommunityID
}

// User is a Telegram account allowed to interact with the bot.
type User struct {
	ID        int64     `db:"id"`
	TgID      int64     `db:"tg_id"`
	Username  *string   `db:"username"`
	FirstName *string   `db:"first_name"`
	LastName  *string   `db:"last_name"`
	IsAdmin   bool      `db:"is_admin"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

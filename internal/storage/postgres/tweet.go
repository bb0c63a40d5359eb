package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"post_watcher/internal/domain"
)

type TweetStore struct {
	db *sqlx.DB
}

func NewTweetStore(db *sqlx.DB) *TweetStore {
	return &TweetStore{db: db}
}

func (s *TweetStore) ListActive(ctx context.Context) ([]domain.Tweet, error) {
	query := `
		SELECT id, user_id, tweet_url, tweet_id, community_id, is_active, on_top, created_at
		FROM tweets
		WHERE is_active = TRUE
		ORDER BY id`

	var tweets []domain.Tweet
	err := s.db.SelectContext(ctx, &tweets, query)
	return tweets, err
}

func (s *TweetStore) Add(ctx context.Context, tweet *domain.Tweet) error {
	query := `
		INSERT INTO tweets (user_id, tweet_url, tweet_id, community_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	return s.db.QueryRowContext(ctx, query,
		tweet.UserID,
		tweet.TweetURL,
		tweet.TweetID,
		tweet.CommunityID,
	).Scan(&tweet.ID, &tweet.CreatedAt)
}

// Deactivate takes the tweet out of future cycles. Rows are never deleted.
func (s *TweetStore) Deactivate(ctx context.Context, tweetID string, userID int64) error {
	query := `UPDATE tweets SET is_active = FALSE WHERE tweet_id = $1 AND user_id = $2`

	_, err := s.db.ExecContext(ctx, query, tweetID, userID)
	return err
}

func (s *TweetStore) SetRankState(ctx context.Context, tweetID, communityID string, onTop bool) error {
	query := `UPDATE tweets SET on_top = $3 WHERE tweet_id = $1 AND community_id = $2`

	_, err := s.db.ExecContext(ctx, query, tweetID, communityID, onTop)
	return err
}

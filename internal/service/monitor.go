package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"post_watcher/internal/domain"
)

// MonitorService runs one polling cycle end to end: load the active tweets,
// fetch their current state, reconcile, then apply the resulting actions
// sequentially. Each action commits on its own; there is no transaction
// spanning the cycle.
type MonitorService struct {
	store       TweetStore
	coordinator *Coordinator
	notifier    Notifier
	publisher   EventPublisher
	logger      *slog.Logger
}

func NewMonitorService(
	store TweetStore,
	coordinator *Coordinator,
	notifier Notifier,
	publisher EventPublisher,
	logger *slog.Logger,
) *MonitorService {
	return &MonitorService{
		store:       store,
		coordinator: coordinator,
		notifier:    notifier,
		publisher:   publisher,
		logger:      logger.With("component", "monitor"),
	}
}

func (s *MonitorService) RunCycle(ctx context.Context) (*domain.CycleStats, error) {
	start := time.Now()

	tweets, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active tweets: %w", err)
	}

	stats := &domain.CycleStats{Checked: len(tweets)}
	if len(tweets) == 0 {
		stats.Duration = time.Since(start)
		return stats, nil
	}

	outcome, err := s.coordinator.RunBatch(ctx, tweets)
	if err != nil {
		return nil, fmt.Errorf("run batch: %w", err)
	}

	for _, res := range outcome.Metrics {
		if res.Status == domain.StatusError {
			stats.FetchErrors++
		}
	}
	for _, rank := range outcome.Ranks {
		if rank.Err != nil {
			stats.RankErrors++
		}
	}

	actions := Reconcile(tweets, outcome.Metrics, outcome.Ranks)
	for _, action := range actions {
		s.apply(ctx, action, stats)
	}

	stats.Duration = time.Since(start)
	s.logger.Info("cycle completed",
		"checked", stats.Checked,
		"deleted", stats.Deleted,
		"rank_changes", stats.RankChanges,
		"fetch_errors", stats.FetchErrors,
		"rank_errors", stats.RankErrors,
		"notify_errors", stats.NotifyErrors,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *MonitorService) apply(ctx context.Context, action domain.Action, stats *domain.CycleStats) {
	tweet := action.Tweet

	switch action.Type {
	case domain.ActionNotifyDeleted:
		stats.Deleted++
		s.notify(ctx, tweet.UserID, deletedMessage(tweet), stats)
		s.publish(ctx, action)

	case domain.ActionMarkInactive:
		if err := s.store.Deactivate(ctx, tweet.TweetID, tweet.UserID); err != nil {
			s.logger.Error("deactivate tweet", "tweet_id", tweet.TweetID, "error", err)
		}

	case domain.ActionNotifyRankChange:
		stats.RankChanges++
		s.notify(ctx, tweet.UserID, rankChangeMessage(tweet, action.OnTop), stats)
		s.publish(ctx, action)

	case domain.ActionPersistRankState:
		if err := s.store.SetRankState(ctx, tweet.TweetID, tweet.Community(), action.OnTop); err != nil {
			s.logger.Error("persist rank state", "tweet_id", tweet.TweetID, "error", err)
		}
	}
}

// notify delivers one message. Delivery failure never blocks the rest of the
// cycle or changes persisted state.
func (s *MonitorService) notify(ctx context.Context, recipientID int64, text string, stats *domain.CycleStats) {
	if err := s.notifier.Send(ctx, recipientID, text); err != nil {
		stats.NotifyErrors++
		s.logger.Error("notification failed", "recipient", recipientID, "error", err)
	}
}

func (s *MonitorService) publish(ctx context.Context, action domain.Action) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, action); err != nil {
		s.logger.Error("publish transition", "tweet_id", action.Tweet.TweetID, "error", err)
	}
}

package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"post_watcher/internal/domain"
	"post_watcher/internal/identity"
)

type TweetStore interface {
	ListActive(ctx context.Context) ([]domain.Tweet, error)
	Deactivate(ctx context.Context, tweetID string, userID int64) error
	SetRankState(ctx context.Context, tweetID, communityID string, onTop bool) error
}

// SessionProvider bootstraps the anonymous credential shared by one cycle.
type SessionProvider interface {
	AcquireGuestToken(ctx context.Context, ident identity.Fingerprint) (domain.GuestToken, error)
}

// SourceClient performs the two read operations against the data source.
// Both are idempotent; FetchMetrics never returns an error because all three
// outcomes are encoded in the result value.
type SourceClient interface {
	FetchMetrics(ctx context.Context, tweetID string, token domain.GuestToken, ident identity.Fingerprint) domain.FetchResult
	FetchRankSnapshot(ctx context.Context, communityID string, topN int, token domain.GuestToken, ident identity.Fingerprint) (*domain.RankSnapshot, error)
}

type IdentitySelector interface {
	Select() identity.Fingerprint
}

// Notifier delivers a message to the tweet's owner. Fire-and-forget: a
// delivery failure is logged by the caller and never retried.
type Notifier interface {
	Send(ctx context.Context, recipientID int64, text string) error
}

// EventPublisher fans state transitions out to interested consumers.
type EventPublisher interface {
	Publish(ctx context.Context, action domain.Action) error
	Close() error
}

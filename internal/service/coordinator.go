package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"post_watcher/internal/domain"
)

// CycleOutcome holds the fetched snapshot of one cycle: one metrics outcome
// per tracked tweet and one rank outcome per distinct community.
type CycleOutcome struct {
	Metrics map[string]domain.FetchResult
	Ranks   map[string]domain.RankResult
}

// Coordinator fans per-tweet and per-community lookups out under a shared
// concurrency limit. Every lookup in a batch presents as the same simulated
// client and carries the same guest token.
type Coordinator struct {
	session     SessionProvider
	client      SourceClient
	identities  IdentitySelector
	concurrency int
	topN        int
	logger      *slog.Logger
}

func NewCoordinator(
	session SessionProvider,
	client SourceClient,
	identities IdentitySelector,
	concurrency int,
	topN int,
	logger *slog.Logger,
) *Coordinator {
	return &Coordinator{
		session:     session,
		client:      client,
		identities:  identities,
		concurrency: concurrency,
		topN:        topN,
		logger:      logger.With("component", "coordinator"),
	}
}

// RunBatch checks all tweets against the source. Failure to acquire the guest
// token aborts the batch with no partial results; individual lookup failures
// are recorded as values and never cancel sibling lookups.
func (c *Coordinator) RunBatch(ctx context.Context, tweets []domain.Tweet) (*CycleOutcome, error) {
	ident := c.identities.Select()
	c.logger.Debug("selected identity", "fingerprint", ident.Label)

	token, err := c.session.AcquireGuestToken(ctx, ident)
	if err != nil {
		return nil, fmt.Errorf("acquire guest token: %w", err)
	}

	communities := distinctCommunities(tweets)

	outcome := &CycleOutcome{
		Metrics: make(map[string]domain.FetchResult, len(tweets)),
		Ranks:   make(map[string]domain.RankResult, len(communities)),
	}

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(c.concurrency)

	for _, tweet := range tweets {
		g.Go(func() error {
			res := c.client.FetchMetrics(ctx, tweet.TweetID, token, ident)
			mu.Lock()
			outcome.Metrics[tweet.TweetID] = res
			mu.Unlock()
			return nil
		})
	}

	for _, communityID := range communities {
		g.Go(func() error {
			snapshot, err := c.client.FetchRankSnapshot(ctx, communityID, c.topN, token, ident)
			mu.Lock()
			if err != nil {
				outcome.Ranks[communityID] = domain.RankResult{Err: err}
			} else {
				outcome.Ranks[communityID] = domain.RankResult{Snapshot: snapshot}
			}
			mu.Unlock()
			return nil
		})
	}

	// Tasks only report outcomes through the maps, never through errors.
	_ = g.Wait()

	return outcome, nil
}

// distinctCommunities returns each community ID once, in first-seen order.
func distinctCommunities(tweets []domain.Tweet) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range tweets {
		if !t.InCommunity() {
			continue
		}
		id := t.Community()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

package service

import "post_watcher/internal/domain"

// Reconcile diffs the fetched snapshot against the persisted state of each
// tweet and returns the side effects to apply. It performs no I/O itself,
// which keeps the decision rules independently testable.
//
// Per tweet: a NotFound metrics outcome means the post is gone — notify once
// and deactivate, and skip any rank handling. A fetch error means no
// information this cycle, so no state is touched; a deletion missed this way
// is picked up by the next successful cycle. A rank transition is emitted
// only when the observed top membership differs from the persisted flag, and
// only when the community's rank lookup actually succeeded — a failed rank
// fetch never flaps persisted state.
func Reconcile(tweets []domain.Tweet, metrics map[string]domain.FetchResult, ranks map[string]domain.RankResult) []domain.Action {
	var actions []domain.Action

	for _, tweet := range tweets {
		res, ok := metrics[tweet.TweetID]
		if !ok || res.Status == domain.StatusError {
			continue
		}

		if res.Status == domain.StatusNotFound {
			actions = append(actions,
				domain.Action{Type: domain.ActionNotifyDeleted, Tweet: tweet},
				domain.Action{Type: domain.ActionMarkInactive, Tweet: tweet},
			)
			continue
		}

		if !tweet.InCommunity() {
			continue
		}

		rank, ok := ranks[tweet.Community()]
		if !ok || rank.Err != nil || rank.Snapshot == nil {
			continue
		}

		currentlyTop := rank.Snapshot.Contains(tweet.TweetID)
		if currentlyTop == tweet.OnTop {
			continue
		}

		actions = append(actions,
			domain.Action{Type: domain.ActionNotifyRankChange, Tweet: tweet, OnTop: currentlyTop},
			domain.Action{Type: domain.ActionPersistRankState, Tweet: tweet, OnTop: currentlyTop},
		)
	}

	return actions
}

package domain

import "time"

// ActionType enumerates the side effects reconciliation may request.
type ActionType int

const (
	// ActionNotifyDeleted tells the owner the tweet is gone.
	ActionNotifyDeleted ActionType = iota
	// ActionMarkInactive removes the tweet from future cycles.
	ActionMarkInactive
	// ActionNotifyRankChange tells the owner the tweet entered or left
	// the community top.
	ActionNotifyRankChange
	// ActionPersistRankState records the new on-top flag.
	ActionPersistRankState
)

// Action is one side effect decided by reconciliation, applied by the driver.
type Action struct {
	Type  ActionType
	Tweet Tweet
	OnTop bool
}

// CycleStats summarizes one polling cycle.
type CycleStats struct {
	Checked      int
	Deleted      int
	RankChanges  int
	FetchErrors  int
	RankErrors   int
	NotifyErrors int
	Duration     time.Duration
}

package domain

// Metrics holds the engagement counters of a still-visible tweet. Counters
// absent upstream stay zero.
type Metrics struct {
	Views     int64 `json:"views_count"`
	Bookmarks int64 `json:"bookmark_count"`
	Favorites int64 `json:"favorite_count"`
	Retweets  int64 `json:"retweet_count"`
	Quotes    int64 `json:"quote_count"`
	Replies   int64 `json:"reply_count"`
}

// FetchStatus discriminates the three outcomes of a metrics lookup.
type FetchStatus int

const (
	// StatusFound means the tweet resolved and Metrics is populated.
	StatusFound FetchStatus = iota
	// StatusNotFound means the source no longer resolves the tweet.
	// This is the deletion signal, distinct from a transient failure.
	StatusNotFound
	// StatusError means the lookup failed transiently; no conclusion
	// about the tweet may be drawn this cycle.
	StatusError
)

// FetchResult is the outcome of one metrics lookup for one tweet.
type FetchResult struct {
	Status  FetchStatus
	Metrics Metrics
	Err     error
}

func Found(m Metrics) FetchResult {
	return FetchResult{Status: StatusFound, Metrics: m}
}

func NotFound() FetchResult {
	return FetchResult{Status: StatusNotFound}
}

func FetchFailure(err error) FetchResult {
	return FetchResult{Status: StatusError, Err: err}
}

// RankSnapshot is the observed top of one community's ranked timeline.
// Membership in TopIDs is what defines "on top"; no position or score beyond
// membership is retained. NextCursor is decoded for deeper paging but unused
// by the polling cycle.
type RankSnapshot struct {
	CommunityID string
	TopIDs      []string
	NextCursor  string
}

// Contains reports whether tweetID appears in the snapshot's top entries.
func (s RankSnapshot) Contains(tweetID string) bool {
	for _, id := range s.TopIDs {
		if id == tweetID {
			return true
		}
	}
	return false
}

// RankResult is the outcome of one ranked-timeline lookup for one community:
// either a snapshot or a transient error, never both.
type RankResult struct {
	Snapshot *RankSnapshot
	Err      error
}

package xapi

// Response models for the two GraphQL read endpoints. The schema is an
// undocumented third-party contract; only the fields the watcher needs are
// declared, everything else is ignored by the decoder.

type tweetResultResponse struct {
	Data struct {
		TweetResult struct {
			Result *tweetResult `json:"result"`
		} `json:"tweetResult"`
	} `json:"data"`
}

type tweetResult struct {
	Legacy *legacyCounters `json:"legacy"`
	Views  struct {
		// String-or-absent upstream.
		Count string `json:"count"`
	} `json:"views"`
}

type legacyCounters struct {
	BookmarkCount int64 `json:"bookmark_count"`
	FavoriteCount int64 `json:"favorite_count"`
	RetweetCount  int64 `json:"retweet_count"`
	QuoteCount    int64 `json:"quote_count"`
	ReplyCount    int64 `json:"reply_count"`
}

type communityTimelineResponse struct {
	Data struct {
		CommunityResults struct {
			Result struct {
				RankedCommunityTimeline struct {
					Timeline struct {
						Instructions []timelineInstruction `json:"instructions"`
					} `json:"timeline"`
				} `json:"ranked_community_timeline"`
			} `json:"result"`
		} `json:"communityResults"`
	} `json:"data"`
}

type timelineInstruction struct {
	Type    string          `json:"type"`
	Entries []timelineEntry `json:"entries"`
}

// timelineEntry is either a post entry ("tweet-<id>") or a pagination
// pseudo-entry ("cursor-bottom-..."), distinguished by the entryId prefix.
type timelineEntry struct {
	EntryID string `json:"entryId"`
	Content struct {
		Value string `json:"value"`
	} `json:"content"`
}

type guestActivateResponse struct {
	GuestToken string `json:"guest_token"`
}

type metricsVariables struct {
	TweetID                string `json:"tweetId"`
	WithCommunity          bool   `json:"withCommunity"`
	IncludePromotedContent bool   `json:"includePromotedContent"`
	WithVoice              bool   `json:"withVoice"`
}

type timelineVariables struct {
	CommunityID   string `json:"communityId"`
	Count         int    `json:"count"`
	WithCommunity bool   `json:"withCommunity"`
	Cursor        string `json:"cursor,omitempty"`
}

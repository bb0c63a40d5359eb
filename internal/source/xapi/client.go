// Package xapi is a stateless client for the X GraphQL read API, used
// without an account: a short-lived guest token authorizes the two read
// operations the watcher needs.
package xapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"post_watcher/internal/domain"
	"post_watcher/internal/identity"
)

const (
	// Public web-app bearer token, required alongside the guest token.
	publicBearerToken = "AAAAAAAAAAAAAAAAAAAAANRILgAAAAAAnNwIzUejRCOuH5E6I8xnZz4puTs%3D1Zv7ttfk8LF81IUq16cHjhLTvJu4FA33AGWWjCpTnA"

	metricsQueryID  = "d6YKjvQ920F-D4Y1PruO-A"
	timelineQueryID = "8fkCp-WqTRbBJWRVjF6SGg"

	metricsOperation  = "TweetResultByRestId"
	timelineOperation = "CommunityTweetsRankedLoggedOutTimeline"

	tweetEntryPrefix  = "tweet-"
	cursorEntryPrefix = "cursor-bottom-"

	// Page size requested from the ranked timeline. Only the first topN
	// entries are kept, but the endpoint expects a realistic count.
	timelinePageSize = 20
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger.With("component", "xapi"),
	}
}

// FetchMetrics looks up the engagement counters of one tweet. All three
// outcomes are returned as values: a resolvable tweet maps to Found, a
// well-formed body with an empty result maps to NotFound (the deletion
// signal), and every transport error, non-2xx status or undecodable body
// maps to a fetch failure so reconciliation never mistakes a transient
// problem for a deletion.
func (c *Client) FetchMetrics(ctx context.Context, tweetID string, token domain.GuestToken, ident identity.Fingerprint) domain.FetchResult {
	vars, err := json.Marshal(metricsVariables{TweetID: tweetID})
	if err != nil {
		return domain.FetchFailure(fmt.Errorf("encode variables: %w", err))
	}

	q := url.Values{}
	q.Set("variables", string(vars))
	q.Set("features", metricsFeatures)
	q.Set("fieldToggles", metricsFieldToggles)

	reqURL := fmt.Sprintf("%s/graphql/%s/%s?%s", c.baseURL, metricsQueryID, metricsOperation, q.Encode())

	var decoded tweetResultResponse
	if err := c.doGet(ctx, reqURL, token, ident, &decoded); err != nil {
		return domain.FetchFailure(err)
	}

	result := decoded.Data.TweetResult.Result
	if result == nil || result.Legacy == nil {
		return domain.NotFound()
	}

	m := domain.Metrics{
		Bookmarks: result.Legacy.BookmarkCount,
		Favorites: result.Legacy.FavoriteCount,
		Retweets:  result.Legacy.RetweetCount,
		Quotes:    result.Legacy.QuoteCount,
		Replies:   result.Legacy.ReplyCount,
	}
	if result.Views.Count != "" {
		if v, err := strconv.ParseInt(result.Views.Count, 10, 64); err == nil {
			m.Views = v
		}
	}

	return domain.Found(m)
}

// FetchRankSnapshot reads the first page of a community's ranked timeline and
// keeps the first topN post entry IDs in source order, skipping pagination
// pseudo-entries. A malformed body yields an error, never a partial snapshot.
func (c *Client) FetchRankSnapshot(ctx context.Context, communityID string, topN int, token domain.GuestToken, ident identity.Fingerprint) (*domain.RankSnapshot, error) {
	vars, err := json.Marshal(timelineVariables{
		CommunityID:   communityID,
		Count:         timelinePageSize,
		WithCommunity: true,
	})
	if err != nil {
		return nil, fmt.Errorf("encode variables: %w", err)
	}

	q := url.Values{}
	q.Set("variables", string(vars))
	q.Set("features", timelineFeatures)

	reqURL := fmt.Sprintf("%s/graphql/%s/%s?%s", c.baseURL, timelineQueryID, timelineOperation, q.Encode())

	var decoded communityTimelineResponse
	if err := c.doGet(ctx, reqURL, token, ident, &decoded); err != nil {
		return nil, err
	}

	instructions := decoded.Data.CommunityResults.Result.RankedCommunityTimeline.Timeline.Instructions
	if instructions == nil {
		return nil, fmt.Errorf("community %s: timeline instructions missing", communityID)
	}

	snapshot := &domain.RankSnapshot{CommunityID: communityID}
	for _, instruction := range instructions {
		if instruction.Type != "TimelineAddEntries" {
			continue
		}
		for _, entry := range instruction.Entries {
			switch {
			case strings.HasPrefix(entry.EntryID, tweetEntryPrefix):
				if len(snapshot.TopIDs) < topN {
					snapshot.TopIDs = append(snapshot.TopIDs, strings.TrimPrefix(entry.EntryID, tweetEntryPrefix))
				}
			case strings.HasPrefix(entry.EntryID, cursorEntryPrefix):
				if snapshot.NextCursor == "" {
					snapshot.NextCursor = entry.Content.Value
				}
			}
		}
	}

	return snapshot, nil
}

func (c *Client) doGet(ctx context.Context, reqURL string, token domain.GuestToken, ident identity.Fingerprint, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	applyHeaders(req, token, ident)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// applyHeaders presents the request as the selected browser fingerprint.
func applyHeaders(req *http.Request, token domain.GuestToken, ident identity.Fingerprint) {
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Accept-Language", ident.AcceptLanguage)
	req.Header.Set("Authorization", "Bearer "+publicBearerToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://x.com")
	req.Header.Set("Referer", "https://x.com/")
	req.Header.Set("User-Agent", ident.UserAgent)
	req.Header.Set("X-Twitter-Active-User", "yes")
	if ident.SecChUA != "" {
		req.Header.Set("Sec-Ch-Ua", ident.SecChUA)
		req.Header.Set("Sec-Ch-Ua-Mobile", ident.SecChUAMobile)
		req.Header.Set("Sec-Ch-Ua-Platform", ident.SecChUAPlatform)
	}
	if token != "" {
		req.Header.Set("X-Guest-Token", string(token))
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"post_watcher/internal/domain"
	"post_watcher/internal/identity"
	"post_watcher/internal/service/mocks"
	"post_watcher/testdata/utils"
)

type CoordinatorTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	session    *mocks.MockSessionProvider
	client     *mocks.MockSourceClient
	identities *mocks.MockIdentitySelector

	logger *slog.Logger
	ident  identity.Fingerprint
}

func (s *CoordinatorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.session = mocks.NewMockSessionProvider(s.ctrl)
	s.client = mocks.NewMockSourceClient(s.ctrl)
	s.identities = mocks.NewMockIdentitySelector(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.ident = identity.Fingerprint{Label: "chrome142", Weight: 1, UserAgent: "test-agent"}
}

func (s *CoordinatorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCoordinatorTestSuite(t *testing.T) {
	suite.Run(t, new(CoordinatorTestSuite))
}

func (s *CoordinatorTestSuite) newCoordinator(concurrency int) *Coordinator {
	return NewCoordinator(s.session, s.client, s.identities, concurrency, 2, s.logger)
}

func (s *CoordinatorTestSuite) TestRunBatch_AuthFailureAbortsCycle() {
	ctx := context.Background()

	s.identities.EXPECT().Select().Return(s.ident)
	s.session.EXPECT().AcquireGuestToken(ctx, s.ident).
		Return(domain.GuestToken(""), &domain.AuthError{Reason: "unexpected status 429"})

	outcome, err := s.newCoordinator(10).RunBatch(ctx, []domain.Tweet{
		{TweetID: "100", UserID: 1},
	})

	s.Nil(outcome)
	var authErr *domain.AuthError
	s.ErrorAs(err, &authErr)
}

func (s *CoordinatorTestSuite) TestRunBatch_SharedTokenAndIdentity() {
	ctx := context.Background()
	token := domain.GuestToken("guest-token-1")

	tweets := []domain.Tweet{
		{TweetID: "100", UserID: 1},
		{TweetID: "200", UserID: 1, CommunityID: utils.Ptr("900")},
	}

	s.identities.EXPECT().Select().Return(s.ident)
	s.session.EXPECT().AcquireGuestToken(ctx, s.ident).Return(token, nil)

	// Every lookup in the batch must carry the one token and identity.
	s.client.EXPECT().FetchMetrics(ctx, "100", token, s.ident).Return(domain.Found(domain.Metrics{Views: 1}))
	s.client.EXPECT().FetchMetrics(ctx, "200", token, s.ident).Return(domain.Found(domain.Metrics{Views: 2}))
	s.client.EXPECT().FetchRankSnapshot(ctx, "900", 2, token, s.ident).
		Return(&domain.RankSnapshot{CommunityID: "900", TopIDs: []string{"200"}}, nil)

	outcome, err := s.newCoordinator(10).RunBatch(ctx, tweets)

	s.NoError(err)
	s.Len(outcome.Metrics, 2)
	s.Len(outcome.Ranks, 1)
	s.Equal(domain.StatusFound, outcome.Metrics["100"].Status)
	s.True(outcome.Ranks["900"].Snapshot.Contains("200"))
}

func (s *CoordinatorTestSuite) TestRunBatch_DeduplicatesCommunities() {
	ctx := context.Background()
	token := domain.GuestToken("guest-token-2")

	tweets := []domain.Tweet{
		{TweetID: "100", CommunityID: utils.Ptr("900")},
		{TweetID: "200", CommunityID: utils.Ptr("900")},
		{TweetID: "300", CommunityID: utils.Ptr("901")},
		{TweetID: "400"},
	}

	s.identities.EXPECT().Select().Return(s.ident)
	s.session.EXPECT().AcquireGuestToken(ctx, s.ident).Return(token, nil)
	s.client.EXPECT().FetchMetrics(ctx, gomock.Any(), token, s.ident).
		Return(domain.Found(domain.Metrics{})).Times(4)
	s.client.EXPECT().FetchRankSnapshot(ctx, "900", 2, token, s.ident).
		Return(&domain.RankSnapshot{CommunityID: "900"}, nil)
	s.client.EXPECT().FetchRankSnapshot(ctx, "901", 2, token, s.ident).
		Return(&domain.RankSnapshot{CommunityID: "901"}, nil)

	outcome, err := s.newCoordinator(10).RunBatch(ctx, tweets)

	s.NoError(err)
	s.Len(outcome.Metrics, 4)
	s.Len(outcome.Ranks, 2)
}

func (s *CoordinatorTestSuite) TestRunBatch_FailuresDoNotCancelSiblings() {
	ctx := context.Background()
	token := domain.GuestToken("guest-token-3")

	tweets := []domain.Tweet{
		{TweetID: "100", CommunityID: utils.Ptr("900")},
		{TweetID: "200", CommunityID: utils.Ptr("901")},
	}

	s.identities.EXPECT().Select().Return(s.ident)
	s.session.EXPECT().AcquireGuestToken(ctx, s.ident).Return(token, nil)
	s.client.EXPECT().FetchMetrics(ctx, "100", token, s.ident).
		Return(domain.FetchFailure(errors.New("timeout")))
	s.client.EXPECT().FetchMetrics(ctx, "200", token, s.ident).
		Return(domain.NotFound())
	s.client.EXPECT().FetchRankSnapshot(ctx, "900", 2, token, s.ident).
		Return(nil, errors.New("malformed body"))
	s.client.EXPECT().FetchRankSnapshot(ctx, "901", 2, token, s.ident).
		Return(&domain.RankSnapshot{CommunityID: "901", TopIDs: []string{"200"}}, nil)

	outcome, err := s.newCoordinator(10).RunBatch(ctx, tweets)

	s.NoError(err)
	s.Equal(domain.StatusError, outcome.Metrics["100"].Status)
	s.Equal(domain.StatusNotFound, outcome.Metrics["200"].Status)
	s.Error(outcome.Ranks["900"].Err)
	s.NotNil(outcome.Ranks["901"].Snapshot)
}

func (s *CoordinatorTestSuite) TestRunBatch_ConcurrencyCap() {
	ctx := context.Background()
	token := domain.GuestToken("guest-token-4")
	const items = 25
	const limit = 10

	tweets := make([]domain.Tweet, 0, items)
	for i := 0; i < items; i++ {
		tweets = append(tweets, domain.Tweet{TweetID: fmt.Sprintf("%d", i)})
	}

	var inFlight, peak int64
	var mu sync.Mutex

	s.identities.EXPECT().Select().Return(s.ident)
	s.session.EXPECT().AcquireGuestToken(ctx, s.ident).Return(token, nil)
	s.client.EXPECT().FetchMetrics(ctx, gomock.Any(), token, s.ident).
		DoAndReturn(func(context.Context, string, domain.GuestToken, identity.Fingerprint) domain.FetchResult {
			n := atomic.AddInt64(&inFlight, 1)
			mu.Lock()
			if n > peak {
				peak = n
			}
			mu.Unlock()
			time.Sleep(2 * time.Millisecond)
			atomic.AddInt64(&inFlight, -1)
			return domain.Found(domain.Metrics{})
		}).Times(items)

	outcome, err := s.newCoordinator(limit).RunBatch(ctx, tweets)

	s.NoError(err)
	s.Len(outcome.Metrics, items)
	s.LessOrEqual(peak, int64(limit))
}

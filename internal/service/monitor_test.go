package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"post_watcher/internal/domain"
	"post_watcher/internal/identity"
	"post_watcher/internal/service/mocks"
	"post_watcher/testdata/utils"
)

type MonitorServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	store      *mocks.MockTweetStore
	session    *mocks.MockSessionProvider
	client     *mocks.MockSourceClient
	identities *mocks.MockIdentitySelector
	notifier   *mocks.MockNotifier
	publisher  *mocks.MockEventPublisher

	service *MonitorService
	ident   identity.Fingerprint
	token   domain.GuestToken
}

func (s *MonitorServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.store = mocks.NewMockTweetStore(s.ctrl)
	s.session = mocks.NewMockSessionProvider(s.ctrl)
	s.client = mocks.NewMockSourceClient(s.ctrl)
	s.identities = mocks.NewMockIdentitySelector(s.ctrl)
	s.notifier = mocks.NewMockNotifier(s.ctrl)
	s.publisher = mocks.NewMockEventPublisher(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	coordinator := NewCoordinator(s.session, s.client, s.identities, 10, 2, logger)
	s.service = NewMonitorService(s.store, coordinator, s.notifier, s.publisher, logger)

	s.ident = identity.Fingerprint{Label: "chrome142", Weight: 1}
	s.token = domain.GuestToken("guest-token")
}

func (s *MonitorServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMonitorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MonitorServiceTestSuite))
}

func (s *MonitorServiceTestSuite) expectBatchSetup() {
	s.identities.EXPECT().Select().Return(s.ident)
	s.session.EXPECT().AcquireGuestToken(gomock.Any(), s.ident).Return(s.token, nil)
}

func (s *MonitorServiceTestSuite) TestRunCycle_NoTweets() {
	ctx := context.Background()

	s.store.EXPECT().ListActive(ctx).Return(nil, nil)

	stats, err := s.service.RunCycle(ctx)

	s.NoError(err)
	s.Equal(0, stats.Checked)
}

func (s *MonitorServiceTestSuite) TestRunCycle_DeletedTweet() {
	ctx := context.Background()
	tweet := domain.Tweet{
		UserID:   42,
		TweetID:  "100",
		TweetURL: "https://x.com/u/status/100",
		IsActive: true,
	}

	s.store.EXPECT().ListActive(ctx).Return([]domain.Tweet{tweet}, nil)
	s.expectBatchSetup()
	s.client.EXPECT().FetchMetrics(gomock.Any(), "100", s.token, s.ident).Return(domain.NotFound())

	s.notifier.EXPECT().Send(ctx, int64(42), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, text string) error {
			s.Contains(text, "POST DELETED")
			s.Contains(text, "https://x.com/u/status/100")
			s.Contains(text, "<code>100</code>")
			return nil
		},
	)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, action domain.Action) error {
			s.Equal(domain.ActionNotifyDeleted, action.Type)
			return nil
		},
	)
	s.store.EXPECT().Deactivate(ctx, "100", int64(42)).Return(nil)

	stats, err := s.service.RunCycle(ctx)

	s.NoError(err)
	s.Equal(1, stats.Checked)
	s.Equal(1, stats.Deleted)
	s.Equal(0, stats.RankChanges)
}

func (s *MonitorServiceTestSuite) TestRunCycle_RankTransition() {
	ctx := context.Background()
	tweet := domain.Tweet{
		UserID:      42,
		TweetID:     "100",
		TweetURL:    "https://x.com/u/status/100",
		CommunityID: utils.Ptr("900"),
		IsActive:    true,
		OnTop:       false,
	}

	s.store.EXPECT().ListActive(ctx).Return([]domain.Tweet{tweet}, nil)
	s.expectBatchSetup()
	s.client.EXPECT().FetchMetrics(gomock.Any(), "100", s.token, s.ident).
		Return(domain.Found(domain.Metrics{Views: 10}))
	s.client.EXPECT().FetchRankSnapshot(gomock.Any(), "900", 2, s.token, s.ident).
		Return(&domain.RankSnapshot{CommunityID: "900", TopIDs: []string{"100", "200"}}, nil)

	s.notifier.EXPECT().Send(ctx, int64(42), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, text string) error {
			s.Contains(text, "POST ON TOP")
			s.Contains(text, "https://x.com/i/communities/900")
			return nil
		},
	)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)
	s.store.EXPECT().SetRankState(ctx, "100", "900", true).Return(nil)

	stats, err := s.service.RunCycle(ctx)

	s.NoError(err)
	s.Equal(1, stats.RankChanges)
	s.Equal(0, stats.Deleted)
}

func (s *MonitorServiceTestSuite) TestRunCycle_FetchErrorTouchesNothing() {
	ctx := context.Background()
	tweet := domain.Tweet{
		UserID:      42,
		TweetID:     "100",
		CommunityID: utils.Ptr("900"),
		IsActive:    true,
		OnTop:       true,
	}

	s.store.EXPECT().ListActive(ctx).Return([]domain.Tweet{tweet}, nil)
	s.expectBatchSetup()
	s.client.EXPECT().FetchMetrics(gomock.Any(), "100", s.token, s.ident).
		Return(domain.FetchFailure(errors.New("timeout")))
	s.client.EXPECT().FetchRankSnapshot(gomock.Any(), "900", 2, s.token, s.ident).
		Return(&domain.RankSnapshot{CommunityID: "900"}, nil)

	stats, err := s.service.RunCycle(ctx)

	s.NoError(err)
	s.Equal(1, stats.FetchErrors)
	s.Equal(0, stats.Deleted)
	s.Equal(0, stats.RankChanges)
}

func (s *MonitorServiceTestSuite) TestRunCycle_DeliveryFailureDoesNotBlockPersistence() {
	ctx := context.Background()
	tweet := domain.Tweet{
		UserID:   42,
		TweetID:  "100",
		IsActive: true,
	}

	s.store.EXPECT().ListActive(ctx).Return([]domain.Tweet{tweet}, nil)
	s.expectBatchSetup()
	s.client.EXPECT().FetchMetrics(gomock.Any(), "100", s.token, s.ident).Return(domain.NotFound())

	s.notifier.EXPECT().Send(ctx, int64(42), gomock.Any()).
		Return(&domain.DeliveryError{Recipient: 42, Err: errors.New("blocked by user")})
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)
	// The tweet is still deactivated even though the message failed.
	s.store.EXPECT().Deactivate(ctx, "100", int64(42)).Return(nil)

	stats, err := s.service.RunCycle(ctx)

	s.NoError(err)
	s.Equal(1, stats.Deleted)
	s.Equal(1, stats.NotifyErrors)
}

func (s *MonitorServiceTestSuite) TestRunCycle_AuthFailure() {
	ctx := context.Background()

	s.store.EXPECT().ListActive(ctx).Return([]domain.Tweet{{TweetID: "100"}}, nil)
	s.identities.EXPECT().Select().Return(s.ident)
	s.session.EXPECT().AcquireGuestToken(gomock.Any(), s.ident).
		Return(domain.GuestToken(""), &domain.AuthError{Reason: "response missing guest_token"})

	stats, err := s.service.RunCycle(ctx)

	s.Nil(stats)
	var authErr *domain.AuthError
	s.ErrorAs(err, &authErr)
}

func (s *MonitorServiceTestSuite) TestRunCycle_StoreError() {
	ctx := context.Background()

	s.store.EXPECT().ListActive(ctx).Return(nil, errors.New("connection refused"))

	stats, err := s.service.RunCycle(ctx)

	s.Nil(stats)
	s.Error(err)
}

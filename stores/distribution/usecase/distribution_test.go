package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/nftex/settlement/base/ctx"
	"github.com/nftex/settlement/domain"
	activityMocks "github.com/nftex/settlement/domain/activity/mocks"
	"github.com/nftex/settlement/domain/distribution"
	distributionMocks "github.com/nftex/settlement/domain/distribution/mocks"
	"github.com/nftex/settlement/domain/mocks"
	"github.com/nftex/settlement/domain/settlement"
	settlementMocks "github.com/nftex/settlement/domain/settlement/mocks"
)

const (
	engineAccount       = domain.Address("0xengine")
	distributionAccount = domain.Address("0xdist")
	platformAccount     = domain.Address("0xplatform")
	adminAccount        = domain.Address("0xadmin")
	creatorAccount      = domain.Address("0xcreator")
)

type distributionUseCaseSuite struct {
	suite.Suite

	splits       *distributionMocks.SplitTableRepo
	records      *distributionMocks.RecordRepo
	payments     *mocks.PaymentRegistry
	assets       *mocks.AssetRegistry
	ownership    *distributionMocks.OwnershipProvider
	activities   *activityMocks.ActivityHistoryRepo
	engineConfig *settlementMocks.EngineConfigRepo

	im distribution.UseCase
}

func TestDistributionUseCaseSuite(t *testing.T) {
	suite.Run(t, new(distributionUseCaseSuite))
}

func (s *distributionUseCaseSuite) SetupTest() {
	s.splits = &distributionMocks.SplitTableRepo{}
	s.records = &distributionMocks.RecordRepo{}
	s.payments = &mocks.PaymentRegistry{}
	s.assets = &mocks.AssetRegistry{}
	s.ownership = &distributionMocks.OwnershipProvider{}
	s.activities = &activityMocks.ActivityHistoryRepo{}
	s.engineConfig = &settlementMocks.EngineConfigRepo{}

	s.activities.On("Insert", mock.Anything, mock.Anything).Return(nil)

	s.im = NewDistributionUseCase(&DistributionUseCaseCfg{
		Splits:              s.splits,
		Records:             s.records,
		Payments:            s.payments,
		Assets:              s.assets,
		Ownership:           s.ownership,
		Activities:          s.activities,
		EngineConfig:        s.engineConfig,
		EngineAccount:       engineAccount,
		DistributionAccount: distributionAccount,
		PlatformAccount:     platformAccount,
		AdminAccount:        adminAccount,
	})
}

func (s *distributionUseCaseSuite) TestSetGlobalSplitsRequiresAdmin() {
	ctx := bCtx.Background()

	err := s.im.SetGlobalSplits(ctx, creatorAccount, []distribution.SplitEntry{
		{Recipient: "0xr1", ShareBps: 10000},
	})
	s.Equal(domain.ErrNotAuthorizedCaller, err)
}

func (s *distributionUseCaseSuite) TestSetGlobalSplitsBumpsVersion() {
	ctx := bCtx.Background()
	s.splits.On("FindOne", mock.Anything, distribution.GlobalTableKey).Return(&distribution.SplitTable{
		Collection: distribution.GlobalTableKey,
		Entries:    []distribution.SplitEntry{{Recipient: "0xr1", ShareBps: 10000}},
		Version:    2,
	}, nil)
	s.splits.On("Replace", mock.Anything, mock.MatchedBy(func(t *distribution.SplitTable) bool {
		return t.Collection == distribution.GlobalTableKey && t.Version == 3
	})).Return(nil)

	err := s.im.SetGlobalSplits(ctx, adminAccount, []distribution.SplitEntry{
		{Recipient: "0xr1", ShareBps: 6000},
		{Recipient: "0xr2", ShareBps: 4000},
	})
	s.Require().NoError(err)
	s.splits.AssertExpectations(s.T())
}

func (s *distributionUseCaseSuite) TestSetGlobalSplitsRejectsOversubscribed() {
	ctx := bCtx.Background()

	err := s.im.SetGlobalSplits(ctx, adminAccount, []distribution.SplitEntry{
		{Recipient: "0xr1", ShareBps: 6000},
		{Recipient: "0xr2", ShareBps: 4001},
	})
	s.Equal(domain.ErrInvalidSplits, err)

	err = s.im.SetGlobalSplits(ctx, adminAccount, []distribution.SplitEntry{
		{Recipient: "0xr1", ShareBps: -1},
	})
	s.Equal(domain.ErrInvalidSplits, err)
}

func (s *distributionUseCaseSuite) TestSetCollectionSplitsByOwner() {
	ctx := bCtx.Background()
	s.ownership.On("IsCollectionOwner", mock.Anything, domain.Address("0xc1"), creatorAccount).Return(true, nil)
	s.splits.On("FindOne", mock.Anything, domain.Address("0xc1")).Return(nil, domain.ErrNotFound)
	s.splits.On("Replace", mock.Anything, mock.MatchedBy(func(t *distribution.SplitTable) bool {
		return t.Collection == "0xc1" && t.Version == 1
	})).Return(nil)

	err := s.im.SetCollectionSplits(ctx, creatorAccount, "0xc1", []distribution.SplitEntry{
		{Recipient: creatorAccount, ShareBps: 10000},
	})
	s.Require().NoError(err)
	s.splits.AssertExpectations(s.T())
}

func (s *distributionUseCaseSuite) TestSetCollectionSplitsByNonOwner() {
	ctx := bCtx.Background()
	s.ownership.On("IsCollectionOwner", mock.Anything, domain.Address("0xc1"), creatorAccount).Return(false, nil)

	err := s.im.SetCollectionSplits(ctx, creatorAccount, "0xc1", []distribution.SplitEntry{
		{Recipient: creatorAccount, ShareBps: 10000},
	})
	s.Equal(domain.ErrNotAuthorizedCaller, err)
}

func (s *distributionUseCaseSuite) TestSetCollectionSplitsProviderFailure() {
	ctx := bCtx.Background()
	s.ownership.On("IsCollectionOwner", mock.Anything, domain.Address("0xc1"), creatorAccount).Return(false, errors.New("provider down"))

	// a failing provider is not a reason to grant access, and its error
	// never leaks to the caller
	err := s.im.SetCollectionSplits(ctx, creatorAccount, "0xc1", []distribution.SplitEntry{
		{Recipient: creatorAccount, ShareBps: 10000},
	})
	s.Equal(domain.ErrNotAuthorizedCaller, err)
}

func (s *distributionUseCaseSuite) TestSetCollectionSplitsAdminOverride() {
	ctx := bCtx.Background()
	s.splits.On("FindOne", mock.Anything, domain.Address("0xc1")).Return(nil, domain.ErrNotFound)
	s.splits.On("Replace", mock.Anything, mock.Anything).Return(nil)

	err := s.im.SetCollectionSplits(ctx, adminAccount, "0xc1", []distribution.SplitEntry{
		{Recipient: creatorAccount, ShareBps: 10000},
	})
	s.Require().NoError(err)
	s.ownership.AssertNotCalled(s.T(), "IsCollectionOwner", mock.Anything, mock.Anything, mock.Anything)
}

func (s *distributionUseCaseSuite) TestDistributeRequiresEngineCaller() {
	ctx := bCtx.Background()

	_, err := s.im.Distribute(ctx, adminAccount, &distribution.DistributeParams{
		Collection:  "0xc1",
		TokenId:     "1",
		TotalAmount: 100,
	})
	s.Equal(domain.ErrNotAuthorizedCaller, err)
}

func (s *distributionUseCaseSuite) TestDistributeRejectsInconsistentAmounts() {
	ctx := bCtx.Background()

	_, err := s.im.Distribute(ctx, engineAccount, &distribution.DistributeParams{
		Collection:     "0xc1",
		TokenId:        "1",
		TotalAmount:    100,
		RoyaltyAmount:  60,
		PlatformAmount: 50,
	})
	s.Equal(domain.ErrBadParamInput, err)
}

func (s *distributionUseCaseSuite) TestDistributeConservesFunds() {
	ctx := bCtx.Background()
	s.engineConfig.On("Get", mock.Anything).Return(&settlement.EngineConfig{}, nil)
	s.splits.On("FindOne", mock.Anything, domain.Address("0xc1")).Return(&distribution.SplitTable{
		Collection: "0xc1",
		Entries: []distribution.SplitEntry{
			{Recipient: "0xr1", ShareBps: 3333},
			{Recipient: "0xr2", ShareBps: 3333},
			{Recipient: "0xr3", ShareBps: 3333},
		},
		Version: 1,
	}, nil)
	s.splits.On("FindOne", mock.Anything, distribution.GlobalTableKey).Return(&distribution.SplitTable{
		Collection: distribution.GlobalTableKey,
		Entries: []distribution.SplitEntry{
			{Recipient: "0xp1", ShareBps: 6000},
			{Recipient: "0xp2", ShareBps: 4000},
		},
		Version: 1,
	}, nil)
	s.payments.On("Transfer", mock.Anything, distributionAccount, mock.Anything, mock.Anything).Return(nil)
	s.records.On("Insert", mock.Anything, mock.Anything).Return(nil)

	record, err := s.im.Distribute(ctx, engineAccount, &distribution.DistributeParams{
		Collection:     "0xc1",
		TokenId:        "1",
		TotalAmount:    2000,
		RoyaltyAmount:  1001,
		PlatformAmount: 7,
	})
	s.Require().NoError(err)
	s.NotEmpty(record.Id)

	// royalty 1001 floors to 333 per recipient, platform 7 floors to 4 and 2
	paid := int64(0)
	for _, p := range record.Payouts {
		paid += p.Amount
	}
	s.Equal(int64(1001+7), paid+record.Remainder)
	s.Equal(int64(2+1), record.Remainder)
	s.Len(record.Payouts, 5)
	// dust is bounded by the number of entries in each table
	s.Less(record.Remainder, int64(3+2))
	s.records.AssertExpectations(s.T())
}

func (s *distributionUseCaseSuite) TestDistributeExactSplit() {
	ctx := bCtx.Background()
	s.engineConfig.On("Get", mock.Anything).Return(&settlement.EngineConfig{}, nil)
	s.splits.On("FindOne", mock.Anything, domain.Address("0xc1")).Return(&distribution.SplitTable{
		Collection: "0xc1",
		Entries: []distribution.SplitEntry{
			{Recipient: "0xr1", ShareBps: 5000},
			{Recipient: "0xr2", ShareBps: 5000},
		},
		Version: 1,
	}, nil)
	s.payments.On("Transfer", mock.Anything, distributionAccount, domain.Address("0xr1"), int64(50)).Return(nil)
	s.payments.On("Transfer", mock.Anything, distributionAccount, domain.Address("0xr2"), int64(50)).Return(nil)
	s.records.On("Insert", mock.Anything, mock.Anything).Return(nil)

	record, err := s.im.Distribute(ctx, engineAccount, &distribution.DistributeParams{
		Collection:    "0xc1",
		TokenId:       "1",
		TotalAmount:   1000,
		RoyaltyAmount: 100,
	})
	s.Require().NoError(err)
	s.Equal(int64(0), record.Remainder)
	s.payments.AssertExpectations(s.T())
}

func (s *distributionUseCaseSuite) TestDistributeFallsBackWithoutTables() {
	ctx := bCtx.Background()
	s.engineConfig.On("Get", mock.Anything).Return(&settlement.EngineConfig{}, nil)
	s.splits.On("FindOne", mock.Anything, domain.Address("0xc1")).Return(nil, domain.ErrNotFound)
	s.splits.On("FindOne", mock.Anything, distribution.GlobalTableKey).Return(nil, domain.ErrNotFound)
	s.assets.On("CollectionOwner", mock.Anything, domain.Address("0xc1")).Return(creatorAccount, nil)
	s.payments.On("Transfer", mock.Anything, distributionAccount, creatorAccount, int64(5)).Return(nil)
	s.payments.On("Transfer", mock.Anything, distributionAccount, platformAccount, int64(2)).Return(nil)
	s.records.On("Insert", mock.Anything, mock.Anything).Return(nil)

	record, err := s.im.Distribute(ctx, engineAccount, &distribution.DistributeParams{
		Collection:     "0xc1",
		TokenId:        "1",
		TotalAmount:    100,
		RoyaltyAmount:  5,
		PlatformAmount: 2,
	})
	s.Require().NoError(err)
	s.Equal(int64(0), record.Remainder)
	s.Len(record.Payouts, 2)
	s.payments.AssertExpectations(s.T())
}

func (s *distributionUseCaseSuite) TestDistributeUsesConfiguredEscrowAccount() {
	ctx := bCtx.Background()
	s.engineConfig.On("Get", mock.Anything).Return(&settlement.EngineConfig{
		DistributionAccount: "0xd2",
		Version:             5,
	}, nil)
	s.splits.On("FindOne", mock.Anything, distribution.GlobalTableKey).Return(nil, domain.ErrNotFound)
	s.payments.On("Transfer", mock.Anything, domain.Address("0xd2"), platformAccount, int64(3)).Return(nil)
	s.records.On("Insert", mock.Anything, mock.Anything).Return(nil)

	_, err := s.im.Distribute(ctx, engineAccount, &distribution.DistributeParams{
		Collection:     "0xc1",
		TokenId:        "1",
		TotalAmount:    100,
		PlatformAmount: 3,
	})
	s.Require().NoError(err)
	s.payments.AssertExpectations(s.T())
}

func (s *distributionUseCaseSuite) TestDistributeSkipsZeroPortions() {
	ctx := bCtx.Background()
	s.engineConfig.On("Get", mock.Anything).Return(&settlement.EngineConfig{}, nil)
	s.records.On("Insert", mock.Anything, mock.Anything).Return(nil)

	record, err := s.im.Distribute(ctx, engineAccount, &distribution.DistributeParams{
		Collection:  "0xc1",
		TokenId:     "1",
		TotalAmount: 100,
	})
	s.Require().NoError(err)
	s.Empty(record.Payouts)
	s.Equal(int64(0), record.Remainder)
	s.payments.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.splits.AssertNotCalled(s.T(), "FindOne", mock.Anything, mock.Anything)
}

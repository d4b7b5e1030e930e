package usecase

import (
	"testing"
	"time"

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
	queryMocks "github.com/nftex/settlement/service/query/mocks"
)

const (
	engineAccount       = domain.Address("0xengine")
	distributionAccount = domain.Address("0xdist")
	adminAccount        = domain.Address("0xadmin")
	sellerAccount       = domain.Address("0xseller")
	buyerAccount        = domain.Address("0xbuyer")
)

type settlementUseCaseSuite struct {
	suite.Suite

	listings     *settlementMocks.ListingRepo
	auctions     *settlementMocks.AuctionRepo
	collections  *settlementMocks.CollectionConfigRepo
	engineConfig *settlementMocks.EngineConfigRepo
	assets       *mocks.AssetRegistry
	payments     *mocks.PaymentRegistry
	activities   *activityMocks.ActivityHistoryRepo
	distributor  *distributionMocks.UseCase
	query        *queryMocks.Mongo

	im settlement.UseCase
}

func TestSettlementUseCaseSuite(t *testing.T) {
	suite.Run(t, new(settlementUseCaseSuite))
}

func (s *settlementUseCaseSuite) SetupTest() {
	s.listings = &settlementMocks.ListingRepo{}
	s.auctions = &settlementMocks.AuctionRepo{}
	s.collections = &settlementMocks.CollectionConfigRepo{}
	s.engineConfig = &settlementMocks.EngineConfigRepo{}
	s.assets = &mocks.AssetRegistry{}
	s.payments = &mocks.PaymentRegistry{}
	s.activities = &activityMocks.ActivityHistoryRepo{}
	s.distributor = &distributionMocks.UseCase{}
	s.query = &queryMocks.Mongo{}

	s.query.On("RunWithTransaction", mock.Anything, mock.Anything).Return(func(c bCtx.Ctx, run func(bCtx.Ctx) error) error {
		return run(c)
	})
	s.activities.On("Insert", mock.Anything, mock.Anything).Return(nil)

	s.im = NewSettlementUseCase(&SettlementUseCaseCfg{
		Listings:            s.listings,
		Auctions:            s.auctions,
		Collections:         s.collections,
		EngineConfig:        s.engineConfig,
		Assets:              s.assets,
		Payments:            s.payments,
		Activities:          s.activities,
		Distributor:         s.distributor,
		Query:               s.query,
		EngineAccount:       engineAccount,
		DistributionAccount: distributionAccount,
		AdminAccount:        adminAccount,
	})
}

func (s *settlementUseCaseSuite) allowCollection(royaltyBps int64) {
	s.collections.On("FindOne", mock.Anything, domain.Address("0xc1")).Return(&settlement.CollectionConfig{
		Collection: "0xc1",
		Allowed:    true,
		RoyaltyBps: royaltyBps,
	}, nil)
}

func (s *settlementUseCaseSuite) setProtocolFee(bps int64) {
	s.engineConfig.On("Get", mock.Anything).Return(&settlement.EngineConfig{
		ProtocolFeeBps: bps,
		Version:        1,
	}, nil)
}

func (s *settlementUseCaseSuite) TestListMovesAssetIntoCustody() {
	ctx := bCtx.Background()
	s.allowCollection(500)
	s.assets.On("HolderOf", mock.Anything, domain.Address("0xc1"), domain.TokenId("1")).Return(sellerAccount, nil)
	s.assets.On("Transfer", mock.Anything, sellerAccount, engineAccount, domain.Address("0xc1"), domain.TokenId("1")).Return(nil)
	s.listings.On("Create", mock.Anything, mock.Anything).Return(nil)

	listing, err := s.im.List(ctx, sellerAccount, &settlement.ListParams{
		Collection: "0xc1",
		TokenId:    "1",
		Price:      100,
	})
	s.Require().NoError(err)
	s.Equal(sellerAccount, listing.Seller)
	s.Equal(int64(100), listing.Price)
	s.True(listing.Active)
	s.assets.AssertExpectations(s.T())
	s.listings.AssertExpectations(s.T())
}

func (s *settlementUseCaseSuite) TestListRejectsNonHolder() {
	ctx := bCtx.Background()
	s.allowCollection(500)
	s.assets.On("HolderOf", mock.Anything, domain.Address("0xc1"), domain.TokenId("1")).Return(domain.Address("0xother"), nil)

	_, err := s.im.List(ctx, sellerAccount, &settlement.ListParams{
		Collection: "0xc1",
		TokenId:    "1",
		Price:      100,
	})
	s.Equal(domain.ErrNotSeller, err)
	s.assets.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *settlementUseCaseSuite) TestListRejectsInvalidPrice() {
	ctx := bCtx.Background()

	_, err := s.im.List(ctx, sellerAccount, &settlement.ListParams{
		Collection: "0xc1",
		TokenId:    "1",
		Price:      0,
	})
	s.Equal(domain.ErrInvalidPrice, err)
}

func (s *settlementUseCaseSuite) TestListRejectsUnregisteredCollection() {
	ctx := bCtx.Background()
	s.collections.On("FindOne", mock.Anything, domain.Address("0xc1")).Return(nil, domain.ErrNotFound)

	_, err := s.im.List(ctx, sellerAccount, &settlement.ListParams{
		Collection: "0xc1",
		TokenId:    "1",
		Price:      100,
	})
	s.Equal(domain.ErrCollectionNotAllowed, err)
}

func (s *settlementUseCaseSuite) TestUpdatePriceRequiresSeller() {
	ctx := bCtx.Background()
	s.listings.On("FindOne", mock.Anything, mock.Anything).Return(&settlement.Listing{
		Collection: "0xc1",
		TokenId:    "1",
		Seller:     sellerAccount,
		Price:      100,
		Active:     true,
	}, nil)

	_, err := s.im.UpdatePrice(ctx, buyerAccount, settlement.ListingId{Collection: "0xc1", TokenId: "1"}, 200)
	s.Equal(domain.ErrNotSeller, err)
}

func (s *settlementUseCaseSuite) TestUpdatePriceInactiveListing() {
	ctx := bCtx.Background()
	s.listings.On("FindOne", mock.Anything, mock.Anything).Return(&settlement.Listing{
		Collection: "0xc1",
		TokenId:    "1",
		Seller:     sellerAccount,
		Price:      100,
	}, nil)

	_, err := s.im.UpdatePrice(ctx, sellerAccount, settlement.ListingId{Collection: "0xc1", TokenId: "1"}, 200)
	s.Equal(domain.ErrListingNotActive, err)
}

func (s *settlementUseCaseSuite) TestCancelListingReturnsAsset() {
	ctx := bCtx.Background()
	s.listings.On("FindOne", mock.Anything, mock.Anything).Return(&settlement.Listing{
		Collection: "0xc1",
		TokenId:    "1",
		Seller:     sellerAccount,
		Price:      100,
		Active:     true,
	}, nil)
	s.assets.On("Transfer", mock.Anything, engineAccount, sellerAccount, domain.Address("0xc1"), domain.TokenId("1")).Return(nil)
	s.listings.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	err := s.im.CancelListing(ctx, sellerAccount, settlement.ListingId{Collection: "0xc1", TokenId: "1"})
	s.Require().NoError(err)
	s.assets.AssertExpectations(s.T())
}

func (s *settlementUseCaseSuite) TestBuySplitsProceeds() {
	ctx := bCtx.Background()
	s.allowCollection(500)
	s.setProtocolFee(250)
	s.listings.On("FindOne", mock.Anything, mock.Anything).Return(&settlement.Listing{
		Collection: "0xc1",
		TokenId:    "1",
		Seller:     sellerAccount,
		Price:      100,
		Active:     true,
	}, nil)

	// price 100, fee 250 bps -> 2, royalty 500 bps -> 5, seller gets 93
	s.payments.On("TransferFrom", mock.Anything, engineAccount, buyerAccount, engineAccount, int64(100)).Return(nil)
	s.payments.On("Transfer", mock.Anything, engineAccount, sellerAccount, int64(93)).Return(nil)
	s.payments.On("Transfer", mock.Anything, engineAccount, distributionAccount, int64(7)).Return(nil)
	s.distributor.On("Distribute", mock.Anything, engineAccount, &distribution.DistributeParams{
		Collection:     "0xc1",
		TokenId:        "1",
		TotalAmount:    100,
		RoyaltyAmount:  5,
		PlatformAmount: 2,
	}).Return(&distribution.Record{}, nil)
	s.assets.On("Transfer", mock.Anything, engineAccount, buyerAccount, domain.Address("0xc1"), domain.TokenId("1")).Return(nil)
	s.listings.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	err := s.im.Buy(ctx, buyerAccount, settlement.ListingId{Collection: "0xc1", TokenId: "1"})
	s.Require().NoError(err)
	s.payments.AssertExpectations(s.T())
	s.distributor.AssertExpectations(s.T())
	s.assets.AssertExpectations(s.T())
}

func (s *settlementUseCaseSuite) TestBuyInactiveListing() {
	ctx := bCtx.Background()
	s.listings.On("FindOne", mock.Anything, mock.Anything).Return(&settlement.Listing{
		Collection: "0xc1",
		TokenId:    "1",
		Seller:     sellerAccount,
		Price:      100,
	}, nil)

	err := s.im.Buy(ctx, buyerAccount, settlement.ListingId{Collection: "0xc1", TokenId: "1"})
	s.Equal(domain.ErrListingNotActive, err)
	s.payments.AssertNotCalled(s.T(), "TransferFrom", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *settlementUseCaseSuite) TestBuyRejectsCombinedRatesOverOneHundredPercent() {
	ctx := bCtx.Background()
	s.allowCollection(6000)
	s.setProtocolFee(5000)
	s.listings.On("FindOne", mock.Anything, mock.Anything).Return(&settlement.Listing{
		Collection: "0xc1",
		TokenId:    "1",
		Seller:     sellerAccount,
		Price:      100,
		Active:     true,
	}, nil)

	err := s.im.Buy(ctx, buyerAccount, settlement.ListingId{Collection: "0xc1", TokenId: "1"})
	s.Error(err)
	s.payments.AssertNotCalled(s.T(), "TransferFrom", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *settlementUseCaseSuite) TestCreateAuctionRejectsInvalidTimeRange() {
	ctx := bCtx.Background()
	now := time.Now().UTC()

	_, err := s.im.CreateAuction(ctx, sellerAccount, &settlement.CreateAuctionParams{
		Collection:   "0xc1",
		TokenId:      "1",
		ReservePrice: 50,
		StartTime:    now.Add(time.Hour),
		EndTime:      now.Add(time.Minute),
	})
	s.Equal(domain.ErrInvalidTimeRange, err)

	_, err = s.im.CreateAuction(ctx, sellerAccount, &settlement.CreateAuctionParams{
		Collection:   "0xc1",
		TokenId:      "1",
		ReservePrice: 50,
		StartTime:    now.Add(-2 * time.Hour),
		EndTime:      now.Add(-time.Hour),
	})
	s.Equal(domain.ErrInvalidTimeRange, err)

	// a past start with a future end would be biddable at creation
	_, err = s.im.CreateAuction(ctx, sellerAccount, &settlement.CreateAuctionParams{
		Collection:   "0xc1",
		TokenId:      "1",
		ReservePrice: 50,
		StartTime:    now.Add(-time.Hour),
		EndTime:      now.Add(time.Hour),
	})
	s.Equal(domain.ErrInvalidTimeRange, err)

	// start must be strictly in the future
	_, err = s.im.CreateAuction(ctx, sellerAccount, &settlement.CreateAuctionParams{
		Collection:   "0xc1",
		TokenId:      "1",
		ReservePrice: 50,
		StartTime:    now,
		EndTime:      now.Add(time.Hour),
	})
	s.Equal(domain.ErrInvalidTimeRange, err)
}

func (s *settlementUseCaseSuite) openAuction(prevBid int64, prevBidder domain.Address) *settlement.Auction {
	now := time.Now().UTC()
	start := now.Add(-time.Hour)
	end := now.Add(time.Hour)
	auction := &settlement.Auction{
		Collection:    "0xc1",
		TokenId:       "1",
		Seller:        sellerAccount,
		ReservePrice:  50,
		StartTime:     &start,
		EndTime:       &end,
		HighestBid:    prevBid,
		HighestBidder: prevBidder,
	}
	s.auctions.On("FindOne", mock.Anything, mock.Anything).Return(auction, nil)
	return auction
}

func (s *settlementUseCaseSuite) TestPlaceBidRefundsBeforeEscrow() {
	ctx := bCtx.Background()
	prevBidder := domain.Address("0xb1")
	bidder := domain.Address("0xb2")
	s.openAuction(60, prevBidder)

	calls := []string{}
	s.payments.On("Transfer", mock.Anything, engineAccount, prevBidder, int64(60)).Run(func(mock.Arguments) {
		calls = append(calls, "refund")
	}).Return(nil)
	s.payments.On("TransferFrom", mock.Anything, engineAccount, bidder, engineAccount, int64(90)).Run(func(mock.Arguments) {
		calls = append(calls, "escrow")
	}).Return(nil)
	s.auctions.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	err := s.im.PlaceBid(ctx, bidder, settlement.AuctionId{Collection: "0xc1", TokenId: "1"}, 90)
	s.Require().NoError(err)
	s.Equal([]string{"refund", "escrow"}, calls)
	s.payments.AssertExpectations(s.T())
}

func (s *settlementUseCaseSuite) TestPlaceBidFirstBidSkipsRefund() {
	ctx := bCtx.Background()
	bidder := domain.Address("0xb1")
	s.openAuction(0, "")

	s.payments.On("TransferFrom", mock.Anything, engineAccount, bidder, engineAccount, int64(55)).Return(nil)
	s.auctions.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	err := s.im.PlaceBid(ctx, bidder, settlement.AuctionId{Collection: "0xc1", TokenId: "1"}, 55)
	s.Require().NoError(err)
	s.payments.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *settlementUseCaseSuite) TestPlaceBidTooLow() {
	ctx := bCtx.Background()
	s.openAuction(60, "0xb1")

	// below reserve
	err := s.im.PlaceBid(ctx, "0xb2", settlement.AuctionId{Collection: "0xc1", TokenId: "1"}, 40)
	s.Equal(domain.ErrBidTooLow, err)

	// equal to reserve
	err = s.im.PlaceBid(ctx, "0xb2", settlement.AuctionId{Collection: "0xc1", TokenId: "1"}, 50)
	s.Equal(domain.ErrBidTooLow, err)

	// equal to current highest
	err = s.im.PlaceBid(ctx, "0xb2", settlement.AuctionId{Collection: "0xc1", TokenId: "1"}, 60)
	s.Equal(domain.ErrBidTooLow, err)
}

func (s *settlementUseCaseSuite) TestPlaceBidOutsideWindow() {
	ctx := bCtx.Background()
	now := time.Now().UTC()

	start := now.Add(time.Hour)
	end := now.Add(2 * time.Hour)
	s.auctions.On("FindOne", mock.Anything, mock.Anything).Return(&settlement.Auction{
		Collection:   "0xc1",
		TokenId:      "1",
		Seller:       sellerAccount,
		ReservePrice: 50,
		StartTime:    &start,
		EndTime:      &end,
	}, nil).Once()
	err := s.im.PlaceBid(ctx, "0xb1", settlement.AuctionId{Collection: "0xc1", TokenId: "1"}, 60)
	s.Equal(domain.ErrAuctionNotStarted, err)

	start = now.Add(-2 * time.Hour)
	end = now.Add(-time.Hour)
	s.auctions.On("FindOne", mock.Anything, mock.Anything).Return(&settlement.Auction{
		Collection:   "0xc1",
		TokenId:      "1",
		Seller:       sellerAccount,
		ReservePrice: 50,
		StartTime:    &start,
		EndTime:      &end,
	}, nil).Once()
	err = s.im.PlaceBid(ctx, "0xb1", settlement.AuctionId{Collection: "0xc1", TokenId: "1"}, 60)
	s.Equal(domain.ErrAuctionEnded, err)
}

func (s *settlementUseCaseSuite) endedAuction(bid int64, bidder domain.Address) *settlement.Auction {
	now := time.Now().UTC()
	start := now.Add(-2 * time.Hour)
	end := now.Add(-time.Minute)
	auction := &settlement.Auction{
		Collection:    "0xc1",
		TokenId:       "1",
		Seller:        sellerAccount,
		ReservePrice:  50,
		StartTime:     &start,
		EndTime:       &end,
		HighestBid:    bid,
		HighestBidder: bidder,
	}
	s.auctions.On("FindOne", mock.Anything, mock.Anything).Return(auction, nil)
	return auction
}

func (s *settlementUseCaseSuite) TestSettleAuctionNotEnded() {
	ctx := bCtx.Background()
	s.openAuction(60, "0xb1")

	err := s.im.SettleAuction(ctx, sellerAccount, settlement.AuctionId{Collection: "0xc1", TokenId: "1"})
	s.Equal(domain.ErrAuctionNotEnded, err)
}

func (s *settlementUseCaseSuite) TestSettleAuctionTwice() {
	ctx := bCtx.Background()
	now := time.Now().UTC()
	start := now.Add(-2 * time.Hour)
	end := now.Add(-time.Minute)
	s.auctions.On("FindOne", mock.Anything, mock.Anything).Return(&settlement.Auction{
		Collection: "0xc1",
		TokenId:    "1",
		Seller:     sellerAccount,
		StartTime:  &start,
		EndTime:    &end,
		Settled:    true,
	}, nil)

	err := s.im.SettleAuction(ctx, sellerAccount, settlement.AuctionId{Collection: "0xc1", TokenId: "1"})
	s.Equal(domain.ErrAlreadySettled, err)
}

func (s *settlementUseCaseSuite) TestSettleAuctionWithoutBidReturnsAsset() {
	ctx := bCtx.Background()
	s.endedAuction(0, "")
	s.assets.On("Transfer", mock.Anything, engineAccount, sellerAccount, domain.Address("0xc1"), domain.TokenId("1")).Return(nil)
	s.auctions.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	err := s.im.SettleAuction(ctx, sellerAccount, settlement.AuctionId{Collection: "0xc1", TokenId: "1"})
	s.Require().NoError(err)
	s.assets.AssertExpectations(s.T())
	s.payments.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.distributor.AssertNotCalled(s.T(), "Distribute", mock.Anything, mock.Anything, mock.Anything)
}

func (s *settlementUseCaseSuite) TestSettleAuctionWithBid() {
	ctx := bCtx.Background()
	winner := domain.Address("0xb1")
	s.allowCollection(500)
	s.setProtocolFee(250)
	s.endedAuction(90, winner)

	// bid 90, fee 250 bps -> 2, royalty 500 bps -> 4, seller gets 84
	s.payments.On("Transfer", mock.Anything, engineAccount, sellerAccount, int64(84)).Return(nil)
	s.payments.On("Transfer", mock.Anything, engineAccount, distributionAccount, int64(6)).Return(nil)
	s.distributor.On("Distribute", mock.Anything, engineAccount, &distribution.DistributeParams{
		Collection:     "0xc1",
		TokenId:        "1",
		TotalAmount:    90,
		RoyaltyAmount:  4,
		PlatformAmount: 2,
	}).Return(&distribution.Record{}, nil)
	s.assets.On("Transfer", mock.Anything, engineAccount, winner, domain.Address("0xc1"), domain.TokenId("1")).Return(nil)
	s.auctions.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	err := s.im.SettleAuction(ctx, sellerAccount, settlement.AuctionId{Collection: "0xc1", TokenId: "1"})
	s.Require().NoError(err)
	s.payments.AssertExpectations(s.T())
	s.distributor.AssertExpectations(s.T())
	s.assets.AssertExpectations(s.T())
}

func (s *settlementUseCaseSuite) TestSettleAuctionOnDisallowedCollection() {
	ctx := bCtx.Background()
	winner := domain.Address("0xb1")
	// disallowing a collection mid-auction must not strand the escrowed
	// bid and the asset
	s.collections.On("FindOne", mock.Anything, domain.Address("0xc1")).Return(&settlement.CollectionConfig{
		Collection: "0xc1",
		Allowed:    false,
		RoyaltyBps: 500,
	}, nil)
	s.setProtocolFee(250)
	s.endedAuction(90, winner)

	s.payments.On("Transfer", mock.Anything, engineAccount, sellerAccount, int64(84)).Return(nil)
	s.payments.On("Transfer", mock.Anything, engineAccount, distributionAccount, int64(6)).Return(nil)
	s.distributor.On("Distribute", mock.Anything, engineAccount, mock.Anything).Return(&distribution.Record{}, nil)
	s.assets.On("Transfer", mock.Anything, engineAccount, winner, domain.Address("0xc1"), domain.TokenId("1")).Return(nil)
	s.auctions.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	err := s.im.SettleAuction(ctx, sellerAccount, settlement.AuctionId{Collection: "0xc1", TokenId: "1"})
	s.Require().NoError(err)
	s.payments.AssertExpectations(s.T())
	s.assets.AssertExpectations(s.T())
}

func (s *settlementUseCaseSuite) TestSweepSettleableAuctions() {
	ctx := bCtx.Background()
	now := time.Now().UTC()
	start := now.Add(-2 * time.Hour)
	end := now.Add(-time.Minute)

	auctions := []settlement.Auction{
		{Collection: "0xc1", TokenId: "1", Seller: sellerAccount, StartTime: &start, EndTime: &end},
		{Collection: "0xc1", TokenId: "2", Seller: sellerAccount, StartTime: &start, EndTime: &end},
	}
	s.auctions.On("FindAll", mock.Anything, mock.Anything, mock.Anything).Return(auctions, nil)
	s.auctions.On("FindOne", mock.Anything, settlement.AuctionId{Collection: "0xc1", TokenId: "1"}).Return(&auctions[0], nil)
	s.auctions.On("FindOne", mock.Anything, settlement.AuctionId{Collection: "0xc1", TokenId: "2"}).Return(&auctions[1], nil)
	s.assets.On("Transfer", mock.Anything, engineAccount, sellerAccount, domain.Address("0xc1"), mock.Anything).Return(nil)
	s.auctions.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	settled, err := s.im.SweepSettleableAuctions(ctx)
	s.Require().NoError(err)
	s.Equal(2, settled)
}

func (s *settlementUseCaseSuite) TestSweepWithNothingToSettle() {
	ctx := bCtx.Background()
	s.auctions.On("FindAll", mock.Anything, mock.Anything, mock.Anything).Return([]settlement.Auction{}, nil)

	settled, err := s.im.SweepSettleableAuctions(ctx)
	s.Require().NoError(err)
	s.Equal(0, settled)
}

func (s *settlementUseCaseSuite) TestSetProtocolFeeRequiresAdmin() {
	ctx := bCtx.Background()

	err := s.im.SetProtocolFee(ctx, sellerAccount, 250)
	s.Equal(domain.ErrNotAuthorizedCaller, err)
}

func (s *settlementUseCaseSuite) TestSetProtocolFeeBumpsVersion() {
	ctx := bCtx.Background()
	s.engineConfig.On("Get", mock.Anything).Return(&settlement.EngineConfig{
		ProtocolFeeBps: 100,
		Version:        3,
	}, nil)
	s.engineConfig.On("Set", mock.Anything, mock.MatchedBy(func(cfg *settlement.EngineConfig) bool {
		return cfg.ProtocolFeeBps == 250 && cfg.Version == 4
	})).Return(nil)

	err := s.im.SetProtocolFee(ctx, adminAccount, 250)
	s.Require().NoError(err)
	s.engineConfig.AssertExpectations(s.T())
}

func (s *settlementUseCaseSuite) TestSetProtocolFeeRejectsOutOfRange() {
	ctx := bCtx.Background()

	err := s.im.SetProtocolFee(ctx, adminAccount, 10001)
	s.Equal(domain.ErrBadParamInput, err)
}

func (s *settlementUseCaseSuite) TestSetDistributionAccountRequiresAdmin() {
	ctx := bCtx.Background()

	err := s.im.SetDistributionAccount(ctx, sellerAccount, "0xd2")
	s.Equal(domain.ErrNotAuthorizedCaller, err)
}

func (s *settlementUseCaseSuite) TestSetDistributionAccountKeepsFee() {
	ctx := bCtx.Background()
	s.engineConfig.On("Get", mock.Anything).Return(&settlement.EngineConfig{
		ProtocolFeeBps: 250,
		Version:        3,
	}, nil)
	s.engineConfig.On("Set", mock.Anything, mock.MatchedBy(func(cfg *settlement.EngineConfig) bool {
		return cfg.DistributionAccount == "0xd2" && cfg.ProtocolFeeBps == 250 && cfg.Version == 4
	})).Return(nil)

	err := s.im.SetDistributionAccount(ctx, adminAccount, "0xD2")
	s.Require().NoError(err)
	s.engineConfig.AssertExpectations(s.T())
}

func (s *settlementUseCaseSuite) TestSetDistributionAccountRejectsEmpty() {
	ctx := bCtx.Background()

	err := s.im.SetDistributionAccount(ctx, adminAccount, "")
	s.Equal(domain.ErrBadParamInput, err)
}

func (s *settlementUseCaseSuite) TestRegisterCollectionRequiresAdmin() {
	ctx := bCtx.Background()

	err := s.im.RegisterCollection(ctx, sellerAccount, &settlement.RegisterCollectionParams{
		Collection: "0xc1",
		Allowed:    true,
		RoyaltyBps: 500,
	})
	s.Equal(domain.ErrNotAuthorizedCaller, err)
}

func (s *settlementUseCaseSuite) TestRegisterCollection() {
	ctx := bCtx.Background()
	s.collections.On("Upsert", mock.Anything, mock.MatchedBy(func(cfg *settlement.CollectionConfig) bool {
		return cfg.Collection == "0xc1" && cfg.Allowed && cfg.RoyaltyBps == 500
	})).Return(nil)

	err := s.im.RegisterCollection(ctx, adminAccount, &settlement.RegisterCollectionParams{
		Collection: "0xC1",
		Allowed:    true,
		RoyaltyBps: 500,
	})
	s.Require().NoError(err)
	s.collections.AssertExpectations(s.T())
}

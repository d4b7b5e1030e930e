package usecase

import (
	"fmt"
	"time"

	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	bCtx "github.com/nftex/settlement/base/ctx"
	"github.com/nftex/settlement/base/keymu"
	"github.com/nftex/settlement/base/ptr"
	"github.com/nftex/settlement/domain"
	"github.com/nftex/settlement/domain/activity"
	"github.com/nftex/settlement/domain/distribution"
	"github.com/nftex/settlement/domain/settlement"
	"github.com/nftex/settlement/service/query"
)

var timeNow = time.Now

const sweepConcurrency = 4

type SettlementUseCaseCfg struct {
	Listings     settlement.ListingRepo
	Auctions     settlement.AuctionRepo
	Collections  settlement.CollectionConfigRepo
	EngineConfig settlement.EngineConfigRepo
	Assets       domain.AssetRegistry
	Payments     domain.PaymentRegistry
	Activities   activity.ActivityHistoryRepo
	Distributor  distribution.UseCase
	Query        query.Mongo

	// EngineAccount holds custody escrow and spends buyer allowances.
	EngineAccount domain.Address
	// DistributionAccount receives the royalty and platform portions before
	// the distributor pays them out.
	DistributionAccount domain.Address
	AdminAccount        domain.Address
}

type settlementUseCase struct {
	listings     settlement.ListingRepo
	auctions     settlement.AuctionRepo
	collections  settlement.CollectionConfigRepo
	engineConfig settlement.EngineConfigRepo
	assets       domain.AssetRegistry
	payments     domain.PaymentRegistry
	activities   activity.ActivityHistoryRepo
	distributor  distribution.UseCase
	query        query.Mongo

	engineAccount       domain.Address
	distributionAccount domain.Address
	adminAccount        domain.Address

	// assetMu serializes every mutating operation touching the same asset
	assetMu *keymu.Mutex
}

func NewSettlementUseCase(cfg *SettlementUseCaseCfg) settlement.UseCase {
	return &settlementUseCase{
		listings:            cfg.Listings,
		auctions:            cfg.Auctions,
		collections:         cfg.Collections,
		engineConfig:        cfg.EngineConfig,
		assets:              cfg.Assets,
		payments:            cfg.Payments,
		activities:          cfg.Activities,
		distributor:         cfg.Distributor,
		query:               cfg.Query,
		engineAccount:       cfg.EngineAccount.ToLower(),
		distributionAccount: cfg.DistributionAccount.ToLower(),
		adminAccount:        cfg.AdminAccount.ToLower(),
		assetMu:             keymu.New(),
	}
}

func assetKey(collection domain.Address, tokenId domain.TokenId) string {
	return fmt.Sprintf("%s:%s", collection.ToLowerStr(), tokenId)
}

// splitProceeds floors the platform and royalty cuts independently, the
// seller takes the remainder so the three parts always sum to total. The
// fee and royalty rates are each capped at 10000 bps but nothing caps
// their sum, so a negative seller share must be rejected.
func splitProceeds(total, feeBps, royaltyBps int64) (platform, royalty, seller int64, err error) {
	platform = total * feeBps / domain.BpsDenominator
	royalty = total * royaltyBps / domain.BpsDenominator
	seller = total - platform - royalty
	if seller < 0 {
		return 0, 0, 0, xerrors.Errorf("fee and royalty exceed total price")
	}
	return platform, royalty, seller, nil
}

// escrowAccount resolves the distribution escrow account from the config
// snapshot, falling back to the wired default.
func (im *settlementUseCase) escrowAccount(cfg *settlement.EngineConfig) domain.Address {
	if cfg.DistributionAccount != "" {
		return cfg.DistributionAccount
	}
	return im.distributionAccount
}

func (im *settlementUseCase) requireAllowedCollection(c bCtx.Ctx, collection domain.Address) (*settlement.CollectionConfig, error) {
	cfg, err := im.collections.FindOne(c, collection)
	if err == domain.ErrNotFound {
		return nil, domain.ErrCollectionNotAllowed
	} else if err != nil {
		c.WithField("err", err).Error("collections.FindOne failed")
		return nil, err
	}
	if !cfg.Allowed {
		return nil, domain.ErrCollectionNotAllowed
	}
	return cfg, nil
}

func (im *settlementUseCase) logActivity(c bCtx.Ctx, typ activity.ActivityHistoryType, collection domain.Address, tokenId domain.TokenId, account, to domain.Address, amount int64) error {
	return im.activities.Insert(c, &activity.ActivityHistory{
		Collection:   collection.ToLower(),
		TokenId:      tokenId,
		Type:         typ,
		Account:      account.ToLower(),
		To:           to.ToLower(),
		Amount:       amount,
		DisplayPrice: activity.DisplayAmount(amount),
		Time:         timeNow().UTC(),
	})
}

func (im *settlementUseCase) List(c bCtx.Ctx, caller domain.Address, params *settlement.ListParams) (*settlement.Listing, error) {
	caller = caller.ToLower()
	collection := params.Collection.ToLower()

	if params.Price <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	if _, err := im.requireAllowedCollection(c, collection); err != nil {
		return nil, err
	}

	key := assetKey(collection, params.TokenId)
	im.assetMu.Lock(key)
	defer im.assetMu.Unlock(key)

	holder, err := im.assets.HolderOf(c, collection, params.TokenId)
	if err != nil {
		c.WithField("err", err).Error("assets.HolderOf failed")
		return nil, err
	}
	if !holder.Equals(caller) {
		return nil, domain.ErrNotSeller
	}

	now := timeNow().UTC()
	listing := &settlement.Listing{
		Collection: collection,
		TokenId:    params.TokenId,
		Seller:     caller,
		Price:      params.Price,
		Active:     true,
		CreatedAt:  &now,
		UpdatedAt:  &now,
	}

	err = im.query.RunWithTransaction(c, func(c bCtx.Ctx) error {
		if err := im.assets.Transfer(c, caller, im.engineAccount, collection, params.TokenId); err != nil {
			c.WithField("err", err).Error("assets.Transfer failed")
			return err
		}
		if err := im.listings.Create(c, listing); err != nil {
			c.WithField("err", err).Error("listings.Create failed")
			return err
		}
		return im.logActivity(c, activity.ActivityHistoryTypeList, collection, params.TokenId, caller, "", params.Price)
	})
	if err != nil {
		return nil, err
	}
	return listing, nil
}

func (im *settlementUseCase) UpdatePrice(c bCtx.Ctx, caller domain.Address, id settlement.ListingId, newPrice int64) (*settlement.Listing, error) {
	caller = caller.ToLower()
	id.Collection = id.Collection.ToLower()

	if newPrice <= 0 {
		return nil, domain.ErrInvalidPrice
	}

	key := assetKey(id.Collection, id.TokenId)
	im.assetMu.Lock(key)
	defer im.assetMu.Unlock(key)

	listing, err := im.listings.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if !listing.Seller.Equals(caller) {
		return nil, domain.ErrNotSeller
	}
	if !listing.Active {
		return nil, domain.ErrListingNotActive
	}

	now := timeNow().UTC()
	err = im.query.RunWithTransaction(c, func(c bCtx.Ctx) error {
		if err := im.listings.Update(c, id, settlement.ListingPatchable{
			Price:     &newPrice,
			UpdatedAt: &now,
		}); err != nil {
			c.WithField("err", err).Error("listings.Update failed")
			return err
		}
		return im.logActivity(c, activity.ActivityHistoryTypeUpdateListing, id.Collection, id.TokenId, caller, "", newPrice)
	})
	if err != nil {
		return nil, err
	}

	listing.Price = newPrice
	listing.UpdatedAt = &now
	return listing, nil
}

func (im *settlementUseCase) CancelListing(c bCtx.Ctx, caller domain.Address, id settlement.ListingId) error {
	caller = caller.ToLower()
	id.Collection = id.Collection.ToLower()

	key := assetKey(id.Collection, id.TokenId)
	im.assetMu.Lock(key)
	defer im.assetMu.Unlock(key)

	listing, err := im.listings.FindOne(c, id)
	if err != nil {
		return err
	}
	if !listing.Seller.Equals(caller) {
		return domain.ErrNotSeller
	}
	if !listing.Active {
		return domain.ErrListingNotActive
	}

	now := timeNow().UTC()
	return im.query.RunWithTransaction(c, func(c bCtx.Ctx) error {
		if err := im.assets.Transfer(c, im.engineAccount, listing.Seller, id.Collection, id.TokenId); err != nil {
			c.WithField("err", err).Error("assets.Transfer failed")
			return err
		}
		if err := im.listings.Update(c, id, settlement.ListingPatchable{
			Active:    ptr.Bool(false),
			UpdatedAt: &now,
		}); err != nil {
			c.WithField("err", err).Error("listings.Update failed")
			return err
		}
		return im.logActivity(c, activity.ActivityHistoryTypeCancelListing, id.Collection, id.TokenId, caller, "", listing.Price)
	})
}

func (im *settlementUseCase) Buy(c bCtx.Ctx, caller domain.Address, id settlement.ListingId) error {
	caller = caller.ToLower()
	id.Collection = id.Collection.ToLower()

	key := assetKey(id.Collection, id.TokenId)
	im.assetMu.Lock(key)
	defer im.assetMu.Unlock(key)

	listing, err := im.listings.FindOne(c, id)
	if err != nil {
		return err
	}
	if !listing.Active {
		return domain.ErrListingNotActive
	}

	collectionCfg, err := im.requireAllowedCollection(c, id.Collection)
	if err != nil {
		return err
	}
	// one fee snapshot per operation, a concurrent update never changes the
	// fee mid-call
	engineCfg, err := im.engineConfig.Get(c)
	if err != nil {
		c.WithField("err", err).Error("engineConfig.Get failed")
		return err
	}

	platform, royalty, seller, err := splitProceeds(listing.Price, engineCfg.ProtocolFeeBps, collectionCfg.RoyaltyBps)
	if err != nil {
		c.WithField("err", err).Error("splitProceeds failed")
		return err
	}
	now := timeNow().UTC()

	return im.query.RunWithTransaction(c, func(c bCtx.Ctx) error {
		if err := im.payments.TransferFrom(c, im.engineAccount, caller, im.engineAccount, listing.Price); err != nil {
			c.WithField("err", err).Error("payments.TransferFrom failed")
			return err
		}
		if err := im.payments.Transfer(c, im.engineAccount, listing.Seller, seller); err != nil {
			c.WithField("err", err).Error("payments.Transfer failed")
			return err
		}
		if err := im.payments.Transfer(c, im.engineAccount, im.escrowAccount(engineCfg), platform+royalty); err != nil {
			c.WithField("err", err).Error("payments.Transfer failed")
			return err
		}
		if _, err := im.distributor.Distribute(c, im.engineAccount, &distribution.DistributeParams{
			Collection:     id.Collection,
			TokenId:        id.TokenId,
			TotalAmount:    listing.Price,
			RoyaltyAmount:  royalty,
			PlatformAmount: platform,
		}); err != nil {
			c.WithField("err", err).Error("distributor.Distribute failed")
			return err
		}
		if err := im.assets.Transfer(c, im.engineAccount, caller, id.Collection, id.TokenId); err != nil {
			c.WithField("err", err).Error("assets.Transfer failed")
			return err
		}
		if err := im.listings.Update(c, id, settlement.ListingPatchable{
			Active:    ptr.Bool(false),
			UpdatedAt: &now,
		}); err != nil {
			c.WithField("err", err).Error("listings.Update failed")
			return err
		}
		if err := im.logActivity(c, activity.ActivityHistoryTypeBuy, id.Collection, id.TokenId, caller, listing.Seller, listing.Price); err != nil {
			return err
		}
		return im.logActivity(c, activity.ActivityHistoryTypeSold, id.Collection, id.TokenId, listing.Seller, caller, listing.Price)
	})
}

func (im *settlementUseCase) CreateAuction(c bCtx.Ctx, caller domain.Address, params *settlement.CreateAuctionParams) (*settlement.Auction, error) {
	caller = caller.ToLower()
	collection := params.Collection.ToLower()

	if params.ReservePrice <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	// start must be strictly in the future, so the auction is never
	// biddable at creation time
	now := timeNow().UTC()
	if !params.StartTime.Before(params.EndTime) || !params.StartTime.After(now) {
		return nil, domain.ErrInvalidTimeRange
	}
	if _, err := im.requireAllowedCollection(c, collection); err != nil {
		return nil, err
	}

	key := assetKey(collection, params.TokenId)
	im.assetMu.Lock(key)
	defer im.assetMu.Unlock(key)

	holder, err := im.assets.HolderOf(c, collection, params.TokenId)
	if err != nil {
		c.WithField("err", err).Error("assets.HolderOf failed")
		return nil, err
	}
	if !holder.Equals(caller) {
		return nil, domain.ErrNotSeller
	}

	start := params.StartTime.UTC()
	end := params.EndTime.UTC()
	auction := &settlement.Auction{
		Collection:   collection,
		TokenId:      params.TokenId,
		Seller:       caller,
		ReservePrice: params.ReservePrice,
		StartTime:    &start,
		EndTime:      &end,
		CreatedAt:    &now,
	}

	err = im.query.RunWithTransaction(c, func(c bCtx.Ctx) error {
		if err := im.assets.Transfer(c, caller, im.engineAccount, collection, params.TokenId); err != nil {
			c.WithField("err", err).Error("assets.Transfer failed")
			return err
		}
		if err := im.auctions.Create(c, auction); err != nil {
			c.WithField("err", err).Error("auctions.Create failed")
			return err
		}
		return im.logActivity(c, activity.ActivityHistoryTypeCreateAuction, collection, params.TokenId, caller, "", params.ReservePrice)
	})
	if err != nil {
		return nil, err
	}
	return auction, nil
}

func (im *settlementUseCase) PlaceBid(c bCtx.Ctx, caller domain.Address, id settlement.AuctionId, amount int64) error {
	caller = caller.ToLower()
	id.Collection = id.Collection.ToLower()

	key := assetKey(id.Collection, id.TokenId)
	im.assetMu.Lock(key)
	defer im.assetMu.Unlock(key)

	auction, err := im.auctions.FindOne(c, id)
	if err != nil {
		return err
	}
	if auction.Settled {
		return domain.ErrAlreadySettled
	}

	now := timeNow().UTC()
	if now.Before(*auction.StartTime) {
		return domain.ErrAuctionNotStarted
	}
	if !now.Before(*auction.EndTime) {
		return domain.ErrAuctionEnded
	}
	if amount <= auction.ReservePrice || amount <= auction.HighestBid {
		return domain.ErrBidTooLow
	}

	return im.query.RunWithTransaction(c, func(c bCtx.Ctx) error {
		// refund the outbid escrow before taking the new one, so the engine
		// never holds two bids for one auction
		if auction.HasBid() {
			if err := im.payments.Transfer(c, im.engineAccount, auction.HighestBidder, auction.HighestBid); err != nil {
				c.WithField("err", err).Error("payments.Transfer failed")
				return err
			}
			if err := im.logActivity(c, activity.ActivityHistoryTypeBidRefunded, id.Collection, id.TokenId, auction.HighestBidder, "", auction.HighestBid); err != nil {
				return err
			}
		}
		if err := im.payments.TransferFrom(c, im.engineAccount, caller, im.engineAccount, amount); err != nil {
			c.WithField("err", err).Error("payments.TransferFrom failed")
			return err
		}
		if err := im.auctions.Update(c, id, settlement.AuctionPatchable{
			HighestBid:    &amount,
			HighestBidder: &caller,
		}); err != nil {
			c.WithField("err", err).Error("auctions.Update failed")
			return err
		}
		return im.logActivity(c, activity.ActivityHistoryTypePlaceBid, id.Collection, id.TokenId, caller, "", amount)
	})
}

func (im *settlementUseCase) SettleAuction(c bCtx.Ctx, caller domain.Address, id settlement.AuctionId) error {
	id.Collection = id.Collection.ToLower()
	return im.settle(c, id)
}

func (im *settlementUseCase) settle(c bCtx.Ctx, id settlement.AuctionId) error {
	key := assetKey(id.Collection, id.TokenId)
	im.assetMu.Lock(key)
	defer im.assetMu.Unlock(key)

	auction, err := im.auctions.FindOne(c, id)
	if err != nil {
		return err
	}
	if auction.Settled {
		return domain.ErrAlreadySettled
	}
	if timeNow().UTC().Before(*auction.EndTime) {
		return domain.ErrAuctionNotEnded
	}

	if !auction.HasBid() {
		return im.query.RunWithTransaction(c, func(c bCtx.Ctx) error {
			if err := im.assets.Transfer(c, im.engineAccount, auction.Seller, id.Collection, id.TokenId); err != nil {
				c.WithField("err", err).Error("assets.Transfer failed")
				return err
			}
			if err := im.auctions.Update(c, id, settlement.AuctionPatchable{
				Settled: ptr.Bool(true),
			}); err != nil {
				c.WithField("err", err).Error("auctions.Update failed")
				return err
			}
			return im.logActivity(c, activity.ActivityHistoryTypeResultAuction, id.Collection, id.TokenId, auction.Seller, "", 0)
		})
	}

	// settlement stays available even if the collection was disallowed
	// after the auction opened, otherwise the escrowed bid and the asset
	// would be stuck. The allowed gate only guards new offers.
	royaltyBps := int64(0)
	if cfg, err := im.collections.FindOne(c, id.Collection); err == nil {
		royaltyBps = cfg.RoyaltyBps
	} else if err != domain.ErrNotFound {
		c.WithField("err", err).Error("collections.FindOne failed")
		return err
	}
	engineCfg, err := im.engineConfig.Get(c)
	if err != nil {
		c.WithField("err", err).Error("engineConfig.Get failed")
		return err
	}

	platform, royalty, seller, err := splitProceeds(auction.HighestBid, engineCfg.ProtocolFeeBps, royaltyBps)
	if err != nil {
		c.WithField("err", err).Error("splitProceeds failed")
		return err
	}

	return im.query.RunWithTransaction(c, func(c bCtx.Ctx) error {
		if err := im.payments.Transfer(c, im.engineAccount, auction.Seller, seller); err != nil {
			c.WithField("err", err).Error("payments.Transfer failed")
			return err
		}
		if err := im.payments.Transfer(c, im.engineAccount, im.escrowAccount(engineCfg), platform+royalty); err != nil {
			c.WithField("err", err).Error("payments.Transfer failed")
			return err
		}
		if _, err := im.distributor.Distribute(c, im.engineAccount, &distribution.DistributeParams{
			Collection:     id.Collection,
			TokenId:        id.TokenId,
			TotalAmount:    auction.HighestBid,
			RoyaltyAmount:  royalty,
			PlatformAmount: platform,
		}); err != nil {
			c.WithField("err", err).Error("distributor.Distribute failed")
			return err
		}
		if err := im.assets.Transfer(c, im.engineAccount, auction.HighestBidder, id.Collection, id.TokenId); err != nil {
			c.WithField("err", err).Error("assets.Transfer failed")
			return err
		}
		if err := im.auctions.Update(c, id, settlement.AuctionPatchable{
			Settled: ptr.Bool(true),
		}); err != nil {
			c.WithField("err", err).Error("auctions.Update failed")
			return err
		}
		if err := im.logActivity(c, activity.ActivityHistoryTypeResultAuction, id.Collection, id.TokenId, auction.Seller, auction.HighestBidder, auction.HighestBid); err != nil {
			return err
		}
		return im.logActivity(c, activity.ActivityHistoryTypeWonAuction, id.Collection, id.TokenId, auction.HighestBidder, auction.Seller, auction.HighestBid)
	})
}

func (im *settlementUseCase) SweepSettleableAuctions(c bCtx.Ctx) (int, error) {
	now := timeNow().UTC()
	auctions, err := im.auctions.FindAll(c, settlement.AuctionWithSettled(false), settlement.AuctionWithEndTimeLTE(now))
	if err != nil {
		c.WithField("err", err).Error("auctions.FindAll failed")
		return 0, err
	}
	if len(auctions) == 0 {
		return 0, nil
	}

	b := goroutines.NewBatch(sweepConcurrency, goroutines.WithBatchSize(len(auctions)))
	defer b.Close()
	for i := 0; i < len(auctions); i++ {
		idx := i
		b.Queue(func() (interface{}, error) {
			return nil, im.settle(c, *auctions[idx].ToId())
		})
	}
	b.QueueComplete()

	settled := 0
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Warn("settle failed")
			continue
		}
		settled++
	}
	return settled, nil
}

func (im *settlementUseCase) GetListing(c bCtx.Ctx, id settlement.ListingId) (*settlement.Listing, error) {
	id.Collection = id.Collection.ToLower()
	return im.listings.FindOne(c, id)
}

func (im *settlementUseCase) GetAuction(c bCtx.Ctx, id settlement.AuctionId) (*settlement.Auction, error) {
	id.Collection = id.Collection.ToLower()
	return im.auctions.FindOne(c, id)
}

func (im *settlementUseCase) SetProtocolFee(c bCtx.Ctx, caller domain.Address, bps int64) error {
	if !caller.Equals(im.adminAccount) {
		return domain.ErrNotAuthorizedCaller
	}
	if bps < 0 || bps > domain.BpsDenominator {
		return domain.ErrBadParamInput
	}

	cfg, err := im.engineConfig.Get(c)
	if err != nil {
		c.WithField("err", err).Error("engineConfig.Get failed")
		return err
	}

	now := timeNow().UTC()
	if err := im.engineConfig.Set(c, &settlement.EngineConfig{
		ProtocolFeeBps:      bps,
		DistributionAccount: cfg.DistributionAccount,
		Version:             cfg.Version + 1,
		UpdatedAt:           &now,
	}); err != nil {
		c.WithField("err", err).Error("engineConfig.Set failed")
		return err
	}
	return nil
}

func (im *settlementUseCase) SetDistributionAccount(c bCtx.Ctx, caller domain.Address, account domain.Address) error {
	if !caller.Equals(im.adminAccount) {
		return domain.ErrNotAuthorizedCaller
	}
	if account == "" {
		return domain.ErrBadParamInput
	}

	cfg, err := im.engineConfig.Get(c)
	if err != nil {
		c.WithField("err", err).Error("engineConfig.Get failed")
		return err
	}

	now := timeNow().UTC()
	if err := im.engineConfig.Set(c, &settlement.EngineConfig{
		ProtocolFeeBps:      cfg.ProtocolFeeBps,
		DistributionAccount: account.ToLower(),
		Version:             cfg.Version + 1,
		UpdatedAt:           &now,
	}); err != nil {
		c.WithField("err", err).Error("engineConfig.Set failed")
		return err
	}
	return nil
}

func (im *settlementUseCase) RegisterCollection(c bCtx.Ctx, caller domain.Address, params *settlement.RegisterCollectionParams) error {
	if !caller.Equals(im.adminAccount) {
		return domain.ErrNotAuthorizedCaller
	}
	if params.RoyaltyBps < 0 || params.RoyaltyBps > domain.BpsDenominator {
		return domain.ErrBadParamInput
	}

	now := timeNow().UTC()
	if err := im.collections.Upsert(c, &settlement.CollectionConfig{
		Collection: params.Collection.ToLower(),
		Allowed:    params.Allowed,
		RoyaltyBps: params.RoyaltyBps,
		UpdatedAt:  &now,
	}); err != nil {
		c.WithField("err", err).Error("collections.Upsert failed")
		return err
	}
	return nil
}

package usecase

import (
	"time"

	"github.com/google/uuid"

	bCtx "github.com/nftex/settlement/base/ctx"
	"github.com/nftex/settlement/base/log"
	"github.com/nftex/settlement/domain"
	"github.com/nftex/settlement/domain/activity"
	"github.com/nftex/settlement/domain/distribution"
	"github.com/nftex/settlement/domain/settlement"
)

var timeNow = time.Now

type DistributionUseCaseCfg struct {
	Splits       distribution.SplitTableRepo
	Records      distribution.RecordRepo
	Payments     domain.PaymentRegistry
	Assets       domain.AssetRegistry
	Ownership    distribution.OwnershipProvider
	Activities   activity.ActivityHistoryRepo
	EngineConfig settlement.EngineConfigRepo

	// EngineAccount is the only caller allowed to distribute proceeds.
	EngineAccount domain.Address
	// DistributionAccount holds each sale's royalty and platform portions
	// until they are paid out. Rounding dust stays on it.
	DistributionAccount domain.Address
	// PlatformAccount is the fallback recipient when a portion has no
	// configured split entries.
	PlatformAccount domain.Address
	AdminAccount    domain.Address
}

type distributionUseCase struct {
	splits       distribution.SplitTableRepo
	records      distribution.RecordRepo
	payments     domain.PaymentRegistry
	assets       domain.AssetRegistry
	ownership    distribution.OwnershipProvider
	activities   activity.ActivityHistoryRepo
	engineConfig settlement.EngineConfigRepo

	engineAccount       domain.Address
	distributionAccount domain.Address
	platformAccount     domain.Address
	adminAccount        domain.Address
}

func NewDistributionUseCase(cfg *DistributionUseCaseCfg) distribution.UseCase {
	return &distributionUseCase{
		splits:              cfg.Splits,
		records:             cfg.Records,
		payments:            cfg.Payments,
		assets:              cfg.Assets,
		ownership:           cfg.Ownership,
		activities:          cfg.Activities,
		engineConfig:        cfg.EngineConfig,
		engineAccount:       cfg.EngineAccount.ToLower(),
		distributionAccount: cfg.DistributionAccount.ToLower(),
		platformAccount:     cfg.PlatformAccount.ToLower(),
		adminAccount:        cfg.AdminAccount.ToLower(),
	}
}

func (im *distributionUseCase) SetGlobalSplits(c bCtx.Ctx, caller domain.Address, entries []distribution.SplitEntry) error {
	if !caller.Equals(im.adminAccount) {
		return domain.ErrNotAuthorizedCaller
	}
	return im.replaceTable(c, distribution.GlobalTableKey, entries)
}

func (im *distributionUseCase) SetCollectionSplits(c bCtx.Ctx, caller, collection domain.Address, entries []distribution.SplitEntry) error {
	caller = caller.ToLower()
	collection = collection.ToLower()

	if !caller.Equals(im.adminAccount) {
		// a provider failure means we cannot prove ownership, treat it the
		// same as not owning the collection
		isOwner, err := im.ownership.IsCollectionOwner(c, collection, caller)
		if err != nil || !isOwner {
			return domain.ErrNotAuthorizedCaller
		}
	}
	return im.replaceTable(c, collection, entries)
}

func (im *distributionUseCase) replaceTable(c bCtx.Ctx, collection domain.Address, entries []distribution.SplitEntry) error {
	if err := distribution.ValidateEntries(entries); err != nil {
		return err
	}

	version := int64(0)
	if prev, err := im.splits.FindOne(c, collection); err == nil {
		version = prev.Version
	} else if err != domain.ErrNotFound {
		c.WithField("err", err).Error("splits.FindOne failed")
		return err
	}

	now := timeNow().UTC()
	table := &distribution.SplitTable{
		Collection: collection,
		Entries:    entries,
		Version:    version + 1,
		UpdatedAt:  &now,
	}
	if err := im.splits.Replace(c, table); err != nil {
		c.WithField("err", err).Error("splits.Replace failed")
		return err
	}

	if err := im.activities.Insert(c, &activity.ActivityHistory{
		Collection: collection,
		Type:       activity.ActivityHistoryTypeSplitsUpdated,
		Account:    im.adminAccount,
		Time:       now,
	}); err != nil {
		c.WithField("err", err).Error("activities.Insert failed")
		return err
	}
	return nil
}

func (im *distributionUseCase) Distribute(c bCtx.Ctx, caller domain.Address, params *distribution.DistributeParams) (*distribution.Record, error) {
	if !caller.Equals(im.engineAccount) {
		return nil, domain.ErrNotAuthorizedCaller
	}
	if params.TotalAmount <= 0 || params.RoyaltyAmount < 0 || params.PlatformAmount < 0 ||
		params.RoyaltyAmount+params.PlatformAmount > params.TotalAmount {
		return nil, domain.ErrBadParamInput
	}

	collection := params.Collection.ToLower()

	// pay out from the same escrow account the settlement engine forwarded
	// the portions to
	escrow, err := im.escrowAccount(c)
	if err != nil {
		return nil, err
	}

	royaltyPayouts, royaltyRemainder, err := im.payPortion(c, distribution.PayoutSourceRoyalty, collection, escrow, params.RoyaltyAmount)
	if err != nil {
		return nil, err
	}
	platformPayouts, platformRemainder, err := im.payPortion(c, distribution.PayoutSourcePlatform, collection, escrow, params.PlatformAmount)
	if err != nil {
		return nil, err
	}

	now := timeNow().UTC()
	record := &distribution.Record{
		Id:             uuid.New().String(),
		Collection:     collection,
		TokenId:        params.TokenId,
		TotalAmount:    params.TotalAmount,
		RoyaltyAmount:  params.RoyaltyAmount,
		PlatformAmount: params.PlatformAmount,
		Payouts:        append(royaltyPayouts, platformPayouts...),
		Remainder:      royaltyRemainder + platformRemainder,
		Time:           &now,
	}
	if err := im.records.Insert(c, record); err != nil {
		c.WithField("err", err).Error("records.Insert failed")
		return nil, err
	}

	if err := im.activities.Insert(c, &activity.ActivityHistory{
		Collection:   collection,
		TokenId:      params.TokenId,
		Type:         activity.ActivityHistoryTypeDistribution,
		Account:      escrow,
		Amount:       params.RoyaltyAmount + params.PlatformAmount,
		DisplayPrice: activity.DisplayAmount(params.RoyaltyAmount + params.PlatformAmount),
		Time:         now,
	}); err != nil {
		c.WithField("err", err).Error("activities.Insert failed")
		return nil, err
	}
	return record, nil
}

// escrowAccount resolves the account the payouts are drawn from, the same
// one the settlement engine forwards the portions to.
func (im *distributionUseCase) escrowAccount(c bCtx.Ctx) (domain.Address, error) {
	cfg, err := im.engineConfig.Get(c)
	if err != nil {
		c.WithField("err", err).Error("engineConfig.Get failed")
		return "", err
	}
	if cfg.DistributionAccount != "" {
		return cfg.DistributionAccount, nil
	}
	return im.distributionAccount, nil
}

// payPortion subdivides one portion per its split table with floor
// division. Whatever the floors leave behind stays on the escrow account as
// the record's remainder.
func (im *distributionUseCase) payPortion(c bCtx.Ctx, source distribution.PayoutSource, collection, escrow domain.Address, portion int64) ([]distribution.Payout, int64, error) {
	if portion == 0 {
		return nil, 0, nil
	}

	table, err := im.lookupTable(c, source, collection)
	if err != nil {
		return nil, 0, err
	}

	if table == nil || table.IsEmpty() {
		recipient := im.fallbackRecipient(c, source, collection)
		if err := im.payments.Transfer(c, escrow, recipient, portion); err != nil {
			c.WithField("err", err).Error("payments.Transfer failed")
			return nil, 0, err
		}
		return []distribution.Payout{{Recipient: recipient, Amount: portion, Source: source}}, 0, nil
	}

	payouts := []distribution.Payout{}
	paid := int64(0)
	for _, entry := range table.Entries {
		amount := portion * entry.ShareBps / domain.BpsDenominator
		if amount == 0 {
			continue
		}
		if err := im.payments.Transfer(c, escrow, entry.Recipient.ToLower(), amount); err != nil {
			c.WithFields(log.Fields{
				"err":       err,
				"recipient": entry.Recipient,
			}).Error("payments.Transfer failed")
			return nil, 0, err
		}
		payouts = append(payouts, distribution.Payout{
			Recipient: entry.Recipient.ToLower(),
			Amount:    amount,
			Source:    source,
		})
		paid += amount
	}
	return payouts, portion - paid, nil
}

func (im *distributionUseCase) lookupTable(c bCtx.Ctx, source distribution.PayoutSource, collection domain.Address) (*distribution.SplitTable, error) {
	key := collection
	if source == distribution.PayoutSourcePlatform {
		key = distribution.GlobalTableKey
	}

	table, err := im.splits.FindOne(c, key)
	if err == domain.ErrNotFound {
		return nil, nil
	} else if err != nil {
		c.WithField("err", err).Error("splits.FindOne failed")
		return nil, err
	}
	return table, nil
}

func (im *distributionUseCase) fallbackRecipient(c bCtx.Ctx, source distribution.PayoutSource, collection domain.Address) domain.Address {
	if source == distribution.PayoutSourceRoyalty {
		owner, err := im.assets.CollectionOwner(c, collection)
		if err == nil {
			return owner
		}
		if err != domain.ErrNotFound {
			c.WithField("err", err).Warn("assets.CollectionOwner failed")
		}
	}
	return im.platformAccount
}

func (im *distributionUseCase) GetGlobalSplits(c bCtx.Ctx) (*distribution.SplitTable, error) {
	return im.splits.FindOne(c, distribution.GlobalTableKey)
}

func (im *distributionUseCase) GetCollectionSplits(c bCtx.Ctx, collection domain.Address) (*distribution.SplitTable, error) {
	return im.splits.FindOne(c, collection.ToLower())
}

func (im *distributionUseCase) GetRecords(c bCtx.Ctx, opts ...distribution.FindRecordOptions) ([]distribution.Record, error) {
	return im.records.FindAll(c, opts...)
}

package settlement

import (
	"time"

	"github.com/nftex/settlement/base/ctx"
	"github.com/nftex/settlement/domain"
)

type ListParams struct {
	Collection domain.Address `json:"collection" validate:"required"`
	TokenId    domain.TokenId `json:"tokenId" validate:"required"`
	Price      int64          `json:"price"`
}

type CreateAuctionParams struct {
	Collection   domain.Address `json:"collection" validate:"required"`
	TokenId      domain.TokenId `json:"tokenId" validate:"required"`
	ReservePrice int64          `json:"reservePrice"`
	StartTime    time.Time      `json:"startTime" validate:"required"`
	EndTime      time.Time      `json:"endTime" validate:"required"`
}

type RegisterCollectionParams struct {
	Collection domain.Address `json:"collection" validate:"required"`
	Allowed    bool           `json:"allowed"`
	RoyaltyBps int64          `json:"royaltyBps"`
}

// UseCase is the settlement engine. All mutating operations are serialized
// per (collection, tokenId) and run their state transition plus the ledger
// moves as one all-or-nothing unit.
type UseCase interface {
	List(c ctx.Ctx, caller domain.Address, params *ListParams) (*Listing, error)
	UpdatePrice(c ctx.Ctx, caller domain.Address, id ListingId, newPrice int64) (*Listing, error)
	CancelListing(c ctx.Ctx, caller domain.Address, id ListingId) error
	Buy(c ctx.Ctx, caller domain.Address, id ListingId) error

	CreateAuction(c ctx.Ctx, caller domain.Address, params *CreateAuctionParams) (*Auction, error)
	PlaceBid(c ctx.Ctx, caller domain.Address, id AuctionId, amount int64) error
	SettleAuction(c ctx.Ctx, caller domain.Address, id AuctionId) error
	// SweepSettleableAuctions settles every unsettled auction whose end time
	// has passed. Returns the number of auctions settled.
	SweepSettleableAuctions(c ctx.Ctx) (int, error)

	GetListing(c ctx.Ctx, id ListingId) (*Listing, error)
	GetAuction(c ctx.Ctx, id AuctionId) (*Auction, error)

	SetProtocolFee(c ctx.Ctx, caller domain.Address, bps int64) error
	SetDistributionAccount(c ctx.Ctx, caller domain.Address, account domain.Address) error
	RegisterCollection(c ctx.Ctx, caller domain.Address, params *RegisterCollectionParams) error
}

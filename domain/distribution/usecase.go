package distribution

import (
	"github.com/nftex/settlement/base/ctx"
	"github.com/nftex/settlement/domain"
)

// DistributeParams carries the proceeds of one completed sale. The engine
// computes TotalAmount's royalty and platform cuts with its own flooring;
// the distributor subdivides each cut per recipient with its own flooring.
// The two are independent rounding domains.
type DistributeParams struct {
	Collection     domain.Address `json:"collection" validate:"required"`
	TokenId        domain.TokenId `json:"tokenId" validate:"required"`
	TotalAmount    int64          `json:"totalAmount"`
	RoyaltyAmount  int64          `json:"royaltyAmount"`
	PlatformAmount int64          `json:"platformAmount"`
}

// OwnershipProvider answers whether an account controls a collection. A
// provider failure is treated as "not authorized", never propagated.
type OwnershipProvider interface {
	IsCollectionOwner(c ctx.Ctx, collection, account domain.Address) (bool, error)
}

// UseCase is the distribution engine. It owns both split tables and all
// distribution records, and only ever disposes of the royalty and platform
// portions, never the seller's share.
type UseCase interface {
	SetGlobalSplits(c ctx.Ctx, caller domain.Address, entries []SplitEntry) error
	SetCollectionSplits(c ctx.Ctx, caller, collection domain.Address, entries []SplitEntry) error
	// Distribute apportions one sale's proceeds. Callable only by the
	// registered settlement engine account, exactly once per completed sale.
	Distribute(c ctx.Ctx, caller domain.Address, params *DistributeParams) (*Record, error)

	GetGlobalSplits(c ctx.Ctx) (*SplitTable, error)
	GetCollectionSplits(c ctx.Ctx, collection domain.Address) (*SplitTable, error)
	GetRecords(c ctx.Ctx, opts ...FindRecordOptions) ([]Record, error)
}

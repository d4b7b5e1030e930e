package settlement

import (
	"time"

	"github.com/nftex/settlement/base/ctx"
	"github.com/nftex/settlement/domain"
)

// CollectionConfig is the per-collection registration of the settlement
// engine. RoyaltyBps is the aggregate creator royalty rate used by the
// settlement math.
type CollectionConfig struct {
	Collection domain.Address `json:"collection" bson:"collection"`
	Allowed    bool           `json:"allowed" bson:"allowed"`
	RoyaltyBps int64          `json:"royaltyBps" bson:"royaltyBps"`
	UpdatedAt  *time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// EngineConfig is the versioned global configuration of the settlement
// engine. Every operation reads one snapshot, so a concurrent update never
// changes the fee mid-call.
type EngineConfig struct {
	ProtocolFeeBps int64 `json:"protocolFeeBps" bson:"protocolFeeBps"`
	// DistributionAccount overrides the wired distribution escrow account
	// when set. Empty means the deployment default.
	DistributionAccount domain.Address `json:"distributionAccount" bson:"distributionAccount"`
	Version             int64          `json:"version" bson:"version"`
	UpdatedAt           *time.Time     `json:"updatedAt" bson:"updatedAt"`
}

type CollectionConfigRepo interface {
	FindOne(c ctx.Ctx, collection domain.Address) (*CollectionConfig, error)
	Upsert(c ctx.Ctx, cfg *CollectionConfig) error
}

type EngineConfigRepo interface {
	// Get returns the current snapshot, or a zero-fee config when none has
	// been stored yet.
	Get(c ctx.Ctx) (*EngineConfig, error)
	Set(c ctx.Ctx, cfg *EngineConfig) error
}

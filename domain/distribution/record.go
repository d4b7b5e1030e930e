package distribution

import (
	"time"

	"github.com/nftex/settlement/base/ctx"
	"github.com/nftex/settlement/domain"
)

type PayoutSource string

const (
	PayoutSourceRoyalty  PayoutSource = "royalty"
	PayoutSourcePlatform PayoutSource = "platform"
)

// Payout is one recipient's share of a distribution.
type Payout struct {
	Recipient domain.Address `json:"recipient" bson:"recipient"`
	Amount    int64          `json:"amount" bson:"amount"`
	Source    PayoutSource   `json:"source" bson:"source"`
}

// Record is the immutable audit entry of one completed distribution. It is
// written exactly once per completed sale or settled auction and never
// mutated or deleted.
type Record struct {
	Id             string         `json:"id" bson:"id"`
	Collection     domain.Address `json:"collection" bson:"collection"`
	TokenId        domain.TokenId `json:"tokenId" bson:"tokenId"`
	TotalAmount    int64          `json:"totalAmount" bson:"totalAmount"`
	RoyaltyAmount  int64          `json:"royaltyAmount" bson:"royaltyAmount"`
	PlatformAmount int64          `json:"platformAmount" bson:"platformAmount"`
	Payouts        []Payout       `json:"payouts" bson:"payouts"`
	// Remainder is the rounding dust left on the distribution account after
	// per-recipient floor division. It accumulates for a manual sweep.
	Remainder int64      `json:"remainder" bson:"remainder"`
	Time      *time.Time `json:"time" bson:"time"`
}

type findRecordOptions struct {
	Offset     *int
	Limit      *int
	Collection *domain.Address
	TokenId    *domain.TokenId
}

type FindRecordOptions func(*findRecordOptions) error

func GetFindRecordOptions(opts ...FindRecordOptions) (*findRecordOptions, error) {
	res := &findRecordOptions{}
	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func RecordWithPagination(offset, limit int) FindRecordOptions {
	return func(opts *findRecordOptions) error {
		opts.Offset = &offset
		opts.Limit = &limit
		return nil
	}
}

func RecordWithCollection(collection domain.Address) FindRecordOptions {
	return func(opts *findRecordOptions) error {
		opts.Collection = collection.ToLowerPtr()
		return nil
	}
}

func RecordWithToken(collection domain.Address, tokenId domain.TokenId) FindRecordOptions {
	return func(opts *findRecordOptions) error {
		opts.Collection = collection.ToLowerPtr()
		opts.TokenId = &tokenId
		return nil
	}
}

type RecordRepo interface {
	Insert(c ctx.Ctx, r *Record) error
	FindAll(c ctx.Ctx, opts ...FindRecordOptions) ([]Record, error)
	Count(c ctx.Ctx, opts ...FindRecordOptions) (int, error)
}

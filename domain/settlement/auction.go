package settlement

import (
	"time"

	"github.com/nftex/settlement/base/ctx"
	"github.com/nftex/settlement/domain"
)

// Auction is a time-bound competitive offer for one asset. Times are fixed
// at creation. At most one outstanding highest bid is escrowed by the
// engine at any time.
type Auction struct {
	Collection    domain.Address `json:"collection" bson:"collection"`
	TokenId       domain.TokenId `json:"tokenId" bson:"tokenId"`
	Seller        domain.Address `json:"seller" bson:"seller"`
	ReservePrice  int64          `json:"reservePrice" bson:"reservePrice"`
	StartTime     *time.Time     `json:"startTime" bson:"startTime"`
	EndTime       *time.Time     `json:"endTime" bson:"endTime"`
	HighestBid    int64          `json:"highestBid" bson:"highestBid"`
	HighestBidder domain.Address `json:"highestBidder" bson:"highestBidder"`
	Settled       bool           `json:"settled" bson:"settled"`
	CreatedAt     *time.Time     `json:"createdAt" bson:"createdAt"`
}

type AuctionId struct {
	Collection domain.Address `json:"collection" bson:"collection"`
	TokenId    domain.TokenId `json:"tokenId" bson:"tokenId"`
}

func (a *Auction) ToId() *AuctionId {
	return &AuctionId{
		Collection: a.Collection,
		TokenId:    a.TokenId,
	}
}

func (a *Auction) HasBid() bool {
	return !a.HighestBidder.IsEmpty()
}

// AuctionPatchable contains the mutable fields of an auction. The time
// window and the seller are immutable after creation.
type AuctionPatchable struct {
	HighestBid    *int64          `bson:"highestBid,omitempty"`
	HighestBidder *domain.Address `bson:"highestBidder,omitempty"`
	Settled       *bool           `bson:"settled,omitempty"`
}

type findAuctionOptions struct {
	Offset       *int
	Limit        *int
	Collection   *domain.Address
	Seller       *domain.Address
	Settled      *bool
	EndTimeLTE   *time.Time
	StartTimeLTE *time.Time
}

type FindAuctionOptions func(*findAuctionOptions) error

func GetFindAuctionOptions(opts ...FindAuctionOptions) (*findAuctionOptions, error) {
	res := &findAuctionOptions{}
	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func AuctionWithPagination(offset, limit int) FindAuctionOptions {
	return func(opts *findAuctionOptions) error {
		opts.Offset = &offset
		opts.Limit = &limit
		return nil
	}
}

func AuctionWithCollection(collection domain.Address) FindAuctionOptions {
	return func(opts *findAuctionOptions) error {
		opts.Collection = collection.ToLowerPtr()
		return nil
	}
}

func AuctionWithSeller(seller domain.Address) FindAuctionOptions {
	return func(opts *findAuctionOptions) error {
		opts.Seller = seller.ToLowerPtr()
		return nil
	}
}

func AuctionWithSettled(settled bool) FindAuctionOptions {
	return func(opts *findAuctionOptions) error {
		opts.Settled = &settled
		return nil
	}
}

func AuctionWithEndTimeLTE(t time.Time) FindAuctionOptions {
	return func(opts *findAuctionOptions) error {
		opts.EndTimeLTE = &t
		return nil
	}
}

type AuctionRepo interface {
	FindOne(c ctx.Ctx, id AuctionId) (*Auction, error)
	FindAll(c ctx.Ctx, opts ...FindAuctionOptions) ([]Auction, error)
	Create(c ctx.Ctx, a *Auction) error
	Update(c ctx.Ctx, id AuctionId, patchable AuctionPatchable) error
}

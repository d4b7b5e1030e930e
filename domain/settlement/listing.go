package settlement

import (
	"time"

	"github.com/nftex/settlement/base/ctx"
	"github.com/nftex/settlement/domain"
)

// Listing is an active fixed-price offer for one asset. While the listing
// is active the asset is held in custody by the engine, not by the seller.
type Listing struct {
	Collection domain.Address `json:"collection" bson:"collection"`
	TokenId    domain.TokenId `json:"tokenId" bson:"tokenId"`
	Seller     domain.Address `json:"seller" bson:"seller"`
	Price      int64          `json:"price" bson:"price"`
	Active     bool           `json:"active" bson:"active"`
	CreatedAt  *time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt  *time.Time     `json:"updatedAt" bson:"updatedAt"`
}

type ListingId struct {
	Collection domain.Address `json:"collection" bson:"collection"`
	TokenId    domain.TokenId `json:"tokenId" bson:"tokenId"`
}

func (l *Listing) ToId() *ListingId {
	return &ListingId{
		Collection: l.Collection,
		TokenId:    l.TokenId,
	}
}

// ListingPatchable contains the mutable fields of a listing.
type ListingPatchable struct {
	Price     *int64     `bson:"price,omitempty"`
	Active    *bool      `bson:"active,omitempty"`
	UpdatedAt *time.Time `bson:"updatedAt,omitempty"`
}

type findListingOptions struct {
	Offset     *int
	Limit      *int
	Collection *domain.Address
	Seller     *domain.Address
	Active     *bool
}

type FindListingOptions func(*findListingOptions) error

func GetFindListingOptions(opts ...FindListingOptions) (*findListingOptions, error) {
	res := &findListingOptions{}
	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func ListingWithPagination(offset, limit int) FindListingOptions {
	return func(opts *findListingOptions) error {
		opts.Offset = &offset
		opts.Limit = &limit
		return nil
	}
}

func ListingWithCollection(collection domain.Address) FindListingOptions {
	return func(opts *findListingOptions) error {
		opts.Collection = collection.ToLowerPtr()
		return nil
	}
}

func ListingWithSeller(seller domain.Address) FindListingOptions {
	return func(opts *findListingOptions) error {
		opts.Seller = seller.ToLowerPtr()
		return nil
	}
}

func ListingWithActive(active bool) FindListingOptions {
	return func(opts *findListingOptions) error {
		opts.Active = &active
		return nil
	}
}

type ListingRepo interface {
	FindOne(c ctx.Ctx, id ListingId) (*Listing, error)
	FindAll(c ctx.Ctx, opts ...FindListingOptions) ([]Listing, error)
	Create(c ctx.Ctx, l *Listing) error
	Update(c ctx.Ctx, id ListingId, patchable ListingPatchable) error
}

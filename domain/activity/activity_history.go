package activity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nftex/settlement/base/ctx"
	"github.com/nftex/settlement/domain"
)

type ActivityHistoryType string

const (
	// marketplace
	ActivityHistoryTypeList          ActivityHistoryType = "list"
	ActivityHistoryTypeUpdateListing ActivityHistoryType = "updateListing"
	ActivityHistoryTypeCancelListing ActivityHistoryType = "cancelListing"
	ActivityHistoryTypeBuy           ActivityHistoryType = "buy"
	ActivityHistoryTypeSold          ActivityHistoryType = "sold"

	// auction
	ActivityHistoryTypeCreateAuction ActivityHistoryType = "createAuction"
	ActivityHistoryTypePlaceBid      ActivityHistoryType = "placeBid"
	ActivityHistoryTypeBidRefunded   ActivityHistoryType = "bidRefunded"
	ActivityHistoryTypeResultAuction ActivityHistoryType = "resultAuction"
	ActivityHistoryTypeWonAuction    ActivityHistoryType = "wonAuction"

	// distribution
	ActivityHistoryTypeSplitsUpdated ActivityHistoryType = "splitsUpdated"
	ActivityHistoryTypeDistribution  ActivityHistoryType = "distribution"
)

// ActivityHistory is one immutable settlement event. Each entry carries
// everything the external indexer needs to rebuild state without
// re-querying the engine.
type ActivityHistory struct {
	Collection   domain.Address      `json:"collection" bson:"collection"`
	TokenId      domain.TokenId      `json:"tokenId" bson:"tokenId"`
	Type         ActivityHistoryType `json:"type" bson:"type"`
	Account      domain.Address      `json:"account" bson:"account"`
	To           domain.Address      `json:"to" bson:"to"`
	Amount       int64               `json:"amount" bson:"amount"`
	DisplayPrice string              `json:"displayPrice" bson:"displayPrice"`
	Time         time.Time           `json:"time" bson:"time"`
}

// DisplayAmount renders a smallest-unit amount with the payment token's
// six decimals.
func DisplayAmount(amount int64) string {
	return decimal.New(amount, -domain.PaymentDecimals).String()
}

type findActivityHistoryOptions struct {
	Offset     *int
	Limit      *int
	Account    *domain.Address
	Collection *domain.Address
	TokenId    *domain.TokenId
	Types      []ActivityHistoryType
	TimeGTE    *time.Time
}

type FindActivityHistoryOptions func(*findActivityHistoryOptions) error

func GetFindActivityHistoryOptions(opts ...FindActivityHistoryOptions) (*findActivityHistoryOptions, error) {
	res := &findActivityHistoryOptions{}
	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func ActivityHistoryWithPagination(offset, limit int) FindActivityHistoryOptions {
	return func(opts *findActivityHistoryOptions) error {
		opts.Offset = &offset
		opts.Limit = &limit
		return nil
	}
}

func ActivityHistoryWithAccount(account domain.Address) FindActivityHistoryOptions {
	return func(opts *findActivityHistoryOptions) error {
		opts.Account = account.ToLowerPtr()
		return nil
	}
}

func ActivityHistoryWithCollection(collection domain.Address) FindActivityHistoryOptions {
	return func(opts *findActivityHistoryOptions) error {
		opts.Collection = collection.ToLowerPtr()
		return nil
	}
}

func ActivityHistoryWithToken(collection domain.Address, tokenId domain.TokenId) FindActivityHistoryOptions {
	return func(opts *findActivityHistoryOptions) error {
		opts.Collection = collection.ToLowerPtr()
		opts.TokenId = &tokenId
		return nil
	}
}

func ActivityHistoryWithTypes(types ...ActivityHistoryType) FindActivityHistoryOptions {
	return func(opts *findActivityHistoryOptions) error {
		opts.Types = types
		return nil
	}
}

func ActivityHistoryWithTimeGTE(t time.Time) FindActivityHistoryOptions {
	return func(opts *findActivityHistoryOptions) error {
		opts.TimeGTE = &t
		return nil
	}
}

type ActivityHistoryRepo interface {
	Insert(c ctx.Ctx, ah *ActivityHistory) error
	FindActivities(c ctx.Ctx, opts ...FindActivityHistoryOptions) ([]ActivityHistory, error)
	CountActivities(c ctx.Ctx, opts ...FindActivityHistoryOptions) (int, error)
}

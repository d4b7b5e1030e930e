package distribution

import (
	"time"

	"github.com/nftex/settlement/base/ctx"
	"github.com/nftex/settlement/domain"
)

// GlobalTableKey is the collection key of the platform-wide split table.
const GlobalTableKey = domain.Address("")

// SplitEntry assigns a recipient a share of a portion, in basis points of
// that portion.
type SplitEntry struct {
	Recipient domain.Address `json:"recipient" bson:"recipient"`
	ShareBps  int64          `json:"shareBps" bson:"shareBps"`
}

// SplitTable is the ordered list of split entries for one collection, or
// the global table when Collection is GlobalTableKey. Tables are replaced
// wholesale; Version increases on every replacement.
type SplitTable struct {
	Collection domain.Address `json:"collection" bson:"collection"`
	Entries    []SplitEntry   `json:"entries" bson:"entries"`
	Version    int64          `json:"version" bson:"version"`
	UpdatedAt  *time.Time     `json:"updatedAt" bson:"updatedAt"`
}

func (t *SplitTable) IsEmpty() bool {
	return len(t.Entries) == 0
}

// TotalShareBps returns the sum of all shares in the table.
func (t *SplitTable) TotalShareBps() int64 {
	sum := int64(0)
	for _, e := range t.Entries {
		sum += e.ShareBps
	}
	return sum
}

// ValidateEntries rejects tables whose shares are negative or sum past
// 10000 bps. Exactly 10000 is accepted.
func ValidateEntries(entries []SplitEntry) error {
	sum := int64(0)
	for _, e := range entries {
		if e.ShareBps < 0 || e.Recipient.IsEmpty() {
			return domain.ErrInvalidSplits
		}
		sum += e.ShareBps
	}
	if sum > domain.BpsDenominator {
		return domain.ErrInvalidSplits
	}
	return nil
}

type SplitTableRepo interface {
	// FindOne returns domain.ErrNotFound when no table has been configured
	// for the collection.
	FindOne(c ctx.Ctx, collection domain.Address) (*SplitTable, error)
	// Replace atomically discards the previous table of the collection.
	Replace(c ctx.Ctx, table *SplitTable) error
}

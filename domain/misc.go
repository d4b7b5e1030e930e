package domain

import (
	"strings"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

// Address is a lower-cased hex account or collection identifier.
type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// Table is a mongo collection name.
type Table string

const (
	TableListings            Table = "listings"
	TableAuctions            Table = "auctions"
	TableCollectionConfigs   Table = "collection_configs"
	TableEngineConfigs       Table = "engine_configs"
	TableSplitTables         Table = "split_tables"
	TableDistributionRecords Table = "distribution_records"
	TableActivityHistories   Table = "activity_histories"
	TableAssetHoldings       Table = "asset_holdings"
	TableCollectionOwners    Table = "collection_owners"
	TablePaymentBalances     Table = "payment_balances"
	TablePaymentAllowances   Table = "payment_allowances"
)

// BpsDenominator is the basis point denominator, 10000 bps = 100%.
const BpsDenominator = int64(10000)

// PaymentDecimals is the number of decimals of the stable payment unit.
const PaymentDecimals = int32(6)

package domain

import (
	"time"

	"github.com/nftex/settlement/base/ctx"
)

// AssetHolding records the current holder of one unique asset.
type AssetHolding struct {
	Collection Address    `json:"collection" bson:"collection"`
	TokenId    TokenId    `json:"tokenId" bson:"tokenId"`
	Holder     Address    `json:"holder" bson:"holder"`
	UpdatedAt  *time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CollectionOwner records the controlling account of one collection.
type CollectionOwner struct {
	Collection Address `json:"collection" bson:"collection"`
	Owner      Address `json:"owner" bson:"owner"`
}

// PaymentBalance is the fungible balance of one account in the smallest
// unit of the stable payment token.
type PaymentBalance struct {
	Account Address `json:"account" bson:"account"`
	Amount  int64   `json:"amount" bson:"amount"`
}

// PaymentAllowance is a pre-authorization for a spender to pull funds
// from an owner account.
type PaymentAllowance struct {
	Owner   Address `json:"owner" bson:"owner"`
	Spender Address `json:"spender" bson:"spender"`
	Amount  int64   `json:"amount" bson:"amount"`
}

// AssetRegistry is the external custody capability for unique assets.
// Transfer must fail when `from` is not the current holder.
type AssetRegistry interface {
	Transfer(c ctx.Ctx, from, to, collection Address, tokenId TokenId) error
	HolderOf(c ctx.Ctx, collection Address, tokenId TokenId) (Address, error)
	CollectionOwner(c ctx.Ctx, collection Address) (Address, error)
	SetCollectionOwner(c ctx.Ctx, collection, owner Address) error
	Mint(c ctx.Ctx, to, collection Address, tokenId TokenId) error
}

// PaymentRegistry is the external fungible-value ledger capability.
type PaymentRegistry interface {
	// TransferFrom moves funds from payer to payee under a prior allowance
	// granted to the engine by the payer.
	TransferFrom(c ctx.Ctx, spender, payer, payee Address, amount int64) error
	// Transfer moves engine-held funds.
	Transfer(c ctx.Ctx, from, to Address, amount int64) error
	BalanceOf(c ctx.Ctx, account Address) (int64, error)
	Approve(c ctx.Ctx, owner, spender Address, amount int64) error
	Allowance(c ctx.Ctx, owner, spender Address) (int64, error)
	Deposit(c ctx.Ctx, account Address, amount int64) error
}

package repository

import (
	bCtx "github.com/nftex/settlement/base/ctx"
	"github.com/nftex/settlement/domain"
	"github.com/nftex/settlement/domain/distribution"
)

type ownershipProvider struct {
	assets domain.AssetRegistry
}

// NewOwnershipProvider adapts the asset registry's collection owner lookup
// to a yes/no ownership answer. An unregistered collection has no owner.
func NewOwnershipProvider(assets domain.AssetRegistry) distribution.OwnershipProvider {
	return &ownershipProvider{assets: assets}
}

func (p *ownershipProvider) IsCollectionOwner(c bCtx.Ctx, collection, account domain.Address) (bool, error) {
	owner, err := p.assets.CollectionOwner(c, collection)
	if err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		c.WithField("err", err).Error("assets.CollectionOwner failed")
		return false, err
	}
	return owner.Equals(account), nil
}

package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/nftex/settlement/base/ctx"
	"github.com/nftex/settlement/base/log"
	"github.com/nftex/settlement/domain"
	"github.com/nftex/settlement/service/query"
)

var timeNow = time.Now

type assetRegistryRepo struct {
	q query.Mongo
}

// NewAssetRegistryRepo builds a mongo backed asset custody ledger. Transfers
// are guarded by a compare-on-holder selector, so a stale `from` never moves
// an asset it no longer holds.
func NewAssetRegistryRepo(q query.Mongo) domain.AssetRegistry {
	return &assetRegistryRepo{q: q}
}

func (r *assetRegistryRepo) Transfer(c bCtx.Ctx, from, to, collection domain.Address, tokenId domain.TokenId) error {
	now := timeNow()
	selector := bson.M{
		"collection": collection.ToLower(),
		"tokenId":    tokenId,
		"holder":     from.ToLower(),
	}
	updater := bson.M{
		"holder":    to.ToLower(),
		"updatedAt": now,
	}
	err := r.q.Patch(c, domain.TableAssetHoldings, selector, updater)
	if err == query.ErrNotFound {
		return domain.ErrTransferFailed
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": collection,
			"tokenId":    tokenId,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (r *assetRegistryRepo) HolderOf(c bCtx.Ctx, collection domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	holding := &domain.AssetHolding{}
	qry := bson.M{
		"collection": collection.ToLower(),
		"tokenId":    tokenId,
	}
	err := r.q.FindOne(c, domain.TableAssetHoldings, qry, holding)
	if err == query.ErrNotFound {
		return "", domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return "", err
	}
	return holding.Holder, nil
}

func (r *assetRegistryRepo) CollectionOwner(c bCtx.Ctx, collection domain.Address) (domain.Address, error) {
	owner := &domain.CollectionOwner{}
	qry := bson.M{"collection": collection.ToLower()}
	err := r.q.FindOne(c, domain.TableCollectionOwners, qry, owner)
	if err == query.ErrNotFound {
		return "", domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return "", err
	}
	return owner.Owner, nil
}

func (r *assetRegistryRepo) SetCollectionOwner(c bCtx.Ctx, collection, owner domain.Address) error {
	selector := bson.M{"collection": collection.ToLower()}
	record := &domain.CollectionOwner{
		Collection: collection.ToLower(),
		Owner:      owner.ToLower(),
	}
	if err := r.q.Upsert(c, domain.TableCollectionOwners, selector, record); err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": collection,
			"owner":      owner,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *assetRegistryRepo) Mint(c bCtx.Ctx, to, collection domain.Address, tokenId domain.TokenId) error {
	if _, err := r.HolderOf(c, collection, tokenId); err == nil {
		return domain.ErrConflict
	} else if err != domain.ErrNotFound {
		return err
	}

	now := timeNow()
	holding := &domain.AssetHolding{
		Collection: collection.ToLower(),
		TokenId:    tokenId,
		Holder:     to.ToLower(),
		UpdatedAt:  &now,
	}
	if err := r.q.Insert(c, domain.TableAssetHoldings, holding); err != nil {
		if err == query.ErrDuplicateKey {
			return domain.ErrConflict
		}
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

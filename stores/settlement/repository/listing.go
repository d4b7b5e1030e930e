package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/nftex/settlement/base/ctx"
	"github.com/nftex/settlement/base/database/mongoclient"
	"github.com/nftex/settlement/base/log"
	"github.com/nftex/settlement/domain"
	"github.com/nftex/settlement/domain/settlement"
	"github.com/nftex/settlement/service/query"
)

var timeNow = time.Now

func makeFindListingQuery(optFns ...settlement.FindListingOptions) (bson.M, error) {
	opts, err := settlement.GetFindListingOptions(optFns...)
	if err != nil {
		return nil, err
	}

	qry := bson.M{}

	if opts.Collection != nil {
		qry["collection"] = *opts.Collection
	}

	if opts.Seller != nil {
		qry["seller"] = *opts.Seller
	}

	if opts.Active != nil {
		qry["active"] = *opts.Active
	}

	return qry, nil
}

type listingRepo struct {
	q query.Mongo
}

func NewListingRepo(q query.Mongo) settlement.ListingRepo {
	return &listingRepo{q: q}
}

func (r *listingRepo) FindOne(c bCtx.Ctx, id settlement.ListingId) (*settlement.Listing, error) {
	listing := &settlement.Listing{}
	qry, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	if err := r.q.FindOne(c, domain.TableListings, qry, listing); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return listing, nil
}

func (r *listingRepo) FindAll(c bCtx.Ctx, optFns ...settlement.FindListingOptions) ([]settlement.Listing, error) {
	opts, err := settlement.GetFindListingOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("settlement.GetFindListingOptions failed")
		return nil, err
	}

	qry, err := makeFindListingQuery(optFns...)
	if err != nil {
		c.WithField("err", err).Error("makeFindListingQuery failed")
		return nil, err
	}

	offset := 0
	limit := 0

	if opts.Offset != nil {
		offset = *opts.Offset
	}

	if opts.Limit != nil {
		limit = *opts.Limit
	}

	res := []settlement.Listing{}

	if err := r.q.Search(c, domain.TableListings, offset, limit, "-createdAt", qry, &res); err != nil {
		c.WithField("err", err).WithField("query", qry).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (r *listingRepo) Create(c bCtx.Ctx, l *settlement.Listing) error {
	// upsert on the asset id, a terminated listing of the same asset is
	// replaced instead of accumulating
	selector, err := mongoclient.MakeBsonM(l.ToId())
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Upsert(c, domain.TableListings, selector, l); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"listing": l,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *listingRepo) Update(c bCtx.Ctx, id settlement.ListingId, patchable settlement.ListingPatchable) error {
	selector, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}

	if patchable.UpdatedAt == nil {
		now := timeNow()
		patchable.UpdatedAt = &now
	}

	updater, err := mongoclient.MakeBsonM(&patchable)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}

	if err := r.q.Patch(c, domain.TableListings, selector, updater); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

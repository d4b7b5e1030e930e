package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/nftex/settlement/base/ctx"
	"github.com/nftex/settlement/base/database/mongoclient"
	"github.com/nftex/settlement/base/log"
	"github.com/nftex/settlement/domain"
	"github.com/nftex/settlement/domain/settlement"
	"github.com/nftex/settlement/service/query"
)

func makeFindAuctionQuery(optFns ...settlement.FindAuctionOptions) (bson.M, error) {
	opts, err := settlement.GetFindAuctionOptions(optFns...)
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

	if opts.Settled != nil {
		qry["settled"] = *opts.Settled
	}

	if opts.EndTimeLTE != nil {
		qry["endTime"] = bson.M{"$lte": *opts.EndTimeLTE}
	}

	return qry, nil
}

type auctionRepo struct {
	q query.Mongo
}

func NewAuctionRepo(q query.Mongo) settlement.AuctionRepo {
	return &auctionRepo{q: q}
}

func (r *auctionRepo) FindOne(c bCtx.Ctx, id settlement.AuctionId) (*settlement.Auction, error) {
	auction := &settlement.Auction{}
	qry, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	if err := r.q.FindOne(c, domain.TableAuctions, qry, auction); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return auction, nil
}

func (r *auctionRepo) FindAll(c bCtx.Ctx, optFns ...settlement.FindAuctionOptions) ([]settlement.Auction, error) {
	opts, err := settlement.GetFindAuctionOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("settlement.GetFindAuctionOptions failed")
		return nil, err
	}

	qry, err := makeFindAuctionQuery(optFns...)
	if err != nil {
		c.WithField("err", err).Error("makeFindAuctionQuery failed")
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

	res := []settlement.Auction{}

	if err := r.q.Search(c, domain.TableAuctions, offset, limit, "endTime", qry, &res); err != nil {
		c.WithField("err", err).WithField("query", qry).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (r *auctionRepo) Create(c bCtx.Ctx, a *settlement.Auction) error {
	// upsert on the asset id, a settled auction of the same asset is
	// replaced instead of accumulating
	selector, err := mongoclient.MakeBsonM(a.ToId())
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Upsert(c, domain.TableAuctions, selector, a); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"auction": a,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *auctionRepo) Update(c bCtx.Ctx, id settlement.AuctionId, patchable settlement.AuctionPatchable) error {
	selector, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}

	updater, err := mongoclient.MakeBsonM(&patchable)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}

	if err := r.q.Patch(c, domain.TableAuctions, selector, updater); err == query.ErrNotFound {
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

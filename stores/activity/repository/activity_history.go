package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/nftex/settlement/base/ctx"
	"github.com/nftex/settlement/base/log"
	"github.com/nftex/settlement/domain"
	"github.com/nftex/settlement/domain/activity"
	"github.com/nftex/settlement/service/query"
)

func makeFindQuery(optFns ...activity.FindActivityHistoryOptions) (bson.M, error) {
	opts, err := activity.GetFindActivityHistoryOptions(optFns...)
	if err != nil {
		return nil, err
	}

	qry := bson.M{}

	if opts.Account != nil {
		qry["$or"] = bson.A{
			bson.M{"account": *opts.Account},
			bson.M{"to": opts.Account},
		}
	}

	if opts.Collection != nil {
		qry["collection"] = *opts.Collection
	}

	if opts.TokenId != nil {
		qry["tokenId"] = *opts.TokenId
	}

	if opts.TimeGTE != nil {
		qry["time"] = bson.M{"$gte": *opts.TimeGTE}
	}

	if len(opts.Types) > 1 {
		qry["type"] = bson.M{"$in": opts.Types}
	} else if len(opts.Types) > 0 {
		qry["type"] = opts.Types[0]
	}

	return qry, nil
}

type activityHistoryRepo struct {
	q query.Mongo
}

func NewActivityHistoryRepo(q query.Mongo) activity.ActivityHistoryRepo {
	return &activityHistoryRepo{q: q}
}

func (r *activityHistoryRepo) Insert(ctx bCtx.Ctx, ah *activity.ActivityHistory) error {
	if err := r.q.Insert(ctx, domain.TableActivityHistories, ah); err != nil {
		ctx.WithFields(log.Fields{
			"activityHistory": ah,
			"err":             err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *activityHistoryRepo) FindActivities(c bCtx.Ctx, optFns ...activity.FindActivityHistoryOptions) ([]activity.ActivityHistory, error) {
	opts, err := activity.GetFindActivityHistoryOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("activity.GetFindActivityHistoryOptions failed")
		return nil, err
	}

	qry, err := makeFindQuery(optFns...)
	if err != nil {
		c.WithField("err", err).Error("makeFindQuery failed")
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

	res := []activity.ActivityHistory{}

	err = r.q.Search(c, domain.TableActivityHistories, offset, limit, "-time", qry, &res)

	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("query", qry).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (r *activityHistoryRepo) CountActivities(c bCtx.Ctx, optFns ...activity.FindActivityHistoryOptions) (int, error) {
	qry, err := makeFindQuery(optFns...)
	if err != nil {
		c.WithField("err", err).Error("makeFindQuery failed")
		return 0, err
	}

	cnt, err := r.q.Count(c, domain.TableActivityHistories, qry)

	if err != nil {
		c.WithField("err", err).WithField("query", qry).Error("q.Count failed")
		return 0, err
	}

	return cnt, nil
}

package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/nftex/settlement/base/ctx"
	"github.com/nftex/settlement/base/log"
	"github.com/nftex/settlement/domain"
	"github.com/nftex/settlement/domain/distribution"
	"github.com/nftex/settlement/service/query"
)

func makeFindRecordQuery(optFns ...distribution.FindRecordOptions) (bson.M, error) {
	opts, err := distribution.GetFindRecordOptions(optFns...)
	if err != nil {
		return nil, err
	}

	qry := bson.M{}

	if opts.Collection != nil {
		qry["collection"] = *opts.Collection
	}

	if opts.TokenId != nil {
		qry["tokenId"] = *opts.TokenId
	}

	return qry, nil
}

type recordRepo struct {
	q query.Mongo
}

// NewRecordRepo builds the append-only distribution record store. Records
// are never patched or removed.
func NewRecordRepo(q query.Mongo) distribution.RecordRepo {
	return &recordRepo{q: q}
}

func (r *recordRepo) Insert(c bCtx.Ctx, record *distribution.Record) error {
	if err := r.q.Insert(c, domain.TableDistributionRecords, record); err != nil {
		if err == query.ErrDuplicateKey {
			return domain.ErrConflict
		}
		c.WithFields(log.Fields{
			"err":    err,
			"record": record,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *recordRepo) FindAll(c bCtx.Ctx, optFns ...distribution.FindRecordOptions) ([]distribution.Record, error) {
	opts, err := distribution.GetFindRecordOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("distribution.GetFindRecordOptions failed")
		return nil, err
	}

	qry, err := makeFindRecordQuery(optFns...)
	if err != nil {
		c.WithField("err", err).Error("makeFindRecordQuery failed")
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

	res := []distribution.Record{}

	if err := r.q.Search(c, domain.TableDistributionRecords, offset, limit, "-time", qry, &res); err != nil {
		c.WithField("err", err).WithField("query", qry).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (r *recordRepo) Count(c bCtx.Ctx, optFns ...distribution.FindRecordOptions) (int, error) {
	qry, err := makeFindRecordQuery(optFns...)
	if err != nil {
		c.WithField("err", err).Error("makeFindRecordQuery failed")
		return 0, err
	}

	cnt, err := r.q.Count(c, domain.TableDistributionRecords, qry)
	if err != nil {
		c.WithField("err", err).WithField("query", qry).Error("q.Count failed")
		return 0, err
	}

	return cnt, nil
}

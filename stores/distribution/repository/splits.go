package repository

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/nftex/settlement/base/ctx"
	"github.com/nftex/settlement/base/log"
	"github.com/nftex/settlement/domain"
	"github.com/nftex/settlement/domain/distribution"
	"github.com/nftex/settlement/domain/keys"
	"github.com/nftex/settlement/service/query"
	"github.com/nftex/settlement/service/redis"
)

// splitTableCacheTTL bounds staleness when an invalidation is lost.
const splitTableCacheTTL = 10 * time.Minute

type splitTableRepo struct {
	q     query.Mongo
	cache redis.Service
}

// NewSplitTableRepo builds a mongo backed split table store with a redis
// read-through cache. Replace invalidates before and after the write.
func NewSplitTableRepo(q query.Mongo, cache redis.Service) distribution.SplitTableRepo {
	return &splitTableRepo{q: q, cache: cache}
}

func cacheKey(collection domain.Address) string {
	return keys.RedisKey(keys.PfxSplitTable, collection.ToLowerStr())
}

func (r *splitTableRepo) FindOne(c bCtx.Ctx, collection domain.Address) (*distribution.SplitTable, error) {
	key := cacheKey(collection)
	if raw, err := r.cache.Get(c, key); err == nil {
		table := &distribution.SplitTable{}
		if err := json.Unmarshal(raw, table); err == nil {
			return table, nil
		}
		c.WithField("key", key).Warn("broken split table cache entry")
		r.cache.Del(c, key)
	} else if err != redis.ErrNotFound {
		c.WithField("err", err).Warn("split table cache get failed")
	}

	table := &distribution.SplitTable{}
	qry := bson.M{"collection": collection.ToLower()}
	if err := r.q.FindOne(c, domain.TableSplitTables, qry, table); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": collection,
		}).Error("q.FindOne failed")
		return nil, err
	}

	if raw, err := json.Marshal(table); err == nil {
		if err := r.cache.Set(c, key, raw, splitTableCacheTTL); err != nil {
			c.WithField("err", err).Warn("split table cache set failed")
		}
	}

	return table, nil
}

func (r *splitTableRepo) Replace(c bCtx.Ctx, table *distribution.SplitTable) error {
	key := cacheKey(table.Collection)
	if _, err := r.cache.Del(c, key); err != nil {
		c.WithField("err", err).Warn("split table cache del failed")
	}

	selector := bson.M{"collection": table.Collection.ToLower()}
	if err := r.q.Upsert(c, domain.TableSplitTables, selector, table); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"table": table,
		}).Error("q.Upsert failed")
		return err
	}

	// second delete closes the read-repopulate race during the write
	if _, err := r.cache.Del(c, key); err != nil {
		c.WithField("err", err).Warn("split table cache del failed")
	}
	return nil
}

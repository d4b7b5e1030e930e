package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/nftex/settlement/base/ctx"
	"github.com/nftex/settlement/base/log"
	"github.com/nftex/settlement/domain"
	"github.com/nftex/settlement/domain/settlement"
	"github.com/nftex/settlement/service/query"
)

// engineConfigId keys the single engine config document.
const engineConfigId = "engine"

type collectionConfigRepo struct {
	q query.Mongo
}

func NewCollectionConfigRepo(q query.Mongo) settlement.CollectionConfigRepo {
	return &collectionConfigRepo{q: q}
}

func (r *collectionConfigRepo) FindOne(c bCtx.Ctx, collection domain.Address) (*settlement.CollectionConfig, error) {
	cfg := &settlement.CollectionConfig{}
	qry := bson.M{"collection": collection.ToLower()}
	if err := r.q.FindOne(c, domain.TableCollectionConfigs, qry, cfg); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": collection,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return cfg, nil
}

func (r *collectionConfigRepo) Upsert(c bCtx.Ctx, cfg *settlement.CollectionConfig) error {
	selector := bson.M{"collection": cfg.Collection.ToLower()}
	if err := r.q.Upsert(c, domain.TableCollectionConfigs, selector, cfg); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"config": cfg,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

type engineConfigDoc struct {
	Id string `bson:"id"`

	settlement.EngineConfig `bson:",inline"`
}

type engineConfigRepo struct {
	q query.Mongo
}

func NewEngineConfigRepo(q query.Mongo) settlement.EngineConfigRepo {
	return &engineConfigRepo{q: q}
}

func (r *engineConfigRepo) Get(c bCtx.Ctx) (*settlement.EngineConfig, error) {
	doc := &engineConfigDoc{}
	qry := bson.M{"id": engineConfigId}
	if err := r.q.FindOne(c, domain.TableEngineConfigs, qry, doc); err == query.ErrNotFound {
		// fee defaults to zero until an operator configures it
		return &settlement.EngineConfig{}, nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	cfg := doc.EngineConfig
	return &cfg, nil
}

func (r *engineConfigRepo) Set(c bCtx.Ctx, cfg *settlement.EngineConfig) error {
	selector := bson.M{"id": engineConfigId}
	doc := &engineConfigDoc{
		Id:           engineConfigId,
		EngineConfig: *cfg,
	}
	if err := r.q.Upsert(c, domain.TableEngineConfigs, selector, doc); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"config": cfg,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

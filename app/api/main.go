package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/nftex/settlement/base/ctx"
	"github.com/nftex/settlement/base/database/mongoclient"
	"github.com/nftex/settlement/base/database/redisclient"
	"github.com/nftex/settlement/base/log"
	"github.com/nftex/settlement/base/metrics"
	bValidator "github.com/nftex/settlement/base/validator"
	"github.com/nftex/settlement/domain"
	mmiddleware "github.com/nftex/settlement/middleware"
	"github.com/nftex/settlement/service/query"
	"github.com/nftex/settlement/service/redis"
	activity_delivery "github.com/nftex/settlement/stores/activity/delivery/http"
	activity_repository "github.com/nftex/settlement/stores/activity/repository"
	distribution_delivery "github.com/nftex/settlement/stores/distribution/delivery/http"
	distribution_repository "github.com/nftex/settlement/stores/distribution/repository"
	distribution_usecase "github.com/nftex/settlement/stores/distribution/usecase"
	hc_delivery "github.com/nftex/settlement/stores/healthcheck/delivery/http"
	hc_repo "github.com/nftex/settlement/stores/healthcheck/repository"
	hc_usecase "github.com/nftex/settlement/stores/healthcheck/usecase"
	registry_delivery "github.com/nftex/settlement/stores/registry/delivery/http"
	registry_repository "github.com/nftex/settlement/stores/registry/repository"
	settlement_delivery "github.com/nftex/settlement/stores/settlement/delivery/http"
	settlement_repository "github.com/nftex/settlement/stores/settlement/repository"
	settlement_usecase "github.com/nftex/settlement/stores/settlement/usecase"
)

func init() {
	pflag.String("config", "infra/configs/config.yaml", "path to config file")
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		panic(err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(viper.GetString("config"))
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})
	e.Use(middL.AddRedis(redisCache))

	engineAccount := domain.Address(viper.GetString("settlement.engineAccount")).ToLower()
	distributionAccount := domain.Address(viper.GetString("settlement.distributionAccount")).ToLower()
	platformAccount := domain.Address(viper.GetString("settlement.platformAccount")).ToLower()
	adminAccount := domain.Address(viper.GetString("admin.address")).ToLower()

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	activityRepo := activity_repository.NewActivityHistoryRepo(q)
	assetRegistry := registry_repository.NewAssetRegistryRepo(q)
	paymentRegistry := registry_repository.NewPaymentRegistryRepo(q)
	ownership := registry_repository.NewOwnershipProvider(assetRegistry)
	listingRepo := settlement_repository.NewListingRepo(q)
	auctionRepo := settlement_repository.NewAuctionRepo(q)
	collectionConfigRepo := settlement_repository.NewCollectionConfigRepo(q)
	engineConfigRepo := settlement_repository.NewEngineConfigRepo(q)
	splitTableRepo := distribution_repository.NewSplitTableRepo(q, redisCache)
	recordRepo := distribution_repository.NewRecordRepo(q)

	hc := hc_usecase.New(hcRepo)
	distributionUC := distribution_usecase.NewDistributionUseCase(&distribution_usecase.DistributionUseCaseCfg{
		Splits:              splitTableRepo,
		Records:             recordRepo,
		Payments:            paymentRegistry,
		Assets:              assetRegistry,
		Ownership:           ownership,
		Activities:          activityRepo,
		EngineConfig:        engineConfigRepo,
		EngineAccount:       engineAccount,
		DistributionAccount: distributionAccount,
		PlatformAccount:     platformAccount,
		AdminAccount:        adminAccount,
	})
	settlementUC := settlement_usecase.NewSettlementUseCase(&settlement_usecase.SettlementUseCaseCfg{
		Listings:            listingRepo,
		Auctions:            auctionRepo,
		Collections:         collectionConfigRepo,
		EngineConfig:        engineConfigRepo,
		Assets:              assetRegistry,
		Payments:            paymentRegistry,
		Activities:          activityRepo,
		Distributor:         distributionUC,
		Query:               q,
		EngineAccount:       engineAccount,
		DistributionAccount: distributionAccount,
		AdminAccount:        adminAccount,
	})

	hc_delivery.New(e, hc)
	activity_delivery.New(e, activityRepo)
	registry_delivery.New(e, assetRegistry, paymentRegistry)
	settlement_delivery.New(e, settlementUC)
	distribution_delivery.New(e, distributionUC)

	// periodically settle ended auctions
	sweepInterval := viper.GetDuration("settlement.sweepInterval")
	if sweepInterval <= 0 {
		sweepInterval = time.Minute
	}
	sweepDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if settled, err := settlementUC.SweepSettleableAuctions(context); err != nil {
					context.WithField("err", err).Error("SweepSettleableAuctions failed")
				} else if settled > 0 {
					context.WithField("settled", settled).Info("settled ended auctions")
				}
			case <-sweepDone:
				return
			}
		}
	}()

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	close(sweepDone)
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}

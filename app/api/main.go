package main

import (
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/ledger/base/ctx"
	"github.com/x-xyz/ledger/base/database/mongoclient"
	"github.com/x-xyz/ledger/base/database/redisclient"
	"github.com/x-xyz/ledger/base/log"
	"github.com/x-xyz/ledger/base/metrics"
	bValidator "github.com/x-xyz/ledger/base/validator"
	"github.com/x-xyz/ledger/domain"
	"github.com/x-xyz/ledger/domain/keys"
	"github.com/x-xyz/ledger/domain/ledger"
	mmiddleware "github.com/x-xyz/ledger/middleware"
	"github.com/x-xyz/ledger/service/cache"
	"github.com/x-xyz/ledger/service/cache/provider"
	"github.com/x-xyz/ledger/service/cache/provider/primitive"
	redisCache "github.com/x-xyz/ledger/service/cache/provider/redis"
	"github.com/x-xyz/ledger/service/query"
	"github.com/x-xyz/ledger/service/redis"
	auth_delivery "github.com/x-xyz/ledger/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/ledger/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/ledger/stores/auth/usecase"
	event_usecase "github.com/x-xyz/ledger/stores/event/usecase"
	hc_delivery "github.com/x-xyz/ledger/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/ledger/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/ledger/stores/healthcheck/usecase"
	ledger_delivery "github.com/x-xyz/ledger/stores/ledger/delivery/http"
	ledger_repository "github.com/x-xyz/ledger/stores/ledger/repository"
	ledger_usecase "github.com/x-xyz/ledger/stores/ledger/usecase"
)

const (
	storeMemory = "memory"
	storeMongo  = "mongo"

	// in MB
	localCacheSize = 16

	bodyLimit = "64K"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path of the config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	if err := log.SetLevel(viper.GetString("log.level")); err != nil {
		log.Log().WithField("err", err).Warn("invalid log.level, keep info")
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.BodyLimit(bodyLimit))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middL.CORS)
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init ledger store
	var (
		mongoClient *mongoclient.Client
		repo        ledger.Repo
	)
	switch store := viper.GetString("ledger.store"); store {
	case storeMongo:
		context.Info("init mongo")
		uri := viper.GetString("mongo.uri")
		authDBName := viper.GetString("mongo.authDBName")
		dbName := viper.GetString("mongo.dbName")
		enableSSL := viper.GetBool("mongo.enableSSL")
		checkIndex := viper.GetBool("mongo.checkIndex")
		mongoClient = mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
		q := query.New(mongoClient, checkIndex)
		if err := ledger_repository.EnsureIndexes(context, q); err != nil {
			context.WithField("err", err).Panic("ledger_repository.EnsureIndexes failed")
		}
		repo = ledger_repository.NewMongo(q)
	case storeMemory, "":
		context.Warn("ledger runs on the memory store, state is lost on restart")
		repo = ledger_repository.NewMemory()
	default:
		context.WithField("store", store).Panic("unknown ledger.store")
	}

	// init cache, redis when configured, process memory otherwise
	var cacheProvider provider.Provider
	if redisCacheURI := viper.GetString("redis_cache.uri"); redisCacheURI != "" {
		context.Info("init redis cache")
		redisCacheName := viper.GetString("redis_cache.name")
		redisCachePwd := viper.GetString("redis_cache.password")
		redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
		redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
			PoolMultiplier: redisCachePoolMultiplier,
			Retry:          true,
		})
		redisService := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
			Src: redisCachePool,
		})
		cacheProvider = redisCache.NewRedis(redisService)
	} else {
		context.Info("init local cache")
		cacheProvider = primitive.NewPrimitive("local", localCacheSize)
	}

	// init event fan-out
	subscribers := []ledger.Subscriber{event_usecase.NewLogSubscriber()}
	if botKey := viper.GetString("discord.botKey"); botKey != "" {
		notifier, err := event_usecase.NewDiscordNotifier(event_usecase.DiscordNotifierCfg{
			BotKey:    botKey,
			ChannelId: viper.GetString("discord.channelId"),
			TokenUrl:  viper.GetString("discord.tokenUrl"),
		})
		if err != nil {
			context.WithField("err", err).Panic("event_usecase.NewDiscordNotifier failed")
		}
		subscribers = append(subscribers, notifier)
	}
	dispatcher := event_usecase.NewDispatcher(&event_usecase.DispatcherCfg{
		Subscribers: subscribers,
		Workers:     viper.GetInt("events.workers"),
		QueueLength: viper.GetInt("events.queueLength"),
	})

	// init ledger
	ledgerUseCase, err := ledger_usecase.New(&ledger_usecase.LedgerUseCaseCfg{
		Owner: domain.Address(viper.GetString("ledger.owner")),
		Fees: ledger.FeeConfig{
			ListingFeePercent: viper.GetInt("ledger.listingFeePercent"),
			RoyaltyPercent:    viper.GetInt("ledger.royaltyPercent"),
		},
		Repo:      repo,
		Publisher: dispatcher,
	})
	if err != nil {
		context.WithField("err", err).Panic("ledger_usecase.New failed")
	}
	if err := ledgerUseCase.Restore(context); err != nil {
		context.WithField("err", err).Panic("ledger.Restore failed")
	}

	// init auth
	signingMsg := viper.GetString("auth.signatureMsg")
	authUseCase := auth_usecase.New(&auth_usecase.AuthUseCaseCfg{
		JwtSecret:          viper.GetString("auth.jwtSecret"),
		SigningMsgTemplate: signingMsg,
		TokenTTL:           viper.GetDuration("auth.tokenTTL"),
		Nonces: cache.New(cache.ServiceConfig{
			Ttl:   viper.GetDuration("auth.nonceTTL"),
			Pfx:   keys.PfxNonce,
			Cache: cacheProvider,
		}),
	})
	authMiddleware := auth_middleware.New(authUseCase)

	hcUseCase := hc_usecase.New(hc_repo.New(mongoClient, cacheProvider))

	hc_delivery.New(e, hcUseCase)
	auth_delivery.New(e, authUseCase, signingMsg)
	ledger_delivery.New(e, ledgerUseCase, authMiddleware)

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
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}

	// in-flight requests are done, drain the events they published
	dispatcher.Close()
	if mongoClient != nil {
		if err := mongoClient.Disconnect(ctx); err != nil {
			log.Log().WithField("err", err).Error("mongoClient.Disconnect failed")
		}
	}
}

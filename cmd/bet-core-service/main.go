package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	bhttp "github.com/radieske/f1-bet-core-poc/internal/bet-core/http"
	"github.com/radieske/f1-bet-core-poc/internal/bet-core/producer"
	"github.com/radieske/f1-bet-core-poc/internal/bet-core/provider"
	"github.com/radieske/f1-bet-core-poc/internal/bet-core/service"
	"github.com/radieske/f1-bet-core-poc/internal/bet-core/store"
	"github.com/radieske/f1-bet-core-poc/internal/shared/cache"
	"github.com/radieske/f1-bet-core-poc/internal/shared/config"
	"github.com/radieske/f1-bet-core-poc/internal/shared/kafka"
	"github.com/radieske/f1-bet-core-poc/internal/shared/logger"
	"github.com/radieske/f1-bet-core-poc/internal/shared/metrics"

	"github.com/radieske/f1-bet-core-poc/internal/bet-core/domain"
)

// mathRand adapta o gerador global ao contrato de sorteio de odds.
type mathRand struct{}

func (mathRand) IntN(n int) int { return rand.IntN(n) }

func main() {
	cfg := config.Load()
	log, _ := logger.New(cfg.ServiceName, cfg.Env)
	defer log.Sync()

	startingBalance, err := domain.MoneyFromString(cfg.DefaultCurrency, cfg.StartingBalance)
	if err != nil {
		log.Fatal("starting balance", zap.Error(err))
	}

	// Stores em memória, versionados
	users := store.NewUsers(startingBalance)
	eventsStore := store.NewEvents()
	bets := store.NewBets()
	idem := store.NewIdempotency()

	// Provider de sessões/pilotos (stub local ou HTTP real)
	var prov provider.Provider
	switch cfg.ProviderMode {
	case "http":
		prov = provider.NewClient(cfg.ProviderBaseURL, cfg.ProviderTimeout)
	default:
		prov = provider.Stub{}
	}

	// Redis opcional: cache do provider
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = cache.ConnectRedis(cfg.RedisAddr)
		if err != nil {
			log.Fatal("redis", zap.Error(err))
		}
		prov = &provider.SessionCache{Inner: prov, R: rdb, TTL: cfg.ProviderCacheTTL}
	}

	// Kafka opcional: eventos bet_placed / bet_settled
	var publ service.Publisher = producer.Noop{}
	if cfg.KafkaBrokers != "" {
		placed := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetPlaced)
		settled := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetSettled)
		defer placed.Close()
		defer settled.Close()
		publ = producer.NewKafkaPublisher(placed, settled)
	}

	place := service.NewPlaceBet(log, users, eventsStore, bets, idem, publ)
	settle := service.NewRecordOutcome(log, eventsStore, bets, users, publ)
	list := service.NewListEvents(log, prov, eventsStore, mathRand{})
	balance := service.NewUserBalance(users)

	// metrics/health
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		if rdb != nil {
			return rdb.Ping(ctx).Err()
		}
		return nil
	})

	api := bhttp.NewServer(log, place, settle, list, balance, bets)
	addr := fmt.Sprintf(":%s", cfg.HTTPPort)
	log.Info("bet-core-service listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, api.Router()); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
}

package config

import (
	"os"
	"time"

	ctopics "github.com/radieske/f1-bet-core-poc/pkg/contracts/topics"
)

// Config centraliza variáveis de ambiente e parâmetros de execução do serviço
type Config struct {
	Env         string // "local", "dev", "prod"
	ServiceName string

	// Portas
	HTTPPort    string // API pública
	MetricsPort string // exclusiva para /metrics e /healthz

	// Provider de sessões/pilotos
	ProviderMode     string // "stub" | "http"
	ProviderBaseURL  string
	ProviderTimeout  time.Duration
	ProviderCacheTTL time.Duration

	// Integrações opcionais: vazio desabilita
	RedisAddr    string
	KafkaBrokers string // "a:9092,b:9092"

	// Tópicos
	TopicBetPlaced  string
	TopicBetSettled string

	// Ledger
	DefaultCurrency string
	StartingBalance string
}

// Load carrega variáveis de ambiente e define defaults
func Load() Config {
	return Config{
		Env:         getEnv("ENV", "local"),
		ServiceName: getEnv("SERVICE_NAME", "bet-core-service"),

		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		MetricsPort: getEnv("METRICS_PORT", "9095"),

		ProviderMode:     getEnv("PROVIDER_MODE", "stub"),
		ProviderBaseURL:  getEnv("PROVIDER_BASE_URL", "http://localhost:8081"),
		ProviderTimeout:  getDuration("PROVIDER_TIMEOUT", 2*time.Second),
		ProviderCacheTTL: getDuration("PROVIDER_CACHE_TTL", 30*time.Second),

		RedisAddr:    getEnv("REDIS_ADDR", ""),
		KafkaBrokers: getEnv("KAFKA_BROKERS", ""),

		TopicBetPlaced:  getEnv("KAFKA_TOPIC_BET_PLACED", ctopics.BetPlaced),
		TopicBetSettled: getEnv("KAFKA_TOPIC_BET_SETTLED", ctopics.BetSettled),

		DefaultCurrency: getEnv("DEFAULT_CURRENCY", "EUR"),
		StartingBalance: getEnv("STARTING_BALANCE", "100.00"),
	}
}

// getEnv retorna o valor da variável de ambiente ou o default
func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

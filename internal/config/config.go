package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
)

type config struct {
	Production     bool          `env:"PRODUCTION" envDefault:"false"`
	Port           string        `env:"PORT" envDefault:"80"`
	PostgresUrl    string        `env:"POSTGRES_URL,required"`
	RedisUrl       string        `env:"REDIS_URL" envDefault:"redis:6379"`
	JwtTTL         time.Duration `env:"TOKEN_TTL" envDefault:"20m"`
	Secret         string        `env:"SECRET,required"`
	CacheTTL       time.Duration `env:"CACHE_TTL" envDefault:"10m"`
	MigrateOnStart bool          `env:"MIGRATE_ON_START" envDefault:"true"`
}

var conf config

func init() {
	if err := env.Parse(&conf); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
}

func Production() bool {
	return conf.Production
}

func Port() string {
	return conf.Port
}

func PostgresURL() string {
	return conf.PostgresUrl
}

func RedisURL() string {
	return conf.RedisUrl
}

func JwtTTL() time.Duration {
	return conf.JwtTTL
}

func Secret() string {
	return conf.Secret
}

// CacheTTL is how long a habit stays in redis after it was read or written.
func CacheTTL() time.Duration {
	return conf.CacheTTL
}

func MigrateOnStart() bool {
	return conf.MigrateOnStart
}

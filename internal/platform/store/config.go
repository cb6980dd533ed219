package store

import (
	"time"

	"articlestats/internal/platform/config"
)

// Config aggregates per backend configuration
// every backend is optional; a backend without a URL or address stays disabled
type Config struct {
	// Role names the binary in ClickHouse client info, e.g. "api" or "pipeline"
	Role string

	PG  PGConfig
	CH  CHConfig
	RDS RedisConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectRetries int           // default 6
	PingTimeout    time.Duration // default 3s
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled     bool
	URL         string
	DialTimeout time.Duration
}

// RedisConfig configures redis connectivity
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// ConfigFromEnv reads SERVICE_PGSQL_*, SERVICE_CLICKHOUSE_* and SERVICE_REDIS_* from root
func ConfigFromEnv(root config.Conf, role string) Config {
	pg := root.Prefix("SERVICE_PGSQL_")
	ch := root.Prefix("SERVICE_CLICKHOUSE_")
	rds := root.Prefix("SERVICE_REDIS_")

	return Config{
		Role: role,
		PG: PGConfig{
			Enabled:        pg.Has("DBURL"),
			URL:            pg.MayString("DBURL", ""),
			MaxConns:       int32(pg.MayInt("MAX_CONNS", 4)),
			LogSQL:         pg.MayBool("LOG_SQL", false),
			SlowQueryMs:    pg.MayInt("SLOW_MS", 500),
			ConnectRetries: pg.MayInt("CONNECT_RETRIES", 6),
			PingTimeout:    pg.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
		CH: CHConfig{
			Enabled:     ch.Has("DBURL"),
			URL:         ch.MayString("DBURL", ""),
			DialTimeout: ch.MayDuration("DIAL_TIMEOUT", 5*time.Second),
		},
		RDS: RedisConfig{
			Enabled:  rds.Has("ADDR"),
			Addr:     rds.MayString("ADDR", ""),
			Password: rds.MayString("PASSWORD", ""),
			DB:       rds.MayInt("DB", 0),
		},
	}
}

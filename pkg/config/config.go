package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	Service      ServiceConfig
	DB           DBConfig
	Redis        RedisConfig
	FeatureFlags FeatureFlagsConfig
	Catalogue    CatalogueConfig
	GCP          GCPConfig
	PubSub       PubSubConfig
	Outbox       OutboxConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(cfg.FeatureFlags.UseSQLite); err != nil {
		return nil, err
	}
	if err := cfg.Catalogue.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CATALOGUE_APP_ENV" required:"true"`
	Port         string `envconfig:"CATALOGUE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"CATALOGUE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CATALOGUE_LOG_WARN_STACK" default:"false"`
	CORSOrigins  string `envconfig:"CATALOGUE_CORS_ORIGINS" default:"*"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

func (a AppConfig) IsTest() bool {
	return strings.EqualFold(a.Env, AppEnvTest)
}

// AllowedOrigins splits the comma separated CORS origin list.
func (a AppConfig) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(a.CORSOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

type ServiceConfig struct {
	Kind string `envconfig:"CATALOGUE_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"CATALOGUE_DB_DSN"`
	Driver string `envconfig:"CATALOGUE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"CATALOGUE_DB_HOST"`
	LegacyPort     int    `envconfig:"CATALOGUE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"CATALOGUE_DB_USER"`
	LegacyPassword string `envconfig:"CATALOGUE_DB_PASSWORD"`
	LegacyName     string `envconfig:"CATALOGUE_DB_NAME"`
	LegacySSLMode  string `envconfig:"CATALOGUE_DB_SSLMODE" default:"disable"`

	SQLitePath string `envconfig:"CATALOGUE_SQLITE_PATH" default:"catalogue.db"`

	MaxOpenConns    int           `envconfig:"CATALOGUE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"CATALOGUE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CATALOGUE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CATALOGUE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the configured driver targets sqlite.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DBDriverSQLite)
}

// RedisConfig is optional; an empty URL and address disable idempotency keys.
type RedisConfig struct {
	URL            string        `envconfig:"CATALOGUE_REDIS_URL"`
	Address        string        `envconfig:"CATALOGUE_REDIS_ADDR"`
	Password       string        `envconfig:"CATALOGUE_REDIS_PASSWORD"`
	DB             int           `envconfig:"CATALOGUE_REDIS_DB" default:"0"`
	PoolSize       int           `envconfig:"CATALOGUE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns   int           `envconfig:"CATALOGUE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout    time.Duration `envconfig:"CATALOGUE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout    time.Duration `envconfig:"CATALOGUE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout   time.Duration `envconfig:"CATALOGUE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type FeatureFlagsConfig struct {
	UseSQLite      bool `envconfig:"CATALOGUE_USE_SQLITE" default:"false"`
	AutoMigrate    bool `envconfig:"CATALOGUE_AUTO_MIGRATE" default:"false"`
	SeedCategories bool `envconfig:"CATALOGUE_FEATURE_SEED_CATEGORIES" default:"true"`
}

type CatalogueConfig struct {
	LotPolicy         string   `envconfig:"CATALOGUE_LOT_POLICY" default:"reassign"`
	CascadePolicy     string   `envconfig:"CATALOGUE_CASCADE_POLICY" default:"unified"`
	DefaultCategories []string `envconfig:"CATALOGUE_DEFAULT_CATEGORIES" default:"Castor Chairs,Desks/Tables,Soft Seating"`
}

func (c CatalogueConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(c.LotPolicy)) {
	case LotPolicyReassign, LotPolicyPreserve:
	default:
		return fmt.Errorf("%s must be one of %s, %s", EnvLotPolicy, LotPolicyReassign, LotPolicyPreserve)
	}
	switch strings.ToLower(strings.TrimSpace(c.CascadePolicy)) {
	case CascadePolicyUnified, CascadePolicyLegacy:
	default:
		return fmt.Errorf("%s must be one of %s, %s", EnvCascadePolicy, CascadePolicyUnified, CascadePolicyLegacy)
	}
	return nil
}

type GCPConfig struct {
	ProjectID              string `envconfig:"CATALOGUE_GCP_PROJECT_ID"`
	CredentialsJSON        string `envconfig:"CATALOGUE_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"CATALOGUE_GOOGLE_APPLICATION_CREDENTIALS"`
}

type PubSubConfig struct {
	CatalogueTopic string `envconfig:"CATALOGUE_PUBSUB_CATALOGUE_TOPIC" default:"catalogue-events"`
}

type OutboxConfig struct {
	BatchSize      int `envconfig:"CATALOGUE_OUTBOX_PUBLISH_BATCH_SIZE" default:"50"`
	PollIntervalMS int `envconfig:"CATALOGUE_OUTBOX_PUBLISH_POLL_MS" default:"500"`
	MaxAttempts    int `envconfig:"CATALOGUE_OUTBOX_MAX_ATTEMPTS" default:"10"`
}

func (db *DBConfig) ensureDSN(useSQLite bool) error {
	if useSQLite || db.IsSQLite() {
		db.Driver = DBDriverSQLite
		if db.DSN == "" {
			db.DSN = db.SQLitePath
		}
		return nil
	}
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}

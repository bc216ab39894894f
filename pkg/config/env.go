package config

const EnvPrefix = "CATALOGUE"

const (
	AppEnvDev  = "dev"
	AppEnvTest = "test"
	AppEnvProd = "prod"
)

const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)

const (
	LotPolicyReassign = "reassign"
	LotPolicyPreserve = "preserve"

	CascadePolicyUnified = "unified"
	CascadePolicyLegacy  = "legacy"
)

const (
	EnvAppEnv   = "CATALOGUE_APP_ENV"
	EnvPort     = "CATALOGUE_APP_PORT"
	EnvLogLevel = "CATALOGUE_LOG_LEVEL"

	EnvDBDSN      = "CATALOGUE_DB_DSN"
	EnvDBDriver   = "CATALOGUE_DB_DRIVER"
	EnvDBHost     = "CATALOGUE_DB_HOST"
	EnvDBUser     = "CATALOGUE_DB_USER"
	EnvDBName     = "CATALOGUE_DB_NAME"
	EnvUseSQLite  = "CATALOGUE_USE_SQLITE"
	EnvSQLitePath = "CATALOGUE_SQLITE_PATH"

	EnvRedisURL = "CATALOGUE_REDIS_URL"

	EnvLotPolicy         = "CATALOGUE_LOT_POLICY"
	EnvCascadePolicy     = "CATALOGUE_CASCADE_POLICY"
	EnvDefaultCategories = "CATALOGUE_DEFAULT_CATEGORIES"
	EnvSeedCategories    = "CATALOGUE_FEATURE_SEED_CATEGORIES"

	EnvGCPProjectID         = "CATALOGUE_GCP_PROJECT_ID"
	EnvPubSubCatalogueTopic = "CATALOGUE_PUBSUB_CATALOGUE_TOPIC"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

package config

// EnvPrefix scopes envconfig lookups so unrelated variables are ignored.
const EnvPrefix = "BREWLIST"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Environment variable names, kept in one place so tests and docs agree
// with the envconfig tags.
const (
	EnvAppEnv       = "BREWLIST_APP_ENV"
	EnvAppPort      = "BREWLIST_APP_PORT"
	EnvLogLevel     = "BREWLIST_LOG_LEVEL"
	EnvLogWarnStack = "BREWLIST_LOG_WARN_STACK"
	EnvDatabaseURL  = "DATABASE_URL"
	EnvDBDSN        = "BREWLIST_DB_DSN"
	EnvDBTLS        = "BREWLIST_DB_TLS"
	EnvClientDir    = "BREWLIST_CLIENT_DIR"
	EnvAutoMigrate  = "BREWLIST_AUTO_MIGRATE"
)

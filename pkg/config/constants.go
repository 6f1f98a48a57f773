package config

const (
	// EnvPrefix namespaces every environment variable the service reads.
	EnvPrefix = "TECHSTORE"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "TECHSTORE_DB_DSN"
	EnvDBHost = "TECHSTORE_DB_HOST"
	EnvDBUser = "TECHSTORE_DB_USER"
	EnvDBName = "TECHSTORE_DB_NAME"
)

var requiredDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

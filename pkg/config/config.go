package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	FeatureFlags FeatureFlagsConfig
	Pricing      PricingConfig
	Cart         CartConfig
	Shop         ShopConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if _, err := cfg.Pricing.TaxRate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"TECHSTORE_APP_ENV" required:"true"`
	Port         string `envconfig:"TECHSTORE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"TECHSTORE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"TECHSTORE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"TECHSTORE_DB_DSN"`
	Driver string `envconfig:"TECHSTORE_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"TECHSTORE_DB_HOST"`
	Port     int    `envconfig:"TECHSTORE_DB_PORT" default:"5432"`
	User     string `envconfig:"TECHSTORE_DB_USER"`
	Password string `envconfig:"TECHSTORE_DB_PASSWORD"`
	Name     string `envconfig:"TECHSTORE_DB_NAME"`
	SSLMode  string `envconfig:"TECHSTORE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"TECHSTORE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"TECHSTORE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"TECHSTORE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"TECHSTORE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"TECHSTORE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"TECHSTORE_REDIS_ADDR"`
	Password     string        `envconfig:"TECHSTORE_REDIS_PASSWORD"`
	DB           int           `envconfig:"TECHSTORE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"TECHSTORE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"TECHSTORE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"TECHSTORE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"TECHSTORE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"TECHSTORE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"TECHSTORE_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"TECHSTORE_JWT_ISSUER" default:"techstore"`
	ExpirationMinutes int    `envconfig:"TECHSTORE_JWT_EXPIRATION_MINUTES" default:"60"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"TECHSTORE_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"TECHSTORE_AUTO_MIGRATE" default:"false"`
}

// PricingConfig feeds the default tax/shipping/discount rules the HTTP layer
// hands to the pricing aggregator.
type PricingConfig struct {
	TaxRatePercent        string `envconfig:"TECHSTORE_PRICING_TAX_RATE_PERCENT" default:"20"`
	FreeShippingThreshold string `envconfig:"TECHSTORE_PRICING_FREE_SHIPPING_THRESHOLD" default:"500"`
	StandardShippingPrice string `envconfig:"TECHSTORE_PRICING_STANDARD_SHIPPING" default:"10.00"`
	ExpressShippingPrice  string `envconfig:"TECHSTORE_PRICING_EXPRESS_SHIPPING" default:"25.00"`
}

// TaxRate parses the configured percentage into a decimal fraction.
func (p PricingConfig) TaxRate() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(p.TaxRatePercent)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid tax rate %q: %w", p.TaxRatePercent, err)
	}
	return rate.Div(decimal.NewFromInt(100)), nil
}

type CartConfig struct {
	TTL time.Duration `envconfig:"TECHSTORE_CART_TTL" default:"720h"`
}

type ShopConfig struct {
	Name         string `envconfig:"TECHSTORE_SHOP_NAME" default:"TechStore"`
	Description  string `envconfig:"TECHSTORE_SHOP_DESCRIPTION" default:"Your trusted electronics store"`
	LogoURL      string `envconfig:"TECHSTORE_SHOP_LOGO_URL" default:"https://example.com/logo.png"`
	FaviconURL   string `envconfig:"TECHSTORE_SHOP_FAVICON_URL" default:"https://example.com/favicon.ico"`
	ContactEmail string `envconfig:"TECHSTORE_SHOP_CONTACT_EMAIL" default:"support@techstore.com"`
	ContactPhone string `envconfig:"TECHSTORE_SHOP_CONTACT_PHONE" default:"+1234567890"`
	Address      string `envconfig:"TECHSTORE_SHOP_ADDRESS" default:"456 Commerce St, Tech City, TC 12345"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	values := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range requiredDBEnvVars {
		if values[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "FENIX"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "FENIX_DB_DSN"
	EnvDBHost = "FENIX_DB_HOST"
	EnvDBUser = "FENIX_DB_USER"
	EnvDBName = "FENIX_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App  AppConfig
	DB   DBConfig
	CORS CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FENIX_APP_ENV" required:"true"`
	Port         string `envconfig:"FENIX_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"FENIX_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FENIX_LOG_WARN_STACK" default:"false"`
	AutoMigrate  bool   `envconfig:"FENIX_AUTO_MIGRATE" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"FENIX_DB_DSN"`

	LegacyHost     string `envconfig:"FENIX_DB_HOST"`
	LegacyPort     int    `envconfig:"FENIX_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"FENIX_DB_USER"`
	LegacyPassword string `envconfig:"FENIX_DB_PASSWORD"`
	LegacyName     string `envconfig:"FENIX_DB_NAME"`
	LegacySSLMode  string `envconfig:"FENIX_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"FENIX_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"FENIX_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"FENIX_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"FENIX_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"FENIX_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

func (db *DBConfig) ensureDSN() error {
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

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Sign-in
	Auth AuthConfig

	// Progress store
	Store     StoreConfig
	Firestore FirestoreConfig
	SQLite    SQLiteConfig

	// Catalog resources
	Catalog CatalogConfig
	Minio   MinioConfig

	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type AuthConfig struct {
	Google        GoogleConfig
	SessionTTL    time.Duration
	MaxSessions   int
	CookieName    string
	CookieDomain  string
	CookieSecure  bool
	LoginRedirect string // Where the browser lands after sign-in
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Configured reports whether both client credentials are present.
func (g GoogleConfig) Configured() bool {
	return g.ClientID != "" && g.ClientSecret != ""
}

const (
	StoreDriverFirestore = "firestore"
	StoreDriverSQLite    = "sqlite"

	CatalogSourceDir   = "dir"
	CatalogSourceMinio = "minio"
)

type StoreConfig struct {
	Driver string // firestore | sqlite
}

type FirestoreConfig struct {
	ProjectID       string
	DatabaseID      string
	CredentialsPath string
	Endpoint        string // Emulator or proxy base URL
}

type SQLiteConfig struct {
	Path string
}

type CatalogConfig struct {
	Source    string // dir | minio
	Dir       string
	CacheSize int
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

type RateLimitConfig struct {
	TogglePerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Sign-in
	cfg.Auth.Google.ClientID = viper.GetString("auth.google.client_id")
	cfg.Auth.Google.ClientSecret = viper.GetString("auth.google.client_secret")
	cfg.Auth.Google.RedirectURL = viper.GetString("auth.google.redirect_url")
	if id := viper.GetString("google_client_id"); id != "" {
		cfg.Auth.Google.ClientID = id
	}
	if secret := viper.GetString("google_client_secret"); secret != "" {
		cfg.Auth.Google.ClientSecret = secret
	}
	cfg.Auth.SessionTTL = viper.GetDuration("auth.session_ttl")
	cfg.Auth.MaxSessions = viper.GetInt("auth.max_sessions")
	cfg.Auth.CookieName = viper.GetString("auth.cookie_name")
	cfg.Auth.CookieDomain = viper.GetString("auth.cookie_domain")
	cfg.Auth.CookieSecure = viper.GetBool("auth.cookie_secure")
	cfg.Auth.LoginRedirect = viper.GetString("auth.login_redirect")

	// Progress store
	cfg.Store.Driver = viper.GetString("store.driver")
	cfg.Firestore.ProjectID = viper.GetString("firestore.project_id")
	cfg.Firestore.DatabaseID = viper.GetString("firestore.database_id")
	cfg.Firestore.CredentialsPath = viper.GetString("firestore.credentials_path")
	cfg.Firestore.Endpoint = viper.GetString("firestore.endpoint")
	if creds := viper.GetString("firestore_credentials"); creds != "" {
		cfg.Firestore.CredentialsPath = creds
	}
	cfg.SQLite.Path = viper.GetString("sqlite.path")

	// Catalog
	cfg.Catalog.Source = viper.GetString("catalog.source")
	cfg.Catalog.Dir = viper.GetString("catalog.dir")
	cfg.Catalog.CacheSize = viper.GetInt("catalog.cache_size")
	cfg.Minio.Endpoint = viper.GetString("minio.endpoint")
	cfg.Minio.AccessKey = viper.GetString("minio.access_key")
	cfg.Minio.SecretKey = viper.GetString("minio.secret_key")
	cfg.Minio.Bucket = viper.GetString("minio.bucket")
	cfg.Minio.Prefix = viper.GetString("minio.prefix")
	cfg.Minio.UseSSL = viper.GetBool("minio.use_ssl")
	if secret := viper.GetString("minio_secret_key"); secret != "" {
		cfg.Minio.SecretKey = secret
	}

	cfg.RateLimit.TogglePerMin = viper.GetInt("ratelimit.toggle_per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreDriverFirestore:
		if c.Firestore.ProjectID == "" {
			return fmt.Errorf("firestore.project_id is required for store.driver=%s", StoreDriverFirestore)
		}
	case StoreDriverSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("sqlite.path is required for store.driver=%s", StoreDriverSQLite)
		}
	default:
		return fmt.Errorf("unknown store.driver %q", c.Store.Driver)
	}

	switch c.Catalog.Source {
	case CatalogSourceDir:
		if c.Catalog.Dir == "" {
			return fmt.Errorf("catalog.dir is required for catalog.source=%s", CatalogSourceDir)
		}
	case CatalogSourceMinio:
		if c.Minio.Endpoint == "" || c.Minio.Bucket == "" {
			return fmt.Errorf("minio.endpoint and minio.bucket are required for catalog.source=%s", CatalogSourceMinio)
		}
	default:
		return fmt.Errorf("unknown catalog.source %q", c.Catalog.Source)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("auth.google.redirect_url", "http://localhost:8080/auth/callback")
	viper.SetDefault("auth.session_ttl", "720h")
	viper.SetDefault("auth.max_sessions", 10000)
	viper.SetDefault("auth.cookie_name", "ledger_session")
	viper.SetDefault("auth.cookie_secure", false)
	viper.SetDefault("auth.login_redirect", "/")

	viper.SetDefault("store.driver", StoreDriverSQLite)
	viper.SetDefault("firestore.database_id", "(default)")
	viper.SetDefault("sqlite.path", "data/ledger.db")

	viper.SetDefault("catalog.source", CatalogSourceDir)
	viper.SetDefault("catalog.dir", "public/resources")
	viper.SetDefault("catalog.cache_size", 256)
	viper.SetDefault("minio.prefix", "resources/")

	viper.SetDefault("ratelimit.toggle_per_min", 120)
}

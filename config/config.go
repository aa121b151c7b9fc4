// Package config loads runtime configuration from the environment.
// File: config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// InsecureDefaultSecret is the signing secret earlier deployments fell back
// to when JWT_SECRET was unset. It is rejected at startup.
const InsecureDefaultSecret = "your-secret-key-change-this"

const (
	AssetHostCloudinary = "cloudinary"
	AssetHostS3         = "s3"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds every setting the server and CLI read at startup.
type Config struct {
	Env      string `yaml:"env" env:"ENV" env-default:"development"`
	HTTPAddr string `yaml:"http_addr" env:"HTTP_ADDR" env-default:":8080"`
	LogDir   string `yaml:"log_dir" env:"LOG_DIR"`

	ApplicationURL string   `yaml:"application_url" env:"APPLICATION_URL" env-default:"http://localhost:8080"`
	CORSOrigins    []string `yaml:"cors_origins" env:"CORS_ORIGINS" env-separator:","`

	Database Database `yaml:"database"`
	Auth     Auth     `yaml:"auth"`
	Assets   Assets   `yaml:"assets"`
	Metrics  Metrics  `yaml:"metrics"`
}

type Database struct {
	Driver string `yaml:"driver" env:"DATABASE_DRIVER" env-default:"sqlite"`
	URL    string `yaml:"url" env:"DATABASE_URL" env-default:"xtrnia.db"`
}

type Auth struct {
	JWTSecret    string        `yaml:"jwt_secret" env:"JWT_SECRET"`
	TokenTTL     time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"24h"`
	CookieSecure bool          `yaml:"cookie_secure" env:"COOKIE_SECURE" env-default:"false"`
}

type Assets struct {
	Host            string `yaml:"host" env:"ASSET_HOST" env-default:"cloudinary"`
	Folder          string `yaml:"folder" env:"ASSET_FOLDER" env-default:"xtrnia"`
	CloudinaryURL   string `yaml:"cloudinary_url" env:"CLOUDINARY_URL"`
	AWSRegion       string `yaml:"aws_region" env:"AWS_REGION" env-default:"ap-south-1"`
	S3Bucket        string `yaml:"s3_bucket" env:"S3_BUCKET"`
	S3PublicBaseURL string `yaml:"s3_public_base_url" env:"S3_PUBLIC_BASE_URL"`
}

type Metrics struct {
	Enabled   bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"false"`
	Namespace string `yaml:"namespace" env:"METRICS_NAMESPACE" env-default:"Xtrnia"`
}

// IsProduction reports whether the process runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads .env (if present), then either the YAML file named by
// CONFIG_PATH overlaid with environment variables, or the environment alone.
// The returned config has passed Validate.
func Load() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read environment: %w", err)
	}

	if cfg.IsProduction() {
		cfg.Auth.CookieSecure = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the server must not start with.
func (c *Config) Validate() error {
	secret := strings.TrimSpace(c.Auth.JWTSecret)
	switch {
	case secret == "":
		return errors.New("JWT_SECRET must be set")
	case secret == InsecureDefaultSecret:
		return errors.New("JWT_SECRET is set to the insecure default; choose a real secret")
	}

	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.Database.Driver)
	}

	switch c.Assets.Host {
	case AssetHostCloudinary:
		if c.Assets.CloudinaryURL == "" {
			return errors.New("CLOUDINARY_URL must be set when ASSET_HOST=cloudinary")
		}
	case AssetHostS3:
		if c.Assets.S3Bucket == "" {
			return errors.New("S3_BUCKET must be set when ASSET_HOST=s3")
		}
	default:
		return fmt.Errorf("unsupported ASSET_HOST %q", c.Assets.Host)
	}

	return nil
}

// LoadDatabase reads only what the provisioning CLI needs: the database
// settings. It does not require a signing secret or asset credentials.
func LoadDatabase() (*Database, error) {
	_ = godotenv.Load()

	var db Database
	if err := cleanenv.ReadEnv(&db); err != nil {
		return nil, fmt.Errorf("cannot read environment: %w", err)
	}
	return &db, nil
}

package config

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

type DatabaseConfig struct {
	Driver       string `env:"DB_DRIVER" envDefault:"postgres"` // postgres, mysql or sqlite
	URL          string `env:"DB_URL"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"20"`
	MaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
}

type R2Config struct {
	AccountID       string `env:"R2_ACCOUNT_ID"`
	AccessKeyID     string `env:"R2_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"R2_SECRET_ACCESS_KEY"`
	BucketName      string `env:"R2_BUCKET_NAME"`
	Region          string `env:"R2_REGION" envDefault:"auto"`
	// Endpoint overrides the account-derived Cloudflare endpoint, e.g. for AWS S3.
	Endpoint string `env:"R2_ENDPOINT"`
}

type MinioConfig struct {
	Endpoint        string `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"`
	AccessKeyID     string `env:"MINIO_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"MINIO_SECRET_ACCESS_KEY"`
	BucketName      string `env:"MINIO_BUCKET_NAME"`
	Region          string `env:"MINIO_REGION" envDefault:"us-east-1"`
	UseSSL          bool   `env:"MINIO_USE_SSL" envDefault:"false"`
}

type StorageConfig struct {
	Driver        string        `env:"STORAGE_DRIVER" envDefault:"r2"` // r2 or minio
	PublicBaseURL string        `env:"STORAGE_PUBLIC_BASE_URL"`
	UploadURLTTL  time.Duration `env:"UPLOAD_URL_TTL" envDefault:"15m"`
	DefaultDir    string        `env:"UPLOAD_DEFAULT_DIR" envDefault:"uploads"`
	R2            R2Config
	Minio         MinioConfig
}

type GoogleConfig struct {
	ClientID     string `env:"GOOGLE_CLIENT_ID"`
	ClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	RedirectURL  string `env:"GOOGLE_REDIRECT_URL" envDefault:"http://localhost:8080/api/v1/auth/google/callback"`
}

type LogConfig struct {
	Level      string `env:"LOG_LEVEL" envDefault:"info"`
	Format     string `env:"LOG_FORMAT" envDefault:"json"` // json or text
	File       string `env:"LOG_FILE"`
	MaxSize    int    `env:"LOG_MAX_SIZE_MB" envDefault:"128"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"5"`
	MaxAge     int    `env:"LOG_MAX_AGE_DAYS" envDefault:"16"`
	Compress   bool   `env:"LOG_COMPRESS" envDefault:"false"`
}

type RateLimitConfig struct {
	RPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	Burst int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
}

type Config struct {
	Port        string        `env:"PORT" envDefault:"8080"`
	Environment string        `env:"ENV" envDefault:"development"`
	JWTSecret   string        `env:"JWT_SECRET" envDefault:"not-so-secret-now-is-it?"`
	JWTTTL      time.Duration `env:"JWT_TTL" envDefault:"24h"`
	FrontendURL string        `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`
	CorsOrigins []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
	// TrustedProxies are CIDRs or addresses whose X-Forwarded-For / X-Real-IP headers are honoured.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
	// StrictOwnership restricts position updates and tag attachment to the file owner.
	StrictOwnership bool `env:"FILES_STRICT_OWNERSHIP" envDefault:"true"`

	DB        DatabaseConfig
	Storage   StorageConfig
	Google    GoogleConfig
	Log       LogConfig
	RateLimit RateLimitConfig
}

// Load reads the env file (if any) and parses the process environment.
func Load() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("No", envFile, "file found")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) CorsOptions() cors.Options {
	return cors.Options{
		AllowedOrigins:   c.CorsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
}

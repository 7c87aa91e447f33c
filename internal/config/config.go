package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Configはアプリ全体の設定。環境変数から読む。
type Config struct {
	Port  string `env:"PORT" envDefault:"8080"`
	GoEnv string `env:"GO_ENV" envDefault:"development"`

	// DATABASE_URLがあれば個別のPOSTGRES_*より優先される
	DatabaseURL      string `env:"DATABASE_URL"`
	PostgresHost     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser     string `env:"POSTGRES_USER" envDefault:"postgres"`
	PostgresPassword string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	PostgresDB       string `env:"POSTGRES_DB" envDefault:"campusmarket"`
	PostgresSSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret string `env:"JWT_SECRET"`

	Flutterwave Flutterwave `envPrefix:"FLUTTERWAVE_"`

	// フロントURL（CORSで使う）
	FEURL string `env:"FE_URL" envDefault:"http://localhost:3000"`
}

type Flutterwave struct {
	PublicKey  string `env:"PUBLIC_KEY"`
	SecretKey  string `env:"SECRET_KEY"`
	BaseAPIURL string `env:"BASE_API_URL" envDefault:"https://api.flutterwave.com"`
}

// Loadは環境変数を読み、必須項目を検証する。
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

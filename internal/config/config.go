package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Env          string
	Port         string
	Database     Database
	RedisURL     string
	JWTSecret    string
	JWTTTL       time.Duration
	ClientURL    string
	RollbarToken string
	CodeVersion  string
}

type Database struct {
	Driver string
	DSN    string
}

// Load подгружает все существующие envFiles по порядку и собирает Config.
// Значение из более раннего файла не перетирается, переменные окружения важнее файлов.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, "stat %s", f)
		}
		if err := godotenv.Load(f); err != nil {
			return nil, errors.Wrapf(err, "load %s", f)
		}
	}

	v := viper.New()
	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	v.SetDefault("JWT_TTL", 24*time.Hour)
	v.SetDefault("CLIENT_URL", "http://localhost:5173")
	v.SetDefault("CODE_VERSION", "dev")
	v.AutomaticEnv()

	cfg := &Config{
		Env:  v.GetString("ENV"),
		Port: v.GetString("PORT"),
		Database: Database{
			Driver: v.GetString("DB_DRIVER"),
			DSN:    v.GetString("DATABASE_URL"),
		},
		RedisURL:     v.GetString("REDIS_URL"),
		JWTSecret:    v.GetString("JWT_SECRET"),
		JWTTTL:       v.GetDuration("JWT_TTL"),
		ClientURL:    v.GetString("CLIENT_URL"),
		RollbarToken: v.GetString("ROLLBAR_TOKEN"),
		CodeVersion:  v.GetString("CODE_VERSION"),
	}

	if cfg.Database.DSN == "" && cfg.Database.Driver == "sqlite" {
		cfg.Database.DSN = "classlink.db"
	}

	switch {
	case cfg.Database.DSN == "":
		return nil, errors.New("DATABASE_URL is not set")
	case cfg.JWTSecret == "":
		return nil, errors.New("JWT_SECRET is not set")
	case cfg.JWTTTL <= 0:
		return nil, errors.New("JWT_TTL must be positive")
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

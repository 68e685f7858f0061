package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Session SessionConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	MigrationsDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret string
	Expiry time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	sessionExpiry, err := time.ParseDuration(viper.GetString("SESSION_EXPIRY"))
	if err != nil {
		sessionExpiry = 7 * 24 * time.Hour
	}

	migrationsDir := viper.GetString("DB_MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "db/migrations"
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:          viper.GetString("DB_HOST"),
			Port:          viper.GetString("DB_PORT"),
			User:          viper.GetString("DB_USER"),
			Password:      viper.GetString("DB_PASSWORD"),
			Name:          viper.GetString("DB_NAME"),
			MigrationsDir: migrationsDir,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			Secret: viper.GetString("SESSION_SECRET"),
			Expiry: sessionExpiry,
		},
	}

	return config, nil
}

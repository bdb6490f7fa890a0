package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log      Logger         `mapstructure:"logger"`
	DB       Database       `mapstructure:"database"`
	API      API            `mapstructure:"api"`
	Cache    Cache          `mapstructure:"cache"`
	Telegram TelegramConfig `mapstructure:"telegram"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type Database struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"name"`
	SSLMode         string `mapstructure:"ssl_mode"`
	TimeZone        string `mapstructure:"time_zone"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime string `mapstructure:"conn_max_lifetime"`
	LogLevel        string `mapstructure:"log_level"`
}

type API struct {
	Port int `mapstructure:"port"`
}

type Cache struct {
	DefaultExpiration  time.Duration `mapstructure:"default_expiration"`
	CleanupInterval    time.Duration `mapstructure:"cleanup_interval"`
	BotStateExpiration time.Duration `mapstructure:"bot_state_expiration"`
}

type TelegramConfig struct {
	BotToken        string        `mapstructure:"bot_token"`
	PollTimeout     time.Duration `mapstructure:"poll_timeout"`
	TimeoutDuration time.Duration `mapstructure:"timeout_duration"`
}

func Load() (*Config, error) {
	// .env is optional, real deployments inject env vars directly
	_ = godotenv.Load()

	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("api.port", 3000)
	viper.SetDefault("cache.default_expiration", 5*time.Minute)
	viper.SetDefault("cache.cleanup_interval", 10*time.Minute)
	viper.SetDefault("cache.bot_state_expiration", 5*time.Minute)
	viper.SetDefault("telegram.poll_timeout", 10*time.Second)
	viper.SetDefault("telegram.timeout_duration", 30*time.Second)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

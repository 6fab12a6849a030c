package config

import (
	"github.com/spf13/viper"

	"github.com/moyu-x/file-organizer/internal"
)

type CategoryConfig struct {
	Name       string   `mapstructure:"name"`
	Extensions []string `mapstructure:"extensions"`
}

type Config struct {
	Organizer struct {
		// 冲突处理策略: fail 或 rename
		Collision string
		// 分类表，留空时使用内置默认表
		Categories []CategoryConfig
	}
	Report struct {
		HighThreshold   float64 `mapstructure:"high_threshold"`
		MediumThreshold float64 `mapstructure:"medium_threshold"`
	}
	Weather struct {
		BaseURL   string `mapstructure:"base_url"`
		APIKey    string `mapstructure:"api_key"`
		Units     string
		CachePath string `mapstructure:"cache_path"`
		CacheTTL  int    `mapstructure:"cache_ttl"`
		Workers   int
	}
	Logging struct {
		Level string
		File  string
	}
}

var cfg Config

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath("$HOME/.file-organizer")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/file-organizer")

	viper.SetDefault("organizer.collision", "fail")
	viper.SetDefault("report.high_threshold", 100000)
	viper.SetDefault("report.medium_threshold", 50000)
	viper.SetDefault("weather.base_url", "https://api.openweathermap.org/data/2.5/weather")
	viper.SetDefault("weather.units", "metric")
	viper.SetDefault("weather.cache_path", internal.DefaultCachePath)
	viper.SetDefault("weather.cache_ttl", 10)
	viper.SetDefault("weather.workers", internal.DefaultWeatherWorkers)
	viper.SetDefault("logging.level", "info")

	// API key 不应写死在配置文件里，允许从环境变量读取
	viper.SetEnvPrefix("FILE_ORGANIZER")
	if err := viper.BindEnv("weather.api_key", "FILE_ORGANIZER_API_KEY"); err != nil {
		return nil, err
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func Get() *Config {
	return &cfg
}

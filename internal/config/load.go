package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultGitHubAPI         = "https://api.github.com"
	DefaultGitHubTimeout     = 10 * time.Second
	DefaultRequestsPerMinute = 60
	DefaultProfileTTL        = 10 * time.Minute
	DefaultNotFoundTTL       = time.Minute
	DefaultHistoryLimit      = 50
)

// SetDefaults registers fallbacks for keys missing from app.yaml.
func SetDefaults() {
	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.mode", "release")
	viper.SetDefault("github.api", DefaultGitHubAPI)
	viper.SetDefault("github.timeout", DefaultGitHubTimeout)
	viper.SetDefault("github.requests-per-minute", DefaultRequestsPerMinute)
	viper.SetDefault("cache.profile-ttl", DefaultProfileTTL)
	viper.SetDefault("cache.not-found-ttl", DefaultNotFoundTTL)
	viper.SetDefault("history.limit", DefaultHistoryLimit)
}

func DB() DBConfig {
	return DBConfig{
		Username: os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		DBName:   os.Getenv("POSTGRES_DATABASE"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
}

func GitHub() GitHubConfig {
	return GitHubConfig{
		APIURL:            viper.GetString("github.api"),
		Token:             os.Getenv("GITHUB_TOKEN"),
		Timeout:           viper.GetDuration("github.timeout"),
		RequestsPerMinute: viper.GetInt("github.requests-per-minute"),
	}
}

func Cache() CacheConfig {
	return CacheConfig{
		ProfileTTL:  viper.GetDuration("cache.profile-ttl"),
		NotFoundTTL: viper.GetDuration("cache.not-found-ttl"),
	}
}

func History() HistoryConfig {
	return HistoryConfig{
		Limit: viper.GetInt("history.limit"),
	}
}

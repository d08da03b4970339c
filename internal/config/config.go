package config

import (
	"net"
	"net/http"
	"net/url"
	"time"
)

type ServerConfig struct {
	Port           string
	Handler        http.Handler
	MaxHeaderBytes int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

type DBConfig struct {
	Username string
	Password string
	Host     string
	Port     string
	DBName   string
	SSLMode  string
}

// Enabled reports whether a postgres host was configured.
func (c DBConfig) Enabled() bool {
	return c.Host != ""
}

func (c DBConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Username, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return dsn.String()
}

type GitHubConfig struct {
	APIURL            string
	Token             string
	Timeout           time.Duration
	RequestsPerMinute int
}

type CacheConfig struct {
	ProfileTTL  time.Duration
	NotFoundTTL time.Duration
}

type HistoryConfig struct {
	Limit int
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BloggingApp/profile-service/internal/config"
	"github.com/BloggingApp/profile-service/internal/github"
	"github.com/BloggingApp/profile-service/internal/handler"
	"github.com/BloggingApp/profile-service/internal/repository"
	"github.com/BloggingApp/profile-service/internal/repository/postgres"
	"github.com/BloggingApp/profile-service/internal/server"
	"github.com/BloggingApp/profile-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := loadEnv(); err != nil {
		logger.Sugar().Warnf("no .env file loaded: %s", err.Error())
	}

	if err := initConfig(); err != nil {
		logger.Sugar().Panicf("failed to initialize yaml config: %s", err.Error())
	}

	gin.SetMode(viper.GetString("app.mode"))

	var db *pgxpool.Pool
	if dbConfig := config.DB(); dbConfig.Enabled() {
		pool, err := postgres.DB(ctx, dbConfig)
		if err != nil {
			logger.Sugar().Panicf("failed to connect to postgres: %s", err.Error())
		}
		if err := pool.Ping(ctx); err != nil {
			logger.Sugar().Panicf("failed to ping postgres: %s", err.Error())
		}
		defer pool.Close()
		db = pool
		logger.Info("Successfully connected to PostgreSQL, lookup history enabled")
	} else {
		logger.Info("POSTGRES_HOST not set, lookup history disabled")
	}

	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr: addr,
		})
		pong, err := rdb.Ping(ctx).Result()
		if err != nil {
			logger.Sugar().Panicf("failed to ping redis: %s", err.Error())
		}
		defer rdb.Close()
		logger.Sugar().Infof("Successfully connected to Redis: %s, profile cache enabled", pong)
	} else {
		logger.Info("REDIS_ADDR not set, profile cache disabled")
	}

	githubConfig := config.GitHub()
	githubClient := github.NewClient(githubConfig, &http.Client{
		Timeout: githubConfig.Timeout,
	})

	repos := repository.New(db, rdb)
	services := service.New(logger, repos, githubClient, config.Cache(), config.History())
	handlers := handler.New(services, logger, handler.Config{
		AllowOrigin:  viper.GetString("client.origin"),
		AccessSecret: []byte(os.Getenv("ACCESS_SECRET")),
	})

	srv := server.New(config.ServerConfig{
		Port:           viper.GetString("app.port"),
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second * 10,
		WriteTimeout:   githubConfig.Timeout + time.Second*10,
	})
	go func() {
		if err := srv.Run(); err != nil {
			logger.Sugar().Panicf("failed to run http server: %s", err.Error())
		}
	}()

	logger.Sugar().Infof("Server started on port %s", viper.GetString("app.port"))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shut down http server: %s", err.Error())
	}
}

func loadEnv() error {
	return godotenv.Load()
}

func initConfig() error {
	config.SetDefaults()
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	return viper.ReadInConfig()
}

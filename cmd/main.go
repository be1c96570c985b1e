package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"reclamations/backend/internal/api/handler"
	"reclamations/backend/internal/api/middleware"
	"reclamations/backend/internal/config"
	"reclamations/backend/internal/logger"
	"reclamations/backend/internal/models"
	"reclamations/backend/internal/notify"
	"reclamations/backend/internal/qrcode"
	"reclamations/backend/internal/reclamation"
	"reclamations/backend/internal/storage"
)

func setupDependencies(cfg *config.Config, zlog *zap.Logger) (*gorm.DB, *redis.Client) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
	if err != nil {
		zlog.Fatal("failed to connect PostgreSQL", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		zlog.Fatal("failed to connect Redis", zap.Error(err))
	}

	if err := db.AutoMigrate(&models.Reclamation{}); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}

	zlog.Info("database and Redis connections established, migrations complete")
	return db, rdb
}

func buildSenders(cfg *config.Config, zlog *zap.Logger) []notify.Sender {
	senders := []notify.Sender{
		notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom),
	}
	if cfg.TelegramToken != "" {
		sink, err := notify.NewTelegramSink(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			zlog.Warn("telegram sink disabled", zap.Error(err))
		} else {
			senders = append(senders, sink)
		}
	}
	return senders
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	zlog, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	zlog.Info("starting reclamation service", zap.String("addr", cfg.HTTPAddr))

	db, rdb := setupDependencies(cfg, zlog)
	store := storage.NewService(db, rdb, zlog)

	svc := reclamation.NewService(store, zlog)
	svc.NotifyOnCreate = cfg.NotifyOnCreate

	qr, err := qrcode.NewGenerator(svc, cfg.QRBaseURL, cfg.QRDir, cfg.QRSize)
	if err != nil {
		zlog.Fatal("failed to set up qr generator", zap.Error(err))
	}

	// Notification delivery runs detached from requests; the Redis
	// queue decouples it from the operations that enqueue.
	worker := notify.NewWorker(store, buildSenders(cfg, zlog), zlog)
	go worker.Run(context.Background())

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(zlog), middleware.Metrics(), gin.Recovery())

	h := handler.NewHandler(svc, qr, zlog)
	h.Register(r)

	server := &http.Server{
		Addr:           cfg.HTTPAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	zlog.Fatal("server stopped", zap.Error(server.ListenAndServe()))
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cablemart/admin-api/internal/auth"
	"github.com/cablemart/admin-api/internal/catalog"
	"github.com/cablemart/admin-api/internal/config"
	"github.com/cablemart/admin-api/internal/content"
	"github.com/cablemart/admin-api/internal/httpx"
	"github.com/cablemart/admin-api/internal/inventory"
	kafkax "github.com/cablemart/admin-api/internal/kafka"
	"github.com/cablemart/admin-api/internal/logx"
	"github.com/cablemart/admin-api/internal/notify"
	"github.com/cablemart/admin-api/internal/orders"
	"github.com/cablemart/admin-api/internal/postgres"
	"github.com/cablemart/admin-api/internal/redisx"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logx.New(cfg.ServiceName)
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal("db connect", zap.Error(err))
	}
	defer db.Close()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer for status-change events
	prod := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderStatusChanged, 1024, log)
	prod.Start(ctx)

	// services
	authSvc := &auth.Service{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Code:     cfg.AdminCode,
		TTL:      cfg.SessionTTL,
		Sessions: &auth.RedisSessions{R: rdb},
	}
	orderSvc := &orders.Service{
		Orders:  &orders.Repo{DB: db},
		Stock:   &inventory.Store{DB: db},
		Notify:  notify.NewDispatcher(cfg.NotifyBaseURL, log),
		Events:  prod,
		Service: cfg.ServiceName,
		Log:     log,
	}

	// router
	router := httpx.NewRouter()
	ah := &httpx.AuthHandler{Auth: authSvc}
	ah.Register(router)
	router.Group(func(r chi.Router) {
		r.Use(ah.RequireSession)
		(&httpx.OrdersHandler{Svc: orderSvc, Redis: rdb}).Register(r)
		(&httpx.CatalogHandler{Repo: &catalog.Repo{DB: db}}).Register(r)
		(&httpx.ContentHandler{Repo: &content.Repo{DB: db}}).Register(r)
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Info("HTTP listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close() // stop intake, flush what is buffered
	prod.WaitClosed()
}

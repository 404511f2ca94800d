package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/askhat/gostore/internal/auth"
	"github.com/askhat/gostore/internal/config"
	"github.com/askhat/gostore/internal/logger"
	"github.com/askhat/gostore/internal/presigned"
	"github.com/askhat/gostore/internal/server"
	"github.com/askhat/gostore/internal/storage"
	"github.com/askhat/gostore/internal/store"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logg, err := logger.Init()
	if err != nil {
		panic("init logger: " + err.Error())
	}
	defer logg.Sync()

	cfg, err := config.Load()
	if err != nil {
		logg.Fatal("load config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gcsClient, err := storage.NewGCSClient(ctx, cfg.GCS)
	if err != nil {
		logg.Fatal("connect gcs", zap.Error(err))
	}
	defer gcsClient.Close()

	gcsStore := store.NewGCSStore(gcsClient, cfg.GCS.Bucket)

	storeService, err := store.NewService(ctx, gcsStore, cfg.GCS.Bucket, store.Options{
		DefaultUserID:           cfg.GCS.DefaultUserID,
		AllowPublicAccess:       cfg.GCS.AllowPublicAccess,
		ValidateBucketOnStartup: cfg.GCS.ValidateBucketOnStartup,
	}, logg)
	if err != nil {
		logg.Fatal("validate bucket", zap.Error(err))
	}

	authService := auth.NewService(cfg.Auth)
	presignedHandler := presigned.NewHandler(
		presigned.NewService(gcsStore, cfg.GCS.Bucket, cfg.GCS.SignedURLTTL),
	)

	router := server.NewRouter(server.Dependencies{
		Config:           cfg,
		StoreService:     storeService,
		AuthService:      authService,
		PresignedHandler: presignedHandler,
	})

	httpServer := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logg.Info("gostore API listening", zap.String("address", cfg.Server.Address()))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Fatal("http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logg.Info("shutting down gracefully")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logg.Error("shutdown error", zap.Error(err))
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	authsvc "github.com/plateful/backend/internal/auth/service"
	"github.com/plateful/backend/internal/auth/token"
	"github.com/plateful/backend/internal/config"
	lg "github.com/plateful/backend/internal/infra/log"
	"github.com/plateful/backend/internal/mailer"
	menusvc "github.com/plateful/backend/internal/menu/service"
	"github.com/plateful/backend/internal/migrate"
	pgrepo "github.com/plateful/backend/internal/repo/postgres"
	"github.com/plateful/backend/internal/storage"
	transport "github.com/plateful/backend/internal/transport/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	zapLog := lg.Must(os.Getenv("LOG_LEVEL"))
	defer zapLog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("failed to load config", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		zapLog.Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLog.Fatal("db handle", zap.Error(err))
	}
	defer sqlDB.Close()
	if err := migrate.Up(sqlDB); err != nil {
		zapLog.Fatal("run migrations", zap.Error(err))
	}

	codec, err := token.NewCodec(cfg)
	if err != nil {
		zapLog.Fatal("failed to init token codec", zap.Error(err))
	}

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := storage.NewS3Store(rootCtx, cfg)
	if err != nil {
		zapLog.Fatal("failed to init object store", zap.Error(err))
	}

	verificationMailer := mailer.NewVerificationMailer(
		mailer.NewSMTPSender(cfg),
		cfg.PublicBaseURL,
		zapLog,
	)

	accountRepo := pgrepo.NewAccountRepo(db)
	menuRepo := pgrepo.NewMenuRepo(db)

	auth := authsvc.New(accountRepo, codec, verificationMailer, validator.New())
	menu := menusvc.New(menuRepo, store, zapLog)

	handler := transport.NewHandler(auth, menu, zapLog)
	router := transport.NewRouter(handler, auth, cfg, zapLog)

	srv := &http.Server{Addr: cfg.HTTPAddress, Handler: router}

	g, ctx := errgroup.WithContext(rootCtx)
	g.Go(func() error {
		zapLog.Info("http server listening", zap.String("addr", cfg.HTTPAddress))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		zapLog.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zapLog.Error("server terminated", zap.Error(err))
	}
}

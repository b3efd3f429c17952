// @title          Job Posting API
// @version        1.0
// @description    Company accounts with email verification, and job postings that notify candidates by email.
// @BasePath       /api/v1
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/talentcast/jobposting-api/internal/api"
	"github.com/talentcast/jobposting-api/internal/api/handler"
	"github.com/talentcast/jobposting-api/internal/core/ports"
	"github.com/talentcast/jobposting-api/internal/core/service"
	"github.com/talentcast/jobposting-api/internal/infrastructure/config"
	"github.com/talentcast/jobposting-api/internal/infrastructure/db/mongo"
	"github.com/talentcast/jobposting-api/internal/infrastructure/db/redis"
	"github.com/talentcast/jobposting-api/internal/infrastructure/mail"
	"github.com/talentcast/jobposting-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "jobposting-api",
	})

	generated, err := cfg.EnsureSigningSecret()
	if err != nil {
		return err
	}
	if generated {
		log.Warn().Msg("JWT_SECRET not set; sessions are signed with a per-process secret")
	}

	// --- Storage ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(dctx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	accountRepo := mongo.NewAccountRepository(db)
	jobRepo := mongo.NewJobRepository(db)
	if err := mongo.EnsureIndexes(ctx, accountRepo, jobRepo); err != nil {
		return err
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	// --- Core ---
	secrets, err := service.NewSecretKeeper(cfg.Auth.PasswordScheme)
	if err != nil {
		return err
	}
	issuer, err := service.NewTokenIssuer([]byte(cfg.Auth.JWTSecret), cfg.Auth.SessionTTL)
	if err != nil {
		return err
	}
	mailer := newMailer(cfg, log)

	accounts := service.NewAccountService(
		accountRepo,
		service.NewVerificationFlow(accountRepo),
		issuer,
		secrets,
		mailer,
		service.AccountConfig{MailFrom: cfg.Mail.From, VerifyURL: cfg.VerifyURL()},
		log.With().Str("component", "accounts").Logger(),
	)
	fanout := service.NewNotificationFanout(mailer, service.FanoutConfig{
		From:        cfg.Mail.From,
		SendTimeout: cfg.Mail.SendTimeout,
		MaxParallel: cfg.Mail.MaxParallel,
	}, log.With().Str("component", "fanout").Logger())
	jobs := service.NewJobService(
		accountRepo,
		jobRepo,
		fanout,
		redis.NewDeliveryLog(rdb, cfg.Redis.ReceiptTTL),
		log.With().Str("component", "jobs").Logger(),
	)

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		Accounts: accounts,
		Jobs:     jobs,
		Sessions: issuer,
		Cookie:   handler.SessionCookie{Secure: cfg.IsProduction(), MaxAge: cfg.Auth.SessionTTL},
		Checks: map[string]handler.Check{
			"mongodb": mongo.Ping(db),
			"redis":   redis.Ping(rdb),
		},
		Prefix:      cfg.APIPrefix,
		CORSOrigins: cfg.CORSOrigins,
		Log:         log,
	})

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("env", cfg.Env).Msg("server listening")
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}

func newMailer(cfg *config.Config, log zerolog.Logger) ports.Mailer {
	mlog := log.With().Str("component", "mail").Logger()
	if cfg.Mail.Host == "" {
		mlog.Warn().Msg("MAIL_HOST not set; outgoing mail is logged, not delivered")
		return mail.NewLogMailer(mlog)
	}
	return mail.NewSMTPMailer(mail.Config{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
	}, mlog)
}

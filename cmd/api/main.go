package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mko-api/infrastructure/mailer"
	"github.com/vfg2006/mko-api/infrastructure/repository"
	"github.com/vfg2006/mko-api/internal/api"
	"github.com/vfg2006/mko-api/internal/config"
	"github.com/vfg2006/mko-api/internal/scheduler"
	"github.com/vfg2006/mko-api/internal/usecases/adserving"
	"github.com/vfg2006/mko-api/internal/usecases/authenticating"
	"github.com/vfg2006/mko-api/internal/usecases/contacting"
	"github.com/vfg2006/mko-api/internal/usecases/listing"
	"github.com/vfg2006/mko-api/pkg/log"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos, err := repository.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o armazenamento")
	}
	defer repos.Close()

	mailSender := mailer.NewSMTPMailer(cfg.Mail)
	if !mailSender.Configured() {
		logrus.Warn("SMTP não configurado, e-mails não serão enviados")
	}

	adServingService := adserving.NewService(repos.AdSlots, repos.AdCreatives, repos.AdEvents, cfg)
	adAdminService := adserving.NewAdminService(repos.AdSlots, repos.AdCreatives, repos.AdEvents)

	inserted, err := adAdminService.EnsureDefaultSlots(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar os slots padrão")
	}
	if inserted > 0 {
		logrus.Infof("%d slots padrão criados", inserted)
	}

	passwordResetter := authenticating.NewService(repos.Users, repos.AuthTokens, mailSender, cfg)
	csrfIssuer := authenticating.NewCSRFIssuer(cfg.CSRF.Secret, cfg.CSRF.TTL())
	listingService := listing.NewService(repos.Listings, repos.Reports)
	contactService := contacting.NewService(repos.Contacts, mailSender, cfg)

	tokenCleanupService := scheduler.NewTokenCleanupService(repos.AuthTokens, cfg)
	if err := tokenCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de tokens")
	} else {
		logrus.Info("Agendador de limpeza de tokens iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		adServingService,
		adAdminService,
		passwordResetter,
		csrfIssuer,
		listingService,
		contactService,
		tokenCleanupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato dos logs até a configuração ser carregada
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

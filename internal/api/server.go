package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mko-api/internal/api/handler"
	"github.com/vfg2006/mko-api/internal/api/handler/router"
	"github.com/vfg2006/mko-api/internal/config"
	"github.com/vfg2006/mko-api/internal/scheduler"
	"github.com/vfg2006/mko-api/internal/usecases/adserving"
	"github.com/vfg2006/mko-api/internal/usecases/authenticating"
	"github.com/vfg2006/mko-api/internal/usecases/contacting"
	"github.com/vfg2006/mko-api/internal/usecases/listing"
	"github.com/vfg2006/mko-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	adServingService adserving.AdServingService,
	adAdminService adserving.AdminService,
	passwordResetter authenticating.PasswordResetter,
	csrfIssuer *authenticating.CSRFIssuer,
	listingService listing.ListingService,
	contactService contacting.ContactService,
	tokenCleanupService *scheduler.TokenCleanupService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		TokenCleanupService: tokenCleanupService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.AdSystem(adServingService)...),
		router.WithRoutes(handler.Authentication(passwordResetter, csrfIssuer, config.Reset)...),
		router.WithRoutes(handler.Admin(adAdminService, contactService, listingService, cronServices)...),
		router.WithRoutes(handler.Listings(listingService)...),
		router.WithRoutes(handler.Contact(contactService)...),
		router.WithRoutes(handler.Uploads()...),
		router.WithNotFound(handler.NotFound()),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.CorsOrigin),
		middleware.BodyLimit(config.Server.BodyLimitBytes),
		middleware.PrincipalMiddleware(),
	}

	if config.CSRF.Enabled {
		middlewares = append(middlewares, middleware.CSRF(csrfIssuer, handler.CSRFIgnoredPaths...))
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}

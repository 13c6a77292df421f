package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mko-api/infrastructure/repository"
	"github.com/vfg2006/mko-api/internal/config"
)

// TokenCleanupConfig representa a configuração do agendador de limpeza de tokens
type TokenCleanupConfig struct {
	CronSchedule string
	Enabled      bool
}

// TokenCleanupService remove periodicamente os tokens de reset expirados
type TokenCleanupService struct {
	scheduler           *gocron.Scheduler
	config              TokenCleanupConfig
	tokenRepo           repository.AuthTokenRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRemoved         int
	lastError           string
	now                 func() time.Time
}

// NewTokenCleanupService cria uma nova instância do serviço de limpeza de tokens
func NewTokenCleanupService(tokenRepo repository.AuthTokenRepository, appConfig *config.Config) *TokenCleanupService {
	cleanupConfig := TokenCleanupConfig{
		CronSchedule: appConfig.TokenCleanup.CronSchedule,
		Enabled:      appConfig.TokenCleanup.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cleanupConfig.CronSchedule,
		"enabled":       cleanupConfig.Enabled,
	}).Info("Configuração do agendador de limpeza de tokens carregada")

	return &TokenCleanupService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    cleanupConfig,
		tokenRepo: tokenRepo,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *TokenCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de tokens desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de tokens")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.cleanupExpiredTokens(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de tokens: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de tokens")
		s.scheduler.Stop()
	}()

	return nil
}

// RunOnce executa a limpeza imediatamente e devolve quantos tokens foram removidos
func (s *TokenCleanupService) RunOnce(ctx context.Context) (int, error) {
	return s.tokenRepo.DeleteExpiredTokens(ctx, s.now().UTC())
}

func (s *TokenCleanupService) cleanupExpiredTokens(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de tokens já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	removed, err := s.RunOnce(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).WithField("job", "token-cleanup").Error("Erro ao remover tokens expirados")
		return
	}

	s.lastError = ""
	s.lastRemoved = removed
	s.lastSyncCompletedAt = s.now()

	logrus.WithFields(logrus.Fields{
		"job":     "token-cleanup",
		"removed": removed,
	}).Info("Limpeza de tokens concluída")
}

// TriggerManualSync inicia manualmente a limpeza de tokens
func (s *TokenCleanupService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de tokens já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de tokens")
	go s.cleanupExpiredTokens(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *TokenCleanupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.Enabled,
		"cron":                   s.config.CronSchedule,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_removed":           s.lastRemoved,
		"last_error":             s.lastError,
	}
}

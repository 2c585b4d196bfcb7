// Package scheduler contém o agendamento de tarefas de manutenção
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/muramets/Believe/infrastructure/statement"
	"github.com/muramets/Believe/internal/config"
)

type StatementCleanupConfig struct {
	CronSchedule   string
	CleanupEnabled bool
	TTL            time.Duration
}

// StatementCleanupService descarta periodicamente os extratos expirados.
// Os dados vivem só em memória, então a limpeza existe para conter o uso
// de memória em sessões abandonadas, não para durabilidade.
type StatementCleanupService struct {
	scheduler            *gocron.Scheduler
	statementRepo        statement.Repository
	config               StatementCleanupConfig
	cleanupRunning       bool
	cleanupMutex         sync.Mutex
	lastCleanupStartedAt time.Time
	lastCleanupEndedAt   time.Time
	lastRemovedCount     int
}

func NewStatementCleanupService(
	statementRepo statement.Repository,
	cfg *config.Config,
) *StatementCleanupService {
	cleanupConfig := StatementCleanupConfig{
		CronSchedule:   cfg.Statements.CleanupCron,
		CleanupEnabled: cfg.Statements.CleanupEnabled,
		TTL:            time.Duration(cfg.Statements.TTLMinutes) * time.Minute,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cleanupConfig.CronSchedule,
		"ttl":           cleanupConfig.TTL.String(),
	}).Info("Configuração do janitor de extratos carregada")

	return &StatementCleanupService{
		scheduler:     scheduler,
		statementRepo: statementRepo,
		config:        cleanupConfig,
	}
}

func (s *StatementCleanupService) Start(ctx context.Context) error {
	if !s.config.CleanupEnabled {
		logrus.Info("Cron de limpeza de extratos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de limpeza de extratos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.CleanupExpiredStatements(); err != nil {
			logrus.WithError(err).Error("Erro na limpeza de extratos expirados")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de extratos: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza de extratos")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *StatementCleanupService) CleanupExpiredStatements() error {
	s.cleanupMutex.Lock()
	defer s.cleanupMutex.Unlock()

	if s.cleanupRunning {
		logrus.Warn("Limpeza de extratos já está em execução")
		return nil
	}

	s.cleanupRunning = true
	s.lastCleanupStartedAt = time.Now()
	defer func() {
		s.cleanupRunning = false
		s.lastCleanupEndedAt = time.Now()
	}()

	removed := s.statementRepo.DeleteExpired(time.Now())
	s.lastRemovedCount = removed

	logrus.WithFields(logrus.Fields{
		"removed":   removed,
		"remaining": s.statementRepo.Count(),
	}).Info("Limpeza de extratos concluída")

	return nil
}

// TriggerManualCleanup inicia manualmente uma limpeza de extratos
func (s *StatementCleanupService) TriggerManualCleanup() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de extratos já em andamento, ignorando solicitação manual")
		return
	}
	s.cleanupMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de extratos")
	go s.CleanupExpiredStatements()
}

// GetStatus retorna o status atual do agendador
func (s *StatementCleanupService) GetStatus() map[string]any {
	return map[string]any{
		"cleanup_enabled":         s.config.CleanupEnabled,
		"cleanup_cron":            s.config.CronSchedule,
		"statement_ttl":           s.config.TTL.String(),
		"live_statements":         s.statementRepo.Count(),
		"last_removed_count":      s.lastRemovedCount,
		"last_cleanup_started_at": s.lastCleanupStartedAt,
		"last_cleanup_ended_at":   s.lastCleanupEndedAt,
	}
}

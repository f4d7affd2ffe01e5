package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Hemanth1845/sales-forecasting/internal/config"
	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

const retrainTimeout = 10 * time.Minute

// Retrainer é implementado por predicting.SalesPredictor
type Retrainer interface {
	RetrainCatalog(ctx context.Context) (*domain.RetrainSummary, error)
}

// ModelRetrainSyncConfig representa a configuração do agendador de retreino
type ModelRetrainSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ModelRetrainSyncService agenda o retreino do ensemble e a regravação das previsões do catálogo
type ModelRetrainSyncService struct {
	scheduler           *gocron.Scheduler
	config              ModelRetrainSyncConfig
	predictor           Retrainer
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         *domain.RetrainSummary
	lastError           string
}

func NewModelRetrainSyncService(predictor Retrainer, appConfig *config.Config) *ModelRetrainSyncService {
	retrainConfig := ModelRetrainSyncConfig{
		CronSchedule: appConfig.ModelRetrainSync.CronSchedule,
		SyncEnabled:  appConfig.ModelRetrainSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": retrainConfig.CronSchedule,
		"sync_enabled":  retrainConfig.SyncEnabled,
	}).Info("Configuração do agendador de retreino carregada")

	return &ModelRetrainSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    retrainConfig,
		predictor: predictor,
		baseCtx:   context.Background(),
	}
}

// Start inicia o agendador; é interrompido quando ctx for cancelado
func (s *ModelRetrainSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Retreino agendado desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de retreino do catálogo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.retrainCatalog()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar retreino do catálogo: %w", err)
	}

	s.syncMutex.Lock()
	s.baseCtx = ctx
	s.syncMutex.Unlock()

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retreino do catálogo")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ModelRetrainSyncService) retrainCatalog() {
	base, ok := s.beginSync()
	if !ok {
		logrus.Info("Retreino já em andamento, ignorando")
		return
	}
	s.runRetrain(base)
}

// beginSync marca o retreino como em andamento; false se já houver um
func (s *ModelRetrainSyncService) beginSync() (context.Context, bool) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return nil, false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return s.baseCtx, true
}

// runRetrain exige que beginSync tenha retornado true
func (s *ModelRetrainSyncService) runRetrain(base context.Context) {
	ctx, cancel := context.WithTimeout(base, retrainTimeout)
	defer cancel()

	logrus.Info("Iniciando retreino do catálogo")

	summary, err := s.predictor.RetrainCatalog(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro no retreino do catálogo")
		return
	}

	s.lastError = ""
	s.lastSummary = summary
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration":         s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt).String(),
		"train_rows":       summary.TrainRows,
		"models_predicted": summary.ModelsPredicted,
		"models_skipped":   summary.ModelsSkipped,
	}).Info("Retreino do catálogo concluído")
}

// TriggerManualSync dispara um retreino em background. Retorna false se já houver um em andamento.
func (s *ModelRetrainSyncService) TriggerManualSync() bool {
	base, ok := s.beginSync()
	if !ok {
		logrus.Info("Retreino já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando retreino manual do catálogo")
	go s.runRetrain(base)
	return true
}

// GetStatus retorna o status atual do retreino
func (s *ModelRetrainSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_summary":           s.lastSummary,
		"last_error":             s.lastError,
	}
}

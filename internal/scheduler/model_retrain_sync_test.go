package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Hemanth1845/sales-forecasting/internal/config"
	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRetrainer struct {
	calls   atomic.Int32
	release chan struct{}
	summary *domain.RetrainSummary
	err     error
}

func (f *fakeRetrainer) RetrainCatalog(ctx context.Context) (*domain.RetrainSummary, error) {
	f.calls.Add(1)
	if f.release != nil {
		<-f.release
	}
	return f.summary, f.err
}

func newRetrainConfig(enabled bool, cron string) *config.Config {
	return &config.Config{ModelRetrainSync: config.ModelRetrainSync{CronSchedule: cron, Enabled: enabled}}
}

func TestModelRetrainSyncService_Start(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.Config
		expectErr bool
	}{
		{name: "Desabilitado - não deve agendar", cfg: newRetrainConfig(false, "não é cron")},
		{name: "Cron válido - deve agendar", cfg: newRetrainConfig(true, "0 2 * * *")},
		{name: "Cron inválido - deve retornar erro", cfg: newRetrainConfig(true, "todo dia"), expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			svc := NewModelRetrainSyncService(&fakeRetrainer{}, tt.cfg)
			err := svc.Start(ctx)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestModelRetrainSyncService_RetrainCatalog(t *testing.T) {
	t.Run("Sucesso - deve guardar o resumo", func(t *testing.T) {
		fake := &fakeRetrainer{summary: &domain.RetrainSummary{TrainRows: 40, ModelsPredicted: 4}}
		svc := NewModelRetrainSyncService(fake, newRetrainConfig(true, "0 2 * * *"))

		svc.retrainCatalog()

		status := svc.GetStatus()
		assert.Equal(t, false, status["sync_running"])
		assert.Equal(t, fake.summary, status["last_summary"])
		assert.Empty(t, status["last_error"])
		assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
	})

	t.Run("Erro - deve registrar a mensagem", func(t *testing.T) {
		fake := &fakeRetrainer{err: errors.New("dados insuficientes")}
		svc := NewModelRetrainSyncService(fake, newRetrainConfig(true, "0 2 * * *"))

		svc.retrainCatalog()

		status := svc.GetStatus()
		assert.Equal(t, "dados insuficientes", status["last_error"])
		assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
	})
}

func TestModelRetrainSyncService_TriggerManualSync(t *testing.T) {
	fake := &fakeRetrainer{release: make(chan struct{}), summary: &domain.RetrainSummary{}}
	svc := NewModelRetrainSyncService(fake, newRetrainConfig(false, ""))

	require.True(t, svc.TriggerManualSync())

	require.Eventually(t, func() bool {
		return svc.GetStatus()["sync_running"] == true
	}, time.Second, 5*time.Millisecond)

	assert.False(t, svc.TriggerManualSync(), "não deve iniciar um segundo retreino simultâneo")

	close(fake.release)

	require.Eventually(t, func() bool {
		return svc.GetStatus()["sync_running"] == false
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), fake.calls.Load())
}

func TestModelRetrainSyncService_TriggerManualSync_BackToBack(t *testing.T) {
	fake := &fakeRetrainer{release: make(chan struct{}), summary: &domain.RetrainSummary{}}
	svc := NewModelRetrainSyncService(fake, newRetrainConfig(false, ""))

	// o segundo disparo chega antes de a goroutine do primeiro começar
	first := svc.TriggerManualSync()
	second := svc.TriggerManualSync()

	assert.True(t, first)
	assert.False(t, second)
	assert.Equal(t, true, svc.GetStatus()["sync_running"])

	close(fake.release)

	require.Eventually(t, func() bool {
		return svc.GetStatus()["sync_running"] == false
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), fake.calls.Load())
}

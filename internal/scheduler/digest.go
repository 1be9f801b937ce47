package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/dashboard-entregas-vendas/internal/config"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/domain"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/usecases/dashboard"
)

const digestTimeout = time.Minute

var ErrDigestRunning = errors.New("resumo já em andamento")

// Digest é o resumo periódico com os destaques do dashboard
type Digest struct {
	GeneratedAt time.Time               `json:"generated_at"`
	Headlines   domain.Headlines        `json:"headlines"`
	Summary     *domain.DeliverySummary `json:"summary,omitempty"`
}

// DigestService agenda e executa o resumo dos destaques do dashboard
type DigestService struct {
	scheduler *gocron.Scheduler
	config    config.Digest
	dashboard dashboard.Dashboard

	mutex              sync.Mutex
	running            bool
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastDigest         *Digest
	lastError          string
}

func NewDigestService(dashboard dashboard.Dashboard, cfg config.Digest) *DigestService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"enabled":       cfg.Enabled,
	}).Info("Configuração do agendador de resumo carregada")

	return &DigestService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		dashboard: dashboard,
	}
}

// Start inicia o agendador quando o resumo está habilitado
func (s *DigestService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Resumo agendado desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de resumo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runInBackground()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resumo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de resumo")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DigestService) runInBackground() {
	ctx, cancel := context.WithTimeout(context.Background(), digestTimeout)
	defer cancel()

	if _, err := s.RunDigest(ctx); err != nil && !errors.Is(err, ErrDigestRunning) {
		logrus.WithError(err).Error("Erro ao gerar resumo")
	}
}

// RunDigest calcula os destaques e os registra no log. Execuções sobrepostas retornam ErrDigestRunning
func (s *DigestService) RunDigest(ctx context.Context) (*Digest, error) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Resumo já em andamento, ignorando")
		return nil, ErrDigestRunning
	}
	s.running = true
	s.lastRunStartedAt = time.Now()
	s.mutex.Unlock()

	digest, err := s.buildDigest(ctx)

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.running = false
	if err != nil {
		s.lastError = err.Error()
		return nil, err
	}
	s.lastError = ""
	s.lastDigest = digest
	s.lastRunCompletedAt = time.Now()

	return digest, nil
}

func (s *DigestService) buildDigest(ctx context.Context) (*Digest, error) {
	headlines, err := s.dashboard.Headlines(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular destaques: %w", err)
	}

	digest := &Digest{GeneratedAt: time.Now(), Headlines: headlines}

	summary, err := s.dashboard.Summary(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Resumo das entregas indisponível")
	} else {
		digest.Summary = &summary
	}

	fields := logrus.Fields{"alert_count": headlines.AlertCount}
	if route := headlines.MostExpensiveRoute; route != nil {
		fields["most_expensive_route"] = route.Route
		fields["mean_cost_per_km"] = route.MeanCostPerKm
	}
	if region := headlines.MostProfitableRegion; region != nil {
		fields["most_profitable_region"] = region.Region
		fields["region_total"] = region.Total
	}
	if digest.Summary != nil {
		fields["deliveries"] = digest.Summary.Deliveries
		fields["total_freight_cost"] = digest.Summary.TotalFreightCost
	}
	logrus.WithFields(fields).Info("Resumo do dashboard")

	return digest, nil
}

// TriggerManualRun inicia um resumo fora do agendamento
func (s *DigestService) TriggerManualRun() error {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Resumo já em andamento, ignorando solicitação manual")
		return ErrDigestRunning
	}
	s.mutex.Unlock()

	logrus.Info("Iniciando resumo manual")
	go s.runInBackground()
	return nil
}

// GetStatus retorna o estado atual do resumo
func (s *DigestService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"running":               s.running,
		"cron":                  s.config.CronSchedule,
		"enabled":               s.config.Enabled,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_error":            s.lastError,
		"last_digest":           s.lastDigest,
	}
}

package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/booker-targets-api/infrastructure/integrator/ledger"
	ledgerdomain "github.com/vfg2006/booker-targets-api/infrastructure/integrator/ledger/domain"
	"github.com/vfg2006/booker-targets-api/internal/config"
	"github.com/vfg2006/booker-targets-api/internal/usecases/targeting"
	"github.com/vfg2006/booker-targets-api/pkg/metrics"
	"github.com/vfg2006/booker-targets-api/pkg/period"
)

// TargetReconciliationSyncConfig representa a configuração do agendador de reconciliação do realizado
type TargetReconciliationSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	SyncEnabled         bool
	MonthLookBack       int
}

// SyncReport resume uma execução da reconciliação
type SyncReport struct {
	Periods   int `json:"periods"`
	Targets   int `json:"targets"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	Failed    int `json:"failed"`
}

// TargetReconciliationSyncService agenda e executa a gravação do realizado vindo do ledger de vendas
type TargetReconciliationSyncService struct {
	scheduler           *gocron.Scheduler
	config              TargetReconciliationSyncConfig
	targetService       targeting.TargetService
	ledgerService       ledger.LedgerIntegrator
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          SyncReport
	lastError           string
}

// NewTargetReconciliationSyncService cria uma nova instância do serviço de reconciliação
func NewTargetReconciliationSyncService(
	targetService targeting.TargetService,
	ledgerService ledger.LedgerIntegrator,
	appConfig *config.Config,
) *TargetReconciliationSyncService {
	syncConfig := TargetReconciliationSyncConfig{
		CronSchedule:        appConfig.TargetReconciliationSync.CronSchedule,
		RequestDelaySeconds: appConfig.TargetReconciliationSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.TargetReconciliationSync.Enabled,
		MonthLookBack:       appConfig.TargetReconciliationSync.MonthLookBack,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"month_look_back":       syncConfig.MonthLookBack,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de reconciliação de metas carregada")

	return &TargetReconciliationSyncService{
		scheduler:     gocron.NewScheduler(time.Local),
		config:        syncConfig,
		targetService: targetService,
		ledgerService: ledgerService,
		now:           time.Now,
	}
}

// Start inicia o agendador
func (s *TargetReconciliationSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Reconciliação de metas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reconciliação de metas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncTargets(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reconciliação de metas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reconciliação de metas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncTargets executa uma reconciliação, ignorando se já houver outra em andamento
func (s *TargetReconciliationSyncService) syncTargets(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconciliação de metas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	report, err := s.RunSync(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastReport = report
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()
}

// RunSync reconcilia o mês atual e os MonthLookBack meses anteriores
func (s *TargetReconciliationSyncService) RunSync(ctx context.Context) (report SyncReport, err error) {
	defer func() { metrics.ObserveReconciliation(err, report.Updated) }()

	startTime := time.Now()
	now := s.now()
	logrus.Info("Iniciando reconciliação do realizado das metas")

	year, month := now.Year(), int(now.Month())
	for i := 0; i <= s.config.MonthLookBack; i++ {
		if i > 0 {
			year, month = period.Previous(year, month)
			if err := wait(ctx, time.Duration(s.config.RequestDelaySeconds)*time.Second); err != nil {
				return report, err
			}
		}

		if err := ctx.Err(); err != nil {
			return report, err
		}

		if err := s.reconcilePeriod(ctx, year, month, &report); err != nil {
			logrus.WithError(err).WithField("period", period.Label(year, month)).
				Error("Erro ao reconciliar período")
			report.Failed++
			continue
		}
		report.Periods++
	}

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"periods":   report.Periods,
		"targets":   report.Targets,
		"updated":   report.Updated,
		"unchanged": report.Unchanged,
		"failed":    report.Failed,
	}).Info("Reconciliação de metas concluída")

	if report.Failed > 0 {
		return report, fmt.Errorf("%d falhas na reconciliação de metas", report.Failed)
	}
	return report, nil
}

// reconcilePeriod grava o realizado do ledger nas metas do período.
// Order bookers sem pedidos no ledger voltam para zero.
func (s *TargetReconciliationSyncService) reconcilePeriod(ctx context.Context, year, month int, report *SyncReport) error {
	targets, err := s.targetService.GetByPeriod(ctx, year, month)
	if err != nil {
		return fmt.Errorf("erro ao buscar metas do período: %w", err)
	}
	if len(targets) == 0 {
		logrus.WithField("period", period.Label(year, month)).Info("Nenhuma meta encontrada para reconciliação")
		return nil
	}

	achieved, err := s.ledgerService.GetAchievedAmounts(ctx, ledgerdomain.GetOrdersParams{Year: year, Month: month})
	if err != nil {
		return fmt.Errorf("erro ao obter realizado do ledger: %w", err)
	}

	for _, target := range targets {
		report.Targets++

		amount, ok := achieved[target.OrderBookerID]
		if !ok {
			amount = decimal.Zero
		}
		if amount.Equal(target.AchievedAmount) {
			report.Unchanged++
			continue
		}

		if _, err := s.targetService.ReconcileAchieved(ctx, target.ID, amount); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"target_id":       target.ID,
				"order_booker_id": target.OrderBookerID,
				"period":          period.Label(year, month),
			}).Error("Erro ao gravar realizado da meta")
			report.Failed++
			continue
		}

		report.Updated++
		logrus.WithFields(logrus.Fields{
			"target_id":       target.ID,
			"order_booker_id": target.OrderBookerID,
			"achieved_amount": amount.String(),
		}).Debug("Realizado da meta atualizado")
	}

	return nil
}

// TriggerManualSync inicia manualmente uma reconciliação
func (s *TargetReconciliationSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconciliação de metas já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando reconciliação manual de metas")
	go s.syncTargets(context.Background())
	return true
}

// GetStatus retorna o status atual da reconciliação
func (s *TargetReconciliationSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"month_look_back":        s.config.MonthLookBack,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_report":            s.lastReport,
		"last_error":             s.lastError,
	}
}

// wait aguarda o intervalo entre períodos ou o cancelamento do contexto
func wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

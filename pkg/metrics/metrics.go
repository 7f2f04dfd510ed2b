package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "targets_"

	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	registerOnce sync.Once

	operationsTotal  *prometheus.CounterVec
	operationLatency *prometheus.HistogramVec
	reconcileRuns    *prometheus.CounterVec
	reconcileUpdates prometheus.Counter
	batchItemsTotal  *prometheus.CounterVec
	dashboardRenders *prometheus.CounterVec
)

// Init registra as métricas no registry padrão. Chamadas repetidas são ignoradas.
func Init() {
	registerOnce.Do(func() {
		operationsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "operations_total",
				Help: "Total target operations by operation and result",
			},
			[]string{"operation", "result"},
		)
		operationLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "operation_latency_seconds",
				Help:    "Target operation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		)
		reconcileRuns = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "reconciliation_runs_total",
				Help: "Total ledger reconciliation runs by result",
			},
			[]string{"result"},
		)
		reconcileUpdates = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "reconciliation_updates_total",
				Help: "Total targets whose achieved amount changed during reconciliation",
			},
		)
		batchItemsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "batch_items_total",
				Help: "Total items processed by batch operations",
			},
			[]string{"operation", "result"},
		)
		dashboardRenders = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "dashboard_widget_renders_total",
				Help: "Total dashboard widget renders by kind and result",
			},
			[]string{"kind", "result"},
		)

		prometheus.MustRegister(
			operationsTotal,
			operationLatency,
			reconcileRuns,
			reconcileUpdates,
			batchItemsTotal,
			dashboardRenders,
		)
	})
}

// Handler expõe as métricas no formato do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}

func resultOf(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}

// ObserveOperation registra uma operação de meta; sem Init é no-op
func ObserveOperation(operation string, start time.Time, err error) {
	if operationsTotal == nil {
		return
	}
	operationsTotal.WithLabelValues(operation, resultOf(err)).Inc()
	operationLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func ObserveBatchItems(operation string, succeeded, failed int) {
	if batchItemsTotal == nil {
		return
	}
	batchItemsTotal.WithLabelValues(operation, ResultSuccess).Add(float64(succeeded))
	batchItemsTotal.WithLabelValues(operation, ResultError).Add(float64(failed))
}

func ObserveReconciliation(err error, updated int) {
	if reconcileRuns == nil {
		return
	}
	reconcileRuns.WithLabelValues(resultOf(err)).Inc()
	reconcileUpdates.Add(float64(updated))
}

func ObserveWidgetRender(kind string, err error) {
	if dashboardRenders == nil {
		return
	}
	dashboardRenders.WithLabelValues(kind, resultOf(err)).Inc()
}

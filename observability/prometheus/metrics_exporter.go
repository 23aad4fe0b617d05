package prometheus

import (
	"errors"
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/mwarq/go-poll-runner/core"
)

// ExporterOptions controls collector configuration.
type ExporterOptions struct {
	DurationBuckets []float64
}

// MetricsExporter adapts core.Metrics to Prometheus collectors.
type MetricsExporter struct {
	pollDurationSeconds  *prom.HistogramVec
	tasksCompletedTotal  *prom.CounterVec
	tasksDroppedTotal    *prom.CounterVec
	queueDepth           *prom.GaugeVec
	sweepDurationSeconds *prom.HistogramVec
}

var _ core.Metrics = (*MetricsExporter)(nil)

// NewMetricsExporter creates and registers Prometheus collectors for
// core.Metrics.
func NewMetricsExporter(namespace string, reg prom.Registerer, opts ExporterOptions) (*MetricsExporter, error) {
	if namespace == "" {
		namespace = "pollrunner"
	}
	if reg == nil {
		reg = prom.DefaultRegisterer
	}
	buckets := opts.DurationBuckets
	if len(buckets) == 0 {
		buckets = prom.DefBuckets
	}

	pollVec := prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: namespace,
		Name:      "poll_duration_seconds",
		Help:      "Duration of individual task poll steps in seconds.",
		Buckets:   buckets,
	}, []string{"runner", "state"})
	completedVec := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_completed_total",
		Help:      "Total number of tasks that reached their terminal state.",
	}, []string{"runner"})
	droppedVec := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_dropped_total",
		Help:      "Total number of tasks that left a runner without completing.",
	}, []string{"runner", "reason"})
	queueDepthVec := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "queue_depth",
		Help:      "Queue depth per runner queue at the end of a sweep.",
	}, []string{"runner", "queue"})
	sweepVec := prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: namespace,
		Name:      "sweep_duration_seconds",
		Help:      "Duration of full scheduler sweeps in seconds.",
		Buckets:   buckets,
	}, []string{"runner"})

	var err error
	if pollVec, err = registerCollector(reg, pollVec); err != nil {
		return nil, err
	}
	if completedVec, err = registerCollector(reg, completedVec); err != nil {
		return nil, err
	}
	if droppedVec, err = registerCollector(reg, droppedVec); err != nil {
		return nil, err
	}
	if queueDepthVec, err = registerCollector(reg, queueDepthVec); err != nil {
		return nil, err
	}
	if sweepVec, err = registerCollector(reg, sweepVec); err != nil {
		return nil, err
	}

	return &MetricsExporter{
		pollDurationSeconds:  pollVec,
		tasksCompletedTotal:  completedVec,
		tasksDroppedTotal:    droppedVec,
		queueDepth:           queueDepthVec,
		sweepDurationSeconds: sweepVec,
	}, nil
}

// RecordPoll records one poll step.
func (m *MetricsExporter) RecordPoll(runnerName string, state core.PollState, duration time.Duration) {
	if m == nil {
		return
	}
	m.pollDurationSeconds.WithLabelValues(normalizeLabel(runnerName, "unknown"), stateLabel(state)).Observe(duration.Seconds())
}

// RecordTaskCompleted records a retired task.
func (m *MetricsExporter) RecordTaskCompleted(runnerName string) {
	if m == nil {
		return
	}
	m.tasksCompletedTotal.WithLabelValues(normalizeLabel(runnerName, "unknown")).Inc()
}

// RecordTaskDropped records a task that left a runner without completing.
func (m *MetricsExporter) RecordTaskDropped(runnerName string, reason string) {
	if m == nil {
		return
	}
	m.tasksDroppedTotal.WithLabelValues(normalizeLabel(runnerName, "unknown"), normalizeLabel(reason, "unknown")).Inc()
}

// RecordQueueDepth records the depth of one runner queue.
func (m *MetricsExporter) RecordQueueDepth(runnerName string, queue string, depth int) {
	if m == nil {
		return
	}
	m.queueDepth.WithLabelValues(normalizeLabel(runnerName, "unknown"), normalizeLabel(queue, "unknown")).Set(float64(depth))
}

// RecordSweep records one full scheduler sweep.
func (m *MetricsExporter) RecordSweep(runnerName string, duration time.Duration) {
	if m == nil {
		return
	}
	m.sweepDurationSeconds.WithLabelValues(normalizeLabel(runnerName, "unknown")).Observe(duration.Seconds())
}

func normalizeLabel(v string, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func stateLabel(state core.PollState) string {
	switch state {
	case core.StatePending:
		return "pending"
	case core.StateDone:
		return "done"
	case core.StateWaiting:
		return "waiting"
	default:
		return "unknown"
	}
}

func registerCollector[T prom.Collector](reg prom.Registerer, collector T) (T, error) {
	err := reg.Register(collector)
	if err == nil {
		return collector, nil
	}

	var alreadyRegisteredErr prom.AlreadyRegisteredError
	if errors.As(err, &alreadyRegisteredErr) {
		existing, ok := alreadyRegisteredErr.ExistingCollector.(T)
		if !ok {
			return collector, fmt.Errorf("collector type mismatch for %T", collector)
		}
		return existing, nil
	}

	return collector, err
}

package prometheus

import (
	"context"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/mwarq/go-poll-runner/core"
)

// RunnerSnapshotProvider provides current runner stats snapshots. Both
// SimpleRunner and PollRunner satisfy it.
//
// Runner stats are not synchronized with Run: collect snapshots from the
// goroutine that drives the runner, or between runs. CollectOnce exists for
// exactly that pattern; Start's periodic loop is only safe while the
// registered runners are idle or externally synchronized.
type RunnerSnapshotProvider interface {
	Stats() core.RunnerStats
}

// SnapshotPoller exports runner Stats() snapshots into Prometheus gauges,
// either on demand via CollectOnce or periodically via Start.
type SnapshotPoller struct {
	interval time.Duration

	runnersMu sync.RWMutex
	runners   map[string]RunnerSnapshotProvider

	runnerPending   *prom.GaugeVec
	runnerActive    *prom.GaugeVec
	runnerSleeping  *prom.GaugeVec
	runnerCompleted *prom.GaugeVec
	runnerDropped   *prom.GaugeVec
	runnerRejected  *prom.GaugeVec
	runnerClosed    *prom.GaugeVec

	stateMu sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewSnapshotPoller creates a snapshot poller and registers its collectors.
func NewSnapshotPoller(reg prom.Registerer, interval time.Duration) (*SnapshotPoller, error) {
	if reg == nil {
		reg = prom.DefaultRegisterer
	}
	if interval <= 0 {
		interval = time.Second
	}

	labels := []string{"runner", "type"}

	runnerPending := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "pollrunner",
		Name:      "runner_pending",
		Help:      "Tasks in the pending queue per runner.",
	}, labels)
	runnerActive := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "pollrunner",
		Name:      "runner_active",
		Help:      "Tasks in the active queue per runner.",
	}, labels)
	runnerSleeping := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "pollrunner",
		Name:      "runner_sleeping",
		Help:      "Tasks in the sleeping queue per runner.",
	}, labels)
	runnerCompleted := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "pollrunner",
		Name:      "runner_completed",
		Help:      "Completed task count snapshot per runner.",
	}, labels)
	runnerDropped := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "pollrunner",
		Name:      "runner_dropped",
		Help:      "Dropped task count snapshot per runner.",
	}, labels)
	runnerRejected := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "pollrunner",
		Name:      "runner_rejected",
		Help:      "Rejected task count snapshot per runner.",
	}, labels)
	runnerClosed := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "pollrunner",
		Name:      "runner_closed",
		Help:      "Runner closed state (1=closed, 0=open).",
	}, labels)

	var err error
	if runnerPending, err = registerCollector(reg, runnerPending); err != nil {
		return nil, err
	}
	if runnerActive, err = registerCollector(reg, runnerActive); err != nil {
		return nil, err
	}
	if runnerSleeping, err = registerCollector(reg, runnerSleeping); err != nil {
		return nil, err
	}
	if runnerCompleted, err = registerCollector(reg, runnerCompleted); err != nil {
		return nil, err
	}
	if runnerDropped, err = registerCollector(reg, runnerDropped); err != nil {
		return nil, err
	}
	if runnerRejected, err = registerCollector(reg, runnerRejected); err != nil {
		return nil, err
	}
	if runnerClosed, err = registerCollector(reg, runnerClosed); err != nil {
		return nil, err
	}

	return &SnapshotPoller{
		interval:        interval,
		runners:         make(map[string]RunnerSnapshotProvider),
		runnerPending:   runnerPending,
		runnerActive:    runnerActive,
		runnerSleeping:  runnerSleeping,
		runnerCompleted: runnerCompleted,
		runnerDropped:   runnerDropped,
		runnerRejected:  runnerRejected,
		runnerClosed:    runnerClosed,
	}, nil
}

// AddRunner adds or replaces a runner snapshot provider by name.
func (p *SnapshotPoller) AddRunner(name string, provider RunnerSnapshotProvider) {
	if p == nil || provider == nil {
		return
	}
	name = normalizeLabel(name, "runner")
	p.runnersMu.Lock()
	p.runners[name] = provider
	p.runnersMu.Unlock()
}

// CollectOnce exports one snapshot per registered runner immediately.
func (p *SnapshotPoller) CollectOnce() {
	if p == nil {
		return
	}

	p.runnersMu.RLock()
	defer p.runnersMu.RUnlock()

	for name, provider := range p.runners {
		stats := provider.Stats()
		typeLabel := normalizeLabel(stats.Type, "unknown")
		p.runnerPending.WithLabelValues(name, typeLabel).Set(float64(stats.Pending))
		p.runnerActive.WithLabelValues(name, typeLabel).Set(float64(stats.Active))
		p.runnerSleeping.WithLabelValues(name, typeLabel).Set(float64(stats.Sleeping))
		p.runnerCompleted.WithLabelValues(name, typeLabel).Set(float64(stats.Completed))
		p.runnerDropped.WithLabelValues(name, typeLabel).Set(float64(stats.Dropped))
		p.runnerRejected.WithLabelValues(name, typeLabel).Set(float64(stats.Rejected))
		if stats.Closed {
			p.runnerClosed.WithLabelValues(name, typeLabel).Set(1)
		} else {
			p.runnerClosed.WithLabelValues(name, typeLabel).Set(0)
		}
	}
}

// Start begins periodic polling; repeated calls are no-ops.
func (p *SnapshotPoller) Start(ctx context.Context) {
	if p == nil {
		return
	}

	p.stateMu.Lock()
	if p.running {
		p.stateMu.Unlock()
		return
	}
	pollCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	p.running = true
	p.stateMu.Unlock()

	go p.loop(pollCtx)
}

// Stop stops periodic polling; repeated calls are safe.
func (p *SnapshotPoller) Stop() {
	if p == nil {
		return
	}

	p.stateMu.Lock()
	if !p.running {
		p.stateMu.Unlock()
		return
	}
	cancel := p.cancel
	done := p.done
	p.stateMu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}

	p.stateMu.Lock()
	p.running = false
	p.cancel = nil
	p.done = nil
	p.stateMu.Unlock()
}

func (p *SnapshotPoller) loop(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.CollectOnce()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.CollectOnce()
		}
	}
}

package syncx

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	AcquireCounterVec = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "syncx_acquire_total",
		Help: "Total number of acquisitions of a sync point.",
	}, []string{"point"})
	TryLockFailedCounterVec = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "syncx_try_lock_failed_total",
		Help: "Total number of TryLock calls that found the sync point held.",
	}, []string{"point"})
	WaitHistogramVec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "syncx_acquire_wait_seconds",
		Help:    "Time spent waiting for a sync point.",
		Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
	}, []string{"point"})
	HeldGaugeVec = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "syncx_held",
		Help: "1 while the sync point is held.",
	}, []string{"point"})
)

// RegisterMetrics registers the sync point collectors on reg.
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(AcquireCounterVec, TryLockFailedCounterVec, WaitHistogramVec, HeldGaugeVec)
}

// Instrument returns a Backend that records metrics labelled name around b.
// Every backend instrumented with the same name feeds the same series.
func Instrument(name string, b Backend) Backend {
	return &instrumented{backend: b, name: name}
}

type instrumented struct {
	backend Backend
	name    string
}

func (i *instrumented) Lock() {
	start := time.Now()
	i.backend.Lock()
	WaitHistogramVec.WithLabelValues(i.name).Observe(time.Since(start).Seconds())
	acquired(i.name)
}

func (i *instrumented) TryLock() bool {
	if !i.backend.TryLock() {
		TryLockFailedCounterVec.WithLabelValues(i.name).Inc()
		return false
	}
	acquired(i.name)
	return true
}

func (i *instrumented) Unlock() {
	HeldGaugeVec.WithLabelValues(i.name).Set(0)
	i.backend.Unlock()
}

func (i *instrumented) IsHeld() bool {
	if hr, ok := i.backend.(HeldReporter); ok {
		return hr.IsHeld()
	}
	return false
}

// InstrumentAsync is Instrument for an AsyncBackend.
func InstrumentAsync(name string, b AsyncBackend) AsyncBackend {
	return &instrumentedAsync{backend: b, name: name}
}

type instrumentedAsync struct {
	backend AsyncBackend
	name    string
}

func (i *instrumentedAsync) Acquire(ctx context.Context) error {
	start := time.Now()
	if err := i.backend.Acquire(ctx); err != nil {
		return err
	}
	WaitHistogramVec.WithLabelValues(i.name).Observe(time.Since(start).Seconds())
	acquired(i.name)
	return nil
}

func (i *instrumentedAsync) Release() {
	HeldGaugeVec.WithLabelValues(i.name).Set(0)
	i.backend.Release()
}

func (i *instrumentedAsync) IsHeld() bool {
	if hr, ok := i.backend.(HeldReporter); ok {
		return hr.IsHeld()
	}
	return false
}

func acquired(name string) {
	AcquireCounterVec.WithLabelValues(name).Inc()
	HeldGaugeVec.WithLabelValues(name).Set(1)
}

package syncx_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"

	"syncpoint/pkg/syncx"
)

func TestNamedCounter(t *testing.T) {
	const callers = 5
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			// every caller declares the point with the same default
			p := syncx.Named[uint]("TEST_NAMED_COUNTER", 0)
			p.Do(func(count *uint) {
				*count++
			})
		}()
	}
	wg.Wait()

	count := syncx.Synchronized(syncx.Named[uint]("TEST_NAMED_COUNTER", 0), func(count *uint) uint {
		return *count
	})
	assert.Equal(t, uint(callers), count)
}

func TestNamedAtMostOneHolder(t *testing.T) {
	const n = 50
	r := syncx.NewRegistry()
	var (
		inside     atomic.Int32
		maxInside  atomic.Int32
		heldInside atomic.Int32
	)
	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < n; i++ {
		g.Go(func() error {
			p, err := syncx.Declare(r, "CRITICAL", struct{}{})
			if err != nil {
				return err
			}
			p.Do(func(*struct{}) {
				cur := inside.Add(1)
				for {
					m := maxInside.Load()
					if cur <= m || maxInside.CompareAndSwap(m, cur) {
						break
					}
				}
				if p.IsHeld() {
					heldInside.Add(1)
				}
				inside.Add(-1)
			})
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int32(1), maxInside.Load())
	assert.Equal(t, int32(n), heldInside.Load())

	p, err := syncx.Declare(r, "CRITICAL", struct{}{})
	require.NoError(t, err)
	assert.False(t, p.IsHeld())
}

func TestDeclare(t *testing.T) {
	r := syncx.NewRegistry(syncx.WithLogger(zap.NewNop()))

	first, err := syncx.Declare(r, "COMB_SYNC", "first")
	require.NoError(t, err)
	second, err := syncx.Declare(r, "COMB_SYNC", "ignored")
	require.NoError(t, err)
	assert.Same(t, first, second)

	value := syncx.Synchronized(second, func(v *string) string { return *v })
	assert.Equal(t, "first", value)

	_, err = syncx.Declare(r, "COMB_SYNC", 0)
	assert.True(t, errors.Is(err, syncx.ErrPointType))

	_, err = syncx.DeclareAsync(r, "COMB_SYNC", "first")
	assert.True(t, errors.Is(err, syncx.ErrPointType))
}

func TestNamedPanicsOnTypeMismatch(t *testing.T) {
	syncx.Named("TEST_NAMED_MISMATCH", 1.5)
	assert.Panics(t, func() {
		syncx.Named("TEST_NAMED_MISMATCH", "text")
	})
}

func TestRegistryNames(t *testing.T) {
	r := syncx.NewRegistry()
	for _, name := range []string{"c", "a", "b"} {
		_, err := syncx.Declare(r, name, struct{}{})
		require.NoError(t, err)
	}
	_, err := syncx.DeclareAsync(r, "d", 0)
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, r.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, r.Len())
}

func TestRegistryDo(t *testing.T) {
	r := syncx.NewRegistry()
	var ran bool
	require.NoError(t, r.Do("EXCLUSIVE", func() {
		p, err := syncx.Declare(r, "EXCLUSIVE", struct{}{})
		require.NoError(t, err)
		assert.True(t, p.IsHeld())
		ran = true
	}))
	assert.True(t, ran)

	_, err := syncx.Declare(r, "PAYLOAD", 0)
	require.NoError(t, err)
	assert.Error(t, r.Do("PAYLOAD", func() {}))
}

func TestNamedAsync(t *testing.T) {
	const callers = 5
	p := syncx.NamedAsync("TEST_NAMED_ASYNC", 0)
	ctx := context.Background()

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < callers; i++ {
		g.Go(func() error {
			return syncx.NamedAsync("TEST_NAMED_ASYNC", 0).Do(gctx, func(v *int) {
				*v++
			})
		})
	}
	require.NoError(t, g.Wait())

	count, err := syncx.SynchronizedAsync(ctx, p, func(v *int) int { return *v })
	require.NoError(t, err)
	assert.Equal(t, callers, count)
}

func TestAsyncPointCancelledWait(t *testing.T) {
	p := syncx.NewAsyncPoint(syncx.NewAsyncBackend(), 0, syncx.WithName("ASYNC"))
	ctx := context.Background()
	g, err := p.Lock(ctx)
	require.NoError(t, err)
	assert.True(t, p.IsHeld())

	cctx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	var ran bool
	err = p.Do(cctx, func(*int) { ran = true })
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, ran)

	p.Unlock(g)
	assert.False(t, p.IsHeld())
	_, err = syncx.SynchronizedAsync(ctx, p, func(v *int) int { return *v })
	assert.NoError(t, err)
}

func TestRegistryMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	syncx.RegisterMetrics(reg)

	r := syncx.NewRegistry(syncx.WithMetrics())
	p, err := syncx.Declare(r, "TEST_METRICS", 0)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		p.Do(func(v *int) { *v++ })
	}
	g, ok := p.TryLock()
	require.True(t, ok)
	assert.True(t, p.IsHeld())
	_, ok = p.TryLock()
	assert.False(t, ok)
	p.Unlock(g)

	ap, err := syncx.DeclareAsync(r, "TEST_METRICS_ASYNC", 0)
	require.NoError(t, err)
	require.NoError(t, ap.Do(context.Background(), func(v *int) { *v++ }))

	families, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			values[fmt.Sprintf("%s/%s", mf.GetName(), pointLabel(m))] = metricValue(m)
		}
	}
	assert.Equal(t, 4.0, values["syncx_acquire_total/TEST_METRICS"])
	assert.Equal(t, 1.0, values["syncx_try_lock_failed_total/TEST_METRICS"])
	assert.Equal(t, 0.0, values["syncx_held/TEST_METRICS"])
	assert.Equal(t, 3.0, values["syncx_acquire_wait_seconds/TEST_METRICS"])
	assert.Equal(t, 1.0, values["syncx_acquire_total/TEST_METRICS_ASYNC"])
}

func pointLabel(m *dto.Metric) string {
	for _, l := range m.GetLabel() {
		if l.GetName() == "point" {
			return l.GetValue()
		}
	}
	return ""
}

func metricValue(m *dto.Metric) float64 {
	switch {
	case m.GetCounter() != nil:
		return m.GetCounter().GetValue()
	case m.GetGauge() != nil:
		return m.GetGauge().GetValue()
	case m.GetHistogram() != nil:
		return float64(m.GetHistogram().GetSampleCount())
	}
	return 0
}

func TestRegistryLogsDeclaration(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := syncx.NewRegistry(syncx.WithLogger(zap.New(core)))

	for i := 0; i < 3; i++ {
		_, err := syncx.Declare(r, "TEST_LOGGED", "")
		require.NoError(t, err)
	}

	entries := logs.FilterMessage("sync point declared").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "TEST_LOGGED", entries[0].ContextMap()["name"])
}

func TestRegistryMetricsShareSeriesByName(t *testing.T) {
	first := syncx.NewRegistry(syncx.WithMetrics())
	second := syncx.NewRegistry(syncx.WithMetrics())
	a, err := syncx.Declare(first, "TEST_METRICS_SHARED", 0)
	require.NoError(t, err)
	b, err := syncx.Declare(second, "TEST_METRICS_SHARED", 0)
	require.NoError(t, err)
	assert.NotSame(t, a, b)

	a.Do(func(v *int) { *v++ })
	b.Do(func(v *int) { *v++ })

	m := &dto.Metric{}
	require.NoError(t, syncx.AcquireCounterVec.WithLabelValues("TEST_METRICS_SHARED").Write(m))
	assert.Equal(t, 2.0, m.GetCounter().GetValue())
}

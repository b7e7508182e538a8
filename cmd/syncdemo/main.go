package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"

	"syncpoint/config"
	"syncpoint/pkg/json"
	"syncpoint/pkg/logger"
	"syncpoint/pkg/routine"
	"syncpoint/pkg/syncx"
	"syncpoint/pkg/table"
)

var (
	configFile = flag.String("f", "", "the config file")
	debug      = flag.Bool("debug", false, "log at debug level whatever the config says")
)

func main() {
	flag.Parse()
	settings, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	ctx := logger.With(context.Background(),
		logger.New(
			logger.WithServerName(settings.ServiceName),
			logger.WithLevel(settings.LogLevel),
			logger.WithWriter(logger.SetWriter(settings.LogConsole, settings.LogPath))),
	)
	defer logger.CloseWriter()
	defer logger.From(ctx).Sync()
	logger.SetDebug(*debug)

	if err = run(ctx, settings, os.Stdout); err != nil {
		logger.From(ctx).Error("syncdemo failed", zap.Error(err))
		os.Exit(1)
	}
}

type report struct {
	Features syncx.FeatureSet `json:"features"`
	Point    string           `json:"point"`
	Count    int              `json:"count"`
	Expected int              `json:"expected"`
	Anon     int              `json:"anonymous"`
	Panics   int              `json:"panics"`
}

func run(ctx context.Context, settings *config.Settings, out io.Writer) error {
	opts := []syncx.RegistryOption{syncx.WithLogger(logger.From(ctx))}
	reg := prometheus.NewRegistry()
	if settings.Metrics {
		syncx.RegisterMetrics(reg)
		opts = append(opts, syncx.WithMetrics())
	}
	registry := syncx.NewRegistry(opts...)

	counter, err := syncx.Declare(registry, settings.Point, 0)
	if err != nil {
		return err
	}
	logger.From(ctx).Info("sync point ready",
		zap.String("name", counter.Name()),
		zap.String("backend", syncx.BackendName))

	g := routine.NewGroup(ctx, routine.WithLimit(settings.Parallel))
	for i := 0; i < settings.Workers; i++ {
		i := i
		g.Go(func(ctx context.Context) error {
			ctx = logger.Fields(ctx, zap.Int("worker", i))
			for r := 0; r < settings.Rounds; r++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				// every worker declares the point itself, the registry hands
				// back the same one
				p, err := syncx.Declare(registry, settings.Point, 0)
				if err != nil {
					return err
				}
				p.Do(func(v *int) {
					*v++
				})
			}
			logger.From(ctx).Debug("worker done", zap.Int("rounds", settings.Rounds))
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	// anonymous blocks never share a lock; a panicking one is recovered by
	// the pool and does not stop the others
	var anon, panics atomic.Int64
	pool := routine.NewPool(ctx, routine.Recover(func(ctx context.Context, r interface{}) {
		panics.Add(1)
		logger.From(ctx).Warn("anonymous block panicked", zap.Any("error", r))
	}))
	for i := 0; i < settings.Workers; i++ {
		i := i
		pool.Go(func(context.Context) {
			anon.Add(int64(syncx.Anonymous(func() int {
				if i < settings.FailAnonymous {
					panic("anonymous block failed")
				}
				return 1 + 2
			})))
		})
	}
	pool.Wait()

	rep := report{
		Features: syncx.Features,
		Point:    counter.Name(),
		Count:    syncx.Synchronized(counter, func(v *int) int { return *v }),
		Expected: settings.Workers * settings.Rounds,
		Anon:     int(anon.Load()),
		Panics:   int(panics.Load()),
	}
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	logger.From(ctx).Debug("report", zap.ByteString("json", data))

	rows := map[string]interface{}{
		"backend":   rep.Features.Backend,
		"async":     rep.Features.Async,
		"names":     rep.Features.Names,
		"conflict":  rep.Features.Conflict,
		"points":    strings.Join(registry.Names(), ","),
		"count":     fmt.Sprintf("%d/%d", rep.Count, rep.Expected),
		"anonymous": rep.Anon,
		"panics":    rep.Panics,
	}
	fields := []string{"backend", "async", "names", "conflict", "points", "count", "anonymous", "panics"}
	if settings.Metrics {
		families, err := reg.Gather()
		if err != nil {
			return err
		}
		for _, mf := range families {
			rows[mf.GetName()] = len(mf.GetMetric())
			fields = append(fields, mf.GetName())
		}
	}
	if err = table.RenderAsTable(out, rows, fields); err != nil {
		return err
	}

	if rep.Count != rep.Expected {
		return errors.Errorf("lost updates: count %d, expected %d", rep.Count, rep.Expected)
	}
	return nil
}

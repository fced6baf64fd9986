package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"bemyrider/internal/fiscalcode"
	httpapi "bemyrider/internal/http"
	"bemyrider/internal/platform/config"
	"bemyrider/internal/platform/database"
	"bemyrider/internal/platform/httpserver"
	"bemyrider/internal/platform/kafka"
	"bemyrider/internal/platform/logger"
	"bemyrider/internal/platform/metrics"
	"bemyrider/internal/platform/redis"
	ratelimitmetrics "bemyrider/internal/ratelimit/metrics"
	ratelimitmw "bemyrider/internal/ratelimit/middleware"
	ratelimit "bemyrider/internal/ratelimit/models"
	"bemyrider/internal/ratelimit/store/bucket"
	taxhandler "bemyrider/internal/taxdetails/handler"
	taxmetrics "bemyrider/internal/taxdetails/metrics"
	taxservice "bemyrider/internal/taxdetails/service"
	taxstore "bemyrider/internal/taxdetails/store"
	"bemyrider/pkg/platform/audit"
	"bemyrider/pkg/platform/audit/publishers/compliance"
	"bemyrider/pkg/platform/audit/publishers/ops"
	auditkafka "bemyrider/pkg/platform/audit/store/kafka"
	auditmemory "bemyrider/pkg/platform/audit/store/memory"
	auditpostgres "bemyrider/pkg/platform/audit/store/postgres"
	"bemyrider/pkg/platform/audit/worker"
	txcontext "bemyrider/pkg/platform/tx"
)

const (
	shutdownTimeout = 10 * time.Second
	startupTimeout  = 15 * time.Second
)

// main wires infrastructure, the tax-details module and the HTTP server, then
// blocks until SIGINT/SIGTERM.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

type infra struct {
	db       *sql.DB
	redis    *redis.Client
	producer *kafka.Producer
}

func (i *infra) close(log *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if i.producer != nil {
		if err := i.producer.Close(ctx); err != nil {
			log.Warn("kafka producer close failed", "error", err)
		}
	}
	if i.redis != nil {
		if err := i.redis.Close(); err != nil {
			log.Warn("redis close failed", "error", err)
		}
	}
	if i.db != nil {
		if err := i.db.Close(); err != nil {
			log.Warn("database close failed", "error", err)
		}
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	startCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	deps, err := openInfra(startCtx, cfg, log)
	if err != nil {
		return err
	}
	defer deps.close(log)

	calculator, err := buildCalculator(cfg.FiscalCode)
	if err != nil {
		return err
	}
	log.Info("fiscal code calculator ready",
		"belfiore_entries", calculator.Table().Len(),
		"fallback_place", cfg.FiscalCode.FallbackPlaceCode != "",
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	complianceStore, opsStore := selectAuditStores(deps)
	compliancePublisher := compliance.New(complianceStore,
		compliance.WithLogger(log),
		compliance.WithMetrics(compliance.NewMetrics(reg)),
	)
	tracker := ops.New(ops.WithMetrics(ops.NewMetrics(reg)))
	auditWorker := worker.NewWorker(opsStore, tracker.Events(), log)

	opts := []taxservice.Option{
		taxservice.WithLogger(log),
		taxservice.WithMetrics(taxmetrics.New(reg)),
		taxservice.WithAuditPublisher(compliancePublisher),
		taxservice.WithOpsTracker(tracker),
	}
	var store taxservice.Store = taxstore.NewInMemoryStore()
	if deps.db != nil {
		store = taxstore.NewPostgresStore(deps.db)
		opts = append(opts, taxservice.WithTxRunner(txcontext.NewPostgresRunner(deps.db)))
	}
	if deps.redis != nil {
		opts = append(opts, taxservice.WithCache(taxstore.NewRedisCache(deps.redis.Client, cfg.TaxDetailsCacheTTL)))
	}
	svc, err := taxservice.New(calculator, store, opts...)
	if err != nil {
		return fmt.Errorf("build tax details service: %w", err)
	}

	checks := map[string]httpapi.HealthChecker{}
	if deps.db != nil {
		checks["database"] = httpapi.CheckFunc(deps.db.PingContext)
	}
	if deps.producer != nil {
		checks["kafka"] = deps.producer
	}

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:   log,
		Metrics:  metrics.New(reg),
		Gatherer: reg,
		Checks:   checks,
		Degraded: svc,
		Modules: []httpapi.Registrar{
			taxhandler.New(svc, log, taxhandler.WithRateLimiter(buildRateLimiter(cfg.RateLimit, deps, reg, log))),
		},
	})
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting bemyrider fiscal service", "addr", cfg.Addr)
	return serve(ctx, srv, auditWorker, log)
}

type server interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

type backgroundWorker interface {
	Run(ctx context.Context) error
}

// serve runs srv and the audit worker until ctx is done. The worker is
// stopped only after Shutdown returns, so events tracked by requests still in
// flight during the grace period reach its final drain.
func serve(ctx context.Context, srv server, auditWorker backgroundWorker, log *slog.Logger) error {
	workerCtx, stopWorker := context.WithCancel(context.WithoutCancel(ctx))
	defer stopWorker()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return auditWorker.Run(workerCtx)
	})
	g.Go(func() error {
		<-gctx.Done()
		defer stopWorker()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// openInfra connects to every configured backend. Unset URLs leave the
// matching field nil and the service falls back to in-memory storage.
func openInfra(ctx context.Context, cfg config.Server, log *slog.Logger) (*infra, error) {
	i := &infra{}

	db, err := database.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if db != nil {
		i.db = db
		if err := database.Migrate(ctx, db, log); err != nil {
			i.close(log)
			return nil, err
		}
	} else {
		log.Warn("DATABASE_URL not set, tax details are kept in memory")
	}

	rc, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		i.close(log)
		return nil, err
	}
	i.redis = rc

	producer, err := kafka.NewProducer(ctx, cfg.Kafka, log)
	if err != nil {
		i.close(log)
		return nil, err
	}
	if producer != nil {
		i.producer = producer
		if err := producer.EnsureTopic(ctx, 1, 1); err != nil {
			i.close(log)
			return nil, err
		}
	}
	return i, nil
}

func buildRateLimiter(cfg config.RateLimitConfig, i *infra, reg prometheus.Registerer, log *slog.Logger) *ratelimitmw.Middleware {
	var store ratelimitmw.BucketStore = bucket.NewInMemoryBucketStore()
	if i.redis != nil {
		store = bucket.NewRedisBucketStore(i.redis.Client)
	}
	return ratelimitmw.New(store, log,
		ratelimitmw.WithLimit(ratelimit.ClassCompute, ratelimit.Limit{Requests: cfg.ComputePerWindow, Window: cfg.Window}),
		ratelimitmw.WithLimit(ratelimit.ClassRecords, ratelimit.Limit{Requests: cfg.RecordsPerWindow, Window: cfg.Window}),
		ratelimitmw.WithMetrics(ratelimitmetrics.New(reg)),
		ratelimitmw.WithTrustProxy(cfg.TrustProxy),
		ratelimitmw.WithDisabled(cfg.Disabled),
	)
}

// selectAuditStores picks the compliance and operations sinks. Compliance
// events go to Postgres whenever it is configured so they commit or roll back
// with the record upsert; Kafka then carries operations events only.
func selectAuditStores(i *infra) (complianceStore, opsStore audit.Store) {
	var local audit.Store = auditmemory.NewInMemoryStore()
	if i.db != nil {
		local = auditpostgres.New(i.db)
	}
	complianceStore, opsStore = local, local
	if i.producer != nil {
		opsStore = auditkafka.New(i.producer)
		if i.db == nil {
			complianceStore = opsStore
		}
	}
	return complianceStore, opsStore
}

func buildCalculator(cfg config.FiscalCodeConfig) (*fiscalcode.Calculator, error) {
	table := fiscalcode.DefaultTable()
	if cfg.BelfioreTablePath != "" {
		loaded, err := fiscalcode.LoadFile(cfg.BelfioreTablePath, table)
		if err != nil {
			return nil, fmt.Errorf("load belfiore table: %w", err)
		}
		table = loaded
	}
	opts := []fiscalcode.Option{fiscalcode.WithTable(table)}
	if cfg.FallbackPlaceCode != "" {
		opts = append(opts, fiscalcode.WithFallbackPlace(cfg.FallbackPlaceCode))
	}
	calculator, err := fiscalcode.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("build calculator: %w", err)
	}
	return calculator, nil
}

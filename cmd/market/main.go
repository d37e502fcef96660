package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"DrinkMarket/internal/market"
	"DrinkMarket/pkg/kit"
)

func main() {
	service := "market"
	log := kit.NewLogger(service, os.Getenv("LOG_LEVEL"))
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	port := getenv("PORT", "8084")

	store, closeStore, err := openStore(log)
	if err != nil {
		log.Fatal("open store failed", zap.Error(err))
	}
	defer closeStore()

	m, err := market.BuildMarket(ctx, store)
	if err != nil {
		log.Fatal("build market failed", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	s := &market.Server{
		Market:     m,
		Store:      store,
		Log:        log,
		Timer:      kit.NewTimer(log, reg),
		SnapshotID: uuid.NewString(),
	}
	log.Info("market built",
		zap.String("snapshot_id", s.SnapshotID),
		zap.Int("wines", len(m.Wines())),
		zap.Int("beers", len(m.Beers())),
		zap.Int("distinct_titles", m.Len()),
	)

	metricsEnabled, _ := strconv.ParseBool(getenv("METRICS_ENABLED", "true"))
	h := market.NewHandler(s, market.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: metricsEnabled,
		MetricsToken:   os.Getenv("METRICS_TOKEN"),
	})

	if err := kit.RunHTTPServer(ctx, ":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func openStore(log *zap.Logger) (market.Store, func(), error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := market.OpenPostgres(dsn)
		if err != nil {
			return nil, nil, err
		}
		log.Info("using postgres store")
		return market.NewPostgresStore(db), func() { _ = db.Close() }, nil
	}

	if path := os.Getenv("SEED_FILE"); path != "" {
		log.Info("using seed file store", zap.String("path", path))
		return market.NewFileStore(path), func() {}, nil
	}

	log.Info("using built-in demo catalog")
	return market.NewStore(), func() {}, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

package kit

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Timer logs the start and the wall-clock duration of wrapped calls.
type Timer struct {
	log      *zap.Logger
	duration *prometheus.HistogramVec
}

// NewTimer returns a Timer logging to log. When reg is non-nil durations are
// also exported as market_query_duration_seconds.
func NewTimer(log *zap.Logger, reg prometheus.Registerer) *Timer {
	if log == nil {
		log = zap.NewNop()
	}
	t := &Timer{log: log}

	if reg != nil {
		t.duration = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "market_query_duration_seconds",
				Help:    "Market query execution time",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{labelMethod},
		)
		reg.MustRegister(t.duration)
	}
	return t
}

// Time runs fn and returns its result untouched, logging method and elapsed
// seconds around it. A nil Timer just runs fn.
func Time[T any](t *Timer, method string, fn func() (T, error)) (T, error) {
	if t == nil {
		return fn()
	}

	t.log.Debug("call started", zap.String("method", method))
	start := time.Now()

	res, err := fn()

	elapsed := time.Since(start).Seconds()
	fields := []zap.Field{
		zap.String("method", method),
		zap.Float64("elapsed_seconds", elapsed),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	t.log.Info("call finished", fields...)

	if t.duration != nil {
		t.duration.WithLabelValues(method).Observe(elapsed)
	}
	return res, err
}

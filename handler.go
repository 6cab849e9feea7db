// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HandlerErrorHandling controls how Handler reacts to a failing Gather
// call, mirroring promhttp's three policies so operators already familiar
// with that package feel at home.
type HandlerErrorHandling int

const (
	ContinueOnError HandlerErrorHandling = iota
	HTTPErrorOnError
	PanicOnError
)

// HandlerOpts configures the scrape endpoint.
type HandlerOpts struct {
	// ErrorLog receives gathering errors, if set.
	ErrorLog func(error)

	// ErrorHandling selects the response to a Gather failure.
	ErrorHandling HandlerErrorHandling

	// Timeout bounds how long Gather may run; zero means no timeout is
	// applied beyond the request's own context.
	Timeout time.Duration

	// MaxRequestsInFlight limits concurrent scrapes; zero means no limit.
	MaxRequestsInFlight int

	// ContextFunc customizes the context derived from the request, e.g.
	// to attach a deadline-aware logger.
	ContextFunc func(*http.Request) context.Context
}

// Handler returns an http.Handler that serves gatherer's current snapshot,
// negotiating OpenMetrics vs. the legacy Prometheus text format from the
// request's Accept header (spec 4.G: the two writer contracts).
//
// Grounded on the teacher's handler.go content-negotiation and request-
// limiting shape, rewritten against this package's own Gatherer/writer
// pair instead of expfmt.
func Handler(gatherer Gatherer, opts HandlerOpts) http.Handler {
	var requestLimiter chan struct{}
	if opts.MaxRequestsInFlight > 0 {
		requestLimiter = make(chan struct{}, opts.MaxRequestsInFlight)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requestLimiter != nil {
			select {
			case requestLimiter <- struct{}{}:
				defer func() { <-requestLimiter }()
			default:
				http.Error(w, "Too many concurrent requests", http.StatusServiceUnavailable)
				return
			}
		}

		ctx := r.Context()
		if opts.ContextFunc != nil {
			ctx = opts.ContextFunc(r)
		}

		timeout := selectTimeout(parsePrometheusScrapeTimeout(r), opts.Timeout)
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		snaps, err := gatherWithContext(ctx, gatherer)
		if err != nil {
			if opts.ErrorLog != nil {
				opts.ErrorLog(err)
			}
			switch opts.ErrorHandling {
			case HTTPErrorOnError:
				if ctx.Err() != nil {
					http.Error(w, "metric gathering timeout", http.StatusServiceUnavailable)
				} else {
					http.Error(w, fmt.Sprintf("error gathering metrics: %v", err), http.StatusInternalServerError)
				}
				return
			case PanicOnError:
				panic(err)
			case ContinueOnError:
				// fall through with whatever snaps were collected, if any
			}
		}

		openMetrics := strings.Contains(r.Header.Get("Accept"), "application/openmetrics-text")
		if openMetrics {
			w.Header().Set("Content-Type", "application/openmetrics-text; version=1.0.0; charset=utf-8")
			if werr := WriteOpenMetrics(w, snaps); werr != nil && opts.ErrorLog != nil {
				opts.ErrorLog(werr)
			}
			return
		}
		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		if werr := WritePrometheus(w, snaps); werr != nil && opts.ErrorLog != nil {
			opts.ErrorLog(werr)
		}
	})
}

// gatherWithContext runs gatherer.Gather, returning early if ctx is
// cancelled first. Gather itself never blocks (spec 5: "no observe or
// collect path performs I/O or blocking waits"), so this is a best-effort
// guard for callers that wrap a slower external Gatherer.
func gatherWithContext(ctx context.Context, gatherer Gatherer) (MetricSnapshots, error) {
	type result struct {
		snaps MetricSnapshots
		err   error
	}
	done := make(chan result, 1)
	go func() {
		snaps, err := gatherer.Gather()
		done <- result{snaps, err}
	}()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.snaps, r.err
	}
}

func parsePrometheusScrapeTimeout(r *http.Request) time.Duration {
	headerVal := r.Header.Get("X-Prometheus-Scrape-Timeout-Seconds")
	if headerVal == "" {
		return 0
	}
	seconds, err := strconv.ParseFloat(headerVal, 64)
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds * float64(time.Second))
}

func selectTimeout(headerTimeout, optsTimeout time.Duration) time.Duration {
	switch {
	case headerTimeout > 0 && optsTimeout > 0:
		if headerTimeout < optsTimeout {
			return headerTimeout
		}
		return optsTimeout
	case headerTimeout > 0:
		return headerTimeout
	default:
		return optsTimeout
	}
}

// InstrumentMetricHandler wraps handler with the standard promhttp request
// counters (in-flight gauge, status-code counter, latency histogram),
// registered against reg. This is the one place this package leans on
// client_golang directly for its own operational metrics, rather than
// reimplementing HTTP instrumentation on top of the core cells above.
func InstrumentMetricHandler(reg prometheus.Registerer, handler http.Handler) http.Handler {
	inFlightGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "promhttp_metric_handler_requests_in_flight",
		Help: "Current number of scrapes being served.",
	})
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promhttp_metric_handler_requests_total",
			Help: "Total number of scrapes by HTTP status code.",
		},
		[]string{"code"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "promhttp_metric_handler_request_duration_seconds",
			Help:    "Histogram of latencies for HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler"},
	)
	reg.MustRegister(inFlightGauge, counter, duration)

	return promhttp.InstrumentHandlerInFlight(inFlightGauge,
		promhttp.InstrumentHandlerCounter(counter,
			promhttp.InstrumentHandlerDuration(duration, handler),
		),
	)
}

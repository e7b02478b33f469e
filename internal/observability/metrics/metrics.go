package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                    sync.Once
	metricsRouter           *chi.Mux
	pollerDurationHistogram *prometheus.HistogramVec
	dbLatency               *prometheus.HistogramVec
	httpRequestDuration     *prometheus.HistogramVec
	blockHeightGauge        prometheus.Gauge
	totalHashPowerGauge     prometheus.Gauge
	circulatingSupplyGauge  prometheus.Gauge
	allocatedRewardsCounter *prometheus.CounterVec
	claimCounter            *prometheus.CounterVec
	inactiveSweepGauge      prometheus.Gauge
	queueSendErrorCounter   prometheus.Counter
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"type", "status"},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of inbound API request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "path", "status"},
	)

	blockHeightGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "block_height",
			Help: "Height of the last mined block",
		},
	)

	totalHashPowerGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "total_hash_power",
			Help: "Total active network hash power in GH/s",
		},
	)

	circulatingSupplyGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "circulating_supply_micro",
			Help: "Circulating HVT supply in micro-units",
		},
	)

	allocatedRewardsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "allocated_rewards_total",
			Help: "Number of unclaimed reward rows written by the allocator",
		},
		[]string{"status"},
	)

	claimCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reward_claims_total",
			Help: "Number of claim operations by outcome",
		},
		[]string{"status"},
	)

	inactiveSweepGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "inactive_accounts_swept",
			Help: "Accounts marked inactive by the last sweep",
		},
	)

	// add a counter for the number of errors from the fail to push message into queue
	queueSendErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_send_error_count",
			Help: "The total number of errors when sending messages to the queue",
		},
	)

	prometheus.MustRegister(
		pollerDurationHistogram,
		dbLatency,
		httpRequestDuration,
		blockHeightGauge,
		totalHashPowerGauge,
		circulatingSupplyGauge,
		allocatedRewardsCounter,
		claimCounter,
		inactiveSweepGauge,
		queueSendErrorCounter,
	)
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	dbLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordBlockHeight(height int64) {
	blockHeightGauge.Set(float64(height))
}

func RecordNetworkStats(totalHashPower, circulatingSupply int64) {
	totalHashPowerGauge.Set(float64(totalHashPower))
	circulatingSupplyGauge.Set(float64(circulatingSupply))
}

func RecordAllocatedRewards(count int, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	allocatedRewardsCounter.WithLabelValues(status.String()).Add(float64(count))
}

func RecordClaim(failure bool) {
	status := Success
	if failure {
		status = Error
	}

	claimCounter.WithLabelValues(status.String()).Inc()
}

func RecordInactiveSweep(count int64) {
	inactiveSweepGauge.Set(float64(count))
}

func RecordQueueSendError() {
	queueSendErrorCounter.Inc()
}

// StartHTTPRequestDurationTimer starts a timer to measure an inbound API
// request duration. The path label is supplied at stop time because the
// matched route pattern is only known after routing.
func StartHTTPRequestDurationTimer(method string) func(path string, statusCode int) {
	startTime := time.Now()
	return func(path string, statusCode int) {
		duration := time.Since(startTime).Seconds()
		httpRequestDuration.WithLabelValues(
			method,
			path,
			strconv.Itoa(statusCode),
		).Observe(duration)
	}
}

package main

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики
var (
	assignCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shiftgen_assignments_total",
		Help: "Общее количество имитированных назначений",
	})

	assignDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "shiftgen_assignment_duration_seconds",
		Help:    "Длительность имитированного назначения в секундах",
		Buckets: []float64{0.1, 0.3, 0.5, 1, 2},
	})
)

func simulateAssignment() {
	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		assignDuration.Observe(duration)
	}()

	time.Sleep(time.Duration(100+rand.Intn(1900)) * time.Millisecond)
	assignCounter.Inc()
}

func main() {
	rand.Seed(time.Now().UnixNano())

	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":2112", nil)

	for {
		simulateAssignment()
		time.Sleep(5 * time.Second)
	}
}

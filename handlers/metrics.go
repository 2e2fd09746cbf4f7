// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	evaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quorate_evaluations_total",
		Help: "Completed evaluations by procedure and outcome",
	}, []string{"procedure", "outcome"})

	evaluationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quorate_evaluation_errors_total",
		Help: "Rejected evaluations by procedure and error kind",
	}, []string{"procedure", "kind"})

	evaluationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quorate_evaluation_duration_seconds",
		Help:    "Time spent inside the rule library",
		Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
	}, []string{"procedure"})
)

// Procedure labels
const (
	procQuorate        = "quorate"
	procThreshold      = "threshold"
	procQuestionSimple = "question_simple"
	procQuestion       = "question"
	procNOfM           = "n_of_m"
	procOneOfM         = "one_of_m"
)

func (h *EvaluationHandler) observe(procedure, outcome string, start time.Time) {
	if !h.cfg.Metrics {
		return
	}
	evaluationsTotal.WithLabelValues(procedure, outcome).Inc()
	evaluationDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
}

func (h *EvaluationHandler) observeError(procedure, kind string) {
	if !h.cfg.Metrics {
		return
	}
	evaluationErrorsTotal.WithLabelValues(procedure, kind).Inc()
}

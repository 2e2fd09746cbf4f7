// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/quorate/cliparse"
	"github.com/danielhkuo/quorate/handlers"
	"github.com/danielhkuo/quorate/middleware"
)

func NewRouter(cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	evaluationHandler := handlers.NewEvaluationHandler(cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if cfg.Metrics {
		mux.Handle("GET /metrics", promhttp.Handler())
	}

	// Catalogue of kinds and outcomes
	mux.HandleFunc("GET /kinds", middleware.WithLogging(evaluationHandler.Kinds))

	// Building blocks
	mux.HandleFunc("POST /quorate", middleware.WithLogging(evaluationHandler.Quorate))
	mux.HandleFunc("POST /threshold", middleware.WithLogging(evaluationHandler.Threshold))

	// Yes-or-no questions
	mux.HandleFunc("POST /questions/simple", middleware.WithLogging(evaluationHandler.QuestionSimple))
	mux.HandleFunc("POST /questions", middleware.WithLogging(evaluationHandler.Question))

	// Multi-choice contests
	mux.HandleFunc("POST /contests/n-of-m", middleware.WithLogging(evaluationHandler.NOfM))
	mux.HandleFunc("POST /contests/one-of-m", middleware.WithLogging(evaluationHandler.OneOfM))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quorate API v1"))
	})

	return mux
}

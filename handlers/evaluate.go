// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/quorate/cliparse"
	"github.com/danielhkuo/quorate/consensus"
	"github.com/danielhkuo/quorate/middleware"
	"github.com/danielhkuo/quorate/models"
)

type EvaluationHandler struct {
	cfg cliparse.Config
}

func NewEvaluationHandler(cfg cliparse.Config) *EvaluationHandler {
	return &EvaluationHandler{cfg: cfg}
}

// Quorate handles POST /quorate
func (h *EvaluationHandler) Quorate(w http.ResponseWriter, r *http.Request) {
	var req models.QuorateRequest
	if !decode(w, r, &req) {
		return
	}

	q, err := quorumSpec(req.Quorum)
	if err != nil {
		h.reject(w, r, procQuorate, err)
		return
	}

	start := time.Now()
	ok, err := consensus.Quorate(q, *req.Present, *req.Voting)
	if err != nil {
		h.reject(w, r, procQuorate, err)
		return
	}
	h.observe(procQuorate, strconv.FormatBool(ok), start)

	middleware.JSONResponse(w, http.StatusOK, models.QuorateResponse{Quorate: ok})
}

// Threshold handles POST /threshold
func (h *EvaluationHandler) Threshold(w http.ResponseWriter, r *http.Request) {
	var req models.ThresholdRequest
	if !decode(w, r, &req) {
		return
	}

	t, err := thresholdSpec(req.Threshold)
	if err != nil {
		h.reject(w, r, procThreshold, err)
		return
	}

	start := time.Now()
	ok, err := consensus.MeetsThreshold(*req.Votes, *req.Population, t)
	if err != nil {
		h.reject(w, r, procThreshold, err)
		return
	}
	h.observe(procThreshold, strconv.FormatBool(ok), start)

	middleware.JSONResponse(w, http.StatusOK, models.ThresholdResponse{MeetsThreshold: ok})
}

// QuestionSimple handles POST /questions/simple
func (h *EvaluationHandler) QuestionSimple(w http.ResponseWriter, r *http.Request) {
	var req models.SimpleQuestionRequest
	if !decode(w, r, &req) {
		return
	}

	threshold, err := consensus.ParseProportion(req.Threshold)
	if err != nil {
		h.reject(w, r, procQuestionSimple, err)
		return
	}

	start := time.Now()
	verdict, err := consensus.QuestionSimple(*req.Quorum, *req.VotesY, *req.VotesN, threshold)
	if err != nil {
		h.reject(w, r, procQuestionSimple, err)
		return
	}
	h.observe(procQuestionSimple, verdict.String(), start)

	middleware.JSONResponse(w, http.StatusOK, questionResponse(verdict))
}

// Question handles POST /questions
func (h *EvaluationHandler) Question(w http.ResponseWriter, r *http.Request) {
	var req models.QuestionRequest
	if !decode(w, r, &req) {
		return
	}

	q, t, err := specs(req.Quorum, req.Threshold)
	if err != nil {
		h.reject(w, r, procQuestion, err)
		return
	}

	start := time.Now()
	verdict, err := consensus.Question(q, *req.Present, *req.VotesY, *req.VotesN, *req.Population, t)
	if err != nil {
		h.reject(w, r, procQuestion, err)
		return
	}
	h.observe(procQuestion, verdict.String(), start)

	slog.Info("question evaluated",
		"request_id", middleware.RequestID(r.Context()),
		"quorum", q.String(),
		"threshold", t.String(),
		"outcome", verdict.String(),
	)

	middleware.JSONResponse(w, http.StatusOK, questionResponse(verdict))
}

// NOfM handles POST /contests/n-of-m
func (h *EvaluationHandler) NOfM(w http.ResponseWriter, r *http.Request) {
	var req models.NOfMRequest
	if !decode(w, r, &req) {
		return
	}

	q, t, err := specs(req.Quorum, req.Threshold)
	if err != nil {
		h.reject(w, r, procNOfM, err)
		return
	}

	start := time.Now()
	result, err := consensus.NOfM(q, *req.Present, *req.Voting, req.Votes, *req.Population, t)
	if err != nil {
		h.reject(w, r, procNOfM, err)
		return
	}
	h.observe(procNOfM, result.Verdict.String(), start)

	slog.Info("contest evaluated",
		"request_id", middleware.RequestID(r.Context()),
		"choices", len(req.Votes),
		"outcome", result.Verdict.String(),
		"winners", len(result.Winners),
	)

	middleware.JSONResponse(w, http.StatusOK, models.NOfMResponse{
		Outcome:     result.Verdict.String(),
		Description: result.Verdict.Description(),
		Winners:     result.Winners,
	})
}

// OneOfM handles POST /contests/one-of-m
func (h *EvaluationHandler) OneOfM(w http.ResponseWriter, r *http.Request) {
	var req models.OneOfMRequest
	if !decode(w, r, &req) {
		return
	}

	q, t, err := specs(req.Quorum, req.Threshold)
	if err != nil {
		h.reject(w, r, procOneOfM, err)
		return
	}

	start := time.Now()
	result, err := consensus.OneOfM(q, *req.Present, req.Votes, *req.Population, t)
	if err != nil {
		h.reject(w, r, procOneOfM, err)
		return
	}
	h.observe(procOneOfM, result.Verdict.String(), start)

	resp := models.OneOfMResponse{
		Outcome:     result.Verdict.String(),
		Description: result.Verdict.Description(),
	}
	if result.Verdict == consensus.Consensus {
		winner := result.Winner
		resp.Winner = &winner
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Kinds handles GET /kinds
func (h *EvaluationHandler) Kinds(w http.ResponseWriter, r *http.Request) {
	resp := models.KindsResponse{Version: consensus.Version}

	for _, k := range consensus.QuorumKinds() {
		resp.QuorumKinds = append(resp.QuorumKinds, models.KindInfo{Name: k.String(), Description: k.Description()})
	}
	for _, k := range consensus.ThresholdKinds() {
		resp.ThresholdKinds = append(resp.ThresholdKinds, models.KindInfo{Name: k.String(), Description: k.Description()})
	}
	for _, v := range consensus.Verdicts() {
		resp.Outcomes = append(resp.Outcomes, models.KindInfo{Name: v.String(), Description: v.Description()})
	}
	for _, b := range consensus.PopulationBases() {
		resp.PopulationBases = append(resp.PopulationBases, models.KindInfo{Name: b.String(), Description: b.Description()})
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// decode parses and validates the request body, writing a 400 on failure
func decode(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := middleware.ParseJSONBody(r, req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return false
	}
	if err := models.Validate(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// reject writes a 422 for rule violations and a 500 for anything else
func (h *EvaluationHandler) reject(w http.ResponseWriter, r *http.Request, procedure string, err error) {
	kind := consensus.ErrorKind(err)
	if kind == "" {
		slog.Error("evaluation failed",
			"procedure", procedure,
			"request_id", middleware.RequestID(r.Context()),
			"error", err,
		)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Evaluation failed")
		return
	}

	slog.Warn("evaluation rejected",
		"procedure", procedure,
		"request_id", middleware.RequestID(r.Context()),
		"kind", kind,
		"error", err,
	)
	h.observeError(procedure, kind)
	middleware.KindErrorResponse(w, http.StatusUnprocessableEntity, kind, err.Error())
}

func questionResponse(v consensus.Verdict) models.QuestionResponse {
	return models.QuestionResponse{Outcome: v.String(), Description: v.Description()}
}

func specs(qs models.QuorumSpec, ts models.ThresholdSpec) (consensus.QuorumSpec, consensus.ThresholdSpec, error) {
	q, err := quorumSpec(qs)
	if err != nil {
		return consensus.QuorumSpec{}, consensus.ThresholdSpec{}, err
	}
	t, err := thresholdSpec(ts)
	if err != nil {
		return consensus.QuorumSpec{}, consensus.ThresholdSpec{}, err
	}
	return q, t, nil
}

func quorumSpec(s models.QuorumSpec) (consensus.QuorumSpec, error) {
	kind, err := consensus.ParseQuorumKind(s.Kind)
	if err != nil {
		return consensus.QuorumSpec{}, err
	}

	switch kind {
	case consensus.NumPresentQuorum, consensus.NumVotingQuorum:
		n, err := parseCount(s.Value, "quorum")
		if err != nil {
			return consensus.QuorumSpec{}, err
		}
		if kind == consensus.NumPresentQuorum {
			return consensus.NumPresent(n), nil
		}
		return consensus.NumVoting(n), nil
	case consensus.ProportionVotingQuorum:
		p, err := consensus.ParseProportion(s.Value)
		if err != nil {
			return consensus.QuorumSpec{}, err
		}
		return consensus.ProportionVoting(p), nil
	}
	return consensus.QuorumSpec{}, fmt.Errorf("%w: unsupported quorum kind %s", consensus.ErrInvalidSpecification, kind)
}

func thresholdSpec(s models.ThresholdSpec) (consensus.ThresholdSpec, error) {
	kind, err := consensus.ParseThresholdKind(s.Kind)
	if err != nil {
		return consensus.ThresholdSpec{}, err
	}

	switch kind {
	case consensus.SupermajorityThreshold:
		p, err := consensus.ParseProportion(s.Value)
		if err != nil {
			return consensus.ThresholdSpec{}, err
		}
		return consensus.Supermajority(p), nil
	case consensus.NearUnanimityThreshold:
		c, err := parseCount(s.Value, "threshold C")
		if err != nil {
			return consensus.ThresholdSpec{}, err
		}
		return consensus.NearUnanimity(c), nil
	case consensus.UnanimityThreshold:
		return consensus.Unanimity(), nil
	case consensus.MajorityThreshold:
		return consensus.Majority(), nil
	}
	return consensus.ThresholdSpec{}, fmt.Errorf("%w: unsupported threshold kind %s", consensus.ErrInvalidSpecification, kind)
}

func parseCount(s, name string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", consensus.ErrTypeMismatch, name, s)
	}
	return n, nil
}

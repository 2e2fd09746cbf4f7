// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/quorate/consensus"
	"github.com/danielhkuo/quorate/models"
	"github.com/danielhkuo/quorate/testutil"
)

type body = map[string]interface{}

func quorum(kind, value string) body {
	return body{"kind": kind, "value": value}
}

func threshold(kind, value string) body {
	if value == "" {
		return body{"kind": kind}
	}
	return body{"kind": kind, "value": value}
}

func newTestHandler() *EvaluationHandler {
	return NewEvaluationHandler(testutil.GetTestConfig())
}

// serve runs one handler method and returns the recorder
func serve(handler http.HandlerFunc, path string, req interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handler(w, testutil.MakeRequest("POST", path, req, nil))
	return w
}

func assertErrorKind(t *testing.T, w *httptest.ResponseRecorder, status int, kind string) {
	t.Helper()
	testutil.AssertStatus(t, w, status)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Kind != kind {
		t.Errorf("Expected error kind '%s', got '%s' (%s)", kind, resp.Kind, resp.Message)
	}
	if resp.Message == "" {
		t.Error("Expected an error message")
	}
}

func TestQuorate(t *testing.T) {
	h := newTestHandler()

	testCases := []struct {
		name     string
		req      body
		expected bool
	}{
		{"num voting met", body{"quorum": quorum("num_voting", "3"), "present": 5, "voting": 4}, true},
		{"num voting not met", body{"quorum": quorum("num_voting", "5"), "present": 5, "voting": 4}, false},
		{"num present needs a voter", body{"quorum": quorum("num_present", "3"), "present": 5, "voting": 0}, false},
		{"proportion met", body{"quorum": quorum("proportion_voting", "1/2"), "present": 4, "voting": 2}, true},
		{"proportion not met", body{"quorum": quorum("proportion_voting", "1/2"), "present": 4, "voting": 1}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(h.Quorate, "/quorate", tc.req)
			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.QuorateResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Quorate != tc.expected {
				t.Errorf("Expected quorate=%v, got %v", tc.expected, resp.Quorate)
			}
		})
	}
}

func TestQuorate_Errors(t *testing.T) {
	h := newTestHandler()

	testCases := []struct {
		name   string
		req    body
		status int
		kind   string
	}{
		{"missing present", body{"quorum": quorum("num_voting", "3"), "voting": 4}, http.StatusBadRequest, ""},
		{"unknown kind", body{"quorum": quorum("num_absent", "3"), "present": 5, "voting": 4}, http.StatusBadRequest, ""},
		{"missing quorum value", body{"quorum": body{"kind": "num_voting"}, "present": 5, "voting": 4}, http.StatusBadRequest, ""},
		{"voting exceeds present", body{"quorum": quorum("num_voting", "3"), "present": 3, "voting": 4}, http.StatusUnprocessableEntity, "logic_violation"},
		{"negative present", body{"quorum": quorum("num_voting", "3"), "present": -1, "voting": 0}, http.StatusUnprocessableEntity, "type_mismatch"},
		{"zero quorum", body{"quorum": quorum("num_voting", "0"), "present": 5, "voting": 4}, http.StatusUnprocessableEntity, "range_violation"},
		{"non-integral count", body{"quorum": quorum("num_voting", "three"), "present": 5, "voting": 4}, http.StatusUnprocessableEntity, "type_mismatch"},
		{"proportion above one", body{"quorum": quorum("proportion_voting", "3/2"), "present": 5, "voting": 4}, http.StatusUnprocessableEntity, "range_violation"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(h.Quorate, "/quorate", tc.req)
			assertErrorKind(t, w, tc.status, tc.kind)
		})
	}
}

func TestThreshold(t *testing.T) {
	h := newTestHandler()

	testCases := []struct {
		name     string
		req      body
		status   int
		expected bool
	}{
		{"majority met", body{"threshold": threshold("majority", ""), "votes": 51, "population": 100}, http.StatusOK, true},
		{"exact half is not a majority", body{"threshold": threshold("majority", ""), "votes": 50, "population": 100}, http.StatusOK, false},
		{"supermajority boundary", body{"threshold": threshold("supermajority", "2/3"), "votes": 66, "population": 99}, http.StatusOK, true},
		{"supermajority decimal", body{"threshold": threshold("supermajority", "0.75"), "votes": 74, "population": 100}, http.StatusOK, false},
		{"near unanimity", body{"threshold": threshold("near_unanimity", "2"), "votes": 8, "population": 10}, http.StatusOK, true},
		{"unanimity", body{"threshold": threshold("unanimity", ""), "votes": 9, "population": 10}, http.StatusOK, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(h.Threshold, "/threshold", tc.req)
			testutil.AssertStatus(t, w, tc.status)

			var resp models.ThresholdResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.MeetsThreshold != tc.expected {
				t.Errorf("Expected meets_threshold=%v, got %v", tc.expected, resp.MeetsThreshold)
			}
		})
	}
}

func TestThreshold_Errors(t *testing.T) {
	h := newTestHandler()

	testCases := []struct {
		name   string
		req    body
		status int
		kind   string
	}{
		{"supermajority needs T", body{"threshold": threshold("supermajority", ""), "votes": 5, "population": 10}, http.StatusBadRequest, ""},
		{"near unanimity needs C", body{"threshold": threshold("near_unanimity", ""), "votes": 5, "population": 10}, http.StatusBadRequest, ""},
		{"T at one half", body{"threshold": threshold("supermajority", "1/2"), "votes": 5, "population": 10}, http.StatusUnprocessableEntity, "range_violation"},
		{"C at half the population", body{"threshold": threshold("near_unanimity", "5"), "votes": 5, "population": 10}, http.StatusUnprocessableEntity, "range_violation"},
		{"votes exceed population", body{"threshold": threshold("majority", ""), "votes": 11, "population": 10}, http.StatusUnprocessableEntity, "logic_violation"},
		{"T not rational", body{"threshold": threshold("supermajority", "two thirds"), "votes": 5, "population": 10}, http.StatusUnprocessableEntity, "type_mismatch"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(h.Threshold, "/threshold", tc.req)
			assertErrorKind(t, w, tc.status, tc.kind)
		})
	}
}

func TestQuestionSimple(t *testing.T) {
	h := newTestHandler()

	testCases := []struct {
		name     string
		votesY   int
		votesN   int
		expected string
	}{
		{"accepted", 7, 3, "accepted"},
		{"rejected", 3, 7, "rejected"},
		{"negative", 6, 4, "negative_result"},
		{"below quorum", 4, 1, "null_result"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(h.QuestionSimple, "/questions/simple", body{
				"quorum": 10, "votes_y": tc.votesY, "votes_n": tc.votesN, "threshold": "2/3",
			})
			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.QuestionResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Outcome != tc.expected {
				t.Errorf("Expected outcome '%s', got '%s'", tc.expected, resp.Outcome)
			}
			if resp.Description == "" {
				t.Error("Expected a description")
			}
		})
	}

	t.Run("bad threshold", func(t *testing.T) {
		w := serve(h.QuestionSimple, "/questions/simple", body{
			"quorum": 10, "votes_y": 7, "votes_n": 3, "threshold": "most",
		})
		assertErrorKind(t, w, http.StatusUnprocessableEntity, "type_mismatch")
	})

	t.Run("zero quorum", func(t *testing.T) {
		w := serve(h.QuestionSimple, "/questions/simple", body{
			"quorum": 0, "votes_y": 7, "votes_n": 3, "threshold": "2/3",
		})
		assertErrorKind(t, w, http.StatusUnprocessableEntity, "range_violation")
	})
}

func TestQuestion(t *testing.T) {
	h := newTestHandler()

	testCases := []struct {
		name     string
		present  int
		votesY   int
		votesN   int
		expected string
	}{
		{"accepted", 5, 4, 1, "accepted"},
		{"rejected", 5, 1, 4, "rejected"},
		{"tied", 5, 2, 2, "negative_result"},
		{"not quorate", 2, 1, 1, "null_result"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(h.Question, "/questions", body{
				"quorum":     quorum("num_present", "3"),
				"present":    tc.present,
				"votes_y":    tc.votesY,
				"votes_n":    tc.votesN,
				"population": 5,
				"threshold":  threshold("majority", ""),
			})
			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.QuestionResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Outcome != tc.expected {
				t.Errorf("Expected outcome '%s', got '%s'", tc.expected, resp.Outcome)
			}
		})
	}

	t.Run("votes exceed present", func(t *testing.T) {
		w := serve(h.Question, "/questions", body{
			"quorum":     quorum("num_present", "3"),
			"present":    3,
			"votes_y":    3,
			"votes_n":    1,
			"population": 5,
			"threshold":  threshold("majority", ""),
		})
		assertErrorKind(t, w, http.StatusUnprocessableEntity, "logic_violation")
	})
}

func TestNOfM(t *testing.T) {
	h := newTestHandler()

	t.Run("two winners", func(t *testing.T) {
		w := serve(h.NOfM, "/contests/n-of-m", body{
			"quorum":     quorum("num_voting", "3"),
			"present":    6,
			"voting":     6,
			"votes":      []int{5, 2, 4},
			"population": 6,
			"threshold":  threshold("majority", ""),
		})
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.NOfMResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Outcome != "consensus" {
			t.Fatalf("Expected consensus, got '%s'", resp.Outcome)
		}
		if len(resp.Winners) != 2 || resp.Winners[0] != 0 || resp.Winners[1] != 2 {
			t.Errorf("Expected winners [0 2], got %v", resp.Winners)
		}
	})

	t.Run("no winners", func(t *testing.T) {
		w := serve(h.NOfM, "/contests/n-of-m", body{
			"quorum":     quorum("num_voting", "3"),
			"present":    6,
			"voting":     6,
			"votes":      []int{3, 3, 3},
			"population": 6,
			"threshold":  threshold("majority", ""),
		})
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.NOfMResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Outcome != "negative_result" {
			t.Errorf("Expected negative_result, got '%s'", resp.Outcome)
		}
		if resp.Winners != nil {
			t.Errorf("Expected no winners, got %v", resp.Winners)
		}
	})

	t.Run("empty choice list", func(t *testing.T) {
		w := serve(h.NOfM, "/contests/n-of-m", body{
			"quorum":     quorum("num_voting", "3"),
			"present":    6,
			"voting":     6,
			"votes":      []int{},
			"population": 6,
			"threshold":  threshold("majority", ""),
		})
		assertErrorKind(t, w, http.StatusUnprocessableEntity, "range_violation")
	})

	t.Run("fewer votes than voters", func(t *testing.T) {
		w := serve(h.NOfM, "/contests/n-of-m", body{
			"quorum":     quorum("num_voting", "3"),
			"present":    6,
			"voting":     6,
			"votes":      []int{2, 2},
			"population": 6,
			"threshold":  threshold("majority", ""),
		})
		assertErrorKind(t, w, http.StatusUnprocessableEntity, "logic_violation")
	})
}

func TestOneOfM(t *testing.T) {
	h := newTestHandler()

	testCases := []struct {
		name     string
		votes    []int
		expected string
		winner   *int
	}{
		{"single winner", []int{4, 1, 1}, "consensus", intPtr(0)},
		{"split", []int{3, 3}, "negative_result", nil},
		{"not quorate", []int{1, 0}, "null_result", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(h.OneOfM, "/contests/one-of-m", body{
				"quorum":     quorum("num_voting", "2"),
				"present":    6,
				"votes":      tc.votes,
				"population": 6,
				"threshold":  threshold("majority", ""),
			})
			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.OneOfMResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Outcome != tc.expected {
				t.Errorf("Expected outcome '%s', got '%s'", tc.expected, resp.Outcome)
			}
			switch {
			case tc.winner == nil && resp.Winner != nil:
				t.Errorf("Expected no winner, got %d", *resp.Winner)
			case tc.winner != nil && (resp.Winner == nil || *resp.Winner != *tc.winner):
				t.Errorf("Expected winner %d, got %v", *tc.winner, resp.Winner)
			}
		})
	}
}

func TestKinds(t *testing.T) {
	h := newTestHandler()

	w := httptest.NewRecorder()
	h.Kinds(w, httptest.NewRequest("GET", "/kinds", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.KindsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Version != "1.0" {
		t.Errorf("Expected version 1.0, got '%s'", resp.Version)
	}
	if len(resp.QuorumKinds) != 3 || resp.QuorumKinds[0].Name != models.QuorumNumPresent {
		t.Errorf("Unexpected quorum kinds: %+v", resp.QuorumKinds)
	}
	if len(resp.ThresholdKinds) != 4 || resp.ThresholdKinds[3].Name != models.ThresholdUnanimity {
		t.Errorf("Unexpected threshold kinds: %+v", resp.ThresholdKinds)
	}
	if len(resp.Outcomes) != 5 {
		t.Errorf("Expected 5 outcomes, got %d", len(resp.Outcomes))
	}
	if len(resp.PopulationBases) != 4 {
		t.Errorf("Expected 4 population bases, got %d", len(resp.PopulationBases))
	}
	for _, k := range resp.Outcomes {
		if k.Description == "" {
			t.Errorf("Outcome %s has no description", k.Name)
		}
	}
}

func TestInvalidJSON(t *testing.T) {
	h := newTestHandler()

	handlers := map[string]http.HandlerFunc{
		"/quorate":           h.Quorate,
		"/threshold":         h.Threshold,
		"/questions/simple":  h.QuestionSimple,
		"/questions":         h.Question,
		"/contests/n-of-m":   h.NOfM,
		"/contests/one-of-m": h.OneOfM,
	}

	for path, handler := range handlers {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest("POST", path, strings.NewReader("{not json"))
			w := httptest.NewRecorder()
			handler(w, req)
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestSpecConversionKeepsKind(t *testing.T) {
	quorumValues := map[consensus.QuorumKind]string{
		consensus.NumPresentQuorum:       "3",
		consensus.NumVotingQuorum:        "3",
		consensus.ProportionVotingQuorum: "1/3",
	}
	for _, k := range consensus.QuorumKinds() {
		t.Run(k.String(), func(t *testing.T) {
			q, err := quorumSpec(models.QuorumSpec{Kind: k.String(), Value: quorumValues[k]})
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if q.Kind() != k {
				t.Errorf("Expected kind %s, got %s", k, q.Kind())
			}
		})
	}

	thresholdValues := map[consensus.ThresholdKind]string{
		consensus.SupermajorityThreshold: "2/3",
		consensus.NearUnanimityThreshold: "1",
	}
	for _, k := range consensus.ThresholdKinds() {
		t.Run(k.String(), func(t *testing.T) {
			th, err := thresholdSpec(models.ThresholdSpec{Kind: k.String(), Value: thresholdValues[k]})
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if th.Kind() != k {
				t.Errorf("Expected kind %s, got %s", k, th.Kind())
			}
		})
	}
}

func TestQuestionSimple_LargeCounts(t *testing.T) {
	h := newTestHandler()

	// 1<<62 + 1<<62 wraps a 64-bit int
	w := serve(h.QuestionSimple, "/questions/simple", body{
		"quorum": 10, "votes_y": int64(1) << 62, "votes_n": int64(1) << 62, "threshold": "2/3",
	})
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.QuestionResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Outcome != "negative_result" {
		t.Errorf("Expected negative_result, got '%s'", resp.Outcome)
	}

	w = serve(h.Question, "/questions", body{
		"quorum":     quorum("num_present", "1"),
		"present":    10,
		"votes_y":    int64(1) << 62,
		"votes_n":    int64(1) << 62,
		"population": 10,
		"threshold":  threshold("majority", ""),
	})
	assertErrorKind(t, w, http.StatusUnprocessableEntity, "logic_violation")
}

func intPtr(n int) *int {
	return &n
}

package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/loganko83/realcare/internal/cache"
	"github.com/loganko83/realcare/internal/config"
	"github.com/loganko83/realcare/internal/metrics"
	"github.com/loganko83/realcare/internal/reality"
)

// defaultInput mirrors the request defaults clients rely on: omitted
// is_first_home means a first-home buyer.
func defaultInput() reality.Input {
	return reality.Input{IsFirstHome: true}
}

// compareRequest is the scenario comparison payload: a base plan plus
// projection assumptions. Omitted assumptions take the standard defaults.
type compareRequest struct {
	Base               reality.Input `json:"base"`
	WaitYears          int           `json:"wait_years"`
	PriceAppreciation  float64       `json:"price_appreciation"`
	IncomeGrowth       float64       `json:"income_growth"`
	SavingsRate        float64       `json:"savings_rate"`
	InterestRateChange float64       `json:"interest_rate_change"`
}

func defaultCompareRequest() compareRequest {
	opts := reality.DefaultCompareOptions()
	return compareRequest{
		Base:              defaultInput(),
		WaitYears:         opts.WaitYears,
		PriceAppreciation: opts.PriceAppreciation,
		IncomeGrowth:      opts.IncomeGrowth,
		SavingsRate:       opts.SavingsRate,
	}
}

func (req compareRequest) options() reality.CompareOptions {
	return reality.CompareOptions{
		WaitYears:          req.WaitYears,
		PriceAppreciation:  req.PriceAppreciation,
		IncomeGrowth:       req.IncomeGrowth,
		SavingsRate:        req.SavingsRate,
		InterestRateChange: req.InterestRateChange,
	}
}

// calculateResponse is a full analysis result plus per-request metadata.
type calculateResponse struct {
	reality.Result
	ReportID  string    `json:"report_id"`
	CreatedAt time.Time `json:"created_at"`
}

type regionEntry struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Zone              string `json:"zone"`
	IsSpeculativeZone bool   `json:"is_speculative_zone"`
	IsAdjustedZone    bool   `json:"is_adjusted_zone"`
	LTVFirstHome      int    `json:"ltv_first_home"`
	LTVOneHome        int    `json:"ltv_one_home"`
	LTVMultiHome      int    `json:"ltv_multi_home"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"app":     config.AppName,
		"version": config.AppVersion,
	})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	in := defaultInput()
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if problems := in.Problems(); len(problems) > 0 {
		writeValidationError(w, problems)
		return
	}

	result, ok := s.cachedResult(r, "calculate", in)
	if !ok {
		result = s.calc.Analyze(in)
		s.storeResult(r, "calculate", in, result)
	}
	metrics.AnalysesTotal.WithLabelValues(result.Grade).Inc()

	writeJSON(w, http.StatusOK, calculateResponse{
		Result:    result,
		ReportID:  uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	})
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	req := defaultCompareRequest()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	problems := req.Base.Problems()
	problems = append(problems, req.options().Problems()...)
	if len(problems) > 0 {
		writeValidationError(w, problems)
		return
	}

	var comparison reality.Comparison
	hit := false
	key, err := cache.Key("compare", req)
	if err == nil {
		if data, ok := s.cache.Get(r.Context(), key); ok {
			hit = json.Unmarshal(data, &comparison) == nil
		}
		metrics.CacheHit(hit)
	}
	if !hit {
		comparison = s.calc.Compare(req.Base, req.options())
		if err == nil {
			if data, merr := json.Marshal(comparison); merr == nil {
				s.cache.Set(r.Context(), key, data)
			}
		}
	}
	metrics.ComparisonsTotal.WithLabelValues(comparison.Projection.Recommendation).Inc()

	writeJSON(w, http.StatusOK, comparison)
}

func (s *Server) handleActionPlan(w http.ResponseWriter, r *http.Request) {
	in := defaultInput()
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if problems := in.Problems(); len(problems) > 0 {
		writeValidationError(w, problems)
		return
	}

	result := s.calc.Analyze(in)
	writeJSON(w, http.StatusOK, map[string]any{
		"report_id":       uuid.NewString(),
		"recommendations": buildActionPlan(result, in),
	})
}

func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	profiles := s.calc.Catalog().List()
	entries := make([]regionEntry, 0, len(profiles))
	for _, p := range profiles {
		entries = append(entries, regionEntry{
			ID:                p.ID,
			Name:              p.Name,
			Zone:              p.Zone(),
			IsSpeculativeZone: p.Speculative,
			IsAdjustedZone:    p.Adjusted,
			LTVFirstHome:      p.LTVLimit(true, 0),
			LTVOneHome:        p.LTVLimit(false, 1),
			LTVMultiHome:      p.LTVLimit(false, 2),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"regions": entries})
}

// cachedResult looks up a prior result for the same input. Corrupt entries
// count as misses.
func (s *Server) cachedResult(r *http.Request, op string, in reality.Input) (reality.Result, bool) {
	key, err := cache.Key(op, in)
	if err != nil {
		return reality.Result{}, false
	}
	var result reality.Result
	data, ok := s.cache.Get(r.Context(), key)
	if ok {
		if err := json.Unmarshal(data, &result); err != nil {
			zap.L().Warn("server: corrupt cache entry", zap.String("key", key), zap.Error(err))
			result, ok = reality.Result{}, false
		}
	}
	metrics.CacheHit(ok)
	return result, ok
}

func (s *Server) storeResult(r *http.Request, op string, in reality.Input, result reality.Result) {
	key, err := cache.Key(op, in)
	if err != nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	s.cache.Set(r.Context(), key, data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeValidationError(w http.ResponseWriter, problems []string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error":   "validation failed",
		"details": problems,
	})
}

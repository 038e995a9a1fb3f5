package http

import (
	"encoding/json"
	"net/http"

	"github.com/venev-g/psychoassess/internal/norms"
)

// NormalizeHandler exposes the normalization engine directly, mainly for
// research tooling and report backfills.
func NormalizeHandler(engine *norms.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			RawScore   float64 `json:"raw_score"`
			Category   string  `json:"category"`
			Method     string  `json:"method"`
			Population string  `json:"population,omitempty"`
			AgeGroup   string  `json:"age_group,omitempty"`
			Gender     string  `json:"gender,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		res := engine.Normalize(req.RawScore, req.Category, norms.Options{
			Method:     norms.Method(req.Method),
			Population: req.Population,
			AgeGroup:   req.AgeGroup,
			Gender:     req.Gender,
		})
		_ = json.NewEncoder(w).Encode(res)
	}
}

func NormCategoriesHandler(engine *norms.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cats := engine.AvailableCategories()
		if cats == nil {
			cats = []string{}
		}
		_ = json.NewEncoder(w).Encode(cats)
	}
}

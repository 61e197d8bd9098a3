// Package handler exposes the matching workflow over plain JSON endpoints.
package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"servicematch/internal/describe"
	"servicematch/internal/recommend"
)

type API struct {
	recommender *recommend.Service
	describer   *describe.Generator
}

func NewAPI(recommender *recommend.Service, describer *describe.Generator) *API {
	return &API{recommender: recommender, describer: describer}
}

// HandleRecommend serves POST /recommend.
func (a *API) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var in struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	query := strings.TrimSpace(in.Query)
	if query == "" {
		http.Error(w, "query is required", http.StatusBadRequest)
		return
	}

	rec := a.recommender.Recommend(r.Context(), query)

	writeJSON(w, map[string]any{
		"recommended_service":   rec.Service,
		"slug":                  rec.Slug,
		"confidence":            rec.Confidence,
		"expert_advice":         rec.ExpertAdvice,
		"status":                rec.Status,
		"classification_source": rec.Source,
	})
}

// HandleGenerateDescription serves POST /generate-description.
func (a *API) HandleGenerateDescription(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var in struct {
		ServiceTitle string `json:"service_title"`
		CategoryName string `json:"category_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(in.ServiceTitle) == "" {
		http.Error(w, "service_title is required", http.StatusBadRequest)
		return
	}

	description := a.describer.Describe(r.Context(), in.ServiceTitle, in.CategoryName)

	writeJSON(w, map[string]any{
		"description": description,
	})
}

// HandleHealth serves GET /health.
func (a *API) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, map[string]any{
		"status": "online",
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

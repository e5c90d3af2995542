package ui

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"datadetective/domain/analysis"
	"datadetective/domain/core"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":      "ok",
		"analyzer_id": s.analyzer.ID().String(),
		"created_at":  s.analyzer.CreatedAt().ReportString(),
	})
}

func (s *Server) handleFields(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"data_points":    s.analyzer.DataPoints(),
		"numeric_fields": s.analyzer.NumericFields(),
	})
}

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	metric := chi.URLParam(r, "metric")

	statistics, err := s.analyzer.Statistics(metric)
	if err != nil {
		writeStatisticsError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statistics)
}

func (s *Server) handleAnomalies(w http.ResponseWriter, r *http.Request) {
	metric := chi.URLParam(r, "metric")

	threshold := s.threshold
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			writeJSON(w, http.StatusBadRequest, analysis.ErrorResult{
				Error: "threshold must be a positive number",
			})
			return
		}
		threshold = parsed
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"metric":    metric,
		"threshold": threshold,
		"anomalies": s.analyzer.DetectAnomalies(metric, threshold),
	})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	metric := chi.URLParam(r, "metric")

	profile, err := s.analyzer.ProfileField(metric)
	if err != nil {
		writeStatisticsError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleGroups(w http.ResponseWriter, r *http.Request) {
	group := chi.URLParam(r, "group")
	metric := chi.URLParam(r, "metric")

	writeJSON(w, http.StatusOK, map[string]any{
		"group_key": group,
		"metric":    metric,
		"groups":    s.analyzer.GroupAndAggregate(group, metric),
	})
}

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	results, err := s.sweep.Run(r.Context(), s.analyzer)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, analysis.ErrorResult{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"fields": results})
}

func (s *Server) handleExportReport(w http.ResponseWriter, r *http.Request) {
	metric := chi.URLParam(r, "metric")

	message, err := s.analyzer.ExportReport(metric, s.report)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, analysis.ErrorResult{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

// writeStatisticsError maps the structured "no numeric data" condition to
// 404 with the same error shape reports embed; anything else is a 500.
func writeStatisticsError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if core.IsNoNumericDataError(err) {
		status = http.StatusNotFound
	}
	writeJSON(w, status, analysis.ErrorResult{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

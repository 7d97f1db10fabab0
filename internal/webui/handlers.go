package webui

import (
	_ "embed"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/findexlab/fipulse/core"
	"github.com/findexlab/fipulse/internal/dataset"
	"github.com/findexlab/fipulse/schema"
)

//go:embed index.html
var indexHTML []byte

// errorResponse is the JSON body for API failures.
type errorResponse struct {
	Error string `json:"error"`
}

// historyResponse pairs the observed series with its chart.
type historyResponse struct {
	Series schema.IndicatorSeries `json:"series"`
	Chart  *ChartConfig           `json:"chart"`
}

// forecastResponse pairs the forecast table with its chart.
type forecastResponse struct {
	Table schema.ForecastTable `json:"table"`
	Chart *ChartConfig         `json:"chart"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// requireGet rejects anything but GET requests.
func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return false
	}
	return true
}

// handleIndex serves the embedded dashboard page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	if !requireGet(w, r) {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleIndicators lists the indicator display names in the dataset.
func (s *Server) handleIndicators(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{
		"indicators": schema.IndicatorNames(s.records),
	})
}

// handleHistory returns the observed annual series for one indicator.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	indicator := r.URL.Query().Get("indicator")
	if indicator == "" {
		writeError(w, http.StatusBadRequest, "query parameter 'indicator' is required")
		return
	}

	series, err := dataset.AnnualSeries(s.records, indicator)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, historyResponse{
		Series: series,
		Chart:  BuildHistoryChart(series),
	})
}

// forecastTableFor runs the pipeline for the requested indicator against
// the preloaded dataset, leaving the server's base config untouched.
func (s *Server) forecastTableFor(indicator string) (schema.ForecastTable, error) {
	cfg := s.cfg.Clone()
	cfg.Indicator = indicator
	return core.GetForecastTable(cfg, s.records, s.impacts, s.schedule)
}

// handleForecast returns the scenario table and chart for one indicator.
func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	indicator := r.URL.Query().Get("indicator")
	if indicator == "" {
		writeError(w, http.StatusBadRequest, "query parameter 'indicator' is required")
		return
	}

	table, err := s.forecastTableFor(indicator)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, forecastResponse{
		Table: table,
		Chart: BuildForecastChart(table),
	})
}

// handleOverview returns the descriptive dataset summary.
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, core.BuildOverview(s.records))
}

// handleGenderGap returns the mean value by gender for one indicator.
func (s *Server) handleGenderGap(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	indicator := r.URL.Query().Get("indicator")
	if indicator == "" {
		writeError(w, http.StatusBadRequest, "query parameter 'indicator' is required")
		return
	}

	// Canonicalize codes to the display name the gap records carry.
	series, err := dataset.AnnualSeries(s.records, indicator)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, core.GenderGap(s.records, series.Indicator))
}

// handleForecastCSV streams one indicator's forecast as a CSV download.
func (s *Server) handleForecastCSV(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	indicator := r.URL.Query().Get("indicator")
	if indicator == "" {
		writeError(w, http.StatusBadRequest, "query parameter 'indicator' is required")
		return
	}

	table, err := s.forecastTableFor(indicator)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "forecast.csv"))

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"year", "baseline", "with_events", "optimistic", "base", "pessimistic", "ci_lower", "ci_upper"})
	for _, row := range table.Rows {
		_ = cw.Write([]string{
			strconv.Itoa(row.Year),
			formatCSVFloat(row.Baseline),
			formatCSVFloat(row.WithEvents),
			formatCSVFloat(row.Optimistic),
			formatCSVFloat(row.Base),
			formatCSVFloat(row.Pessimistic),
			formatCSVFloat(row.CILower),
			formatCSVFloat(row.CIUpper),
		})
	}
	cw.Flush()
}

func formatCSVFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

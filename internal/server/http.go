// Package server exposes the simulation engine over HTTP: JSON request/
// response handlers, a websocket endpoint that sends per-year convergence
// once a simulation has finished, CSV/Excel exports, and the ambient
// auth/rate-limit/metrics middleware chain. No route serves the PNG chart
// that the export package can render.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mdruszcz/econ/internal/engine"
	"github.com/mdruszcz/econ/internal/export"
	"github.com/mdruszcz/econ/internal/metrics"
	"github.com/mdruszcz/econ/internal/modeltypes"
)

// Server wires the engine into an http.Handler.
type Server struct {
	engine *engine.Engine
	log    *zap.Logger
	auth   *Authenticator
	limit  *RateLimiter
	mux    *http.ServeMux
}

// New builds a Server. auth and limit may be nil to run without those
// layers (e.g. in tests).
func New(eng *engine.Engine, log *zap.Logger, auth *Authenticator, limit *RateLimiter) *Server {
	s := &Server{engine: eng, log: log, auth: auth, limit: limit, mux: http.NewServeMux()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/baseline", s.handleBaseline)
	s.mux.HandleFunc("/instruments", s.handleInstruments)
	s.mux.HandleFunc("/simulate", s.handleSimulate)
	s.mux.HandleFunc("/simulate/stream", s.handleSimulateStream)
	s.mux.HandleFunc("/export/csv", s.handleExportCSV)
	s.mux.HandleFunc("/export/excel", s.handleExportExcel)
	s.mux.Handle("/metrics", promhttp.Handler())
}

// ServeHTTP applies CORS, auth, and rate limiting around the route mux, in
// that order, mirroring the teacher's middleware chain.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	withCORS(s.withAuth(s.withRateLimit(s.mux))).ServeHTTP(w, r)
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withAuth(next http.Handler) http.Handler {
	if s.auth == nil {
		return next
	}
	return s.auth.Middleware(next)
}

func (s *Server) withRateLimit(next http.Handler) http.Handler {
	if s.limit == nil {
		return next
	}
	return s.limit.Middleware(next)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// keyIndicatorsResponse and the rest of the wire types below mirror the
// original API's pydantic schemas field for field.
type keyIndicatorsResponse struct {
	Years        []modeltypes.Year `json:"years"`
	GDPGrowth    []float64         `json:"gdp_growth"`
	Inflation    []float64         `json:"inflation"`
	DeficitRatio []float64         `json:"deficit_ratio"`
	Unemployment []float64         `json:"unemployment"`
}

func toKeyIndicatorsResponse(k engine.KeyIndicators) keyIndicatorsResponse {
	return keyIndicatorsResponse{
		Years:        k.Years,
		GDPGrowth:    k.GDPGrowth,
		Inflation:    k.Inflation,
		DeficitRatio: k.DeficitRatio,
		Unemployment: k.Unemployment,
	}
}

type instrumentSpecResponse struct {
	Key         string  `json:"key"`
	Label       string  `json:"label"`
	Unit        string  `json:"unit"`
	Default     float64 `json:"default"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Description string  `json:"description"`
}

type baselineResponse struct {
	Indicators  keyIndicatorsResponse    `json:"indicators"`
	Instruments []instrumentSpecResponse `json:"instruments"`
}

func (s *Server) handleBaseline(w http.ResponseWriter, r *http.Request) {
	indicators, err := s.engine.GetBaselineIndicators()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	specs := s.engine.GetInstrumentSpecs()
	instResp := make([]instrumentSpecResponse, len(specs))
	for i, spec := range specs {
		instResp[i] = instrumentSpecResponse{
			Key: spec.Key, Label: spec.Label, Unit: spec.Unit,
			Default: spec.Default, Min: spec.Min, Max: spec.Max,
			Description: spec.Description,
		}
	}

	writeJSON(w, http.StatusOK, baselineResponse{
		Indicators:  toKeyIndicatorsResponse(indicators),
		Instruments: instResp,
	})
}

func (s *Server) handleInstruments(w http.ResponseWriter, r *http.Request) {
	specs := s.engine.GetInstrumentSpecs()
	resp := make([]instrumentSpecResponse, len(specs))
	for i, spec := range specs {
		resp[i] = instrumentSpecResponse{
			Key: spec.Key, Label: spec.Label, Unit: spec.Unit,
			Default: spec.Default, Min: spec.Min, Max: spec.Max,
			Description: spec.Description,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type simulationRequest struct {
	Name        string             `json:"name"`
	Instruments map[string]float64 `json:"instruments"`
}

type convergenceInfo struct {
	Year        modeltypes.Year `json:"year"`
	Iterations  int             `json:"iterations"`
	MaxResidual float64         `json:"max_residual"`
	Status      string          `json:"status"`
}

type simulationResponse struct {
	Name        string                                     `json:"name"`
	Years       []modeltypes.Year                          `json:"years"`
	Baseline    keyIndicatorsResponse                      `json:"baseline"`
	Scenario    keyIndicatorsResponse                      `json:"scenario"`
	Impacts     map[string]map[modeltypes.Year]float64      `json:"impacts"`
	Levels      map[string]map[modeltypes.Year]float64      `json:"levels"`
	Convergence []convergenceInfo                          `json:"convergence"`
	Instruments map[string]float64                         `json:"instruments"`
}

func toSimulationResponse(out engine.SimulationOutput) simulationResponse {
	impacts := make(map[string]map[modeltypes.Year]float64, len(out.Impacts))
	for v, series := range out.Impacts {
		impacts[string(v)] = series.Values
	}

	convergence := make([]convergenceInfo, len(out.Convergence))
	for i, c := range out.Convergence {
		convergence[i] = convergenceInfo{
			Year: c.Year, Iterations: c.Iterations,
			MaxResidual: c.MaxResidual, Status: c.Status.String(),
		}
	}

	levels := make(map[string]map[modeltypes.Year]float64, len(out.Levels))
	for v, series := range out.Levels {
		levels[string(v)] = series
	}

	return simulationResponse{
		Name:        out.Name,
		Years:       out.Years,
		Baseline:    toKeyIndicatorsResponse(out.BaselineIndicators),
		Scenario:    toKeyIndicatorsResponse(out.ScenarioIndicators),
		Impacts:     impacts,
		Levels:      levels,
		Convergence: convergence,
		Instruments: out.Instruments,
	}
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req simulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Name == "" {
		req.Name = "Scenario"
	}

	start := time.Now()
	out, err := s.engine.Simulate(r.Context(), req.Instruments, req.Name)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		if ve, ok := err.(*engine.ValidationError); ok {
			metrics.RecordSimulation("invalid", elapsed)
			writeError(w, http.StatusUnprocessableEntity, ve)
			return
		}
		metrics.RecordSimulation("error", elapsed)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	metrics.RecordSimulation("ok", elapsed)
	for _, c := range out.Convergence {
		metrics.RecordSolverYear(c.Status.String(), c.Iterations)
	}

	writeJSON(w, http.StatusOK, toSimulationResponse(out))
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleSimulateStream upgrades to a websocket, runs the whole simulation,
// then pushes one JSON message per simulated year, finishing with the full
// SimulationResponse payload. No message is sent while the solver runs.
func (s *Server) handleSimulateStream(w http.ResponseWriter, r *http.Request) {
	var req simulationRequest
	if err := json.Unmarshal([]byte(r.URL.Query().Get("request")), &req); err != nil {
		req = simulationRequest{Name: "Scenario"}
	}
	if req.Name == "" {
		req.Name = "Scenario"
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		if s.log != nil {
			s.log.Warn("websocket upgrade failed", zap.Error(err), zap.String("trace_id", uuid.NewString()))
		}
		return
	}
	defer conn.Close()

	out, err := s.engine.Simulate(r.Context(), req.Instruments, req.Name)
	if err != nil {
		conn.WriteJSON(map[string]string{"error": err.Error()})
		return
	}

	for _, c := range out.Convergence {
		msg := convergenceInfo{Year: c.Year, Iterations: c.Iterations, MaxResidual: c.MaxResidual, Status: c.Status.String()}
		if err := conn.WriteJSON(msg); err != nil {
			return
		}
	}
	conn.WriteJSON(toSimulationResponse(out))
}

func (s *Server) simulateFromRequest(r *http.Request) (engine.SimulationOutput, error) {
	var req simulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return engine.SimulationOutput{}, err
	}
	if req.Name == "" {
		req.Name = "Scenario"
	}
	return s.engine.Simulate(r.Context(), req.Instruments, req.Name)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	out, err := s.simulateFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	data, err := export.CSV(out)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, out.Name))
	w.Write(data)
}

func (s *Server) handleExportExcel(w http.ResponseWriter, r *http.Request) {
	out, err := s.simulateFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	data, err := export.Excel(out)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, out.Name))
	w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"detail": fmt.Sprintf("%v", err)})
}

package api

import (
	"encoding/json"
	"net/http"

	"wealth-projector/internal/engine"
)

func (s *Server) handleGetPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := s.db.ListPositions()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if positions == nil {
		positions = []engine.Position{}
	}
	writeJSON(w, map[string]interface{}{
		"positions": positions,
		"metrics":   engine.AggregatePositions(positions),
	})
}

func (s *Server) handleAddPosition(w http.ResponseWriter, r *http.Request) {
	var p engine.Position
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid position payload")
		return
	}
	if msg := validatePosition(p); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	saved, err := s.db.InsertPosition(p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, saved)
}

func (s *Server) handleUpdatePosition(w http.ResponseWriter, r *http.Request) {
	var p engine.Position
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid position payload")
		return
	}
	p.ID = r.PathValue("id")
	if msg := validatePosition(p); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	ok, err := s.db.UpdatePosition(p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "position not found")
		return
	}
	writeJSON(w, p)
}

func (s *Server) handleDeletePosition(w http.ResponseWriter, r *http.Request) {
	ok, err := s.db.DeletePosition(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "position not found")
		return
	}
	writeJSON(w, map[string]bool{"deleted": true})
}

func validatePosition(p engine.Position) string {
	switch {
	case p.Symbol == "":
		return "symbol is required"
	case p.InvestmentAmount < 0:
		return "investment_amount must be non-negative"
	case p.ExpectedReturn < -100 || p.ExpectedReturn > 100:
		return "expected_return must be a percentage between -100 and 100"
	}
	return ""
}

package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/AlenaMolokova/cardvalidator/internal/usecase"
	"github.com/AlenaMolokova/cardvalidator/internal/utils"
)

type StatsHandler struct {
	service ValidationService
}

func NewStatsHandler(service ValidationService) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrStatsDisabled) {
			utils.WriteJSONError(w, http.StatusServiceUnavailable, "Statistics are disabled")
			return
		}
		log.Printf("Failed to get stats: %v", err)
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, stats)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

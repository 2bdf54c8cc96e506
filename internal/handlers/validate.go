package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/AlenaMolokova/cardvalidator/internal/card"
	"github.com/AlenaMolokova/cardvalidator/internal/models"
	"github.com/AlenaMolokova/cardvalidator/internal/usecase"
	"github.com/AlenaMolokova/cardvalidator/internal/utils"
)

const maxRequestBody = 1 << 10

type ValidateHandler struct {
	service ValidationService
}

func NewValidateHandler(service ValidationService) *ValidateHandler {
	return &ValidateHandler{service: service}
}

func (h *ValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req models.ValidationRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		log.Printf("Failed to decode validate request: %v", err)
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := h.service.Validate(r.Context(), req.CardNumber)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidFormat) {
			log.Printf("Rejected card number %s: %v", card.Mask(req.CardNumber), err)
			utils.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Failed to validate card number %s: %v", card.Mask(req.CardNumber), err)
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	log.Printf("Validated card number %s: network=%s valid=%t", card.Mask(req.CardNumber), resp.Network, resp.IsValid)
	utils.WriteJSON(w, http.StatusOK, resp)
}

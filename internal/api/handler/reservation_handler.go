package handler

import (
	"encoding/json"
	"net/http"

	"aurora_backend/internal/app/service"
	"aurora_backend/internal/common"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type ReservationHandler struct {
	reservationService *service.ReservationService
	log                zerolog.Logger
}

func NewReservationHandler(rs *service.ReservationService, log zerolog.Logger) *ReservationHandler {
	return &ReservationHandler{reservationService: rs, log: log}
}

func (h *ReservationHandler) RegisterRoutes(r chi.Router) {
	r.Post("/reservation", h.createReservation)
}

func (h *ReservationHandler) createReservation(w http.ResponseWriter, r *http.Request) {
	var req service.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	id, err := h.reservationService.Create(r.Context(), req)
	if err != nil {
		status := common.HTTPStatusFromError(err)
		if status == http.StatusBadRequest {
			common.RespondWithError(w, status, "Champs manquants")
			return
		}
		h.log.Error().Err(err).Str("chambre", req.Chambre).Msg("reservation create failed")
		common.RespondWithError(w, status, "Erreur SQL (réservation)")
		return
	}

	h.log.Info().Int64("reservation_id", id).Str("chambre", req.Chambre).Msg("reservation created")
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "Réservation effectuée"})
}

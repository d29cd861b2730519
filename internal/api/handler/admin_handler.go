package handler

import (
	"errors"
	"net/http"
	"strconv"

	"aurora_backend/internal/app/service"
	"aurora_backend/internal/common"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// AdminHandler exposes the moderation endpoints. The admin tier is a naming
// convention only: no role check is performed on these routes, mirroring the
// behaviour the frontend relies on.
type AdminHandler struct {
	userService        *service.UserService
	reservationService *service.ReservationService
	log                zerolog.Logger
}

func NewAdminHandler(us *service.UserService, rs *service.ReservationService, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{userService: us, reservationService: rs, log: log}
}

func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Get("/reservations", h.listReservations)
	r.Delete("/reservations/{id}", h.deleteReservation)
	r.Get("/utilisateurs", h.listUsers)
	r.Patch("/utilisateurs/{id}/promouvoir", h.promoteUser)
}

func (h *AdminHandler) listReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.reservationService.ListAll(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list reservations failed")
		common.RespondWithError(w, http.StatusInternalServerError, "Erreur chargement")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, reservations)
}

func (h *AdminHandler) deleteReservation(w http.ResponseWriter, r *http.Request) {
	// A non-numeric id cannot match a row, so it reads as not found.
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		common.RespondWithError(w, http.StatusNotFound, "Réservation introuvable")
		return
	}

	if err := h.reservationService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.RespondWithError(w, http.StatusNotFound, "Réservation introuvable")
			return
		}
		h.log.Error().Err(err).Int64("reservation_id", id).Msg("reservation delete failed")
		common.RespondWithError(w, http.StatusInternalServerError, "Erreur de la suppression")
		return
	}

	h.log.Info().Int64("reservation_id", id).Msg("reservation deleted")
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "Réservation supprimée"})
}

func (h *AdminHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list users failed")
		common.RespondWithError(w, http.StatusInternalServerError, "Erreur chargement utilisateurs")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, users)
}

func (h *AdminHandler) promoteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.userService.Promote(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.RespondWithError(w, http.StatusNotFound, "Utilisateur non trouvé")
			return
		}
		h.log.Error().Err(err).Str("user_id", id).Msg("promote failed")
		common.RespondWithError(w, http.StatusInternalServerError, "Erreur promotion")
		return
	}

	h.log.Info().Str("user_id", id).Msg("user promoted to admin")
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "Utilisateur promu avec succès"})
}

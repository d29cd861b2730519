package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"aurora_backend/internal/app/service"
	"aurora_backend/internal/common"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type AuthHandler struct {
	userService *service.UserService
	log         zerolog.Logger
}

func NewAuthHandler(userService *service.UserService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{userService: userService, log: log}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	userID, err := h.userService.Register(r.Context(), req)
	if err != nil {
		status := common.HTTPStatusFromError(err)
		switch status {
		case http.StatusBadRequest:
			common.RespondWithError(w, status, "Champs manquants")
		case http.StatusConflict:
			common.RespondWithError(w, status, "Email ou nom d'utilisateur déjà utilisé")
		default:
			h.log.Error().Err(err).Str("email", req.Email).Msg("register failed")
			common.RespondWithError(w, status, "Erreur serveur")
		}
		return
	}

	h.log.Info().Str("user_id", userID).Str("username", req.Username).Msg("user registered")
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "Inscription réussie"})
}

type loginResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	result, err := h.userService.Authenticate(r.Context(), req)
	if err != nil {
		// The two 401 causes keep distinct messages, matching the original
		// contract; the precise cause is also logged.
		switch {
		case errors.Is(err, common.ErrUnknownEmail):
			h.log.Warn().Str("email", req.Email).Msg("login: unknown email")
			common.RespondWithError(w, http.StatusUnauthorized, "Email incorrect")
		case errors.Is(err, common.ErrInvalidPassword):
			h.log.Warn().Str("email", req.Email).Msg("login: wrong password")
			common.RespondWithError(w, http.StatusUnauthorized, "Mot de passe incorrect")
		case errors.Is(err, common.ErrBadRequest):
			common.RespondWithError(w, http.StatusBadRequest, "Champs manquants")
		default:
			h.log.Error().Err(err).Str("email", req.Email).Msg("login failed")
			common.RespondWithError(w, http.StatusInternalServerError, "Erreur serveur")
		}
		return
	}

	common.RespondWithJSON(w, http.StatusOK, loginResponse{
		Message:  "Connexion réussie",
		Username: result.Username,
		Role:     result.Role,
	})
}

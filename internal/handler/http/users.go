package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/acquasitions/internal/logger"
	"github.com/MKhiriev/acquasitions/internal/utils"
	"github.com/MKhiriev/acquasitions/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) fetchAllUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.services.UserService.FetchAllUsers(r.Context())
	if err != nil {
		log.Err(err).Msg("fetching users failed")
		writeError(w, err)
		return
	}

	if users == nil {
		users = []models.User{}
	}

	utils.WriteJSON(w, models.UsersResponse{Users: users, Count: len(users)}, http.StatusOK)
}

func (h *Handler) fetchUserByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := userIDFromPath(r)
	if err != nil {
		log.Err(err).Send()
		writeError(w, err)
		return
	}

	user, err := h.services.UserService.FetchUserByID(r.Context(), id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("fetching user failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUserByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity on authenticated route")
		writeError(w, ErrUnauthenticated)
		return
	}

	id, err := userIDFromPath(r)
	if err != nil {
		log.Err(err).Send()
		writeError(w, err)
		return
	}

	var update models.UserUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	updated, err := h.services.UserService.UpdateUserByID(ctx, caller, id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Int64("caller", caller.UserID).Msg("updating user failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteUserByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := userIDFromPath(r)
	if err != nil {
		log.Err(err).Send()
		writeError(w, err)
		return
	}

	if err = h.services.UserService.DeleteUserByID(r.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("deleting user failed")
		writeError(w, err)
		return
	}

	log.Info().Int64("id", id).Msg("user deleted")
	w.WriteHeader(http.StatusNoContent)
}

func userIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUserIDParam, raw)
	}
	return id, nil
}

package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/omarshaarawi/squadbot/internal/form"
	"github.com/omarshaarawi/squadbot/internal/hub"
	"github.com/omarshaarawi/squadbot/internal/models"
	"github.com/omarshaarawi/squadbot/internal/service"
	"github.com/omarshaarawi/squadbot/internal/stats"
)

type Handler struct {
	squad *service.SquadService
	hub   *hub.Hub
}

func NewHandler(squad *service.SquadService, h *hub.Hub) *Handler {
	return &Handler{squad: squad, hub: h}
}

type playerResponse struct {
	Player  models.Player `json:"player"`
	Message string        `json:"message"`
}

type selectionResponse struct {
	Selected bool                  `json:"selected"`
	Profile  *models.PlayerProfile `json:"profile"`
}

type selectRequest struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "squadbot",
		"players": h.squad.Count(),
		"hub":     h.hub.Metrics(),
	})
}

// ListPlayers serves the stats table: ?q= filters by name or role, ?sort= and
// ?dir= pick the column and direction.
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	state := stats.DefaultSort()
	if s := r.URL.Query().Get("sort"); s != "" {
		key, err := stats.ParseSortKey(s)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		state.Key = key
	}
	if d := r.URL.Query().Get("dir"); d != "" {
		state.Dir = stats.ParseSortDir(d)
	}

	respondJSON(w, http.StatusOK, h.squad.Players(r.URL.Query().Get("q"), state))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	fields, ok := decodeFields(w, r)
	if !ok {
		return
	}

	player, toast, err := h.squad.AddPlayer(fields)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, playerResponse{Player: player, Message: toast})
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	player, err := h.squad.Get(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, player)
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	fields, ok := decodeFields(w, r)
	if !ok {
		return
	}

	player, toast, err := h.squad.UpdatePlayer(chi.URLParam(r, "id"), fields)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, playerResponse{Player: player, Message: toast})
}

// DeletePlayer requires ?confirm=true. Without it the player is left in place
// and a 409 asks the caller to confirm.
func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	player, err := h.squad.Get(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	if !confirmed {
		respondError(w, http.StatusConflict,
			fmt.Sprintf("Remove %s from the squad? Repeat the request with confirm=true.", player.Name), nil)
		return
	}

	toast, err := h.squad.DeletePlayer(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": toast})
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	player, err := h.squad.Get(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats.Profile(player))
}

func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.squad.Dashboard())
}

// GetSelected returns the profile the detail screen would show, which is the
// first player when nobody is selected.
func (h *Handler) GetSelected(w http.ResponseWriter, r *http.Request) {
	_, selected := h.squad.Selected()
	resp := selectionResponse{Selected: selected}
	if profile, err := h.squad.Profile(h.squad.CurrentRoute()); err == nil {
		resp.Profile = &profile
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) SelectPlayer(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err), nil)
		return
	}

	route, err := h.squad.ViewPlayer(req.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, route)
}

func (h *Handler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	h.squad.ClearSelection()
	w.WriteHeader(http.StatusNoContent)
}

func decodeFields(w http.ResponseWriter, r *http.Request) (form.Fields, bool) {
	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err), nil)
		return nil, false
	}
	fields, err := form.FromJSON(body)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return nil, false
	}
	return fields, true
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrPlayerNotFound):
		respondError(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, service.ErrNameRequired), errors.Is(err, service.ErrNothingToEdit):
		respondError(w, http.StatusBadRequest, err.Error(), nil)
	default:
		respondError(w, http.StatusInternalServerError, "internal error", err)
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		slog.Error(message, "status", status, "error", err)
	}
	respondJSON(w, status, errorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}

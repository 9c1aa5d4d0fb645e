package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/omarshaarawi/squadbot/internal/form"
	"github.com/omarshaarawi/squadbot/internal/models"
	"github.com/omarshaarawi/squadbot/internal/navigation"
	"github.com/omarshaarawi/squadbot/internal/repository/memory"
	"github.com/omarshaarawi/squadbot/internal/stats"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrNameRequired   = errors.New("player name is required")
	ErrNothingToEdit  = errors.New("no fields to update")
)

const (
	ToastPlayerAdded   = "Player added successfully!"
	ToastPlayerUpdated = "Player updated successfully!"
	ToastPlayerRemoved = "Player removed from squad"
)

type SquadService struct {
	repo    *memory.Repository
	builder *form.Builder
}

func NewSquadService(repo *memory.Repository, builder *form.Builder) *SquadService {
	return &SquadService{repo: repo, builder: builder}
}

func (s *SquadService) AddPlayer(fields form.Fields) (models.Player, string, error) {
	draft := s.builder.Draft(fields)
	if draft.Name == "" {
		return models.Player{}, "", ErrNameRequired
	}

	player := s.repo.Add(draft)
	slog.Info("Player added", "id", player.ID, "name", player.Name, "role", player.Role)
	return player, ToastPlayerAdded, nil
}

func (s *SquadService) UpdatePlayer(id string, fields form.Fields) (models.Player, string, error) {
	update := s.builder.Update(fields)
	if update.IsEmpty() {
		return models.Player{}, "", ErrNothingToEdit
	}
	if update.Name != nil && *update.Name == "" {
		return models.Player{}, "", ErrNameRequired
	}

	player, ok := s.repo.Update(id, update)
	if !ok {
		return models.Player{}, "", fmt.Errorf("updating %s: %w", id, ErrPlayerNotFound)
	}
	slog.Info("Player updated", "id", player.ID, "name", player.Name, "fields", len(fields))
	return player, ToastPlayerUpdated, nil
}

func (s *SquadService) DeletePlayer(id string) (string, error) {
	if !s.repo.Remove(id) {
		return "", fmt.Errorf("removing %s: %w", id, ErrPlayerNotFound)
	}
	slog.Info("Player removed", "id", id)
	return ToastPlayerRemoved, nil
}

// Find resolves a loose player reference (id, name or misspelt name).
func (s *SquadService) Find(ref string) (models.Player, error) {
	player, ok := stats.FindPlayer(s.repo.List(), ref)
	if !ok {
		return models.Player{}, fmt.Errorf("%q: %w", ref, ErrPlayerNotFound)
	}
	return player, nil
}

func (s *SquadService) Get(id string) (models.Player, error) {
	player, ok := s.repo.Get(id)
	if !ok {
		return models.Player{}, fmt.Errorf("%s: %w", id, ErrPlayerNotFound)
	}
	return player, nil
}

// ViewPlayer selects the player and returns the route to its detail screen.
func (s *SquadService) ViewPlayer(id string) (navigation.Route, error) {
	if !s.repo.Select(id) {
		return navigation.Route{}, fmt.Errorf("selecting %s: %w", id, ErrPlayerNotFound)
	}
	return navigation.ViewPlayer(id), nil
}

// CurrentRoute is the detail route for whoever is selected, if anyone.
func (s *SquadService) CurrentRoute() navigation.Route {
	if p, ok := s.repo.Selected(); ok {
		return navigation.ViewPlayer(p.ID)
	}
	return navigation.Route{Screen: navigation.ScreenPlayer}
}

func (s *SquadService) Selected() (models.Player, bool) {
	return s.repo.Selected()
}

func (s *SquadService) ClearSelection() {
	s.repo.ClearSelection()
}

func (s *SquadService) Count() int {
	return s.repo.Len()
}

func (s *SquadService) Players(query string, state stats.SortState) []models.Player {
	return stats.Table(s.repo.List(), query, state)
}

func (s *SquadService) Dashboard() models.Dashboard {
	return stats.Dashboard(s.repo.List())
}

func (s *SquadService) Profile(route navigation.Route) (models.PlayerProfile, error) {
	player, ok := navigation.Resolve(route, s.repo.List())
	if !ok {
		return models.PlayerProfile{}, ErrPlayerNotFound
	}
	return stats.Profile(player), nil
}

// ParseFields is a convenience for callers holding raw chat input.
func ParseFields(input string) (form.Fields, error) {
	fields, err := form.ParseFields(input)
	if err != nil {
		return fields, fmt.Errorf("parsing fields: %w", err)
	}
	return fields, nil
}

func roleIcon(role models.Role) string {
	switch role {
	case models.RoleBowler:
		return "🎯"
	case models.RoleAllRounder:
		return "⚡"
	case models.RoleWicketKeeper:
		return "🧤"
	default:
		return "🏏"
	}
}

func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

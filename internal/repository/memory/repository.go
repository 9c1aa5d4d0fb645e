package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/omarshaarawi/squadbot/internal/models"
)

// Repository holds the roster in insertion order along with the id of the
// currently selected player. All reads return copies.
type Repository struct {
	players   []models.Player
	selected  string
	listeners []func(models.RosterEvent)
	newID     func() string
	mu        sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{newID: uuid.NewString}
}

// NewSeededRepository returns a repository reset to the starting squad.
func NewSeededRepository() *Repository {
	r := NewRepository()
	for _, d := range SeedSquad() {
		r.players = append(r.players, d.WithID(r.newID()))
	}
	return r
}

// Subscribe registers fn to be called after every mutation. Listeners run
// outside the repository lock and may read from it.
func (r *Repository) Subscribe(fn func(models.RosterEvent)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}

func (r *Repository) Add(draft models.PlayerDraft) models.Player {
	r.mu.Lock()
	player := draft.WithID(r.newID())
	r.players = append(r.players, player)
	r.mu.Unlock()

	r.publish(models.EventPlayerAdded, player.ID)
	return player.Clone()
}

func (r *Repository) Update(id string, update models.PlayerUpdate) (models.Player, bool) {
	r.mu.Lock()
	i := r.indexOf(id)
	if i < 0 {
		r.mu.Unlock()
		return models.Player{}, false
	}
	update.Apply(&r.players[i])
	player := r.players[i].Clone()
	r.mu.Unlock()

	r.publish(models.EventPlayerUpdated, id)
	return player, true
}

func (r *Repository) Remove(id string) bool {
	r.mu.Lock()
	i := r.indexOf(id)
	if i < 0 {
		r.mu.Unlock()
		return false
	}
	r.players = append(r.players[:i], r.players[i+1:]...)
	if r.selected == id {
		r.selected = ""
	}
	r.mu.Unlock()

	r.publish(models.EventPlayerRemoved, id)
	return true
}

func (r *Repository) Get(id string) (models.Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Player{}, false
	}
	return r.players[i].Clone(), true
}

func (r *Repository) List() []models.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Player, len(r.players))
	for i, p := range r.players {
		out[i] = p.Clone()
	}
	return out
}

func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}

// Select marks id as the selected player. Unknown ids leave the selection as is.
func (r *Repository) Select(id string) bool {
	r.mu.Lock()
	if r.indexOf(id) < 0 {
		r.mu.Unlock()
		return false
	}
	changed := r.selected != id
	r.selected = id
	r.mu.Unlock()

	if changed {
		r.publish(models.EventSelectionChanged, id)
	}
	return true
}

func (r *Repository) ClearSelection() {
	r.mu.Lock()
	changed := r.selected != ""
	r.selected = ""
	r.mu.Unlock()

	if changed {
		r.publish(models.EventSelectionChanged, "")
	}
}

// Selected resolves the selection against the current roster, so edits made
// after selecting are visible.
func (r *Repository) Selected() (models.Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.selected == "" {
		return models.Player{}, false
	}
	i := r.indexOf(r.selected)
	if i < 0 {
		return models.Player{}, false
	}
	return r.players[i].Clone(), true
}

func (r *Repository) indexOf(id string) int {
	for i := range r.players {
		if r.players[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *Repository) publish(eventType models.RosterEventType, playerID string) {
	r.mu.RLock()
	listeners := make([]func(models.RosterEvent), len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.RUnlock()

	event := models.RosterEvent{Type: eventType, PlayerID: playerID, At: time.Now()}
	for _, fn := range listeners {
		fn(event)
	}
}

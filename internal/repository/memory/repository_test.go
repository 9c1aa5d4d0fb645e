package memory

import (
	"reflect"
	"testing"

	"github.com/omarshaarawi/squadbot/internal/models"
)

func draft(name string) models.PlayerDraft {
	return models.PlayerDraft{
		Name:            name,
		Role:            models.RoleBowler,
		Avatar:          "X",
		BattingAverage:  12.5,
		Wickets:         9,
		BowlingEconomy:  6.1,
		FitnessScore:    80,
		RunsPerMatch:    []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		WicketsPerMatch: []int{1, 0, 1, 0, 1, 0, 1, 0, 1, 4},
	}
}

func TestAddThenGet(t *testing.T) {
	repo := NewRepository()
	in := draft("Dev Malhotra")

	added := repo.Add(in)
	if added.ID == "" {
		t.Fatal("expected an id to be assigned")
	}

	got, ok := repo.Get(added.ID)
	if !ok {
		t.Fatal("added player not found")
	}
	if want := in.WithID(added.ID); !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestAddAssignsUniqueIDs(t *testing.T) {
	repo := NewRepository()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		p := repo.Add(draft("Same Name"))
		if seen[p.ID] {
			t.Fatalf("duplicate id %s", p.ID)
		}
		seen[p.ID] = true
	}
	if repo.Len() != 50 {
		t.Errorf("expected 50 players, got %d", repo.Len())
	}
}

func TestRemoveThenGet(t *testing.T) {
	repo := NewRepository()
	p := repo.Add(draft("A"))

	if !repo.Remove(p.ID) {
		t.Fatal("remove reported missing player")
	}
	if _, ok := repo.Get(p.ID); ok {
		t.Error("removed player still found")
	}
	if repo.Remove(p.ID) {
		t.Error("second remove should be a no-op")
	}
}

func TestUpdateMergesFields(t *testing.T) {
	repo := NewRepository()
	p := repo.Add(draft("A"))

	wickets := 11
	name := "Renamed"
	updated, ok := repo.Update(p.ID, models.PlayerUpdate{Wickets: &wickets, Name: &name})
	if !ok {
		t.Fatal("update reported missing player")
	}
	if updated.ID != p.ID || updated.Wickets != 11 || updated.Name != "Renamed" {
		t.Errorf("unexpected update result %+v", updated)
	}
	if updated.BowlingEconomy != p.BowlingEconomy {
		t.Error("untouched field changed")
	}

	if _, ok := repo.Update("missing", models.PlayerUpdate{Wickets: &wickets}); ok {
		t.Error("update of missing id should be a no-op")
	}
}

func TestListPreservesOrderAndCopies(t *testing.T) {
	repo := NewRepository()
	a := repo.Add(draft("A"))
	b := repo.Add(draft("B"))
	c := repo.Add(draft("C"))
	repo.Remove(b.ID)

	list := repo.List()
	if len(list) != 2 || list[0].ID != a.ID || list[1].ID != c.ID {
		t.Fatalf("unexpected order %v", list)
	}

	list[0].Name = "mutated"
	list[0].RunsPerMatch[0] = 999
	got, _ := repo.Get(a.ID)
	if got.Name != "A" || got.RunsPerMatch[0] != 1 {
		t.Error("List leaked internal state")
	}
}

func TestSelection(t *testing.T) {
	repo := NewRepository()
	p := repo.Add(draft("A"))

	if _, ok := repo.Selected(); ok {
		t.Fatal("nothing should be selected initially")
	}
	if repo.Select("missing") {
		t.Error("selecting an unknown id should fail")
	}
	if !repo.Select(p.ID) {
		t.Fatal("select failed")
	}

	wickets := 3
	repo.Update(p.ID, models.PlayerUpdate{Wickets: &wickets})
	sel, ok := repo.Selected()
	if !ok || sel.Wickets != 3 {
		t.Errorf("selection should reflect edits, got %+v", sel)
	}

	repo.Remove(p.ID)
	if _, ok := repo.Selected(); ok {
		t.Error("removing the selected player should clear the selection")
	}
}

func TestSubscribeReceivesEvents(t *testing.T) {
	repo := NewRepository()
	var events []models.RosterEventType
	repo.Subscribe(func(e models.RosterEvent) {
		events = append(events, e.Type)
		// Listeners may read the repository.
		_ = repo.List()
	})

	p := repo.Add(draft("A"))
	fitness := 70
	repo.Update(p.ID, models.PlayerUpdate{FitnessScore: &fitness})
	repo.Select(p.ID)
	repo.Select(p.ID)
	repo.Remove(p.ID)
	repo.Remove(p.ID)

	want := []models.RosterEventType{
		models.EventPlayerAdded,
		models.EventPlayerUpdated,
		models.EventSelectionChanged,
		models.EventPlayerRemoved,
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("got %v, want %v", events, want)
	}
}

func TestSeededRepository(t *testing.T) {
	repo := NewSeededRepository()
	players := repo.List()
	if len(players) != len(SeedSquad()) {
		t.Fatalf("expected %d seeded players, got %d", len(SeedSquad()), len(players))
	}

	for _, p := range players {
		runs, wickets := 0, 0
		for _, r := range p.RunsPerMatch {
			runs += r
		}
		for _, w := range p.WicketsPerMatch {
			wickets += w
		}
		if runs != p.TotalRuns || wickets != p.Wickets {
			t.Errorf("%s: series sums %d/%d, totals %d/%d", p.Name, runs, wickets, p.TotalRuns, p.Wickets)
		}
		if len(p.RunsPerMatch) != models.MatchWindow || len(p.WicketsPerMatch) != models.MatchWindow {
			t.Errorf("%s: series should cover %d matches", p.Name, models.MatchWindow)
		}
	}
}

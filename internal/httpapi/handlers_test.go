package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/omarshaarawi/squadbot/internal/form"
	"github.com/omarshaarawi/squadbot/internal/hub"
	"github.com/omarshaarawi/squadbot/internal/models"
	"github.com/omarshaarawi/squadbot/internal/navigation"
	"github.com/omarshaarawi/squadbot/internal/repository/memory"
	"github.com/omarshaarawi/squadbot/internal/service"
)

type testServer struct {
	router http.Handler
	repo   *memory.Repository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	repo := memory.NewSeededRepository()
	squad := service.NewSquadService(repo, form.NewBuilder(9))
	h := hub.NewHub(nil)
	go h.Run(ctx)

	return &testServer{
		router: NewRouter(ctx, NewHandler(squad, h), []string{"*"}),
		repo:   repo,
	}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func (s *testServer) idOf(t *testing.T, name string) string {
	t.Helper()
	for _, p := range s.repo.List() {
		if p.Name == name {
			return p.ID
		}
	}
	t.Fatalf("no player named %s", name)
	return ""
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]interface{}
	decode(t, rec, &body)
	if body["status"] != "healthy" || body["players"] != float64(8) {
		t.Errorf("unexpected health body %v", body)
	}
}

func TestListPlayers(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name      string
		query     string
		wantCode  int
		wantFirst string
		wantLen   int
	}{
		{"default sort", "", http.StatusOK, "Arjun Mehta", 8},
		{"by wickets", "?sort=wickets", http.StatusOK, "", 8},
		{"ascending average", "?sort=battingAverage&dir=asc", http.StatusOK, "Sameer Khan", 8},
		{"filter by role", "?q=keeper", http.StatusOK, "Vikram Rao", 1},
		{"bad sort key", "?sort=height", http.StatusBadRequest, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodGet, "/api/v1/players"+tt.query, "")
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			if tt.wantCode != http.StatusOK {
				return
			}
			var players []models.Player
			decode(t, rec, &players)
			if len(players) != tt.wantLen {
				t.Fatalf("expected %d players, got %d", tt.wantLen, len(players))
			}
			if tt.wantFirst != "" && players[0].Name != tt.wantFirst {
				t.Errorf("expected %s first, got %s", tt.wantFirst, players[0].Name)
			}
		})
	}
}

func TestCreateAndUpdatePlayer(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/players",
		`{"name":"Ravi Kumar","role":"Bowler","wickets":12,"bowlingEconomy":"6.5","runsPerMatch":[1,2,3]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
	}
	var created playerResponse
	decode(t, rec, &created)
	if created.Message != service.ToastPlayerAdded {
		t.Errorf("unexpected message %q", created.Message)
	}
	p := created.Player
	if p.ID == "" || p.Wickets != 12 || p.BowlingEconomy != 6.5 || p.Avatar != "RK" {
		t.Errorf("unexpected player %+v", p)
	}
	if len(p.RunsPerMatch) != models.MatchWindow || p.RunsPerMatch[2] != 3 || p.RunsPerMatch[9] != 0 {
		t.Errorf("unexpected runs series %v", p.RunsPerMatch)
	}

	rec = s.do(t, http.MethodPatch, "/api/v1/players/"+p.ID, `{"catches":4,"fitnessScore":250}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	var updated playerResponse
	decode(t, rec, &updated)
	if updated.Player.Catches != 4 || updated.Player.FitnessScore != 100 || updated.Player.Wickets != 12 {
		t.Errorf("unexpected update %+v", updated.Player)
	}

	rec = s.do(t, http.MethodGet, "/api/v1/players/"+p.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCreatePlayerValidation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"name":`},
		{"missing name", `{"role":"Bowler"}`},
		{"unknown field", `{"name":"X","height":180}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/api/v1/players", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}
	if s.repo.Len() != 8 {
		t.Errorf("invalid submissions should not add players, have %d", s.repo.Len())
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	s := newTestServer(t)
	id := s.idOf(t, "Nikhil Bose")

	rec := s.do(t, http.MethodDelete, "/api/v1/players/"+id, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	var prompt errorResponse
	decode(t, rec, &prompt)
	if !strings.Contains(prompt.Message, "Nikhil Bose") {
		t.Errorf("prompt should name the player: %q", prompt.Message)
	}
	if s.repo.Len() != 8 {
		t.Fatal("player removed without confirmation")
	}

	rec = s.do(t, http.MethodDelete, "/api/v1/players/"+id+"?confirm=true", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if s.repo.Len() != 7 {
		t.Error("player not removed")
	}

	rec = s.do(t, http.MethodDelete, "/api/v1/players/"+id+"?confirm=true", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for removed player, got %d", rec.Code)
	}
}

func TestMissingPlayer(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/v1/players/nope", "/api/v1/players/nope/profile"} {
		if rec := s.do(t, http.MethodGet, path, ""); rec.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, rec.Code)
		}
	}
	if rec := s.do(t, http.MethodPatch, "/api/v1/players/nope", `{"catches":1}`); rec.Code != http.StatusNotFound {
		t.Errorf("patch: expected 404, got %d", rec.Code)
	}
}

func TestProfileAndAnalytics(t *testing.T) {
	s := newTestServer(t)
	id := s.idOf(t, "Kabir Singh")

	rec := s.do(t, http.MethodGet, "/api/v1/players/"+id+"/profile", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var profile models.PlayerProfile
	decode(t, rec, &profile)
	if profile.Player.ID != id || len(profile.Radar) != 6 || len(profile.RunsSeries) != models.MatchWindow {
		t.Errorf("unexpected profile %+v", profile)
	}

	rec = s.do(t, http.MethodGet, "/api/v1/analytics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var d models.Dashboard
	decode(t, rec, &d)
	if d.PlayerCount != 8 || len(d.RunsTrend) != models.MatchWindow || len(d.Contributions) != 6 {
		t.Errorf("unexpected dashboard %+v", d)
	}
	for _, r := range d.TopBowlers {
		if r.Player.Wickets == 0 {
			t.Errorf("%s has no wickets but is ranked as a bowler", r.Player.Name)
		}
	}
}

func TestSelection(t *testing.T) {
	s := newTestServer(t)
	id := s.idOf(t, "Aditya Nair")

	rec := s.do(t, http.MethodGet, "/api/v1/selected", "")
	var sel selectionResponse
	decode(t, rec, &sel)
	if sel.Selected || sel.Profile == nil || sel.Profile.Player.Name != "Arjun Mehta" {
		t.Errorf("expected fallback to first player, got %+v", sel)
	}

	rec = s.do(t, http.MethodPut, "/api/v1/selected", `{"id":"`+id+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var route navigation.Route
	decode(t, rec, &route)
	if route != navigation.ViewPlayer(id) {
		t.Errorf("unexpected route %+v", route)
	}

	rec = s.do(t, http.MethodGet, "/api/v1/selected", "")
	sel = selectionResponse{}
	decode(t, rec, &sel)
	if !sel.Selected || sel.Profile.Player.ID != id {
		t.Errorf("expected %s selected, got %+v", id, sel)
	}

	if rec := s.do(t, http.MethodPut, "/api/v1/selected", `{"id":"nope"}`); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}

	if rec := s.do(t, http.MethodDelete, "/api/v1/selected", ""); rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if _, ok := s.repo.Selected(); ok {
		t.Error("selection should be cleared")
	}
}

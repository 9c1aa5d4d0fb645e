package stats

import (
	"math"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/omarshaarawi/squadbot/internal/models"
	"github.com/omarshaarawi/squadbot/internal/repository/memory"
)

func approx(t *testing.T, want, got float64) {
	t.Helper()
	if math.Abs(want-got) > 1e-9 {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func ids(ranked []models.RankedPlayer) []string {
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Player.ID
	}
	return out
}

func examplePlayers() []models.Player {
	return []models.Player{
		{ID: "A", Name: "A", BattingAverage: 40, StrikeRate: 120, TotalRuns: 400, Wickets: 0},
		{ID: "B", Name: "B", BattingAverage: 20, StrikeRate: 80, TotalRuns: 100, Wickets: 5, BowlingEconomy: 6},
	}
}

func seedPlayers() []models.Player {
	drafts := memory.SeedSquad()
	players := make([]models.Player, len(drafts))
	for i, d := range drafts {
		players[i] = d.WithID(d.Avatar)
	}
	return players
}

func TestBattingScoreWorkedExample(t *testing.T) {
	players := examplePlayers()

	approx(t, 53.2, BattingScore(players[0]))
	approx(t, 32.3, BattingScore(players[1]))

	ranked := TopBatsmen(players)
	assert.Equal(t, []string{"A", "B"}, ids(ranked))
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 2, ranked[1].Rank)
}

func TestTopBowlersExcludesWicketless(t *testing.T) {
	ranked := TopBowlers(examplePlayers())
	assert.Equal(t, []string{"B"}, ids(ranked))
	approx(t, 0.5*5+0.5*(10-6), ranked[0].Score)

	for _, r := range TopBowlers(seedPlayers()) {
		if r.Player.Wickets == 0 {
			t.Fatalf("%s has no wickets but was ranked", r.Player.Name)
		}
	}
}

func TestRankingIsStableOnTies(t *testing.T) {
	players := []models.Player{
		{ID: "1", BattingAverage: 30, StrikeRate: 100, TotalRuns: 200},
		{ID: "2", BattingAverage: 50, StrikeRate: 100, TotalRuns: 200},
		{ID: "3", BattingAverage: 30, StrikeRate: 100, TotalRuns: 200},
		{ID: "4", BattingAverage: 30, StrikeRate: 100, TotalRuns: 200},
	}

	assert.Equal(t, []string{"2", "1", "3", "4"}, ids(TopBatsmen(players)))
	assert.Equal(t, []string{"2", "1", "3", "4"}, ids(TopAllRounders(players)))
}

func TestRankingIsSortedPermutation(t *testing.T) {
	players := seedPlayers()
	ranked := TopBatsmen(players)

	assert.Equal(t, len(players), len(ranked))
	seen := make(map[string]bool)
	for i, r := range ranked {
		seen[r.Player.ID] = true
		approx(t, BattingScore(r.Player), r.Score)
		if i > 0 && ranked[i-1].Score < r.Score {
			t.Fatalf("rank %d (%v) above rank %d (%v)", i, ranked[i-1].Score, i+1, r.Score)
		}
	}
	assert.Equal(t, len(players), len(seen))
}

func TestAllRounderScore(t *testing.T) {
	p := models.Player{BattingAverage: 40, Wickets: 9, FitnessScore: 80, FieldingRating: 60}
	approx(t, 10+0.75+20+15, AllRounderScore(p))
}

func TestTrendsConserveTotals(t *testing.T) {
	players := seedPlayers()
	stats := TeamAggregates(players)

	var runs, wickets int
	for _, pt := range RunsTrend(players) {
		runs += pt.Value
	}
	for _, pt := range WicketsTrend(players) {
		wickets += pt.Value
	}

	assert.Equal(t, stats.TotalRuns, runs)
	assert.Equal(t, stats.TotalWickets, wickets)
}

func TestTrendTreatsMissingSlotsAsZero(t *testing.T) {
	players := []models.Player{
		{RunsPerMatch: []int{10, 20}},
		{RunsPerMatch: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
		{},
	}

	trend := RunsTrend(players)
	assert.Equal(t, models.MatchWindow, len(trend))
	assert.Equal(t, models.TrendPoint{Match: "M1", Value: 11}, trend[0])
	assert.Equal(t, models.TrendPoint{Match: "M2", Value: 22}, trend[1])
	assert.Equal(t, models.TrendPoint{Match: "M3", Value: 3}, trend[2])
	assert.Equal(t, models.TrendPoint{Match: "M10", Value: 10}, trend[9])
}

func TestEmptyRoster(t *testing.T) {
	assert.Equal(t, models.TeamStats{}, TeamAggregates(nil))

	for _, pt := range TeamRadar(nil) {
		assert.Equal(t, 0.0, pt.Value)
	}
	for _, s := range Composition(nil) {
		assert.Equal(t, 0.0, s.Value)
	}

	d := Dashboard(nil)
	assert.Equal(t, 0, len(d.TopBatsmen))
	assert.Equal(t, 0, len(d.TopBowlers))
	assert.Equal(t, 0, len(d.Contributions))
	assert.Equal(t, models.MatchWindow, len(d.RunsTrend))
}

func TestTeamAggregates(t *testing.T) {
	players := []models.Player{
		{TotalRuns: 300, Wickets: 2, FitnessScore: 90, FieldingRating: 70},
		{TotalRuns: 150, Wickets: 7, FitnessScore: 81, FieldingRating: 85},
	}

	got := TeamAggregates(players)
	assert.Equal(t, 450, got.TotalRuns)
	assert.Equal(t, 9, got.TotalWickets)
	approx(t, 85.5, got.AvgFitness)
	approx(t, 77.5, got.AvgFielding)
}

func TestTeamRadar(t *testing.T) {
	players := []models.Player{
		{BattingAverage: 40, MatchesPlayed: 100, FitnessScore: 90, FieldingRating: 80},
		{BattingAverage: 20, MatchesPlayed: 60, FitnessScore: 70, FieldingRating: 60, Wickets: 4, BowlingEconomy: 6},
		{BattingAverage: 10, MatchesPlayed: 20, FitnessScore: 80, FieldingRating: 70, Wickets: 2, BowlingEconomy: 12},
	}

	radar := TeamRadar(players)
	assert.Equal(t, []string{"Batting", "Bowling", "Fielding", "Fitness", "Experience"}, attributes(radar))
	approx(t, (70.0/3)*1.5, radar[0].Value)
	approx(t, (40.0+0)/2, radar[1].Value)
	approx(t, 70, radar[2].Value)
	approx(t, 80, radar[3].Value)
	approx(t, 30, radar[4].Value)
}

func TestTeamRadarBowlingZeroWithoutWicketTakers(t *testing.T) {
	players := []models.Player{
		{BattingAverage: 40, BowlingEconomy: 5},
		{BattingAverage: 30},
	}
	assert.Equal(t, 0.0, TeamRadar(players)[1].Value)
}

func TestTeamRadarExperienceCapped(t *testing.T) {
	players := []models.Player{{MatchesPlayed: 400}}
	assert.Equal(t, 100.0, TeamRadar(players)[4].Value)
}

func TestComposition(t *testing.T) {
	players := seedPlayers()
	got := Composition(players)

	assert.Equal(t, []models.Slice{
		{Name: "Batsmen", Value: 2},
		{Name: "Bowlers", Value: 3},
		{Name: "All-Rounders", Value: 2},
		{Name: "Keepers", Value: 1},
	}, got)
}

func TestContributions(t *testing.T) {
	players := seedPlayers()
	got := Contributions(players)

	assert.Equal(t, 6, len(got))
	assert.Equal(t, "Arjun", got[0].Name)
	assert.Equal(t, players[0].TotalRuns, got[0].Runs)
	assert.Equal(t, players[0].Wickets*50, got[0].Wickets)
}

func attributes(points []models.RadarPoint) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.Attribute
	}
	return out
}

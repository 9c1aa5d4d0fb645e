// Package stats derives team and player analytics from a roster snapshot.
//
// Every function here is pure: it reads the players it is given and returns
// fresh values. Callers recompute on every roster change.
package stats

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/omarshaarawi/squadbot/internal/models"
)

func TeamAggregates(players []models.Player) models.TeamStats {
	var ts models.TeamStats
	var fitness, fielding int
	for _, p := range players {
		ts.TotalRuns += p.TotalRuns
		ts.TotalWickets += p.Wickets
		fitness += p.FitnessScore
		fielding += p.FieldingRating
	}
	ts.AvgFitness = mean(float64(fitness), len(players))
	ts.AvgFielding = mean(float64(fielding), len(players))
	return ts
}

func BattingScore(p models.Player) float64 {
	return p.BattingAverage*0.4 + p.StrikeRate*0.3 + (float64(p.TotalRuns)/100)*0.3
}

func BowlingScore(p models.Player) float64 {
	return float64(p.Wickets)*0.5 + (10-p.BowlingEconomy)*0.5
}

func AllRounderScore(p models.Player) float64 {
	return p.BattingAverage*0.25 + (float64(p.Wickets)/3)*0.25 +
		float64(p.FitnessScore)*0.25 + float64(p.FieldingRating)*0.25
}

func TopBatsmen(players []models.Player) []models.RankedPlayer {
	return rank(players, BattingScore)
}

// TopBowlers ranks only players who have taken at least one wicket.
func TopBowlers(players []models.Player) []models.RankedPlayer {
	bowlers := make([]models.Player, 0, len(players))
	for _, p := range players {
		if p.Wickets > 0 {
			bowlers = append(bowlers, p)
		}
	}
	return rank(bowlers, BowlingScore)
}

func TopAllRounders(players []models.Player) []models.RankedPlayer {
	return rank(players, AllRounderScore)
}

// rank sorts by descending score. The sort is stable, so equal scores keep
// roster order.
func rank(players []models.Player, score func(models.Player) float64) []models.RankedPlayer {
	ranked := make([]models.RankedPlayer, len(players))
	for i, p := range players {
		ranked[i] = models.RankedPlayer{Score: score(p), Player: p}
	}

	slices.SortStableFunc(ranked, func(a, b models.RankedPlayer) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

func RunsTrend(players []models.Player) []models.TrendPoint {
	return trend(players, func(p models.Player) []int { return p.RunsPerMatch })
}

func WicketsTrend(players []models.Player) []models.TrendPoint {
	return trend(players, func(p models.Player) []int { return p.WicketsPerMatch })
}

// trend sums slot i across all players for the fixed match window. Series
// shorter than the window contribute 0 for the missing slots.
func trend(players []models.Player, series func(models.Player) []int) []models.TrendPoint {
	points := make([]models.TrendPoint, models.MatchWindow)
	for i := range points {
		points[i].Match = matchLabel(i)
		for _, p := range players {
			if s := series(p); i < len(s) {
				points[i].Value += s[i]
			}
		}
	}
	return points
}

func Composition(players []models.Player) []models.Slice {
	counts := make(map[models.Role]int, len(models.Roles))
	for _, p := range players {
		counts[p.Role]++
	}
	return []models.Slice{
		{Name: "Batsmen", Value: float64(counts[models.RoleBatsman])},
		{Name: "Bowlers", Value: float64(counts[models.RoleBowler])},
		{Name: "All-Rounders", Value: float64(counts[models.RoleAllRounder])},
		{Name: "Keepers", Value: float64(counts[models.RoleWicketKeeper])},
	}
}

func TeamRadar(players []models.Player) []models.RadarPoint {
	var battingSum, matchesSum, bowlingSum float64
	var fitness, fielding, bowlers int
	for _, p := range players {
		battingSum += p.BattingAverage
		matchesSum += float64(p.MatchesPlayed)
		fitness += p.FitnessScore
		fielding += p.FieldingRating
		if p.Wickets > 0 {
			bowlingSum += math.Max(100-p.BowlingEconomy*10, 0)
			bowlers++
		}
	}

	n := len(players)
	return []models.RadarPoint{
		{Attribute: "Batting", Value: mean(battingSum, n) * 1.5, FullMark: 100},
		{Attribute: "Bowling", Value: mean(bowlingSum, bowlers), FullMark: 100},
		{Attribute: "Fielding", Value: mean(float64(fielding), n), FullMark: 100},
		{Attribute: "Fitness", Value: mean(float64(fitness), n), FullMark: 100},
		{Attribute: "Experience", Value: math.Min(mean(matchesSum, n)/2, 100), FullMark: 100},
	}
}

// Contributions covers the first six roster members. Wickets are weighted by
// 50 so both bars share a scale.
func Contributions(players []models.Player) []models.Contribution {
	n := min(len(players), 6)
	out := make([]models.Contribution, n)
	for i, p := range players[:n] {
		out[i] = models.Contribution{
			Name:    firstName(p.Name),
			Runs:    p.TotalRuns,
			Wickets: p.Wickets * 50,
		}
	}
	return out
}

func Dashboard(players []models.Player) models.Dashboard {
	return models.Dashboard{
		Team:           TeamAggregates(players),
		TopBatsmen:     TopBatsmen(players),
		TopBowlers:     TopBowlers(players),
		TopAllRounders: TopAllRounders(players),
		RunsTrend:      RunsTrend(players),
		WicketsTrend:   WicketsTrend(players),
		Composition:    Composition(players),
		Radar:          TeamRadar(players),
		Contributions:  Contributions(players),
		PlayerCount:    len(players),
	}
}

// mean returns 0 for an empty population instead of NaN.
func mean(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func matchLabel(i int) string {
	return fmt.Sprintf("M%d", i+1)
}

func firstName(name string) string {
	if fields := strings.Fields(name); len(fields) > 0 {
		return fields[0]
	}
	return name
}

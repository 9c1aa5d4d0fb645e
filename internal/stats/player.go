package stats

import (
	"math"

	"github.com/omarshaarawi/squadbot/internal/models"
)

// PlayerForm is the headline form gauge shown next to a player's name.
func PlayerForm(p models.Player) float64 {
	return math.Min(p.BattingAverage*1.5, 100)
}

func PlayerRadar(p models.Player) []models.RadarPoint {
	bowling := 0.0
	if p.BowlingEconomy > 0 {
		bowling = math.Max(100-p.BowlingEconomy*10, 0)
	}
	return []models.RadarPoint{
		{Attribute: "Batting", Value: math.Min(p.BattingAverage*1.5, 100), FullMark: 100},
		{Attribute: "Strike Rate", Value: math.Min(p.StrikeRate/2, 100), FullMark: 100},
		{Attribute: "Bowling", Value: bowling, FullMark: 100},
		{Attribute: "Wickets", Value: math.Min(float64(p.Wickets)/3, 100), FullMark: 100},
		{Attribute: "Fielding", Value: float64(p.FieldingRating), FullMark: 100},
		{Attribute: "Fitness", Value: float64(p.FitnessScore), FullMark: 100},
	}
}

// PlayerSkillPie splits a player's profile into four wedges. An economy above
// 10 would give a negative bowling wedge, so it is floored at 0.
func PlayerSkillPie(p models.Player) []models.Slice {
	bowling := 0.0
	if p.BowlingEconomy > 0 {
		bowling = math.Max((10-p.BowlingEconomy)*10, 0)
	}
	return []models.Slice{
		{Name: "Batting", Value: p.BattingAverage},
		{Name: "Bowling", Value: bowling},
		{Name: "Fielding", Value: float64(p.FieldingRating)},
		{Name: "Fitness", Value: float64(p.FitnessScore)},
	}
}

func PlayerRunsSeries(p models.Player) []models.TrendPoint {
	return series(p.RunsPerMatch)
}

func PlayerWicketsSeries(p models.Player) []models.TrendPoint {
	return series(p.WicketsPerMatch)
}

func series(values []int) []models.TrendPoint {
	points := make([]models.TrendPoint, len(values))
	for i, v := range values {
		points[i] = models.TrendPoint{Match: matchLabel(i), Value: v}
	}
	return points
}

func Profile(p models.Player) models.PlayerProfile {
	return models.PlayerProfile{
		Player:        p,
		Form:          PlayerForm(p),
		RunsSeries:    PlayerRunsSeries(p),
		WicketsSeries: PlayerWicketsSeries(p),
		Radar:         PlayerRadar(p),
		SkillPie:      PlayerSkillPie(p),
	}
}

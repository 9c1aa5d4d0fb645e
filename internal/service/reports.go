package service

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/omarshaarawi/squadbot/internal/models"
	"github.com/omarshaarawi/squadbot/internal/navigation"
	"github.com/omarshaarawi/squadbot/internal/stats"
)

var medals = []string{"🥇", "🥈", "🥉"}

func (s *SquadService) RosterReport(query string) string {
	players := stats.Filter(s.repo.List(), query)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("👥 *Squad* (%d players)\n\n", len(players)))

	if len(players) == 0 {
		if query != "" {
			sb.WriteString(fmt.Sprintf("No players matching '%s'.", Escape(query)))
		} else {
			sb.WriteString("The squad is empty. Use /add to register a player.")
		}
		return sb.String()
	}

	for _, p := range players {
		sb.WriteString(fmt.Sprintf("%s *%s* (%s) - %s\n", roleIcon(p.Role), Escape(p.Name), Escape(p.Avatar), p.Role))
		sb.WriteString(fmt.Sprintf("   Avg %.1f | SR %.1f | Runs %d | Wkts %d\n", p.BattingAverage, p.StrikeRate, p.TotalRuns, p.Wickets))
		sb.WriteString(fmt.Sprintf("   ID: `%s`\n", shortID(p.ID)))
	}

	return sb.String()
}

func (s *SquadService) PlayerReport(route navigation.Route) string {
	profile, err := s.Profile(route)
	if err != nil {
		return "No players available."
	}
	p := profile.Player

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s *%s* (%s)\n", roleIcon(p.Role), Escape(p.Name), p.Role))
	sb.WriteString("━━━━━━━━━━━━━━━━\n")
	sb.WriteString(fmt.Sprintf("%d Matches | %d Runs | %d Wickets\n", p.MatchesPlayed, p.TotalRuns, p.Wickets))
	sb.WriteString(fmt.Sprintf("Fitness %d | Fielding %d | Form %.0f\n\n", p.FitnessScore, p.FieldingRating, profile.Form))

	sb.WriteString("*Batting*\n")
	sb.WriteString(fmt.Sprintf("Avg %.1f | SR %.1f | 4s %d | 6s %d\n", p.BattingAverage, p.StrikeRate, p.Fours, p.Sixes))
	sb.WriteString("*Bowling & Fielding*\n")
	sb.WriteString(fmt.Sprintf("Econ %.1f | Catches %d\n\n", p.BowlingEconomy, p.Catches))

	sb.WriteString("*Runs per match:* ")
	sb.WriteString(seriesLine(profile.RunsSeries))
	sb.WriteString("\n*Wickets per match:* ")
	sb.WriteString(seriesLine(profile.WicketsSeries))
	sb.WriteString("\n\n*Profile*\n")
	for _, r := range profile.Radar {
		sb.WriteString(fmt.Sprintf("%-12s %s %.1f\n", r.Attribute, bar(r.Value, r.FullMark), r.Value))
	}

	sb.WriteString("\n*Skill split*\n")
	for _, slice := range profile.SkillPie {
		sb.WriteString(fmt.Sprintf("%s: %.0f\n", slice.Name, slice.Value))
	}

	return sb.String()
}

func (s *SquadService) TeamReport() string {
	d := s.Dashboard()

	var sb strings.Builder
	sb.WriteString("📊 *Team Analytics*\n\n")
	sb.WriteString(fmt.Sprintf("Total Runs: *%d*\n", d.Team.TotalRuns))
	sb.WriteString(fmt.Sprintf("Total Wickets: *%d*\n", d.Team.TotalWickets))
	sb.WriteString(fmt.Sprintf("Avg Fitness: %.1f\n", d.Team.AvgFitness))
	sb.WriteString(fmt.Sprintf("Avg Fielding: %.1f\n\n", d.Team.AvgFielding))

	sb.WriteString("*Squad Composition*\n")
	for _, slice := range d.Composition {
		sb.WriteString(fmt.Sprintf("%s: %.0f\n", slice.Name, slice.Value))
	}

	sb.WriteString("\n*Team Strength*\n")
	for _, r := range d.Radar {
		sb.WriteString(fmt.Sprintf("%-10s %s %.1f\n", r.Attribute, bar(r.Value, r.FullMark), r.Value))
	}

	if len(d.Contributions) > 0 {
		sb.WriteString("\n*Contributions*\n")
		for _, c := range d.Contributions {
			sb.WriteString(fmt.Sprintf("%s: %d runs, %d wicket pts\n", Escape(c.Name), c.Runs, c.Wickets))
		}
	}

	return sb.String()
}

func (s *SquadService) TopPerformersReport() string {
	d := s.Dashboard()

	var sb strings.Builder
	sb.WriteString("🏆 *Top Performers*\n")
	writeTop(&sb, "Top Batsmen", d.TopBatsmen, func(r models.RankedPlayer) float64 { return r.Player.BattingAverage })
	writeTop(&sb, "Top Bowlers", d.TopBowlers, func(r models.RankedPlayer) float64 { return float64(r.Player.Wickets) })
	writeTop(&sb, "Top All-Rounders", d.TopAllRounders, func(r models.RankedPlayer) float64 { return r.Score })
	return sb.String()
}

func writeTop(sb *strings.Builder, title string, ranked []models.RankedPlayer, stat func(models.RankedPlayer) float64) {
	sb.WriteString(fmt.Sprintf("\n*%s*\n", title))
	if len(ranked) == 0 {
		sb.WriteString("No qualifying players.\n")
		return
	}
	for i, r := range ranked[:min(len(ranked), len(medals))] {
		sb.WriteString(fmt.Sprintf("%s %s (%s) - %.1f\n", medals[i], Escape(r.Player.Name), r.Player.Role, stat(r)))
	}
}

func (s *SquadService) TrendsReport() string {
	d := s.Dashboard()

	var sb strings.Builder
	sb.WriteString("📈 *Team Trends* (last 10 matches)\n\n")
	sb.WriteString("```\n")
	sb.WriteString(fmt.Sprintf("%-5s %6s %8s\n", "Match", "Runs", "Wickets"))
	for i := range d.RunsTrend {
		sb.WriteString(fmt.Sprintf("%-5s %6d %8d\n", d.RunsTrend[i].Match, d.RunsTrend[i].Value, d.WicketsTrend[i].Value))
	}
	sb.WriteString("```")
	return sb.String()
}

func (s *SquadService) TableReport(query string, state stats.SortState) string {
	players := s.Players(query, state)

	arrow := "↓"
	if state.Dir == stats.Asc {
		arrow = "↑"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 *Player Stats* sorted by %s %s\n\n", state.Key, arrow))
	if len(players) == 0 {
		sb.WriteString("No players found.")
		return sb.String()
	}

	sb.WriteString("```\n")
	sb.WriteString(fmt.Sprintf("%-16s %5s %6s %5s %4s %5s %3s %3s\n", "Player", "Avg", "SR", "Runs", "Wkt", "Econ", "Fit", "Fld"))
	for _, p := range players {
		sb.WriteString(fmt.Sprintf("%-16s %5.1f %6.1f %5d %4d %5.1f %3d %3d\n",
			truncate(strings.ReplaceAll(p.Name, "`", "'"), 16), p.BattingAverage, p.StrikeRate, p.TotalRuns,
			p.Wickets, p.BowlingEconomy, p.FitnessScore, p.FieldingRating))
	}
	sb.WriteString("```")
	return sb.String()
}

// Escape makes user text safe to embed in a legacy Markdown message.
func Escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func seriesLine(points []models.TrendPoint) string {
	if len(points) == 0 {
		return "-"
	}
	values := make([]string, len(points))
	for i, p := range points {
		values[i] = fmt.Sprintf("%d", p.Value)
	}
	return strings.Join(values, " ")
}

// bar renders value as a ten cell gauge.
func bar(value, full float64) string {
	if full <= 0 {
		return ""
	}
	filled := int(value / full * 10)
	filled = max(0, min(filled, 10))
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

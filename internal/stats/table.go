package stats

import (
	"fmt"
	"slices"
	"strings"

	"github.com/omarshaarawi/squadbot/internal/models"
)

type SortKey string

const (
	SortBattingAverage SortKey = "battingAverage"
	SortStrikeRate     SortKey = "strikeRate"
	SortTotalRuns      SortKey = "totalRuns"
	SortWickets        SortKey = "wickets"
	SortBowlingEconomy SortKey = "bowlingEconomy"
	SortFitnessScore   SortKey = "fitnessScore"
	SortFieldingRating SortKey = "fieldingRating"
	SortFours          SortKey = "fours"
	SortSixes          SortKey = "sixes"
	SortMatchesPlayed  SortKey = "matchesPlayed"
	SortCatches        SortKey = "catches"
)

var sortAccessors = map[SortKey]func(models.Player) float64{
	SortBattingAverage: func(p models.Player) float64 { return p.BattingAverage },
	SortStrikeRate:     func(p models.Player) float64 { return p.StrikeRate },
	SortTotalRuns:      func(p models.Player) float64 { return float64(p.TotalRuns) },
	SortWickets:        func(p models.Player) float64 { return float64(p.Wickets) },
	SortBowlingEconomy: func(p models.Player) float64 { return p.BowlingEconomy },
	SortFitnessScore:   func(p models.Player) float64 { return float64(p.FitnessScore) },
	SortFieldingRating: func(p models.Player) float64 { return float64(p.FieldingRating) },
	SortFours:          func(p models.Player) float64 { return float64(p.Fours) },
	SortSixes:          func(p models.Player) float64 { return float64(p.Sixes) },
	SortMatchesPlayed:  func(p models.Player) float64 { return float64(p.MatchesPlayed) },
	SortCatches:        func(p models.Player) float64 { return float64(p.Catches) },
}

// SortKeys lists the table columns in display order.
var SortKeys = []SortKey{
	SortBattingAverage, SortStrikeRate, SortTotalRuns, SortWickets,
	SortBowlingEconomy, SortFitnessScore, SortFieldingRating,
	SortFours, SortSixes, SortMatchesPlayed, SortCatches,
}

// ParseSortKey accepts the column name in any case, with or without separators
// ("strike_rate", "StrikeRate", "strike-rate").
func ParseSortKey(s string) (SortKey, error) {
	norm := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(s))
	for _, k := range SortKeys {
		if strings.ToLower(string(k)) == norm {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

func (k SortKey) Value(p models.Player) float64 {
	if fn, ok := sortAccessors[k]; ok {
		return fn(p)
	}
	return 0
}

type SortDir string

const (
	Desc SortDir = "desc"
	Asc  SortDir = "asc"
)

func ParseSortDir(s string) SortDir {
	if strings.EqualFold(strings.TrimSpace(s), string(Asc)) {
		return Asc
	}
	return Desc
}

type SortState struct {
	Key SortKey `json:"key"`
	Dir SortDir `json:"dir"`
}

func DefaultSort() SortState {
	return SortState{Key: SortBattingAverage, Dir: Desc}
}

// Toggle flips the direction when key is already the active column, otherwise
// it switches to key sorted descending.
func (s SortState) Toggle(key SortKey) SortState {
	if s.Key == key {
		if s.Dir == Desc {
			return SortState{Key: key, Dir: Asc}
		}
		return SortState{Key: key, Dir: Desc}
	}
	return SortState{Key: key, Dir: Desc}
}

// Filter keeps players whose name or role contains query, ignoring case.
func Filter(players []models.Player, query string) []models.Player {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Player, 0, len(players))
	for _, p := range players {
		if q == "" ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(string(p.Role)), q) {
			out = append(out, p)
		}
	}
	return out
}

func Sort(players []models.Player, state SortState) []models.Player {
	out := slices.Clone(players)
	slices.SortStableFunc(out, func(a, b models.Player) int {
		av, bv := state.Key.Value(a), state.Key.Value(b)
		if state.Dir == Asc {
			av, bv = bv, av
		}
		switch {
		case av > bv:
			return -1
		case av < bv:
			return 1
		default:
			return 0
		}
	})
	return out
}

func Table(players []models.Player, query string, state SortState) []models.Player {
	return Sort(Filter(players, query), state)
}

// Package form turns loosely typed user input into player drafts and updates.
// Bad numbers never fail a submission; they become 0.
package form

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/omarshaarawi/squadbot/internal/models"
)

// Float parses s, returning 0 for anything that is not a finite,
// non-negative number.
func Float(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Int parses s as a whole number. Decimals are truncated.
func Int(s string) int {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		if v < 0 {
			return 0
		}
		return v
	}
	f := Float(s)
	if f > math.MaxInt32 {
		return 0
	}
	return int(f)
}

// Percent is Int clamped to [0, 100].
func Percent(s string) int {
	return min(Int(s), 100)
}

// Initials builds the avatar text from the first letter of every word.
func Initials(name string) string {
	var sb strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)
		sb.WriteString(strings.ToUpper(string(r[0])))
	}
	return sb.String()
}

// Series parses a comma separated list of per-match values, padded or cut to
// the match window.
func Series(s string) []int {
	out := make([]int, models.MatchWindow)
	parts := strings.Split(s, ",")
	for i := 0; i < len(parts) && i < models.MatchWindow; i++ {
		out[i] = Int(parts[i])
	}
	return out
}

// Builder converts parsed fields into drafts and updates. Rand fills in
// match series that were not supplied.
type Builder struct {
	Rand *rand.Rand
}

func NewBuilder(seed uint64) *Builder {
	if seed == 0 {
		return &Builder{Rand: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	}
	return &Builder{Rand: rand.New(rand.NewPCG(seed, seed))}
}

func (b *Builder) Draft(f Fields) models.PlayerDraft {
	d := models.PlayerDraft{
		Name:           strings.TrimSpace(f[FieldName]),
		Role:           models.ParseRole(f[FieldRole]),
		BattingAverage: Float(f[FieldBattingAverage]),
		StrikeRate:     Float(f[FieldStrikeRate]),
		TotalRuns:      Int(f[FieldTotalRuns]),
		Fours:          Int(f[FieldFours]),
		Sixes:          Int(f[FieldSixes]),
		MatchesPlayed:  Int(f[FieldMatchesPlayed]),
		BowlingEconomy: Float(f[FieldBowlingEconomy]),
		Wickets:        Int(f[FieldWickets]),
		Catches:        Int(f[FieldCatches]),
		FitnessScore:   Percent(f[FieldFitnessScore]),
		FieldingRating: Percent(f[FieldFieldingRating]),
	}
	d.Avatar = Initials(d.Name)

	if v, ok := f[FieldRunsPerMatch]; ok && strings.TrimSpace(v) != "" {
		d.RunsPerMatch = Series(v)
	} else {
		d.RunsPerMatch = b.randomSeries(100)
	}
	if v, ok := f[FieldWicketsPerMatch]; ok && strings.TrimSpace(v) != "" {
		d.WicketsPerMatch = Series(v)
	} else {
		d.WicketsPerMatch = b.randomSeries(4)
	}
	return d
}

// Update builds an edit from the fields that are present only. Renaming a
// player re-derives the avatar.
func (b *Builder) Update(f Fields) models.PlayerUpdate {
	var u models.PlayerUpdate

	if v, ok := f[FieldName]; ok {
		name := strings.TrimSpace(v)
		avatar := Initials(name)
		u.Name = &name
		u.Avatar = &avatar
	}
	if v, ok := f[FieldRole]; ok {
		role := models.ParseRole(v)
		u.Role = &role
	}
	u.BattingAverage = floatField(f, FieldBattingAverage)
	u.StrikeRate = floatField(f, FieldStrikeRate)
	u.BowlingEconomy = floatField(f, FieldBowlingEconomy)
	u.TotalRuns = intField(f, FieldTotalRuns, Int)
	u.Fours = intField(f, FieldFours, Int)
	u.Sixes = intField(f, FieldSixes, Int)
	u.MatchesPlayed = intField(f, FieldMatchesPlayed, Int)
	u.Wickets = intField(f, FieldWickets, Int)
	u.Catches = intField(f, FieldCatches, Int)
	u.FitnessScore = intField(f, FieldFitnessScore, Percent)
	u.FieldingRating = intField(f, FieldFieldingRating, Percent)

	// An empty series means "not given", as it does for Draft.
	if v, ok := f[FieldRunsPerMatch]; ok && strings.TrimSpace(v) != "" {
		u.RunsPerMatch = Series(v)
	}
	if v, ok := f[FieldWicketsPerMatch]; ok && strings.TrimSpace(v) != "" {
		u.WicketsPerMatch = Series(v)
	}
	return u
}

func (b *Builder) randomSeries(n int) []int {
	out := make([]int, models.MatchWindow)
	for i := range out {
		out[i] = b.Rand.IntN(n)
	}
	return out
}

func floatField(f Fields, key string) *float64 {
	v, ok := f[key]
	if !ok {
		return nil
	}
	n := Float(v)
	return &n
}

func intField(f Fields, key string, parse func(string) int) *int {
	v, ok := f[key]
	if !ok {
		return nil
	}
	n := parse(v)
	return &n
}

package models

import "strings"

// MatchWindow is the number of historical matches kept per player series.
const MatchWindow = 10

type Role string

const (
	RoleBatsman      Role = "Batsman"
	RoleBowler       Role = "Bowler"
	RoleAllRounder   Role = "All-Rounder"
	RoleWicketKeeper Role = "Wicket-Keeper"
)

var Roles = []Role{RoleBatsman, RoleBowler, RoleAllRounder, RoleWicketKeeper}

// ParseRole maps loose user input onto a Role. Unknown input falls back to Batsman.
func ParseRole(s string) Role {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", " ", "", "_", "").Replace(key)

	switch key {
	case "bowler":
		return RoleBowler
	case "allrounder", "ar":
		return RoleAllRounder
	case "wicketkeeper", "keeper", "wk":
		return RoleWicketKeeper
	default:
		return RoleBatsman
	}
}

type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar"`

	BattingAverage float64 `json:"battingAverage"`
	StrikeRate     float64 `json:"strikeRate"`
	TotalRuns      int     `json:"totalRuns"`
	Fours          int     `json:"fours"`
	Sixes          int     `json:"sixes"`
	MatchesPlayed  int     `json:"matchesPlayed"`

	BowlingEconomy float64 `json:"bowlingEconomy"`
	Wickets        int     `json:"wickets"`

	Catches        int `json:"catches"`
	FitnessScore   int `json:"fitnessScore"`
	FieldingRating int `json:"fieldingRating"`

	RunsPerMatch    []int `json:"runsPerMatch"`
	WicketsPerMatch []int `json:"wicketsPerMatch"`
}

// Clone returns a copy that shares no slices with p.
func (p Player) Clone() Player {
	p.RunsPerMatch = cloneInts(p.RunsPerMatch)
	p.WicketsPerMatch = cloneInts(p.WicketsPerMatch)
	return p
}

// PlayerDraft is a player that has not been assigned an id yet.
type PlayerDraft struct {
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar"`

	BattingAverage float64 `json:"battingAverage"`
	StrikeRate     float64 `json:"strikeRate"`
	TotalRuns      int     `json:"totalRuns"`
	Fours          int     `json:"fours"`
	Sixes          int     `json:"sixes"`
	MatchesPlayed  int     `json:"matchesPlayed"`

	BowlingEconomy float64 `json:"bowlingEconomy"`
	Wickets        int     `json:"wickets"`

	Catches        int `json:"catches"`
	FitnessScore   int `json:"fitnessScore"`
	FieldingRating int `json:"fieldingRating"`

	RunsPerMatch    []int `json:"runsPerMatch"`
	WicketsPerMatch []int `json:"wicketsPerMatch"`
}

// WithID materializes the draft as a stored player.
func (d PlayerDraft) WithID(id string) Player {
	return Player{
		ID:              id,
		Name:            d.Name,
		Role:            d.Role,
		Avatar:          d.Avatar,
		BattingAverage:  d.BattingAverage,
		StrikeRate:      d.StrikeRate,
		TotalRuns:       d.TotalRuns,
		Fours:           d.Fours,
		Sixes:           d.Sixes,
		MatchesPlayed:   d.MatchesPlayed,
		BowlingEconomy:  d.BowlingEconomy,
		Wickets:         d.Wickets,
		Catches:         d.Catches,
		FitnessScore:    d.FitnessScore,
		FieldingRating:  d.FieldingRating,
		RunsPerMatch:    cloneInts(d.RunsPerMatch),
		WicketsPerMatch: cloneInts(d.WicketsPerMatch),
	}
}

// PlayerUpdate carries the fields of an edit. Nil fields are left untouched.
// There is no ID field: ids never change after creation.
type PlayerUpdate struct {
	Name   *string `json:"name,omitempty"`
	Role   *Role   `json:"role,omitempty"`
	Avatar *string `json:"avatar,omitempty"`

	BattingAverage *float64 `json:"battingAverage,omitempty"`
	StrikeRate     *float64 `json:"strikeRate,omitempty"`
	TotalRuns      *int     `json:"totalRuns,omitempty"`
	Fours          *int     `json:"fours,omitempty"`
	Sixes          *int     `json:"sixes,omitempty"`
	MatchesPlayed  *int     `json:"matchesPlayed,omitempty"`

	BowlingEconomy *float64 `json:"bowlingEconomy,omitempty"`
	Wickets        *int     `json:"wickets,omitempty"`

	Catches        *int `json:"catches,omitempty"`
	FitnessScore   *int `json:"fitnessScore,omitempty"`
	FieldingRating *int `json:"fieldingRating,omitempty"`

	RunsPerMatch    []int `json:"runsPerMatch,omitempty"`
	WicketsPerMatch []int `json:"wicketsPerMatch,omitempty"`
}

func (u PlayerUpdate) Apply(p *Player) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Role != nil {
		p.Role = *u.Role
	}
	if u.Avatar != nil {
		p.Avatar = *u.Avatar
	}
	if u.BattingAverage != nil {
		p.BattingAverage = *u.BattingAverage
	}
	if u.StrikeRate != nil {
		p.StrikeRate = *u.StrikeRate
	}
	if u.TotalRuns != nil {
		p.TotalRuns = *u.TotalRuns
	}
	if u.Fours != nil {
		p.Fours = *u.Fours
	}
	if u.Sixes != nil {
		p.Sixes = *u.Sixes
	}
	if u.MatchesPlayed != nil {
		p.MatchesPlayed = *u.MatchesPlayed
	}
	if u.BowlingEconomy != nil {
		p.BowlingEconomy = *u.BowlingEconomy
	}
	if u.Wickets != nil {
		p.Wickets = *u.Wickets
	}
	if u.Catches != nil {
		p.Catches = *u.Catches
	}
	if u.FitnessScore != nil {
		p.FitnessScore = *u.FitnessScore
	}
	if u.FieldingRating != nil {
		p.FieldingRating = *u.FieldingRating
	}
	if u.RunsPerMatch != nil {
		p.RunsPerMatch = cloneInts(u.RunsPerMatch)
	}
	if u.WicketsPerMatch != nil {
		p.WicketsPerMatch = cloneInts(u.WicketsPerMatch)
	}
}

// IsEmpty reports whether the update would change nothing.
func (u PlayerUpdate) IsEmpty() bool {
	return u.Name == nil && u.Role == nil && u.Avatar == nil &&
		u.BattingAverage == nil && u.StrikeRate == nil && u.TotalRuns == nil &&
		u.Fours == nil && u.Sixes == nil && u.MatchesPlayed == nil &&
		u.BowlingEconomy == nil && u.Wickets == nil && u.Catches == nil &&
		u.FitnessScore == nil && u.FieldingRating == nil &&
		u.RunsPerMatch == nil && u.WicketsPerMatch == nil
}

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s))
	copy(out, s)
	return out
}

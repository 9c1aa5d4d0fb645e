package models

import "time"

type TeamStats struct {
	TotalRuns    int     `json:"totalRuns"`
	TotalWickets int     `json:"totalWickets"`
	AvgFitness   float64 `json:"avgFitness"`
	AvgFielding  float64 `json:"avgFielding"`
}

type RankedPlayer struct {
	Rank   int     `json:"rank"`
	Score  float64 `json:"score"`
	Player Player  `json:"player"`
}

type TrendPoint struct {
	Match string `json:"match"`
	Value int    `json:"value"`
}

// Slice is one wedge of a pie or distribution chart.
type Slice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type RadarPoint struct {
	Attribute string  `json:"attribute"`
	Value     float64 `json:"value"`
	FullMark  float64 `json:"fullMark"`
}

type Contribution struct {
	Name    string `json:"name"`
	Runs    int    `json:"runs"`
	Wickets int    `json:"wickets"`
}

type Dashboard struct {
	Team           TeamStats      `json:"team"`
	TopBatsmen     []RankedPlayer `json:"topBatsmen"`
	TopBowlers     []RankedPlayer `json:"topBowlers"`
	TopAllRounders []RankedPlayer `json:"topAllRounders"`
	RunsTrend      []TrendPoint   `json:"runsTrend"`
	WicketsTrend   []TrendPoint   `json:"wicketsTrend"`
	Composition    []Slice        `json:"composition"`
	Radar          []RadarPoint   `json:"radar"`
	Contributions  []Contribution `json:"contributions"`
	PlayerCount    int            `json:"playerCount"`
}

type PlayerProfile struct {
	Player        Player       `json:"player"`
	Form          float64      `json:"form"`
	RunsSeries    []TrendPoint `json:"runsSeries"`
	WicketsSeries []TrendPoint `json:"wicketsSeries"`
	Radar         []RadarPoint `json:"radar"`
	SkillPie      []Slice      `json:"skillPie"`
}

type RosterEventType string

const (
	EventPlayerAdded      RosterEventType = "player.added"
	EventPlayerUpdated    RosterEventType = "player.updated"
	EventPlayerRemoved    RosterEventType = "player.removed"
	EventSelectionChanged RosterEventType = "selection.changed"
)

type RosterEvent struct {
	Type     RosterEventType `json:"type"`
	PlayerID string          `json:"playerId,omitempty"`
	At       time.Time       `json:"at"`
}

type MessageType string

const (
	MessageTypeDashboard MessageType = "dashboard"
	MessageTypeWelcome   MessageType = "welcome"
)

// ServerMessage is pushed to websocket clients.
type ServerMessage struct {
	Type      MessageType  `json:"type"`
	Event     *RosterEvent `json:"event,omitempty"`
	Payload   interface{}  `json:"payload,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

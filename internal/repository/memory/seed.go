package memory

import "github.com/omarshaarawi/squadbot/internal/models"

// SeedSquad is the roster every process starts with. Career totals are taken
// over the last ten matches, so TotalRuns and Wickets equal the series sums.
func SeedSquad() []models.PlayerDraft {
	return []models.PlayerDraft{
		{
			Name:            "Arjun Mehta",
			Role:            models.RoleBatsman,
			Avatar:          "AM",
			BattingAverage:  48.6,
			StrikeRate:      138.2,
			TotalRuns:       527,
			Fours:           54,
			Sixes:           9,
			MatchesPlayed:   32,
			BowlingEconomy:  8.4,
			Wickets:         2,
			Catches:         14,
			FitnessScore:    91,
			FieldingRating:  88,
			RunsPerMatch:    []int{45, 67, 12, 88, 34, 56, 71, 23, 90, 41},
			WicketsPerMatch: []int{0, 0, 0, 0, 0, 0, 1, 0, 0, 1},
		},
		{
			Name:            "Rohan Iyer",
			Role:            models.RoleBatsman,
			Avatar:          "RI",
			BattingAverage:  41.3,
			StrikeRate:      127.5,
			TotalRuns:       437,
			Fours:           42,
			Sixes:           6,
			MatchesPlayed:   28,
			BowlingEconomy:  0,
			Wickets:         0,
			Catches:         11,
			FitnessScore:    85,
			FieldingRating:  79,
			RunsPerMatch:    []int{33, 21, 78, 54, 9, 62, 47, 38, 15, 80},
			WicketsPerMatch: []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			Name:            "Kabir Singh",
			Role:            models.RoleAllRounder,
			Avatar:          "KS",
			BattingAverage:  34.8,
			StrikeRate:      145.9,
			TotalRuns:       383,
			Fours:           33,
			Sixes:           12,
			MatchesPlayed:   30,
			BowlingEconomy:  7.2,
			Wickets:         13,
			Catches:         17,
			FitnessScore:    89,
			FieldingRating:  84,
			RunsPerMatch:    []int{28, 44, 61, 17, 52, 39, 8, 73, 26, 35},
			WicketsPerMatch: []int{2, 1, 0, 3, 1, 2, 1, 0, 2, 1},
		},
		{
			Name:            "Vikram Rao",
			Role:            models.RoleWicketKeeper,
			Avatar:          "VR",
			BattingAverage:  36.1,
			StrikeRate:      131.4,
			TotalRuns:       381,
			Fours:           36,
			Sixes:           7,
			MatchesPlayed:   29,
			BowlingEconomy:  0,
			Wickets:         0,
			Catches:         31,
			FitnessScore:    83,
			FieldingRating:  92,
			RunsPerMatch:    []int{19, 55, 40, 31, 67, 12, 48, 29, 58, 22},
			WicketsPerMatch: []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			Name:            "Dev Malhotra",
			Role:            models.RoleBowler,
			Avatar:          "DM",
			BattingAverage:  12.4,
			StrikeRate:      98.3,
			TotalRuns:       107,
			Fours:           9,
			Sixes:           1,
			MatchesPlayed:   26,
			BowlingEconomy:  6.4,
			Wickets:         25,
			Catches:         8,
			FitnessScore:    87,
			FieldingRating:  74,
			RunsPerMatch:    []int{8, 14, 3, 22, 11, 5, 17, 9, 12, 6},
			WicketsPerMatch: []int{3, 2, 4, 1, 2, 3, 2, 4, 1, 3},
		},
		{
			Name:            "Sameer Khan",
			Role:            models.RoleBowler,
			Avatar:          "SK",
			BattingAverage:  9.7,
			StrikeRate:      88.1,
			TotalRuns:       77,
			Fours:           6,
			Sixes:           0,
			MatchesPlayed:   24,
			BowlingEconomy:  7.8,
			Wickets:         19,
			Catches:         6,
			FitnessScore:    80,
			FieldingRating:  70,
			RunsPerMatch:    []int{4, 11, 7, 2, 15, 9, 3, 12, 6, 8},
			WicketsPerMatch: []int{1, 3, 2, 2, 0, 4, 1, 2, 3, 1},
		},
		{
			Name:            "Aditya Nair",
			Role:            models.RoleAllRounder,
			Avatar:          "AN",
			BattingAverage:  29.5,
			StrikeRate:      122.7,
			TotalRuns:       307,
			Fours:           27,
			Sixes:           5,
			MatchesPlayed:   27,
			BowlingEconomy:  8.1,
			Wickets:         10,
			Catches:         12,
			FitnessScore:    78,
			FieldingRating:  81,
			RunsPerMatch:    []int{36, 18, 42, 27, 11, 50, 24, 33, 19, 47},
			WicketsPerMatch: []int{1, 0, 2, 1, 1, 0, 2, 1, 0, 2},
		},
		{
			Name:            "Nikhil Bose",
			Role:            models.RoleBowler,
			Avatar:          "NB",
			BattingAverage:  14.2,
			StrikeRate:      104.6,
			TotalRuns:       115,
			Fours:           12,
			Sixes:           2,
			MatchesPlayed:   22,
			BowlingEconomy:  5.9,
			Wickets:         26,
			Catches:         9,
			FitnessScore:    92,
			FieldingRating:  77,
			RunsPerMatch:    []int{12, 6, 19, 8, 14, 3, 10, 21, 7, 15},
			WicketsPerMatch: []int{2, 4, 3, 2, 3, 1, 4, 2, 3, 2},
		},
	}
}

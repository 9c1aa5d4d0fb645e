package form

import (
	"fmt"
	"slices"
	"strings"
)

const (
	FieldName            = "name"
	FieldRole            = "role"
	FieldBattingAverage  = "battingAverage"
	FieldStrikeRate      = "strikeRate"
	FieldTotalRuns       = "totalRuns"
	FieldFours           = "fours"
	FieldSixes           = "sixes"
	FieldMatchesPlayed   = "matchesPlayed"
	FieldBowlingEconomy  = "bowlingEconomy"
	FieldWickets         = "wickets"
	FieldCatches         = "catches"
	FieldFitnessScore    = "fitnessScore"
	FieldFieldingRating  = "fieldingRating"
	FieldRunsPerMatch    = "runsPerMatch"
	FieldWicketsPerMatch = "wicketsPerMatch"
)

var aliases = map[string]string{
	"name":            FieldName,
	"role":            FieldRole,
	"battingaverage":  FieldBattingAverage,
	"avg":             FieldBattingAverage,
	"average":         FieldBattingAverage,
	"strikerate":      FieldStrikeRate,
	"sr":              FieldStrikeRate,
	"totalruns":       FieldTotalRuns,
	"runs":            FieldTotalRuns,
	"fours":           FieldFours,
	"4s":              FieldFours,
	"sixes":           FieldSixes,
	"6s":              FieldSixes,
	"matchesplayed":   FieldMatchesPlayed,
	"matches":         FieldMatchesPlayed,
	"bowlingeconomy":  FieldBowlingEconomy,
	"economy":         FieldBowlingEconomy,
	"econ":            FieldBowlingEconomy,
	"wickets":         FieldWickets,
	"wkts":            FieldWickets,
	"catches":         FieldCatches,
	"fitnessscore":    FieldFitnessScore,
	"fitness":         FieldFitnessScore,
	"fieldingrating":  FieldFieldingRating,
	"fielding":        FieldFieldingRating,
	"runspermatch":    FieldRunsPerMatch,
	"wicketspermatch": FieldWicketsPerMatch,
}

// Fields maps canonical field names to raw input values.
type Fields map[string]string

// CanonicalField resolves a user supplied key such as "SR" or "strike_rate".
func CanonicalField(key string) (string, bool) {
	norm := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.TrimSpace(key)))
	field, ok := aliases[norm]
	return field, ok
}

// ParseFields reads "key=value; key=value" input. Unknown keys are returned
// as an error so the caller can tell the user; the known ones are still kept.
func ParseFields(input string) (Fields, error) {
	fields := make(Fields)
	var unknown []string

	for _, part := range strings.Split(input, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			unknown = append(unknown, part)
			continue
		}
		field, ok := CanonicalField(key)
		if !ok {
			unknown = append(unknown, strings.TrimSpace(key))
			continue
		}
		fields[field] = strings.TrimSpace(value)
	}

	if len(unknown) > 0 {
		return fields, fmt.Errorf("unrecognized fields: %s", strings.Join(unknown, ", "))
	}
	return fields, nil
}

// FromJSON converts a decoded JSON object into Fields. Numbers, strings and
// arrays of numbers are accepted; anything else is coerced through fmt.
func FromJSON(obj map[string]interface{}) (Fields, error) {
	fields := make(Fields, len(obj))
	var unknown []string

	for key, raw := range obj {
		field, ok := CanonicalField(key)
		if !ok {
			if key != "id" {
				unknown = append(unknown, key)
			}
			continue
		}
		switch v := raw.(type) {
		case nil:
			fields[field] = ""
		case string:
			fields[field] = v
		case []interface{}:
			parts := make([]string, len(v))
			for i, item := range v {
				parts[i] = fmt.Sprint(item)
			}
			fields[field] = strings.Join(parts, ",")
		default:
			fields[field] = fmt.Sprint(v)
		}
	}

	if len(unknown) > 0 {
		slices.Sort(unknown)
		return fields, fmt.Errorf("unrecognized fields: %s", strings.Join(unknown, ", "))
	}
	return fields, nil
}

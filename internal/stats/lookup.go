package stats

import (
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/omarshaarawi/squadbot/internal/models"
)

const (
	similarityThreshold = 0.7

	// minIDPrefix is the shortest id prefix accepted as a reference.
	minIDPrefix = 4
	// minAbbreviation is the shortest reference tried as an abbreviation.
	minAbbreviation = 3
)

// FindPlayer resolves a loose reference typed by a user: an id or unique id
// prefix, a name, a misspelt name, or an abbreviation such as "arj meh".
// Abbreviations must be at least three letters and match exactly one player.
func FindPlayer(players []models.Player, ref string) (models.Player, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.Player{}, false
	}

	for _, p := range players {
		if p.ID == ref {
			return p, true
		}
	}
	if p, ok := uniqueMatch(players, func(p models.Player) bool {
		return len(ref) >= minIDPrefix && len(p.ID) >= len(ref) && strings.EqualFold(p.ID[:len(ref)], ref)
	}); ok {
		return p, true
	}
	for _, p := range players {
		if strings.EqualFold(p.Name, ref) {
			return p, true
		}
	}

	lowerRef := strings.ToLower(ref)
	bestIdx := -1
	bestSimilarity := similarityThreshold
	for i, p := range players {
		name := strings.ToLower(p.Name)
		distance := fuzzy.LevenshteinDistance(lowerRef, name)
		maxLen := float64(max(len(lowerRef), len(name)))
		similarity := 1 - float64(distance)/maxLen

		if similarity > bestSimilarity {
			bestSimilarity = similarity
			bestIdx = i
		}
	}
	if bestIdx >= 0 {
		return players[bestIdx], true
	}

	compact := strings.ReplaceAll(ref, " ", "")
	if utf8.RuneCountInString(compact) < minAbbreviation {
		return models.Player{}, false
	}
	return uniqueMatch(players, func(p models.Player) bool {
		return fuzzy.MatchNormalizedFold(compact, p.Name)
	})
}

// uniqueMatch returns the only player satisfying match. Ambiguous references
// resolve to nobody.
func uniqueMatch(players []models.Player, match func(models.Player) bool) (models.Player, bool) {
	found := -1
	for i, p := range players {
		if !match(p) {
			continue
		}
		if found >= 0 {
			return models.Player{}, false
		}
		found = i
	}
	if found < 0 {
		return models.Player{}, false
	}
	return players[found], true
}

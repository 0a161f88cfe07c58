// Package scorer rates geocoding candidates against the structured query
// and blends resolution confidence with extraction confidence.
package scorer

import (
	"math"
	"strings"

	"github.com/NIRMALT04/bunker-locate/internal/query"
	"github.com/NIRMALT04/bunker-locate/pkg/geocode"
)

// Scoring constants. A primary candidate starts higher than a secondary one
// because the structured query it answered is more constrained. All scores
// clamp to [0, 1].
const (
	primaryBase   = 0.5
	secondaryBase = 0.4

	// relevanceWeight scales the provider's own 0..1 match quality.
	relevanceWeight = 0.3

	queryEchoBonus        = 0.25
	buildingBonus         = 0.1
	cityBonus             = 0.1
	addressComponentBonus = 0.05
	placeTypeBonus        = 0.1

	fuzzyPenalty = 0.2
	fuzzyFloor   = 0.4
)

// poiPlaceTypes are the provider place types that point at a specific venue
// rather than a broad administrative area.
var poiPlaceTypes = []string{"poi", "address", "building", "office", "amenity", "landmark"}

// ScorePrimary rates a primary-provider candidate against the structured
// query.
func ScorePrimary(cand geocode.Candidate, q query.StructuredQuery) float64 {
	return score(primaryBase, cand, q)
}

// ScoreSecondary rates a fallback-provider candidate.
func ScoreSecondary(cand geocode.Candidate, q query.StructuredQuery) float64 {
	return score(secondaryBase, cand, q)
}

func score(base float64, cand geocode.Candidate, q query.StructuredQuery) float64 {
	s := base + relevanceWeight*cand.Relevance

	display := strings.ToLower(cand.DisplayName)

	// The whole normalized query echoed back in the display name is the
	// strongest signal the provider understood what was asked.
	if q.Normalized != "" && strings.Contains(display, q.Normalized) {
		s += queryEchoBonus
	}
	if q.Building != "" && strings.Contains(display, q.Building) {
		s += buildingBonus
	}
	if cityMatches(cand, q, display) {
		s += cityBonus
	}

	// Address completeness: one bonus per component the candidate reports
	// in decomposed form.
	for _, component := range []string{cand.City, cand.State, cand.Country, cand.PostalCode} {
		if component != "" {
			s += addressComponentBonus
		}
	}

	if hasPOIType(cand.PlaceTypes) {
		s += placeTypeBonus
	}
	return Clamp(s)
}

// cityMatches accepts either the city as typed or its canonical gazetteer
// name, so "bangalore" still matches a candidate reported as "Bengaluru".
func cityMatches(cand geocode.Candidate, q query.StructuredQuery, display string) bool {
	candCity := strings.ToLower(cand.City)
	for _, city := range []string{q.City, q.CityCanonical} {
		if city == "" {
			continue
		}
		if strings.Contains(display, city) || candCity == city {
			return true
		}
	}
	return false
}

func hasPOIType(types []string) bool {
	for _, t := range types {
		for _, want := range poiPlaceTypes {
			if strings.EqualFold(t, want) {
				return true
			}
		}
	}
	return false
}

// ApplyFuzzyPenalty discounts a score earned through query mutation. The
// floor keeps an accepted fuzzy match from reporting near-zero confidence.
func ApplyFuzzyPenalty(raw float64) float64 {
	return math.Max(raw-fuzzyPenalty, fuzzyFloor)
}

// Combine blends a resolution-stage score with an extraction confidence
// into the single reported number.
func Combine(stage, extraction float64) float64 {
	return Clamp((stage + extraction) / 2)
}

// Clamp forces a score into [0, 1].
func Clamp(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

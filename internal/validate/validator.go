// Package validate checks resolved coordinates against the service region
// and grades confidence into reporting tiers.
package validate

import (
	"time"

	"github.com/twpayne/go-geom"
	"go.uber.org/zap"

	"github.com/NIRMALT04/bunker-locate/internal/model"
)

// Confidence tier cutoffs.
const (
	highTierMin   = 0.9
	mediumTierMin = 0.7
)

// Envelope covering the Indian mainland and island territories.
const (
	indiaMinLng = 68.0
	indiaMinLat = 6.5
	indiaMaxLng = 97.5
	indiaMaxLat = 35.7
)

// IndiaBounds returns the default service envelope.
func IndiaBounds() *geom.Bounds {
	return geom.NewBounds(geom.XY).Set(indiaMinLng, indiaMinLat, indiaMaxLng, indiaMaxLat)
}

// Validator stamps locations with a confidence tier, a region check, and
// improvement recommendations.
type Validator struct {
	bounds *geom.Bounds
}

// New returns a Validator for the given envelope. A nil bounds falls back
// to the India envelope.
func New(bounds *geom.Bounds) *Validator {
	if bounds == nil {
		bounds = IndiaBounds()
	}
	return &Validator{bounds: bounds}
}

// Validate grades loc into a ResolvedLocation. An out-of-envelope
// coordinate is flagged, never discarded. With checkRegion false the check
// is skipped and the location reports as within the region.
func (v *Validator) Validate(loc model.Location, checkRegion bool) *model.ResolvedLocation {
	within := true
	if checkRegion {
		within = v.bounds.OverlapsPoint(geom.XY, geom.Coord{loc.Longitude, loc.Latitude})
		if !within {
			zap.L().Warn("validate: coordinates outside service region",
				zap.String("query", loc.Query),
				zap.Float64("lat", loc.Latitude),
				zap.Float64("lng", loc.Longitude),
			)
		}
	}

	return &model.ResolvedLocation{
		Location:        loc,
		Tier:            TierFor(loc.Confidence),
		WithinRegion:    within,
		Recommendations: recommendationsFor(loc),
		ResolvedAt:      time.Now().UTC(),
	}
}

// TierFor maps a confidence score to its reporting tier.
func TierFor(confidence float64) model.ConfidenceTier {
	switch {
	case confidence >= highTierMin:
		return model.TierHigh
	case confidence >= mediumTierMin:
		return model.TierMedium
	default:
		return model.TierLow
	}
}

// recommendationsFor suggests query refinements for low-confidence results.
func recommendationsFor(loc model.Location) []string {
	if loc.Confidence >= mediumTierMin {
		return nil
	}

	recs := []string{"verify the result on a map before relying on it"}
	if loc.Address.City == "" {
		recs = append(recs, "add a city name to the query")
	}
	if loc.Address.PostalCode == "" {
		recs = append(recs, "add a PIN code to the query")
	}
	recs = append(recs, "add a nearby landmark to the query")
	if loc.Source == model.SourceFuzzy {
		recs = append(recs, "the match needed query relaxation, double-check the spelling")
	}
	return recs
}

// Package geocode provides place search over Mapbox (primary) and Nominatim
// (fallback), restricted to India.
package geocode

import "context"

// Candidate is one place returned by a geocoding provider, reduced to the
// fields the resolution pipeline scores.
type Candidate struct {
	DisplayName string
	Latitude    float64
	Longitude   float64
	// Relevance is the provider's own match quality on a 0..1 scale.
	Relevance  float64
	PlaceTypes []string
	City       string
	State      string
	Country    string
	PostalCode string
}

// Provider searches free-form text and returns ranked candidates. An empty
// candidate list with a nil error means the provider had no match.
type Provider interface {
	// Name identifies the provider in logs and resolution sources.
	Name() string

	// Search geocodes a single query string.
	Search(ctx context.Context, query string) ([]Candidate, error)

	// Available reports whether the provider is configured for use.
	Available() bool
}

// clampUnit forces a provider score into [0, 1]. Nominatim importance can
// exceed 1 for very prominent places.
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

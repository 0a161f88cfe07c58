package model

import "time"

// Source identifies which resolution stage produced a location.
type Source string

const (
	SourcePOICompany    Source = "poi_company"
	SourcePOILandmark   Source = "poi_landmark"
	SourcePOIUniversity Source = "poi_university"
	SourceGazetteer     Source = "database"
	SourcePrimary       Source = "provider_primary"
	SourceSecondary     Source = "provider_secondary"
	SourceFuzzy         Source = "fuzzy"
)

// ConfidenceTier buckets a confidence score for downstream consumers.
type ConfidenceTier string

const (
	TierHigh   ConfidenceTier = "high"
	TierMedium ConfidenceTier = "medium"
	TierLow    ConfidenceTier = "low"
)

// Address holds the optional address components attached to a resolution.
type Address struct {
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

// Location is a resolved coordinate before validation.
type Location struct {
	Query       string  `json:"query"`
	DisplayName string  `json:"display_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Confidence  float64 `json:"confidence"`
	Source      Source  `json:"source"`
	Address     Address `json:"address,omitempty"`
}

// ResolvedLocation is the terminal output of a resolution: the winning
// location plus validation results. It is created once and never mutated.
type ResolvedLocation struct {
	Location
	Tier            ConfidenceTier `json:"tier"`
	WithinRegion    bool           `json:"within_region"`
	Recommendations []string       `json:"recommendations,omitempty"`
	ResolvedAt      time.Time      `json:"resolved_at"`
}

// Options controls optional resolution behavior.
type Options struct {
	// RequireValidation enables the region bounding-box check on the result.
	RequireValidation bool `json:"require_validation"`
	// EnableNLP runs the location extractor alongside parsing and blends its
	// confidence into the final score.
	EnableNLP bool `json:"enable_nlp"`
	// QueryContext is an optional locality hint appended to provider queries.
	QueryContext string `json:"query_context,omitempty"`
}

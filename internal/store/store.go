// Package store persists an audit log of resolution attempts. One row is
// written per attempt, create-once; downstream analysis reads this log.
package store

import (
	"context"
	"time"

	"github.com/NIRMALT04/bunker-locate/internal/model"
	"github.com/NIRMALT04/bunker-locate/internal/resolver"
)

// Status is the terminal outcome of one resolution attempt.
type Status string

const (
	StatusResolved   Status = "resolved"
	StatusNotFound   Status = "not_found"
	StatusParseError Status = "parse_error"
)

// Record is one audit row. Location fields are zero for failed attempts.
type Record struct {
	ID           string        `json:"id"`
	Query        string        `json:"query"`
	Status       Status        `json:"status"`
	DisplayName  string        `json:"display_name,omitempty"`
	Latitude     float64       `json:"latitude,omitempty"`
	Longitude    float64       `json:"longitude,omitempty"`
	Confidence   float64       `json:"confidence,omitempty"`
	Tier         string        `json:"tier,omitempty"`
	Source       string        `json:"source,omitempty"`
	WithinRegion bool          `json:"within_region"`
	Duration     time.Duration `json:"duration"`
	CreatedAt    time.Time     `json:"created_at"`
}

// Store defines the audit log persistence interface.
type Store interface {
	SaveResolution(ctx context.Context, rec Record) (*Record, error)
	Recent(ctx context.Context, limit int) ([]Record, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// NewRecord builds the audit row for one completed attempt. The err, when
// non-nil, must be the resolution failure; loc is ignored in that case.
func NewRecord(query string, loc *model.ResolvedLocation, err error, duration time.Duration) Record {
	rec := Record{
		Query:    query,
		Duration: duration,
	}
	switch {
	case err == nil && loc != nil:
		rec.Status = StatusResolved
		rec.DisplayName = loc.DisplayName
		rec.Latitude = loc.Latitude
		rec.Longitude = loc.Longitude
		rec.Confidence = loc.Confidence
		rec.Tier = string(loc.Tier)
		rec.Source = string(loc.Source)
		rec.WithinRegion = loc.WithinRegion
	case resolver.IsParseError(err):
		rec.Status = StatusParseError
	default:
		rec.Status = StatusNotFound
	}
	return rec
}

// Package registry holds the curated reference data consulted before any
// external provider: known organization campuses, landmarks, university
// grounds, and a gazetteer of Indian cities and towns. A Registry is
// immutable after construction and safe for concurrent use.
package registry

import (
	"sort"
	"strings"
)

// POI is a curated point of interest with known coordinates.
type POI struct {
	Name      string   `json:"name" yaml:"name"`
	City      string   `json:"city,omitempty" yaml:"city,omitempty"`
	State     string   `json:"state,omitempty" yaml:"state,omitempty"`
	Latitude  float64  `json:"latitude" yaml:"latitude"`
	Longitude float64  `json:"longitude" yaml:"longitude"`
	Keywords  []string `json:"keywords,omitempty" yaml:"keywords,omitempty"` // extra match terms beyond the name
}

// Place is a gazetteer entry for a city or town.
type Place struct {
	Name      string   `json:"name" yaml:"name"`
	Aliases   []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	State     string   `json:"state,omitempty" yaml:"state,omitempty"`
	Latitude  float64  `json:"latitude" yaml:"latitude"`
	Longitude float64  `json:"longitude" yaml:"longitude"`
}

// Kind identifies which curated table a POI came from.
type Kind string

const (
	KindCompany    Kind = "company"
	KindLandmark   Kind = "landmark"
	KindUniversity Kind = "university"
)

// Snapshot is the serializable form of the reference data, produced by the
// YAML and XLSX loaders and consumed by New.
type Snapshot struct {
	Companies    []POI    `json:"companies,omitempty" yaml:"companies,omitempty"`
	Landmarks    []POI    `json:"landmarks,omitempty" yaml:"landmarks,omitempty"`
	Universities []POI    `json:"universities,omitempty" yaml:"universities,omitempty"`
	Places       []Place  `json:"places,omitempty" yaml:"places,omitempty"`
	States       []string `json:"states,omitempty" yaml:"states,omitempty"`
}

type poiEntry struct {
	poi   POI
	terms []string // normalized name plus keywords
}

type placeEntry struct {
	place Place
	names []string // normalized canonical name plus aliases
}

type placeRef struct {
	place     Place
	canonical bool
}

// Registry is a lookup-optimized view of a Snapshot. All slices are sorted
// at construction so scans iterate in a stable order.
type Registry struct {
	src          Snapshot
	companies    []poiEntry
	landmarks    []poiEntry
	universities []poiEntry
	places       []placeEntry
	placeIndex   map[string]placeRef
	states       []string // normalized, sorted
	stateNames   map[string]string
}

// New builds a Registry from a snapshot.
func New(s Snapshot) *Registry {
	r := &Registry{
		src:          s,
		companies:    buildPOIEntries(s.Companies),
		landmarks:    buildPOIEntries(s.Landmarks),
		universities: buildPOIEntries(s.Universities),
		placeIndex:   make(map[string]placeRef),
		stateNames:   make(map[string]string),
	}

	places := make([]Place, len(s.Places))
	copy(places, s.Places)
	sort.Slice(places, func(i, j int) bool { return places[i].Name < places[j].Name })
	for _, p := range places {
		entry := placeEntry{place: p, names: []string{Normalize(p.Name)}}
		for _, a := range p.Aliases {
			if n := Normalize(a); n != "" {
				entry.names = append(entry.names, n)
			}
		}
		r.places = append(r.places, entry)
	}

	// Canonical names take precedence over aliases on key collisions.
	for _, e := range r.places {
		key := e.names[0]
		if _, exists := r.placeIndex[key]; !exists {
			r.placeIndex[key] = placeRef{place: e.place, canonical: true}
		}
	}
	for _, e := range r.places {
		for _, key := range e.names[1:] {
			if _, exists := r.placeIndex[key]; !exists {
				r.placeIndex[key] = placeRef{place: e.place}
			}
		}
	}

	for _, st := range s.States {
		n := Normalize(st)
		if n == "" {
			continue
		}
		if _, exists := r.stateNames[n]; !exists {
			r.stateNames[n] = st
			r.states = append(r.states, n)
		}
	}
	sort.Strings(r.states)

	return r
}

// Default builds a Registry from the embedded reference data.
func Default() *Registry {
	return New(defaultSnapshot())
}

// Merge returns a new Registry with the snapshot's entries appended to r's.
// Existing entries are never replaced or removed.
func (r *Registry) Merge(s Snapshot) *Registry {
	combined := Snapshot{
		Companies:    append(append([]POI{}, r.src.Companies...), s.Companies...),
		Landmarks:    append(append([]POI{}, r.src.Landmarks...), s.Landmarks...),
		Universities: append(append([]POI{}, r.src.Universities...), s.Universities...),
		Places:       append(append([]Place{}, r.src.Places...), s.Places...),
		States:       append(append([]string{}, r.src.States...), s.States...),
	}
	return New(combined)
}

func buildPOIEntries(pois []POI) []poiEntry {
	sorted := make([]POI, len(pois))
	copy(sorted, pois)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	entries := make([]poiEntry, 0, len(sorted))
	for _, p := range sorted {
		e := poiEntry{poi: p, terms: []string{Normalize(p.Name)}}
		for _, kw := range p.Keywords {
			if n := Normalize(kw); n != "" {
				e.terms = append(e.terms, n)
			}
		}
		entries = append(entries, e)
	}
	return entries
}

// MatchPOI finds the curated point of interest referenced in normalized text.
// Tables are consulted in priority order (companies, landmarks, universities)
// and the first table with a hit wins. Within a table, the match starting
// earliest in the text wins; position ties go to the longer term, then to
// lexicographic order.
func (r *Registry) MatchPOI(text string) (POI, Kind, bool) {
	for _, tbl := range []struct {
		entries []poiEntry
		kind    Kind
	}{
		{r.companies, KindCompany},
		{r.landmarks, KindLandmark},
		{r.universities, KindUniversity},
	} {
		if poi, ok := bestPOIMatch(tbl.entries, text); ok {
			return poi, tbl.kind, true
		}
	}
	return POI{}, "", false
}

// POIMatch records one point-of-interest occurrence inside a piece of text.
type POIMatch struct {
	POI     POI
	Kind    Kind
	Matched string
	Index   int
}

// FindPOIsIn returns every POI of the given kind mentioned in normalized
// text, each reported once at its earliest occurrence. Results are ordered
// by position, with ties broken by longer match then lexicographic order.
func (r *Registry) FindPOIsIn(text string, kind Kind) []POIMatch {
	var entries []poiEntry
	switch kind {
	case KindCompany:
		entries = r.companies
	case KindLandmark:
		entries = r.landmarks
	case KindUniversity:
		entries = r.universities
	}

	var out []POIMatch
	for _, e := range entries {
		bestIdx := -1
		var bestTerm string
		for _, term := range e.terms {
			idx := indexOfTerm(text, term)
			if idx < 0 {
				continue
			}
			if betterMatch(idx, term, bestIdx, bestTerm) {
				bestIdx, bestTerm = idx, term
			}
		}
		if bestIdx >= 0 {
			out = append(out, POIMatch{POI: e.poi, Kind: kind, Matched: bestTerm, Index: bestIdx})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Index != out[j].Index {
			return out[i].Index < out[j].Index
		}
		if len(out[i].Matched) != len(out[j].Matched) {
			return len(out[i].Matched) > len(out[j].Matched)
		}
		return out[i].Matched < out[j].Matched
	})
	return out
}

func bestPOIMatch(entries []poiEntry, text string) (POI, bool) {
	bestIdx := -1
	var best POI
	var bestTerm string

	for _, e := range entries {
		for _, term := range e.terms {
			idx := indexOfTerm(text, term)
			if idx < 0 {
				continue
			}
			if betterMatch(idx, term, bestIdx, bestTerm) {
				bestIdx, bestTerm, best = idx, term, e.poi
			}
		}
	}
	return best, bestIdx >= 0
}

// betterMatch reports whether (idx, term) beats the current best match under
// the earliest-position, longest-term, lexicographic ordering.
func betterMatch(idx int, term string, bestIdx int, bestTerm string) bool {
	if bestIdx < 0 {
		return true
	}
	if idx != bestIdx {
		return idx < bestIdx
	}
	if len(term) != len(bestTerm) {
		return len(term) > len(bestTerm)
	}
	return term < bestTerm
}

// LookupPlace returns the gazetteer entry whose canonical name or alias
// exactly equals the normalized text. The second return reports whether the
// canonical name matched (as opposed to an alias).
func (r *Registry) LookupPlace(text string) (Place, bool, bool) {
	ref, ok := r.placeIndex[text]
	if !ok {
		return Place{}, false, false
	}
	return ref.place, ref.canonical, true
}

// CityMatch is one gazetteer name found inside a longer text.
type CityMatch struct {
	Place   Place
	Matched string // the name or alias that occurred
	Index   int    // byte offset of the occurrence
}

// FindCitiesIn scans text for gazetteer names and returns all matches,
// ordered by position with longer names first on ties. Each place appears at
// most once, at its earliest occurrence.
func (r *Registry) FindCitiesIn(text string) []CityMatch {
	var matches []CityMatch
	for _, e := range r.places {
		bestIdx := -1
		var bestName string
		for _, name := range e.names {
			idx := indexOfTerm(text, name)
			if idx < 0 {
				continue
			}
			if betterMatch(idx, name, bestIdx, bestName) {
				bestIdx, bestName = idx, name
			}
		}
		if bestIdx >= 0 {
			matches = append(matches, CityMatch{Place: e.place, Matched: bestName, Index: bestIdx})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		if len(a.Matched) != len(b.Matched) {
			return len(a.Matched) > len(b.Matched)
		}
		return a.Matched < b.Matched
	})
	return matches
}

// FindStateIn returns the normalized form of the first state name occurring
// in text.
func (r *Registry) FindStateIn(text string) (string, bool) {
	bestIdx := -1
	var bestTerm string
	for _, st := range r.states {
		idx := indexOfTerm(text, st)
		if idx < 0 {
			continue
		}
		if betterMatch(idx, st, bestIdx, bestTerm) {
			bestIdx, bestTerm = idx, st
		}
	}
	if bestIdx < 0 {
		return "", false
	}
	return bestTerm, true
}

// HasState reports whether the normalized text names a known state exactly.
func (r *Registry) HasState(text string) bool {
	_, ok := r.stateNames[text]
	return ok
}

// CanonicalState returns the canonical casing for a normalized state name.
func (r *Registry) CanonicalState(text string) (string, bool) {
	name, ok := r.stateNames[text]
	return name, ok
}

// Stats reports table sizes for diagnostics.
type Stats struct {
	Companies    int `json:"companies"`
	Landmarks    int `json:"landmarks"`
	Universities int `json:"universities"`
	Places       int `json:"places"`
	States       int `json:"states"`
}

// Stats returns the number of entries in each table.
func (r *Registry) Stats() Stats {
	return Stats{
		Companies:    len(r.companies),
		Landmarks:    len(r.landmarks),
		Universities: len(r.universities),
		Places:       len(r.places),
		States:       len(r.states),
	}
}

// POIName formats a POI's display name with its city and state.
func POIName(p POI) string {
	parts := []string{p.Name}
	if p.City != "" {
		parts = append(parts, p.City)
	}
	if p.State != "" {
		parts = append(parts, p.State)
	}
	parts = append(parts, "India")
	return strings.Join(parts, ", ")
}

// PlaceName formats a gazetteer entry's display name with its state.
func PlaceName(p Place) string {
	parts := []string{p.Name}
	if p.State != "" {
		parts = append(parts, p.State)
	}
	parts = append(parts, "India")
	return strings.Join(parts, ", ")
}

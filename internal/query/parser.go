// Package query turns free-form location text into structured address
// components. Parsing is best effort and never fails: anything the parser
// cannot place into a component is left for the downstream resolution
// stages to handle as free text.
package query

import (
	"regexp"
	"strings"

	"github.com/NIRMALT04/bunker-locate/internal/registry"
)

// StructuredQuery holds the address components recovered from raw input.
// All extracted fields are in normalized (lowercase, accent-folded) form.
// City carries the name as typed; CityCanonical carries the gazetteer name
// for that city, which can differ when the input used an alias.
type StructuredQuery struct {
	Raw           string `json:"raw"`
	Normalized    string `json:"normalized"`
	Building      string `json:"building,omitempty"`
	Locality      string `json:"locality,omitempty"`
	City          string `json:"city,omitempty"`
	CityCanonical string `json:"city_canonical,omitempty"`
	State         string `json:"state,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	Country       string `json:"country"`
}

// HasComponents reports whether parsing recovered anything beyond the
// implied country.
func (q StructuredQuery) HasComponents() bool {
	return q.Building != "" || q.Locality != "" || q.City != "" ||
		q.State != "" || q.PostalCode != ""
}

// ProviderQuery renders the recovered components as a single comma-joined
// address line suitable for a geocoding request. Context, when non-empty,
// is inserted before the country.
func (q StructuredQuery) ProviderQuery(context string) string {
	parts := make([]string, 0, 6)
	for _, p := range []string{q.Building, q.Locality, q.City, q.State, q.PostalCode, context} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	parts = append(parts, strings.ToLower(q.Country))
	return strings.Join(parts, ", ")
}

var (
	buildingRe = regexp.MustCompile(`\b([a-z0-9][a-z0-9&.'-]*(?:\s+[a-z0-9&.'-]+){0,3})\s+(campus|office|headquarters|hq|building|tower|towers|complex|mall|plaza|tech park)\b`)
	pinRe      = regexp.MustCompile(`\b[1-9][0-9]{5}\b`)
	nearRe     = regexp.MustCompile(`\b(?:near|at|in|around|beside|opposite)\s+([a-z0-9][a-z0-9 ]*)`)
)

// fillerWords are tokens that carry no address information. They are
// stripped from the edges of extracted phrases.
var fillerWords = map[string]bool{
	"a": true, "an": true, "the": true, "in": true, "at": true, "on": true,
	"near": true, "around": true, "close": true, "to": true, "of": true,
	"for": true, "from": true, "by": true, "via": true, "me": true,
	"my": true, "is": true, "where": true, "find": true, "show": true,
	"locate": true, "visit": true,
}

// Parser extracts address components from raw text using the curated
// place registry for city and state recognition.
type Parser struct {
	reg *registry.Registry
}

// NewParser returns a Parser backed by reg.
func NewParser(reg *registry.Registry) *Parser {
	return &Parser{reg: reg}
}

// Parse breaks raw input into components. The country is always India;
// every other field is filled only when recognized. Empty or whitespace
// input yields a query with only Raw and Country set.
func (p *Parser) Parse(raw string) StructuredQuery {
	q := StructuredQuery{Raw: raw, Country: "India"}
	q.Normalized = registry.Normalize(raw)
	if q.Normalized == "" {
		return q
	}

	if m := buildingRe.FindStringSubmatch(q.Normalized); m != nil {
		if name := coreName(m[1]); name != "" {
			q.Building = name + " " + m[2]
		}
	}
	if pin := pinRe.FindString(q.Normalized); pin != "" {
		q.PostalCode = pin
	}
	if cities := p.reg.FindCitiesIn(q.Normalized); len(cities) > 0 {
		q.City = cities[0].Matched
		q.CityCanonical = registry.Normalize(cities[0].Place.Name)
	}
	if state, ok := p.reg.FindStateIn(q.Normalized); ok {
		q.State = state
	}
	q.Locality = p.findLocality(q)
	return q
}

// findLocality picks the first comma-separated segment not already claimed
// by another component. Queries without commas fall back to the phrase
// following a proximity word, so that "flat near indiranagar" still yields
// a locality.
func (p *Parser) findLocality(q StructuredQuery) string {
	segments := strings.Split(q.Normalized, ",")
	if len(segments) > 1 {
		for _, seg := range segments {
			seg = trimLeadingFiller(strings.TrimSpace(seg))
			if seg == "" || p.segmentClaimed(seg, q) {
				continue
			}
			return seg
		}
	}
	if m := nearRe.FindStringSubmatch(q.Normalized); m != nil {
		phrase := trimLeadingFiller(strings.TrimSpace(m[1]))
		if phrase != "" && !p.segmentClaimed(phrase, q) {
			return phrase
		}
	}
	return ""
}

// segmentClaimed reports whether seg is already represented by an
// extracted component or by the implied country.
func (p *Parser) segmentClaimed(seg string, q StructuredQuery) bool {
	if seg == "india" {
		return true
	}
	if q.Building != "" && strings.Contains(seg, q.Building) {
		return true
	}
	if q.PostalCode != "" && strings.Contains(seg, q.PostalCode) {
		return true
	}
	if _, _, ok := p.reg.LookupPlace(seg); ok {
		return true
	}
	return p.reg.HasState(seg)
}

// coreName reduces a candidate building name to the tokens after its last
// filler word, so "visit the infosys" becomes "infosys".
func coreName(s string) string {
	tokens := strings.Fields(s)
	start := 0
	for i, tok := range tokens {
		if fillerWords[tok] {
			start = i + 1
		}
	}
	return strings.Join(tokens[start:], " ")
}

// trimLeadingFiller drops filler words from the front of a phrase without
// touching interior ones, keeping names like "gateway of india" intact.
func trimLeadingFiller(s string) string {
	tokens := strings.Fields(s)
	start := 0
	for start < len(tokens) && fillerWords[tokens[start]] {
		start++
	}
	return strings.Join(tokens[start:], " ")
}

// Package resolver orchestrates the staged resolution of free-form location
// text: curated registries first, then the gazetteer, then external
// geocoding providers, then fuzzy retries. The first stage to clear its
// confidence bar wins.
package resolver

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/NIRMALT04/bunker-locate/internal/model"
	"github.com/NIRMALT04/bunker-locate/internal/nlp"
	"github.com/NIRMALT04/bunker-locate/internal/query"
	"github.com/NIRMALT04/bunker-locate/internal/registry"
	"github.com/NIRMALT04/bunker-locate/internal/scorer"
	"github.com/NIRMALT04/bunker-locate/internal/validate"
	"github.com/NIRMALT04/bunker-locate/pkg/geocode"
)

// Stage confidences and acceptance thresholds.
const (
	poiConfidence      = 0.90
	gazetteerCanonical = 1.0
	gazetteerAlias     = 0.95
)

// Thresholds are the per-stage acceptance bars. A stage score must exceed
// its bar strictly for the stage to win.
type Thresholds struct {
	Primary   float64
	Secondary float64
	Fuzzy     float64
}

// DefaultThresholds returns the standard acceptance bars.
func DefaultThresholds() Thresholds {
	return Thresholds{Primary: 0.7, Secondary: 0.6, Fuzzy: 0.5}
}

// Engine runs the resolution stages.
type Engine struct {
	reg        *registry.Registry
	parser     *query.Parser
	extractor  *nlp.Extractor
	validator  *validate.Validator
	primary    geocode.Provider
	secondary  geocode.Provider
	thresholds Thresholds
}

// Option configures the Engine.
type Option func(*Engine)

// WithPrimary sets the structured-query geocoding provider.
func WithPrimary(p geocode.Provider) Option {
	return func(e *Engine) {
		e.primary = p
	}
}

// WithSecondary sets the free-text fallback provider.
func WithSecondary(p geocode.Provider) Option {
	return func(e *Engine) {
		e.secondary = p
	}
}

// WithValidator sets the result validator.
func WithValidator(v *validate.Validator) Option {
	return func(e *Engine) {
		e.validator = v
	}
}

// WithThresholds overrides the stage acceptance bars.
func WithThresholds(t Thresholds) Option {
	return func(e *Engine) {
		e.thresholds = t
	}
}

// New creates an Engine backed by reg. A nil registry falls back to the
// built-in reference data. Without provider options only the offline stages
// run.
func New(reg *registry.Registry, opts ...Option) *Engine {
	if reg == nil {
		reg = registry.Default()
	}
	e := &Engine{
		reg:        reg,
		parser:     query.NewParser(reg),
		extractor:  nlp.NewExtractor(reg),
		validator:  validate.New(nil),
		thresholds: DefaultThresholds(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Resolve turns free-form text into a validated location. It returns a
// Failure with kind parse_error for empty input and kind not_found when
// every stage declines; no provider is contacted in the parse_error case.
func (e *Engine) Resolve(ctx context.Context, text string, opts model.Options) (*model.ResolvedLocation, error) {
	if registry.Normalize(text) == "" {
		return nil, &Failure{Kind: KindParseError, Message: "resolver: empty query"}
	}

	var (
		q          query.StructuredQuery
		extraction *nlp.Result
	)
	if opts.EnableNLP {
		// Parsing and extraction read the same text independently.
		var g errgroup.Group
		g.Go(func() error {
			q = e.parser.Parse(text)
			return nil
		})
		g.Go(func() error {
			res := e.extractor.Extract(text)
			extraction = &res
			return nil
		})
		_ = g.Wait()
	} else {
		q = e.parser.Parse(text)
	}

	loc, ok := e.resolveStages(ctx, q, opts)
	if !ok {
		return nil, e.notFound(text, extraction)
	}

	loc.Query = text
	if extraction != nil {
		loc.Confidence = scorer.Combine(loc.Confidence, extraction.Confidence)
	} else {
		loc.Confidence = scorer.Clamp(loc.Confidence)
	}

	zap.L().Debug("resolver: stage accepted",
		zap.String("query", text),
		zap.String("source", string(loc.Source)),
		zap.Float64("confidence", loc.Confidence),
	)
	return e.validator.Validate(*loc, opts.RequireValidation), nil
}

// Analyze runs only the extraction pass over text.
func (e *Engine) Analyze(text string) nlp.Result {
	return e.extractor.Extract(text)
}

// Parse runs only the structured-query parse over text.
func (e *Engine) Parse(text string) query.StructuredQuery {
	return e.parser.Parse(text)
}

func (e *Engine) resolveStages(ctx context.Context, q query.StructuredQuery, opts model.Options) (*model.Location, bool) {
	if loc, ok := e.fromPOIRegistry(q); ok {
		return loc, true
	}
	if loc, ok := e.fromGazetteer(q); ok {
		return loc, true
	}
	if loc, ok := e.fromPrimary(ctx, q, opts.QueryContext); ok {
		return loc, true
	}
	if loc, ok := e.fromSecondary(ctx, q, opts.QueryContext); ok {
		return loc, true
	}
	if loc, ok := e.fromFuzzy(ctx, q); ok {
		return loc, true
	}
	return nil, false
}

// fromPOIRegistry consults the curated company, landmark, and university
// tables.
func (e *Engine) fromPOIRegistry(q query.StructuredQuery) (*model.Location, bool) {
	poi, kind, ok := e.reg.MatchPOI(q.Normalized)
	if !ok {
		return nil, false
	}

	return &model.Location{
		DisplayName: registry.POIName(poi),
		Latitude:    poi.Latitude,
		Longitude:   poi.Longitude,
		Confidence:  poiConfidence,
		Source:      sourceForKind(kind),
		Address: model.Address{
			City:    poi.City,
			State:   poi.State,
			Country: "India",
		},
	}, true
}

// fromGazetteer looks for an exact place-name match on the whole query or
// on its first comma segment, so a previously resolved display name round
// trips to the same place.
func (e *Engine) fromGazetteer(q query.StructuredQuery) (*model.Location, bool) {
	keys := []string{q.Normalized}
	if head := headSegment(q.Normalized); head != q.Normalized {
		keys = append(keys, head)
	}

	for _, key := range keys {
		place, canonical, ok := e.reg.LookupPlace(key)
		if !ok {
			continue
		}
		conf := gazetteerAlias
		if canonical {
			conf = gazetteerCanonical
		}
		return &model.Location{
			DisplayName: registry.PlaceName(place),
			Latitude:    place.Latitude,
			Longitude:   place.Longitude,
			Confidence:  conf,
			Source:      model.SourceGazetteer,
			Address: model.Address{
				City:    place.Name,
				State:   place.State,
				Country: "India",
			},
		}, true
	}
	return nil, false
}

// fromPrimary sends the structured form of the query to the primary
// provider. The stage declines when the parse recovered nothing beyond the
// country, when the provider is missing or errors, and when no candidate
// clears the bar.
func (e *Engine) fromPrimary(ctx context.Context, q query.StructuredQuery, queryContext string) (*model.Location, bool) {
	if e.primary == nil || !e.primary.Available() {
		return nil, false
	}
	if !q.HasComponents() && queryContext == "" {
		return nil, false
	}

	candidates, err := e.primary.Search(ctx, q.ProviderQuery(registry.Normalize(queryContext)))
	if err != nil {
		zap.L().Debug("resolver: primary provider error, trying next stage",
			zap.String("provider", e.primary.Name()),
			zap.Error(err),
		)
		return nil, false
	}

	best, s, ok := bestCandidate(candidates, q, scorer.ScorePrimary)
	if !ok || s <= e.thresholds.Primary {
		return nil, false
	}
	return locationFromCandidate(best, s, model.SourcePrimary), true
}

// fromSecondary sends the free-text query to the fallback provider.
func (e *Engine) fromSecondary(ctx context.Context, q query.StructuredQuery, queryContext string) (*model.Location, bool) {
	if e.secondary == nil || !e.secondary.Available() {
		return nil, false
	}

	free := q.Normalized
	if qc := registry.Normalize(queryContext); qc != "" {
		free += ", " + qc
	}

	candidates, err := e.secondary.Search(ctx, free)
	if err != nil {
		zap.L().Debug("resolver: secondary provider error, trying next stage",
			zap.String("provider", e.secondary.Name()),
			zap.Error(err),
		)
		return nil, false
	}

	best, s, ok := bestCandidate(candidates, q, scorer.ScoreSecondary)
	if !ok || s <= e.thresholds.Secondary {
		return nil, false
	}
	return locationFromCandidate(best, s, model.SourceSecondary), true
}

// fromFuzzy retries mutated forms of the query against whichever provider
// is on hand, discounting any score earned this way.
func (e *Engine) fromFuzzy(ctx context.Context, q query.StructuredQuery) (*model.Location, bool) {
	provider := e.secondary
	if provider == nil || !provider.Available() {
		provider = e.primary
	}
	if provider == nil || !provider.Available() {
		return nil, false
	}

	for _, variant := range fuzzyVariants(q.Normalized) {
		candidates, err := provider.Search(ctx, variant)
		if err != nil {
			zap.L().Debug("resolver: fuzzy variant error, trying next variant",
				zap.String("provider", provider.Name()),
				zap.String("variant", variant),
				zap.Error(err),
			)
			continue
		}

		vq := e.parser.Parse(variant)
		best, raw, ok := bestCandidate(candidates, vq, scorer.ScoreSecondary)
		if !ok || raw <= e.thresholds.Fuzzy {
			continue
		}
		return locationFromCandidate(best, scorer.ApplyFuzzyPenalty(raw), model.SourceFuzzy), true
	}
	return nil, false
}

// fuzzyVariants lists the query mutations in the order they are tried:
// country suffix, whitespace collapse, first token, text before the first
// comma. Variants equal to the input or to an earlier variant are dropped.
func fuzzyVariants(text string) []string {
	seen := map[string]bool{text: true}
	var out []string
	add := func(v string) {
		v = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(v), ","))
		if v == "" || seen[v] {
			return
		}
		seen[v] = true
		out = append(out, v)
	}

	if text != "india" && !strings.HasSuffix(text, ", india") {
		add(text + ", india")
	}
	add(strings.Join(strings.Fields(text), " "))
	if fields := strings.Fields(text); len(fields) > 1 {
		add(fields[0])
	}
	add(headSegment(text))
	return out
}

func (e *Engine) notFound(text string, extraction *nlp.Result) error {
	suggestions := []string{
		"check the spelling of place names",
		"include a city or district name",
		"add a 6-digit PIN code if you know it",
	}
	if extraction != nil && len(extraction.Suggestions) > 0 {
		suggestions = extraction.Suggestions
	}
	return &Failure{
		Kind:        KindNotFound,
		Message:     fmt.Sprintf("resolver: no location found for %q", text),
		Suggestions: suggestions,
	}
}

// bestCandidate scores every candidate and keeps the first highest scorer,
// so equal scores resolve in provider order.
func bestCandidate(cands []geocode.Candidate, q query.StructuredQuery, scoreFn func(geocode.Candidate, query.StructuredQuery) float64) (geocode.Candidate, float64, bool) {
	bestIdx := -1
	var bestScore float64
	for i, c := range cands {
		if s := scoreFn(c, q); bestIdx < 0 || s > bestScore {
			bestIdx, bestScore = i, s
		}
	}
	if bestIdx < 0 {
		return geocode.Candidate{}, 0, false
	}
	return cands[bestIdx], bestScore, true
}

func locationFromCandidate(c geocode.Candidate, confidence float64, source model.Source) *model.Location {
	country := c.Country
	if country == "" {
		country = "India"
	}
	return &model.Location{
		DisplayName: c.DisplayName,
		Latitude:    c.Latitude,
		Longitude:   c.Longitude,
		Confidence:  confidence,
		Source:      source,
		Address: model.Address{
			City:       c.City,
			State:      c.State,
			Country:    country,
			PostalCode: c.PostalCode,
		},
	}
}

func sourceForKind(kind registry.Kind) model.Source {
	switch kind {
	case registry.KindLandmark:
		return model.SourcePOILandmark
	case registry.KindUniversity:
		return model.SourcePOIUniversity
	default:
		return model.SourcePOICompany
	}
}

// headSegment returns the text before the first comma, trimmed.
func headSegment(s string) string {
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

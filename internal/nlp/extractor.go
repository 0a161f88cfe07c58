package nlp

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/NIRMALT04/bunker-locate/internal/registry"
)

// suggestionThreshold is the overall confidence below which the result
// carries hints for sharpening the query.
const suggestionThreshold = 0.6

var (
	companySuffixRe = regexp.MustCompile(`\b([a-z][a-z&.'-]*(?:\s+[a-z&.'-]+){0,2}\s+(?:technologies|systems|solutions|software|infotech|labs|ltd|limited|corp|inc|pvt))\b`)
	landmarkCueRe   = regexp.MustCompile(`\b((?:[a-z][a-z.'-]*\s+){1,3}(?:temple|fort|palace|gate|bridge|beach|stadium|museum|memorial|minar|masjid|church|lake|garden|gardens))\b`)
	addressCueRe    = regexp.MustCompile(`\b((?:[a-z0-9]+\s+){1,2}(?:street|road|lane|avenue|nagar|layout|colony|cross|main|circle|marg|chowk|enclave|extension))\b`)
	plotCueRe       = regexp.MustCompile(`\b((?:sector|phase|block|plot|flat|door)\s+(?:no\.?\s*)?\d+[a-z]?)\b`)
	pinCodeRe       = regexp.MustCompile(`\b[1-9][0-9]{5}\b`)
	distanceRe      = regexp.MustCompile(`\b\d+(?:\.\d+)?\s*(?:km|kms|kilometers?|kilometres?|meters?|metres?|miles?)\b`)

	locationIntentRe   = regexp.MustCompile(`\b(?:where|location|address\s+of|locate|situated|find)\b`)
	proximityIntentRe  = regexp.MustCompile(`\b(?:near|nearby|close|around|within|next\s+to|beside)\b`)
	directionsIntentRe = regexp.MustCompile(`\b(?:directions?|route|navigate|how\s+to\s+(?:reach|get)|way\s+to)\b`)
)

// Extractor mines normalized text for mentions using the curated registry
// plus cue-word patterns.
type Extractor struct {
	reg *registry.Registry
}

// NewExtractor returns an Extractor backed by reg.
func NewExtractor(reg *registry.Registry) *Extractor {
	return &Extractor{reg: reg}
}

// Extract analyzes raw text. It never fails: text with no recognizable
// signal yields an empty mention list, zero confidence, and suggestions for
// sharpening the query.
func (e *Extractor) Extract(raw string) Result {
	text := registry.Normalize(raw)
	res := Result{Query: raw}

	res.Mentions = e.collectMentions(text)
	best := bestByCategory(res.Mentions)
	res.Confidence = overallConfidence(best)
	res.Intent = detectIntent(text)
	res.Specificity = specificityFor(len(best))
	if res.Confidence < suggestionThreshold {
		res.Suggestions = suggestionsFor(best)
	}
	return res
}

// collectMentions gathers mentions in a fixed category order so repeated
// extractions of the same text produce identical results. Every mention
// carries its category's fixed weight as its confidence, regardless of
// whether the registry or a cue pattern found it. Duplicates within a
// category are dropped.
func (e *Extractor) collectMentions(text string) []Mention {
	if text == "" {
		return nil
	}

	var out []Mention
	seen := make(map[string]bool)
	add := func(cat Category, matched string, idx int) {
		key := string(cat) + "|" + matched
		if matched == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, Mention{
			Text:       matched,
			Category:   cat,
			Confidence: categoryWeights[cat],
			Context:    contextWindow(text, idx, len(matched)),
		})
	}
	addPOIs := func(kind registry.Kind, cat Category) {
		for _, pm := range e.reg.FindPOIsIn(text, kind) {
			add(cat, pm.Matched, pm.Index)
		}
	}
	addPattern := func(re *regexp.Regexp, cat Category) {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			add(cat, text[loc[0]:loc[1]], loc[0])
		}
	}

	addPOIs(registry.KindCompany, CategoryCompany)
	addPattern(companySuffixRe, CategoryCompany)
	addPOIs(registry.KindLandmark, CategoryLandmark)
	addPOIs(registry.KindUniversity, CategoryLandmark)
	addPattern(landmarkCueRe, CategoryLandmark)
	for _, cm := range e.reg.FindCitiesIn(text) {
		add(CategoryCity, cm.Matched, cm.Index)
	}
	addPattern(addressCueRe, CategoryAddress)
	addPattern(plotCueRe, CategoryAddress)
	addPattern(pinCodeRe, CategoryPostalCode)
	addPattern(distanceRe, CategoryDistance)
	return out
}

// bestByCategory records every category with at least one hit, keeping its
// strongest confidence. Zero-weight categories still register, so distance
// mentions count toward specificity.
func bestByCategory(mentions []Mention) map[Category]float64 {
	best := make(map[Category]float64, len(mentions))
	for _, m := range mentions {
		if cur, ok := best[m.Category]; !ok || m.Confidence > cur {
			best[m.Category] = m.Confidence
		}
	}
	return best
}

// overallConfidence is the weighted mean of the best confidence per hit
// category. Categories without hits contribute neither weight nor score, so
// a single strong signal is not diluted by absent ones. The fixed visiting
// order keeps the floating-point sum identical across calls.
func overallConfidence(best map[Category]float64) float64 {
	var num, den float64
	for _, cat := range orderedCategories {
		conf, ok := best[cat]
		if !ok {
			continue
		}
		w := categoryWeights[cat]
		num += w * conf
		den += w
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// detectIntent checks the intent cues in priority order, so a query that
// both asks "where is" and says "near" reads as a location inquiry.
func detectIntent(text string) Intent {
	switch {
	case locationIntentRe.MatchString(text):
		return IntentLocation
	case proximityIntentRe.MatchString(text):
		return IntentProximity
	case directionsIntentRe.MatchString(text):
		return IntentDirections
	default:
		return IntentGeneral
	}
}

func specificityFor(categories int) Specificity {
	switch {
	case categories >= 3:
		return SpecificityHigh
	case categories >= 1:
		return SpecificityMedium
	default:
		return SpecificityLow
	}
}

// suggestionsFor hints at the signals missing from a weak query.
func suggestionsFor(best map[Category]float64) []string {
	var out []string
	if _, ok := best[CategoryCity]; !ok {
		out = append(out, "include a city or district name")
	}
	if _, ok := best[CategoryPostalCode]; !ok {
		out = append(out, "add a 6-digit PIN code if you know it")
	}
	_, company := best[CategoryCompany]
	_, landmark := best[CategoryLandmark]
	if !company && !landmark {
		out = append(out, "mention a nearby landmark or well known business")
	}
	out = append(out, "check the spelling of place names")
	return out
}

// contextWindow returns the matched text with up to 20 bytes of surrounding
// text on each side, expanded to rune boundaries.
func contextWindow(text string, idx, length int) string {
	start := idx - 20
	if start < 0 {
		start = 0
	}
	for start > 0 && !utf8.RuneStart(text[start]) {
		start--
	}
	end := idx + length + 20
	if end > len(text) {
		end = len(text)
	}
	for end < len(text) && !utf8.RuneStart(text[end]) {
		end++
	}
	return strings.TrimSpace(text[start:end])
}

// Package nlp mines free text for location-bearing mentions and grades how
// much geographic signal the text carries.
package nlp

// Category classifies a mention by the kind of geographic signal it carries.
type Category string

const (
	CategoryCompany    Category = "company"
	CategoryLandmark   Category = "landmark"
	CategoryCity       Category = "city"
	CategoryAddress    Category = "address"
	CategoryPostalCode Category = "postal_code"
	CategoryDistance   Category = "distance"
)

// Intent is the coarse purpose behind a query.
type Intent string

const (
	IntentLocation   Intent = "location_inquiry"
	IntentProximity  Intent = "proximity_inquiry"
	IntentDirections Intent = "directions"
	IntentGeneral    Intent = "general"
)

// Specificity grades how many distinct kinds of signal a query carries.
type Specificity string

const (
	SpecificityHigh   Specificity = "high"
	SpecificityMedium Specificity = "medium"
	SpecificityLow    Specificity = "low"
)

// Mention is one extracted reference to a place, business, or address
// component.
type Mention struct {
	Text       string   `json:"text"`
	Category   Category `json:"category"`
	Confidence float64  `json:"confidence"`
	Context    string   `json:"context,omitempty"`
}

// Result is the full extraction outcome for one query.
type Result struct {
	Query       string      `json:"query"`
	Mentions    []Mention   `json:"mentions"`
	Confidence  float64     `json:"confidence"`
	Intent      Intent      `json:"intent"`
	Specificity Specificity `json:"specificity"`
	Suggestions []string    `json:"suggestions,omitempty"`
}

// categoryWeights set both the confidence carried by every mention in a
// category and how much that category contributes to the overall grade.
// Distance mentions inform intent and specificity but carry no weight.
var categoryWeights = map[Category]float64{
	CategoryCompany:    0.30,
	CategoryLandmark:   0.25,
	CategoryCity:       0.20,
	CategoryAddress:    0.10,
	CategoryPostalCode: 0.15,
	CategoryDistance:   0,
}

// orderedCategories fixes the iteration order wherever category weights are
// summed, so identical input always aggregates in the same sequence.
var orderedCategories = []Category{
	CategoryCompany,
	CategoryLandmark,
	CategoryCity,
	CategoryAddress,
	CategoryPostalCode,
	CategoryDistance,
}

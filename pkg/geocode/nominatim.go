package geocode

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const (
	nominatimSearchURL  = "https://nominatim.openstreetmap.org/search"
	nominatimReverseURL = "https://nominatim.openstreetmap.org/reverse"

	defaultUserAgent = "bunker-locate/1.0 (github.com/NIRMALT04/bunker-locate)"
)

// nominatimPlace is one entry in a Nominatim jsonv2 response. Coordinates
// arrive as strings. The error field only appears on reverse lookups that
// found nothing.
type nominatimPlace struct {
	DisplayName string  `json:"display_name"`
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Importance  float64 `json:"importance"`
	Address     struct {
		City     string `json:"city"`
		Town     string `json:"town"`
		Village  string `json:"village"`
		State    string `json:"state"`
		Postcode string `json:"postcode"`
		Country  string `json:"country"`
	} `json:"address"`
	Error string `json:"error"`
}

// candidate converts a place into the provider-neutral form. It fails when
// the coordinate strings do not parse.
func (p nominatimPlace) candidate() (Candidate, bool) {
	lat, latErr := strconv.ParseFloat(p.Lat, 64)
	lon, lonErr := strconv.ParseFloat(p.Lon, 64)
	if latErr != nil || lonErr != nil {
		return Candidate{}, false
	}

	var placeTypes []string
	if p.Category != "" {
		placeTypes = append(placeTypes, p.Category)
	}
	if p.Type != "" && p.Type != p.Category {
		placeTypes = append(placeTypes, p.Type)
	}

	return Candidate{
		DisplayName: p.DisplayName,
		Latitude:    lat,
		Longitude:   lon,
		Relevance:   clampUnit(p.Importance),
		PlaceTypes:  placeTypes,
		City:        firstNonEmpty(p.Address.City, p.Address.Town, p.Address.Village),
		State:       p.Address.State,
		Country:     p.Address.Country,
		PostalCode:  p.Address.Postcode,
	}, true
}

// NominatimOption configures the Nominatim client.
type NominatimOption func(*NominatimClient)

// WithNominatimHTTPClient sets a custom HTTP client.
func WithNominatimHTTPClient(hc *http.Client) NominatimOption {
	return func(c *NominatimClient) {
		c.httpClient = hc
	}
}

// WithNominatimRateLimit sets the requests-per-second rate limit. The public
// endpoint allows at most one request per second.
func WithNominatimRateLimit(rps float64) NominatimOption {
	return func(c *NominatimClient) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithNominatimUserAgent sets the identifying User-Agent the Nominatim usage
// policy requires.
func WithNominatimUserAgent(ua string) NominatimOption {
	return func(c *NominatimClient) {
		c.userAgent = ua
	}
}

// WithNominatimLimit caps how many candidates a search returns.
func WithNominatimLimit(n int) NominatimOption {
	return func(c *NominatimClient) {
		c.limit = n
	}
}

// NominatimClient geocodes via the public OpenStreetMap Nominatim endpoint.
type NominatimClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
	limit      int
}

// NewNominatimClient creates a Nominatim provider.
func NewNominatimClient(opts ...NominatimOption) *NominatimClient {
	c := &NominatimClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(1, 1),
		userAgent:  defaultUserAgent,
		limit:      5,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name implements Provider.
func (c *NominatimClient) Name() string { return "nominatim" }

// Available implements Provider. The public endpoint needs no credentials.
func (c *NominatimClient) Available() bool { return true }

// Search implements Provider.
func (c *NominatimClient) Search(ctx context.Context, query string) ([]Candidate, error) {
	params := url.Values{
		"q":              {query},
		"format":         {"jsonv2"},
		"limit":          {strconv.Itoa(c.limit)},
		"countrycodes":   {"in"},
		"addressdetails": {"1"},
	}

	body, err := c.get(ctx, nominatimSearchURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var places []nominatimPlace
	if err := json.Unmarshal(body, &places); err != nil {
		return nil, eris.Wrap(err, "geocode: nominatim parse response")
	}

	candidates := make([]Candidate, 0, len(places))
	for _, p := range places {
		if cand, ok := p.candidate(); ok {
			candidates = append(candidates, cand)
		}
	}
	return candidates, nil
}

// Reverse looks up the address nearest to a coordinate pair. A nil result
// with a nil error means nothing is mapped there.
func (c *NominatimClient) Reverse(ctx context.Context, lat, lon float64) (*Candidate, error) {
	params := url.Values{
		"lat":            {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":            {strconv.FormatFloat(lon, 'f', -1, 64)},
		"format":         {"jsonv2"},
		"addressdetails": {"1"},
	}

	body, err := c.get(ctx, nominatimReverseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var place nominatimPlace
	if err := json.Unmarshal(body, &place); err != nil {
		return nil, eris.Wrap(err, "geocode: nominatim parse reverse response")
	}
	if place.Error != "" || place.DisplayName == "" {
		return nil, nil
	}

	cand, ok := place.candidate()
	if !ok {
		return nil, eris.Errorf("geocode: nominatim reverse returned bad coordinates %q,%q", place.Lat, place.Lon)
	}
	return &cand, nil
}

func (c *NominatimClient) get(ctx context.Context, reqURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "geocode: nominatim rate limit")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: nominatim build request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: nominatim request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("geocode: nominatim returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: nominatim read body")
	}
	return body, nil
}

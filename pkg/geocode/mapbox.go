package geocode

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const mapboxGeocodeURL = "https://api.mapbox.com/geocoding/v5/mapbox.places"

// mapboxResponse is the JSON response from the Mapbox Geocoding API.
type mapboxResponse struct {
	Features []mapboxFeature `json:"features"`
}

type mapboxFeature struct {
	PlaceName string    `json:"place_name"`
	PlaceType []string  `json:"place_type"`
	Relevance float64   `json:"relevance"`
	Center    []float64 `json:"center"` // [longitude, latitude]
	Context   []struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"context"`
}

// MapboxOption configures the Mapbox client.
type MapboxOption func(*MapboxClient)

// WithMapboxHTTPClient sets a custom HTTP client.
func WithMapboxHTTPClient(hc *http.Client) MapboxOption {
	return func(c *MapboxClient) {
		c.httpClient = hc
	}
}

// WithMapboxRateLimit sets the requests-per-second rate limit.
func WithMapboxRateLimit(rps float64) MapboxOption {
	return func(c *MapboxClient) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), int(rps))
	}
}

// WithMapboxLimit caps how many candidates a search returns.
func WithMapboxLimit(n int) MapboxOption {
	return func(c *MapboxClient) {
		c.limit = n
	}
}

// MapboxClient geocodes via the Mapbox places API.
type MapboxClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	token      string
	limit      int
}

// NewMapboxClient creates a Mapbox provider with the given access token. An
// empty token leaves the provider unavailable.
func NewMapboxClient(token string, opts ...MapboxOption) *MapboxClient {
	c := &MapboxClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(10, 10),
		token:      token,
		limit:      5,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name implements Provider.
func (c *MapboxClient) Name() string { return "mapbox" }

// Available implements Provider.
func (c *MapboxClient) Available() bool { return c.token != "" }

// Search implements Provider.
func (c *MapboxClient) Search(ctx context.Context, query string) ([]Candidate, error) {
	if c.token == "" {
		return nil, eris.New("geocode: mapbox token not configured")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "geocode: mapbox rate limit")
	}

	params := url.Values{
		"access_token": {c.token},
		"country":      {"in"},
		"limit":        {strconv.Itoa(c.limit)},
	}

	reqURL := mapboxGeocodeURL + "/" + url.PathEscape(query) + ".json?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: mapbox build request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: mapbox request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("geocode: mapbox returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: mapbox read body")
	}

	var mapboxResp mapboxResponse
	if err := json.Unmarshal(body, &mapboxResp); err != nil {
		return nil, eris.Wrap(err, "geocode: mapbox parse response")
	}

	candidates := make([]Candidate, 0, len(mapboxResp.Features))
	for _, f := range mapboxResp.Features {
		if len(f.Center) < 2 {
			continue
		}
		cand := Candidate{
			DisplayName: f.PlaceName,
			Longitude:   f.Center[0],
			Latitude:    f.Center[1],
			Relevance:   clampUnit(f.Relevance),
			PlaceTypes:  f.PlaceType,
		}
		for _, cx := range f.Context {
			switch {
			case strings.HasPrefix(cx.ID, "place."):
				cand.City = cx.Text
			case strings.HasPrefix(cx.ID, "region."):
				cand.State = cx.Text
			case strings.HasPrefix(cx.ID, "postcode."):
				cand.PostalCode = cx.Text
			case strings.HasPrefix(cx.ID, "country."):
				cand.Country = cx.Text
			}
		}
		candidates = append(candidates, cand)
	}
	return candidates, nil
}

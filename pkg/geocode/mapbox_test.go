package geocode

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapboxSearch_Match(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"features": [{
				"place_name": "Microsoft Corporation, Bengaluru, Karnataka, India",
				"place_type": ["poi"],
				"relevance": 0.96,
				"center": [77.5946, 12.9716],
				"context": [
					{"id": "place.42", "text": "Bengaluru"},
					{"id": "region.7", "text": "Karnataka"},
					{"id": "postcode.3", "text": "560001"},
					{"id": "country.1", "text": "India"}
				]
			}]
		}`)
	}))
	defer srv.Close()

	c := &MapboxClient{
		httpClient: newRewriteClient(srv.URL, mapboxGeocodeURL),
		limiter:    newTestLimiter(),
		token:      "test-token",
		limit:      5,
	}

	candidates, err := c.Search(context.Background(), "microsoft campus, bangalore, india")
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	cand := candidates[0]
	assert.Equal(t, "Microsoft Corporation, Bengaluru, Karnataka, India", cand.DisplayName)
	assert.InDelta(t, 12.9716, cand.Latitude, 0.0001)
	assert.InDelta(t, 77.5946, cand.Longitude, 0.0001)
	assert.InDelta(t, 0.96, cand.Relevance, 0.0001)
	assert.Equal(t, []string{"poi"}, cand.PlaceTypes)
	assert.Equal(t, "Bengaluru", cand.City)
	assert.Equal(t, "Karnataka", cand.State)
	assert.Equal(t, "560001", cand.PostalCode)
	assert.Equal(t, "India", cand.Country)

	assert.Equal(t, "/microsoft campus, bangalore, india.json", gotPath)
	assert.Equal(t, []string{"test-token"}, gotQuery["access_token"])
	assert.Equal(t, []string{"in"}, gotQuery["country"])
	assert.Equal(t, []string{"5"}, gotQuery["limit"])
}

func TestMapboxSearch_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"features": []}`)
	}))
	defer srv.Close()

	c := &MapboxClient{
		httpClient: newRewriteClient(srv.URL, mapboxGeocodeURL),
		limiter:    newTestLimiter(),
		token:      "test-token",
		limit:      5,
	}

	candidates, err := c.Search(context.Background(), "xyznotaplace12345")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestMapboxSearch_SkipsMalformedCenter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"features": [
				{"place_name": "Broken", "relevance": 0.9, "center": []},
				{"place_name": "Chennai, Tamil Nadu, India", "place_type": ["place"], "relevance": 0.8, "center": [80.2707, 13.0827]}
			]
		}`)
	}))
	defer srv.Close()

	c := &MapboxClient{
		httpClient: newRewriteClient(srv.URL, mapboxGeocodeURL),
		limiter:    newTestLimiter(),
		token:      "test-token",
		limit:      5,
	}

	candidates, err := c.Search(context.Background(), "chennai")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Chennai, Tamil Nadu, India", candidates[0].DisplayName)
}

func TestMapboxSearch_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := &MapboxClient{
		httpClient: newRewriteClient(srv.URL, mapboxGeocodeURL),
		limiter:    newTestLimiter(),
		token:      "bad-token",
		limit:      5,
	}

	_, err := c.Search(context.Background(), "chennai")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestMapboxSearch_NoToken(t *testing.T) {
	c := NewMapboxClient("")

	assert.False(t, c.Available())

	_, err := c.Search(context.Background(), "chennai")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestNewMapboxClient_Options(t *testing.T) {
	hc := &http.Client{}
	c := NewMapboxClient("tok", WithMapboxHTTPClient(hc), WithMapboxLimit(3))

	assert.True(t, c.Available())
	assert.Same(t, hc, c.httpClient)
	assert.Equal(t, 3, c.limit)
}

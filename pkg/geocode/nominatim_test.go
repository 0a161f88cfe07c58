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

func TestNominatimSearch_Match(t *testing.T) {
	var gotAgent string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{
			"display_name": "Chennai, Chennai District, Tamil Nadu, India",
			"lat": "13.0827",
			"lon": "80.2707",
			"category": "boundary",
			"type": "administrative",
			"importance": 0.73,
			"address": {
				"city": "Chennai",
				"state": "Tamil Nadu",
				"postcode": "600001",
				"country": "India"
			}
		}]`)
	}))
	defer srv.Close()

	c := &NominatimClient{
		httpClient: newRewriteClient(srv.URL, nominatimSearchURL),
		limiter:    newTestLimiter(),
		userAgent:  "test-agent/1.0",
		limit:      5,
	}

	candidates, err := c.Search(context.Background(), "chennai")
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	cand := candidates[0]
	assert.Equal(t, "Chennai, Chennai District, Tamil Nadu, India", cand.DisplayName)
	assert.InDelta(t, 13.0827, cand.Latitude, 0.0001)
	assert.InDelta(t, 80.2707, cand.Longitude, 0.0001)
	assert.InDelta(t, 0.73, cand.Relevance, 0.0001)
	assert.Equal(t, []string{"boundary", "administrative"}, cand.PlaceTypes)
	assert.Equal(t, "Chennai", cand.City)
	assert.Equal(t, "Tamil Nadu", cand.State)
	assert.Equal(t, "600001", cand.PostalCode)
	assert.Equal(t, "India", cand.Country)

	assert.Equal(t, "test-agent/1.0", gotAgent)
	assert.Equal(t, []string{"chennai"}, gotQuery["q"])
	assert.Equal(t, []string{"jsonv2"}, gotQuery["format"])
	assert.Equal(t, []string{"in"}, gotQuery["countrycodes"])
	assert.Equal(t, []string{"1"}, gotQuery["addressdetails"])
}

func TestNominatimSearch_TownFallsBackToCity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{
			"display_name": "Tiruvallur, Tamil Nadu, India",
			"lat": "13.1439",
			"lon": "79.9094",
			"importance": 0.41,
			"address": {"town": "Tiruvallur", "state": "Tamil Nadu", "country": "India"}
		}]`)
	}))
	defer srv.Close()

	c := &NominatimClient{
		httpClient: newRewriteClient(srv.URL, nominatimSearchURL),
		limiter:    newTestLimiter(),
		userAgent:  defaultUserAgent,
		limit:      5,
	}

	candidates, err := c.Search(context.Background(), "tiruvallur")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Tiruvallur", candidates[0].City)
}

func TestNominatimSearch_SkipsUnparsableCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[
			{"display_name": "Broken", "lat": "not-a-number", "lon": "80.1"},
			{"display_name": "Pune, Maharashtra, India", "lat": "18.5204", "lon": "73.8567", "importance": 0.6}
		]`)
	}))
	defer srv.Close()

	c := &NominatimClient{
		httpClient: newRewriteClient(srv.URL, nominatimSearchURL),
		limiter:    newTestLimiter(),
		userAgent:  defaultUserAgent,
		limit:      5,
	}

	candidates, err := c.Search(context.Background(), "pune")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Pune, Maharashtra, India", candidates[0].DisplayName)
}

func TestNominatimSearch_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	c := &NominatimClient{
		httpClient: newRewriteClient(srv.URL, nominatimSearchURL),
		limiter:    newTestLimiter(),
		userAgent:  defaultUserAgent,
		limit:      5,
	}

	candidates, err := c.Search(context.Background(), "xyznotaplace12345")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestNominatimSearch_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := &NominatimClient{
		httpClient: newRewriteClient(srv.URL, nominatimSearchURL),
		limiter:    newTestLimiter(),
		userAgent:  defaultUserAgent,
		limit:      5,
	}

	_, err := c.Search(context.Background(), "chennai")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestNominatimReverse_Match(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "12.9716", r.URL.Query().Get("lat"))
		assert.Equal(t, "77.5946", r.URL.Query().Get("lon"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"display_name": "MG Road, Bengaluru, Karnataka, 560001, India",
			"lat": "12.9750",
			"lon": "77.6060",
			"category": "highway",
			"type": "primary",
			"address": {"city": "Bengaluru", "state": "Karnataka", "postcode": "560001", "country": "India"}
		}`)
	}))
	defer srv.Close()

	c := &NominatimClient{
		httpClient: newRewriteClient(srv.URL, nominatimReverseURL),
		limiter:    newTestLimiter(),
		userAgent:  defaultUserAgent,
		limit:      5,
	}

	cand, err := c.Reverse(context.Background(), 12.9716, 77.5946)
	require.NoError(t, err)
	require.NotNil(t, cand)
	assert.Equal(t, "MG Road, Bengaluru, Karnataka, 560001, India", cand.DisplayName)
	assert.Equal(t, "Bengaluru", cand.City)
}

func TestNominatimReverse_NothingMapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"error": "Unable to geocode"}`)
	}))
	defer srv.Close()

	c := &NominatimClient{
		httpClient: newRewriteClient(srv.URL, nominatimReverseURL),
		limiter:    newTestLimiter(),
		userAgent:  defaultUserAgent,
		limit:      5,
	}

	cand, err := c.Reverse(context.Background(), 0.01, 0.01)
	require.NoError(t, err)
	assert.Nil(t, cand)
}

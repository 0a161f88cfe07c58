package geocode

import (
	"net/http"
	"strings"

	"golang.org/x/time/rate"
)

// newTestLimiter returns a limiter that never blocks.
func newTestLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Inf, 1)
}

// newRewriteClient returns an HTTP client that redirects every request whose
// URL starts with prefix to a local test server, keeping the rest of the URL
// intact. Clients can then be exercised against httptest servers without
// changing their endpoint constants.
func newRewriteClient(testServerURL, prefix string) *http.Client {
	return &http.Client{
		Transport: &rewriteTransport{
			upstream:  http.DefaultTransport,
			serverURL: testServerURL,
			prefix:    prefix,
		},
	}
}

type rewriteTransport struct {
	upstream  http.RoundTripper
	serverURL string
	prefix    string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	origURL := req.URL.String()
	if !strings.HasPrefix(origURL, t.prefix) {
		return t.upstream.RoundTrip(req)
	}

	rewritten, err := req.URL.Parse(t.serverURL + origURL[len(t.prefix):])
	if err != nil {
		return nil, err
	}
	cloned := req.Clone(req.Context())
	cloned.URL = rewritten
	cloned.Host = rewritten.Host
	return t.upstream.RoundTrip(cloned)
}

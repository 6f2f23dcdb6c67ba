package xivapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"xivapi-go/internal/adapters/metrics"
	api "xivapi-go/xivapi"
)

// NewHTTPClient returns the client handed to api.WithHTTPClient: a timeout
// plus request metrics.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: NewMetricsRoundTripper(http.DefaultTransport),
	}
}

type MetricsRoundTripper struct {
	Proxied http.RoundTripper
}

func NewMetricsRoundTripper(proxied http.RoundTripper) *MetricsRoundTripper {
	if proxied == nil {
		proxied = http.DefaultTransport
	}
	return &MetricsRoundTripper{Proxied: proxied}
}

func (mrt *MetricsRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := mrt.Proxied.RoundTrip(req)
	duration := time.Since(start).Seconds()

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}

	endpoint := endpointFromPath(req.URL.Path)
	metrics.XivapiRequestDuration.WithLabelValues(endpoint, status).Observe(duration)
	metrics.XivapiRequests.WithLabelValues(endpoint, status).Inc()

	return resp, err
}

func endpointFromPath(path string) string {
	switch {
	case strings.HasSuffix(path, "/character/search"):
		return api.EndpointCharacterSearch
	case strings.Contains(path, "/character/"):
		return api.EndpointCharacter
	case strings.HasSuffix(path, "/freecompany/search"):
		return api.EndpointFreeCompanySearch
	case strings.Contains(path, "/freecompany/"):
		return api.EndpointFreeCompany
	default:
		return "unknown"
	}
}

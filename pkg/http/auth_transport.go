package http

import "net/http"

// headerTransport sets a header on every outbound request unless the caller already did
type headerTransport struct {
	name      string
	value     string
	transport http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.value == "" || req.Header.Get(t.name) != "" {
		return t.transport.RoundTrip(req)
	}

	reqCopy := req.Clone(req.Context())
	reqCopy.Header.Set(t.name, t.value)

	return t.transport.RoundTrip(reqCopy)
}

// WithAuthToken sends "Authorization: Bearer <token>". An empty token adds nothing,
// so a local model server without auth keeps working.
func WithAuthToken(token string) HttpOpts {
	if token == "" {
		return WithHeaderValue("Authorization", "")
	}
	return WithHeaderValue("Authorization", "Bearer "+token)
}

// WithUserAgent identifies the service to the model server
func WithUserAgent(agent string) HttpOpts {
	return WithHeaderValue("User-Agent", agent)
}

// WithHeaderValue sets a fixed header on every request
func WithHeaderValue(name, value string) HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &headerTransport{
			name:      name,
			value:     value,
			transport: rt,
		}
	})
}

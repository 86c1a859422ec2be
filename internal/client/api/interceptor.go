package api

import (
	"net/http"

	"github.com/dmitrijs2005/finkeeper/internal/logging"
	"github.com/google/uuid"
)

// taggingTransport is the outbound interceptor: it stamps every request
// with a request ID and logs method+path. It never alters request
// semantics; transport failures pass through unchanged.
type taggingTransport struct {
	next http.RoundTripper
	log  logging.Logger
}

func (t *taggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Per RoundTripper contract the request must not be mutated in place.
	tagged := req.Clone(req.Context())
	tagged.Header.Set("X-Request-ID", uuid.NewString())

	t.log.Debug(req.Context(), "api request", "method", req.Method, "path", req.URL.Path)

	return t.next.RoundTrip(tagged)
}

package isolation

import (
	"io"
	"net/http"
	"sync/atomic"
)

// body of responses to blocked requests
const blockedBody = "Invalid resource access"

// A Middleware is a resource-isolation middleware.
// Call its [*Middleware.Wrap] method to apply it to a [http.Handler].
//
// The zero value is ready to use and enforces the default
// resource-isolation policy (see the package documentation),
// without any exemptions. To exempt some endpoints, call [NewMiddleware]
// and pass it a valid [Config].
//
// A Middleware must not be copied after first use.
//
// Middleware are safe for concurrent use by multiple goroutines.
// In particular, a Middleware can be reconfigured via its
// [*Middleware.Reconfigure] method even as it's concurrently processing
// requests.
type Middleware struct {
	icfg atomic.Pointer[internalConfig] // nil => no exemptions
}

// NewMiddleware creates a resource-isolation middleware that behaves in
// accordance with cfg.
// If cfg is invalid, it returns a nil [*Middleware] and some non-nil error.
// Otherwise, it returns a pointer to a [Middleware] and a nil error.
//
// Mutating the fields of cfg after NewMiddleware has returned a functioning
// middleware does not alter the latter's behavior.
// However, you can reconfigure a [Middleware] via its
// [*Middleware.Reconfigure] method.
//
// If you need to programmatically handle the configuration errors constitutive
// of the resulting error, rely on package
// [github.com/jub0bs/isolation/cfgerrors].
func NewMiddleware(cfg Config) (*Middleware, error) {
	icfg, err := newInternalConfig(&cfg)
	if err != nil {
		return nil, err
	}
	var m Middleware
	m.icfg.Store(icfg)
	return &m, nil
}

// Config returns a pointer to a deep copy of m's current configuration;
// if m is a zero-value Middleware or was last reconfigured with a nil
// configuration, it returns nil.
// The result may differ from the [Config] with which m was created or last
// reconfigured, but the following statement is guaranteed to be a no-op
// (albeit a relatively expensive one):
//
//	m.Reconfigure(m.Config())
func (m *Middleware) Config() *Config {
	return newConfig(m.icfg.Load())
}

// Reconfigure reconfigures m in accordance with cfg.
// If cfg is nil, it reverts m to the default configuration.
// If *cfg is invalid, it leaves m unchanged and returns some non-nil error.
// Otherwise, it successfully reconfigures m and returns a nil error.
//
// You can safely reconfigure a middleware
// even as it's concurrently processing requests.
//
// Mutating the fields of cfg after Reconfigure has returned does not alter
// m's behavior.
//
// If you need to programmatically handle the configuration errors constitutive
// of the resulting error, rely on package
// [github.com/jub0bs/isolation/cfgerrors].
func (m *Middleware) Reconfigure(cfg *Config) error {
	icfg, err := newInternalConfig(cfg)
	if err != nil {
		return err
	}
	m.icfg.Store(icfg)
	return nil
}

// Wrap applies the resource-isolation middleware to the specified handler.
//
// Responses to allowed requests are left entirely to h;
// the middleware neither sets nor alters any response header.
// Responses to blocked requests carry status code 403 and body
// "Invalid resource access"; h is then not invoked.
// Panics in h are not recovered.
func (m *Middleware) Wrap(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if icfg := m.icfg.Load(); icfg != nil && icfg.isExempt(r.URL.Path) {
			h.ServeHTTP(w, r)
			return
		}
		if Decide(SignalsFrom(r)) == Allow {
			h.ServeHTTP(w, r)
			return
		}
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, blockedBody)
	})
}

package isolation

import (
	"errors"

	"github.com/jub0bs/isolation/cfgerrors"
	"github.com/jub0bs/isolation/internal/util"
)

// A Config configures a Middleware.
// The zero value corresponds to the default resource-isolation policy,
// which exempts no endpoints.
//
// # ExemptPaths
//
// ExemptPaths lists the request paths (as exposed by [net/url.URL.Path])
// that a middleware lets through regardless of the Fetch Metadata
// request headers. Matching is exact and case-sensitive:
//
//	ExemptPaths: []string{
//	  "/webhooks/github",
//	  "/oauth/callback",
//	},
//
// Security considerations: exempt endpoints are exposed to cross-site
// requests, including CSRF attempts; you should only list endpoints that are
// designed to be reached cross-site and that perform their own
// request authentication (e.g. webhook signatures, OAuth state parameters).
//
// Every exempt path must start with a slash;
// query strings, fragments, spaces, and ASCII control characters are
// prohibited:
//
//	/webhooks/github   // permitted
//	webhooks/github    // prohibited (no leading slash)
//	/search?q=whatever // prohibited (query)
//	/index.html#top    // prohibited (fragment)
//
// Duplicate paths are tolerated and collapsed.
type Config struct {
	// Precludes comparability, unkeyed struct literals, and conversion to and
	// from third-party types.
	_ [0]func()

	ExemptPaths []string
}

type internalConfig struct {
	exemptPaths util.SortedSet
}

func newInternalConfig(cfg *Config) (*internalConfig, error) {
	if cfg == nil {
		return nil, nil
	}
	var icfg internalConfig
	// Accumulate errors in a slice so as to call errors.Join at most once.
	errs := icfg.validateExemptPaths(nil, cfg.ExemptPaths)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &icfg, nil
}

func (icfg *internalConfig) validateExemptPaths(errs []error, paths []string) []error {
	for _, p := range paths {
		if !util.IsValidPath(p) {
			err := &cfgerrors.UnacceptablePathError{
				Value:  p,
				Reason: "invalid",
			}
			errs = append(errs, err)
			continue
		}
		icfg.exemptPaths.Add(p)
	}
	return errs
}

// isExempt reports whether requests to path bypass the policy.
func (icfg *internalConfig) isExempt(path string) bool {
	return icfg.exemptPaths.Size() > 0 && icfg.exemptPaths.Contains(path)
}

func newConfig(icfg *internalConfig) *Config {
	if icfg == nil {
		return nil
	}
	// Note: do not hold (in cfg) any references to mutable fields of icfg;
	// use defensive copying if required.
	var cfg Config
	if icfg.exemptPaths.Size() > 0 {
		cfg.ExemptPaths = icfg.exemptPaths.ToSlice()
	}
	return &cfg
}

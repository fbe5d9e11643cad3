package headers

import "net/http"

// header names in canonical format
const (
	SecFetchSite = "Sec-Fetch-Site"
	SecFetchMode = "Sec-Fetch-Mode"
)

// values of the Sec-Fetch-Site header;
// see https://w3c.github.io/webappsec-fetch-metadata/#sec-fetch-site-header
const (
	SiteNone       = "none"
	SiteSameSite   = "same-site"
	SiteSameOrigin = "same-origin"
	SiteCrossSite  = "cross-site"
)

// values of the Sec-Fetch-Mode header;
// see https://w3c.github.io/webappsec-fetch-metadata/#sec-fetch-mode-header
const (
	ModeNavigate   = "navigate"
	ModeCORS       = "cors"
	ModeNoCORS     = "no-cors"
	ModeSameOrigin = "same-origin"
	ModeWebSocket  = "websocket"
)

// First, if k is present in hdrs with at least one value,
// returns the first value associated to k in hdrs and true;
// otherwise, First returns "", false.
// Precondition: k is in canonical format (see [http.CanonicalHeaderKey]).
//
// Contrary to [http.Header.Get], First lets callers distinguish
// a header sent with an empty value from an absent header.
func First(hdrs http.Header, k string) (string, bool) {
	v, found := hdrs[k]
	if !found || len(v) == 0 {
		return "", false
	}
	return v[0], true
}

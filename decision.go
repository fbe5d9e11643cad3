package isolation

import (
	"net/http"

	"github.com/jub0bs/isolation/internal/headers"
)

// A Decision is the outcome of the resource-isolation policy for a request.
type Decision uint8

const (
	Allow Decision = iota // the request is handed to the wrapped handler
	Block                 // the request is rejected with a 403 response
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Block:
		return "block"
	default:
		return "unknown"
	}
}

// Signals holds the parts of a request that the resource-isolation policy
// depends on. Because a header sent with an empty value must not be mistaken
// for an absent header, presence is recorded separately from value.
type Signals struct {
	Site        string // value of the Sec-Fetch-Site header
	SitePresent bool
	Mode        string // value of the Sec-Fetch-Mode header
	ModePresent bool
	Method      string
}

// SignalsFrom extracts the policy signals from r.
// Only the first field line of each Fetch Metadata header is considered.
func SignalsFrom(r *http.Request) Signals {
	var s Signals
	s.Site, s.SitePresent = headers.First(r.Header, headers.SecFetchSite)
	s.Mode, s.ModePresent = headers.First(r.Header, headers.SecFetchMode)
	s.Method = r.Method
	return s
}

// Decide applies the resource-isolation policy to s.
// It is a pure function: it never fails and
// its result depends on nothing but s.
func Decide(s Signals) Decision {
	// Browsers that don't support Fetch Metadata send neither header;
	// we fail open for them.
	if !s.SitePresent || !s.ModePresent {
		return Allow
	}
	switch s.Site {
	case headers.SiteNone, headers.SiteSameSite, headers.SiteSameOrigin:
		return Allow
	}
	// simple top-level navigations from anywhere
	if s.Mode == headers.ModeNavigate && s.Method == http.MethodGet {
		return Allow
	}
	return Block
}

package isolation_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync/atomic"
	"testing"

	"github.com/jub0bs/isolation"
)

const (
	headerSecFetchSite = "Sec-Fetch-Site"
	headerSecFetchMode = "Sec-Fetch-Mode"
	headerSecFetchDest = "Sec-Fetch-Dest"
	headerVary         = "Vary"
	headerContentType  = "Content-Type"
)

const blockedBody = "Invalid resource access"

type MiddlewareTestCase struct {
	desc       string
	newHandler func() http.Handler
	cfg        *isolation.Config
	cases      []ReqTestCase
}

type ReqTestCase struct {
	desc string
	// request
	reqMethod  string
	reqPath    string
	reqHeaders http.Header
	// expectations
	blocked bool
}

func newRequest(method, path string, headers http.Header) *http.Request {
	const dummyOrigin = "https://example.com"
	if path == "" {
		path = "/whatever"
	}
	req := httptest.NewRequest(method, dummyOrigin+path, nil)
	for name, values := range headers {
		req.Header[name] = slices.Clone(values)
	}
	return req
}

type spyHandler struct {
	called      atomic.Bool
	statusCode  int
	respHeaders http.Header
	body        string
	handler     http.Handler
}

func newSpyHandler(statusCode int, respHeaders http.Header, body string) func() http.Handler {
	f := func() http.Handler {
		h := func(w http.ResponseWriter, r *http.Request) {
			for k, vs := range respHeaders {
				for _, v := range vs {
					w.Header().Add(k, v)
				}
			}
			w.WriteHeader(statusCode)
			if len(body) > 0 {
				io.WriteString(w, body)
			}
		}
		return &spyHandler{
			statusCode:  statusCode,
			respHeaders: respHeaders,
			body:        body,
			handler:     http.HandlerFunc(h),
		}
	}
	return f
}

func (s *spyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.called.Store(true)
	s.handler.ServeHTTP(w, r)
}

// note: this function mutates got (to ease subsequent assertions)
func assertResponseHeaders(t *testing.T, got http.Header, want http.Header) {
	t.Helper()
	for k, vs := range want {
		for _, v := range vs {
			if !deleteHeaderValue(got, k, v) {
				t.Errorf(`missing header value "%s: %s"`, k, v)
			}
		}
		// clean up: remove headers whose values are empty but non-nil
		if vs, found := got[k]; found && len(vs) == 0 {
			delete(got, k)
		}
	}
}

func assertNoMoreResponseHeaders(t *testing.T, left http.Header) {
	t.Helper()
	for k, v := range left {
		t.Errorf("unexpected header value(s) %q: %q", k, v)
	}
}

func assertBody(t *testing.T, body io.ReadCloser, want string) {
	t.Helper()
	var buf bytes.Buffer
	_, err := io.Copy(&buf, body)
	if got := buf.String(); err != nil || got != want {
		t.Errorf("got body %q; want body %q", got, want)
	}
}

// deleteHeaderValue reports whether h contains a header named key
// that contains value.
// If that's the case, the key-value pair in question is removed from h.
func deleteHeaderValue(h http.Header, key, value string) bool {
	vs, ok := h[key]
	if !ok {
		return false
	}
	i := slices.Index(vs, value)
	if i == -1 {
		return false
	}
	h[key] = slices.Delete(vs, i, i+1)
	return true
}

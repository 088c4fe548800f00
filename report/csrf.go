package report

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"golang.org/x/net/publicsuffix"
)

// CSRFCookieName is the cookie the platform stores its CSRF token in.
const CSRFCookieName = "csrftoken"

// TokenSource supplies the CSRF token attached to save requests. A
// missing token is reported as an empty string, never an error; the
// token is opaque to the client.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed CSRF token.
type StaticToken string

// Token implements TokenSource.
func (s StaticToken) Token() string {
	return string(s)
}

// CookieToken reads the CSRF token from a cookie jar, mirroring how
// the embedding pages read the csrftoken cookie.
type CookieToken struct {
	Jar http.CookieJar
	URL *url.URL
	// Name overrides the cookie name. Defaults to CSRFCookieName.
	Name string
}

// Token implements TokenSource. It returns an empty string when the
// jar holds no matching cookie for the URL.
func (c CookieToken) Token() string {
	if c.Jar == nil || c.URL == nil {
		return ""
	}
	name := c.Name
	if name == "" {
		name = CSRFCookieName
	}
	for _, cookie := range c.Jar.Cookies(c.URL) {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

// Chain tries each source in order and returns the first non-empty
// token. It models the cookie-then-meta-tag fallback of the embedding
// pages.
type Chain []TokenSource

// Token implements TokenSource.
func (c Chain) Token() string {
	for _, src := range c {
		if tok := src.Token(); tok != "" {
			return tok
		}
	}
	return ""
}

// NewCookieJar builds a cookie jar suitable for CookieToken, using
// the public suffix list for domain matching.
func NewCookieJar() (http.CookieJar, error) {
	return cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
}

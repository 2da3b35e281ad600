package transport

import (
	"encoding/base64"
	"net/http"
)

// Authenticator applies authentication to HTTP requests.
type Authenticator interface {
	Apply(req *http.Request)
}

// NoAuth implements no authentication.
type NoAuth struct{}

// Apply implements the Authenticator interface for NoAuth.
func (a *NoAuth) Apply(_ *http.Request) {
	// No authentication applied
}

// BasicAuth implements the PSA's member-keys Basic scheme. The username is
// the company identifier joined to the public key with a plus sign, the
// password is the private key.
type BasicAuth struct {
	CompanyID  string
	PublicKey  string
	PrivateKey string
}

// Apply implements the Authenticator interface for BasicAuth.
func (a *BasicAuth) Apply(req *http.Request) {
	req.Header.Set("Authorization", "Basic "+a.Token())
}

// Token returns the base64-encoded credential pair.
func (a *BasicAuth) Token() string {
	pair := a.CompanyID + "+" + a.PublicKey + ":" + a.PrivateKey
	return base64.StdEncoding.EncodeToString([]byte(pair))
}

// HeaderAuth implements custom header authentication.
type HeaderAuth struct {
	Header string
	Value  string
}

// Apply implements the Authenticator interface for HeaderAuth.
func (a *HeaderAuth) Apply(req *http.Request) {
	req.Header.Set(a.Header, a.Value)
}

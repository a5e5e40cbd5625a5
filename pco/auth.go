package pco

import (
	"net/http"
)

// AuthStrategy applies authentication to an HTTP request.
type AuthStrategy interface {
	Apply(req *http.Request)
}

// BasicAuth authenticates with a personal access token pair
// (application id and secret).
type BasicAuth struct {
	ApplicationID string
	Secret        string
}

func (a *BasicAuth) Apply(req *http.Request) {
	req.SetBasicAuth(a.ApplicationID, a.Secret)
}

// BearerAuth sends an OAuth access token. Refreshing the token is the
// caller's job.
type BearerAuth struct {
	Token string
}

func (a *BearerAuth) Apply(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+a.Token)
}

package auth

import (
	"net/http"

	"github.com/frahmantamala/productivity-management/internal/transport"
)

const DefaultCookieName = "auth-token"

// Gate resolves the caller from the request alone; no server side session
// state is consulted.
type Gate struct {
	codec      TokenCodec
	cookieName string
}

func NewGate(codec TokenCodec, cookieName string) *Gate {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &Gate{codec: codec, cookieName: cookieName}
}

func (g *Gate) CookieName() string {
	return g.cookieName
}

// Authenticate prefers the auth cookie and falls back to the bearer header.
func (g *Gate) Authenticate(r *http.Request) (*Identity, bool) {
	token := g.tokenFrom(r)
	if token == "" {
		return nil, false
	}
	claims, ok := g.codec.Verify(token)
	if !ok {
		return nil, false
	}
	return claims.Identity(), true
}

func (g *Gate) tokenFrom(r *http.Request) string {
	if c, err := r.Cookie(g.cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	return transport.BearerToken(r)
}

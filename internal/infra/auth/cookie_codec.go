package auth

import (
	"fmt"
	"strings"

	"todo/config"
	"todo/internal/domain/service"
)

// CookieName is the fixed name of the session cookie.
const CookieName = "session_token"

// cookieCodec implements service.SessionCodec. Cookies are SameSite=Strict
// and scoped to the whole site; Secure is added only under a production
// profile so local development over plain HTTP keeps working.
type cookieCodec struct {
	secure bool
	maxAge int
}

// NewCookieCodec is the constructor for cookieCodec.
func NewCookieCodec(cfg *config.Config) service.SessionCodec {
	return &cookieCodec{
		secure: cfg.IsProduction(),
		maxAge: cfg.Auth.CookieMaxAge,
	}
}

// EncodeForClient builds the cookie value for client-side script to set.
// HttpOnly is deliberately omitted here: a script cannot set an HttpOnly
// cookie, so this variant trades XSS hardening for the legacy client-set
// flow. EncodeServerOnly is the hardened alternative.
func (c *cookieCodec) EncodeForClient(credential string) string {
	return fmt.Sprintf("%s=%s%s; SameSite=Strict; Path=/; Max-Age=%d",
		CookieName, credential, c.secureFlag(), c.maxAge)
}

// EncodeServerOnly builds the cookie value for a Set-Cookie response header.
func (c *cookieCodec) EncodeServerOnly(credential string) string {
	return fmt.Sprintf("%s=%s; HttpOnly%s; SameSite=Strict; Path=/; Max-Age=%d",
		CookieName, credential, c.secureFlag(), c.maxAge)
}

// Decode extracts the session credential from a raw Cookie header. The
// header is a `;`-delimited list of `name=value` pairs; malformed pairs are
// skipped rather than rejected.
func (c *cookieCodec) Decode(rawCookieHeader string) (string, bool) {
	for _, pair := range strings.Split(rawCookieHeader, ";") {
		name, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		if strings.TrimSpace(name) != CookieName {
			continue
		}
		if value = strings.TrimSpace(value); value != "" {
			return value, true
		}
	}

	return "", false
}

// Clear returns a cookie value that forces immediate expiry on the client.
func (c *cookieCodec) Clear() string {
	return fmt.Sprintf("%s=; Path=/; Max-Age=0", CookieName)
}

func (c *cookieCodec) secureFlag() string {
	if c.secure {
		return "; Secure"
	}

	return ""
}

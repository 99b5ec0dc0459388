package service

// SessionCodec serializes the session credential to and from cookie strings.
// The codec owns the cookie name and attribute policy; it knows nothing
// about what the credential contains.
type SessionCodec interface {
	// EncodeForClient returns a Set-Cookie value without HttpOnly, for the
	// legacy flow where client-side script stores the cookie itself.
	EncodeForClient(credential string) string

	// EncodeServerOnly returns a Set-Cookie value with HttpOnly, for
	// responses where the server sets the cookie directly.
	EncodeServerOnly(credential string) string

	// Decode extracts the session credential from a raw Cookie header.
	// Malformed pairs are skipped; an absent credential returns ok=false.
	Decode(rawCookieHeader string) (credential string, ok bool)

	// Clear returns a Set-Cookie value that expires the session cookie.
	Clear() string
}

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"todo/config"
)

func TestCookieCodec_Decode(t *testing.T) {
	codec := NewCookieCodec(testConfig())

	tests := []struct {
		name   string
		header string
		want   string
		wantOK bool
	}{
		{name: "single cookie", header: "session_token=abc123", want: "abc123", wantOK: true},
		{name: "among others", header: "session_token=abc123; other=x", want: "abc123", wantOK: true},
		{name: "after others", header: "theme=dark; session_token=abc123", want: "abc123", wantOK: true},
		{name: "whitespace", header: "  session_token = abc123 ; other=x", want: "abc123", wantOK: true},
		{name: "empty header", header: "", wantOK: false},
		{name: "malformed pairs", header: "malformed;;;", wantOK: false},
		{name: "empty value", header: "session_token=; other=x", wantOK: false},
		{name: "wrong name", header: "session=abc123", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := codec.Decode(tt.header)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCookieCodec_EncodeForClient(t *testing.T) {
	codec := NewCookieCodec(testConfig())

	cookie := codec.EncodeForClient("tok")
	assert.Equal(t, "session_token=tok; SameSite=Strict; Path=/; Max-Age=86400", cookie)
	assert.NotContains(t, cookie, "HttpOnly")
	assert.NotContains(t, cookie, "Secure")
}

func TestCookieCodec_EncodeServerOnly(t *testing.T) {
	codec := NewCookieCodec(testConfig())

	cookie := codec.EncodeServerOnly("tok")
	assert.Contains(t, cookie, "session_token=tok")
	assert.Contains(t, cookie, "HttpOnly")
	assert.Contains(t, cookie, "SameSite=Strict")
}

func TestCookieCodec_SecureOnlyInProduction(t *testing.T) {
	cfg := testConfig()
	cfg.Env.Env = "production"
	codec := NewCookieCodec(cfg)

	assert.Contains(t, codec.EncodeForClient("tok"), "; Secure")
	assert.Contains(t, codec.EncodeServerOnly("tok"), "; Secure")

	dev := NewCookieCodec(&config.Config{Auth: cfg.Auth})
	assert.NotContains(t, dev.EncodeForClient("tok"), "Secure")
}

func TestCookieCodec_Clear(t *testing.T) {
	codec := NewCookieCodec(testConfig())

	assert.Equal(t, "session_token=; Path=/; Max-Age=0", codec.Clear())
}

func TestCookieCodec_RoundTrip(t *testing.T) {
	codec := NewCookieCodec(testConfig())

	// The encoded Set-Cookie value's first pair is what the client sends back.
	encoded := codec.EncodeForClient("abc123")
	got, ok := codec.Decode(encoded)
	assert.True(t, ok)
	assert.Equal(t, "abc123", got)
}

// Package auth holds the session credential machinery: two interchangeable
// token codecs sharing one wire format, the resolved request identity, and
// the cookie the credential travels in.
package auth

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	// TokenTTL is the lifetime of issued credentials.
	TokenTTL = 7 * 24 * time.Hour
	// CookieName is the HTTP-only cookie carrying the credential.
	CookieName = "auth_token"
)

// Claims is the verified content of a session credential.
type Claims struct {
	UserID    uuid.UUID
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Codec issues and verifies signed, expiring session credentials.
//
// Issue derives the expiry from ttl itself; callers never self-report it.
// Verify rejects forged, malformed and expired tokens uniformly with
// errors.ErrInvalidToken, without distinguishing the cause.
//
// Two implementations exist, one per token runtime; they accept each
// other's tokens. See the conformance tests in codec_test.go.
type Codec interface {
	Issue(userID uuid.UUID, email string, ttl time.Duration) (string, error)
	Verify(token string) (*Claims, error)
}

// NewCookie builds the HTTP-only credential cookie set at login.
func NewCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie builds a cookie that instructs the client to delete the
// stored credential.
func ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

package auth

import (
	"testing"
	"time"

	jwtv4 "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/Omer-KISAKOL/site-builder/internal/errors"
)

const testSecret = "conformance-test-secret"

// codecs returns both implementations built on the same secret. Every
// conformance case runs against each issuer/verifier pair, so the two
// runtimes cannot drift apart on the token format.
func codecs(secret string) map[string]Codec {
	return map[string]Codec{
		"jwt":  NewJWTCodec(secret),
		"edge": NewEdgeCodec(secret),
	}
}

func TestCodecConformance_RoundTrip(t *testing.T) {
	userID := uuid.New()

	for issuerName, issuer := range codecs(testSecret) {
		for verifierName, verifier := range codecs(testSecret) {
			t.Run(issuerName+"_issues_"+verifierName+"_verifies", func(t *testing.T) {
				token, err := issuer.Issue(userID, "a@x.com", time.Hour)
				require.NoError(t, err)
				require.NotEmpty(t, token)

				claims, err := verifier.Verify(token)
				require.NoError(t, err)
				assert.Equal(t, userID, claims.UserID)
				assert.Equal(t, "a@x.com", claims.Email)
				assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
			})
		}
	}
}

func TestCodecConformance_Expired(t *testing.T) {
	userID := uuid.New()

	for issuerName, issuer := range codecs(testSecret) {
		for verifierName, verifier := range codecs(testSecret) {
			t.Run(issuerName+"_issues_"+verifierName+"_verifies", func(t *testing.T) {
				token, err := issuer.Issue(userID, "a@x.com", -time.Minute)
				require.NoError(t, err)

				claims, err := verifier.Verify(token)
				assert.ErrorIs(t, err, apperr.ErrInvalidToken)
				assert.Nil(t, claims)
			})
		}
	}
}

func TestCodecConformance_ForgedSecret(t *testing.T) {
	userID := uuid.New()

	for issuerName, issuer := range codecs("some-other-secret") {
		for verifierName, verifier := range codecs(testSecret) {
			t.Run(issuerName+"_issues_"+verifierName+"_verifies", func(t *testing.T) {
				token, err := issuer.Issue(userID, "a@x.com", time.Hour)
				require.NoError(t, err)

				_, err = verifier.Verify(token)
				assert.ErrorIs(t, err, apperr.ErrInvalidToken)
			})
		}
	}
}

func TestCodecConformance_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"not-a-token",
		"a.b",
		"a.b.c",
		"eyJhbGciOiJIUzI1NiJ9.e30.",
	}

	for name, verifier := range codecs(testSecret) {
		t.Run(name, func(t *testing.T) {
			for _, input := range inputs {
				_, err := verifier.Verify(input)
				assert.ErrorIs(t, err, apperr.ErrInvalidToken, "input %q", input)
			}
		})
	}
}

func TestCodecConformance_NoneAlgorithmRejected(t *testing.T) {
	claims := jwtv4.MapClaims{
		"user_id": uuid.New().String(),
		"email":   "a@x.com",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token := jwtv4.NewWithClaims(jwtv4.SigningMethodNone, claims)
	unsigned, err := token.SignedString(jwtv4.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, verifier := range codecs(testSecret) {
		t.Run(name, func(t *testing.T) {
			_, err := verifier.Verify(unsigned)
			assert.ErrorIs(t, err, apperr.ErrInvalidToken)
		})
	}
}

func TestCodec_ExpiryDerivedFromTTL(t *testing.T) {
	// The expiry is embedded at issuance; a caller cannot extend it by
	// supplying claims of its own.
	userID := uuid.New()
	for name, codec := range codecs(testSecret) {
		t.Run(name, func(t *testing.T) {
			token, err := codec.Issue(userID, "a@x.com", time.Minute)
			require.NoError(t, err)
			claims, err := codec.Verify(token)
			require.NoError(t, err)
			assert.WithinDuration(t, claims.IssuedAt.Add(time.Minute), claims.ExpiresAt, time.Second)
		})
	}
}

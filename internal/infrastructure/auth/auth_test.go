package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/orris-inc/helpdesk/internal/shared/authorization"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)

	tests := []struct {
		name     string
		password string
	}{
		{"short", "password123"},
		{"unicode", "pässwörd-ünïcode"},
		{"exactly 72 bytes", strings.Repeat("a", 72)},
		{"longer than bcrypt accepts", strings.Repeat("ab", 64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := h.Hash(tt.password)
			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hash)

			assert.NoError(t, h.Verify(tt.password, hash))
			assert.Error(t, h.Verify(tt.password+"x", hash))
		})
	}
}

func TestBcryptPasswordHasher_LongPasswordsDifferBeyondByte72(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)
	base := strings.Repeat("a", 100)

	hash, err := h.Hash(base + "1")
	require.NoError(t, err)
	assert.Error(t, h.Verify(base+"2", hash))
}

func TestBcryptPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	h := NewBcryptPasswordHasher(99)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret, 60)

	token, expiresIn, err := svc.IssueAccessToken("a@x.com", authorization.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Subject)
	assert.Equal(t, authorization.RoleAdmin, claims.Role)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))

	subject, err := svc.ParseSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTService(testSecret, 60)
	now := time.Now()

	sign := func(method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
		tok, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return tok
	}
	valid := func(sub string) *Claims {
		return &Claims{
			Role: authorization.RoleUser,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   sub,
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}
	}

	expired := valid("a@x.com")
	expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))

	noExp := valid("a@x.com")
	noExp.ExpiresAt = nil

	goodToken, _, err := svc.IssueAccessToken("a@x.com", authorization.RoleUser)
	require.NoError(t, err)
	parts := strings.Split(goodToken, ".")

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", sign(jwt.SigningMethodHS256, []byte("another-secret-another-secret-00"), valid("a@x.com"))},
		{"wrong algorithm", sign(jwt.SigningMethodHS512, []byte(testSecret), valid("a@x.com"))},
		{"unsigned", sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid("a@x.com"))},
		{"expired", sign(jwt.SigningMethodHS256, []byte(testSecret), expired)},
		{"missing exp", sign(jwt.SigningMethodHS256, []byte(testSecret), noExp)},
		{"missing sub", sign(jwt.SigningMethodHS256, []byte(testSecret), valid(""))},
		{"tampered payload", parts[0] + "." + parts[1] + "x." + parts[2]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseSubject(tt.token)
			assert.Error(t, err)
		})
	}
}

package auth_test

import (
	"testing"
	"time"

	"oakline-partners/internal/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestGenerateAndValidateJWT(t *testing.T) {
	details, err := auth.GenerateJWT("664f1c9e0000000000000001", "Riley Chen", "riley@acme.test", "Acme Realty", "active", testSecret)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", details.TokenType)
	assert.Equal(t, "86400", details.ExpiresIn)

	claims, err := auth.ValidateJWT(details.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "664f1c9e0000000000000001", claims.PartnerID)
	assert.Equal(t, "Acme Realty", claims.Company)
	assert.Equal(t, "active", claims.Status)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestGenerateJWTRequiresSecret(t *testing.T) {
	_, err := auth.GenerateJWT("664f1c9e0000000000000001", "Riley Chen", "riley@acme.test", "Acme Realty", "active", "")
	assert.Error(t, err)
}

func TestGenerateJWTRequiresPartnerID(t *testing.T) {
	_, err := auth.GenerateJWT("", "Riley Chen", "riley@acme.test", "Acme Realty", "active", testSecret)
	assert.Error(t, err)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	details, err := auth.GenerateJWT("664f1c9e0000000000000001", "Riley Chen", "riley@acme.test", "Acme Realty", "pending", testSecret)
	require.NoError(t, err)

	_, err = auth.ValidateJWT(details.Token, "a-different-secret")
	assert.Error(t, err)
}

func TestValidateJWTRejectsUnexpectedSigningMethod(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"partner_id": "x"})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = auth.ValidateJWT(tokenString, testSecret)
	assert.Error(t, err)
}

func TestValidateJWTRejectsExpiredToken(t *testing.T) {
	claims := &auth.Claims{
		PartnerID: "664f1c9e0000000000000001",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = auth.ValidateJWT(tokenString, testSecret)
	assert.Error(t, err)
}

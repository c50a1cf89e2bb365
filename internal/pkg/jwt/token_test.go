package jwt

import (
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prakashv/minehaul/internal/pkg/models"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "minehaul",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testJWTConfig()

	token, expiresAt, err := GenerateToken("driver-1", "driver", cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := ValidateToken(token, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, "driver-1", claims.UserID)
	assert.Equal(t, "driver", claims.Role)
	assert.Equal(t, "minehaul", claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken("driver-1", "driver", testJWTConfig())
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Expiration = -1

	token, _, err := GenerateToken("driver-1", "driver", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.Secret)
	assert.Error(t, err)
}

func TestValidateToken_RejectsUnexpectedSigningMethod(t *testing.T) {
	// alg=none tokens must never validate.
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, &models.WebSocketClaims{UserID: "driver-1"})
	signed, err := token.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(signed, "test-secret")
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", "test-secret")
	assert.Error(t, err)
}

package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-key-at-least-32-characters"

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	token, err := tm.Generate(42, "alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tm.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, int32(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "placereview", claims.Issuer)
}

func TestTokenManager_Validate_WrongSecret(t *testing.T) {
	token, err := NewTokenManager(testSecret, 60).Generate(1, "alice")
	assert.NoError(t, err)

	_, err = NewTokenManager("a-completely-different-32-char-secret!", 60).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Validate_Garbage(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	_, err := tm.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Validate_Expired(t *testing.T) {
	tm := &tokenManager{secret: []byte(testSecret), expiry: -1}

	token, err := tm.Generate(1, "alice")
	assert.NoError(t, err)

	_, err = tm.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestPassword_HashAndCheck(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
}

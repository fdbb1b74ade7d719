package auth_test

import (
	"testing"
	"time"

	"go-portfolio-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Sign()
	assert.NoError(t, err)
	assert.NoError(t, issuer.Verify(token))
}

func TestTokenWrongSecretRejected(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	other := auth.NewTokenIssuer("other-secret", time.Hour)

	token, err := issuer.Sign()
	assert.NoError(t, err)
	assert.Error(t, other.Verify(token))
}

func TestExpiredTokenRejected(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Sign()
	assert.NoError(t, err)
	assert.Error(t, issuer.Verify(token))
}

func TestEmptySecretFailsClosed(t *testing.T) {
	issuer := auth.NewTokenIssuer("", time.Hour)
	_, err := issuer.Sign()
	assert.Error(t, err)
}

package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"product-management/internal/domain"
)

func TestIssueAndParseRoundTrip(t *testing.T) {
	signer := NewSigner("test-secret", time.Hour)

	raw, err := signer.Issue(&domain.User{
		ID:    7,
		Email: "jane@example.com",
		Role:  domain.RoleAdmin,
	})
	assert.NoError(t, err)

	identity, err := signer.Parse(raw)
	assert.NoError(t, err)
	assert.Equal(t, uint64(7), identity.UserID)
	assert.Equal(t, "jane@example.com", identity.Email)
	assert.Equal(t, domain.RoleAdmin, identity.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	raw, err := NewSigner("secret-a", time.Hour).Issue(&domain.User{ID: 7, Role: domain.RoleUser})
	assert.NoError(t, err)

	_, err = NewSigner("secret-b", time.Hour).Parse(raw)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	signer := NewSigner("test-secret", -time.Minute)

	raw, err := signer.Issue(&domain.User{ID: 7, Role: domain.RoleUser})
	assert.NoError(t, err)

	_, err = signer.Parse(raw)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := NewSigner("test-secret", time.Hour).Parse("not-a-token")
	assert.Error(t, err)
}

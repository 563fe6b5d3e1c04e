package signing

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateSignerRoundTrip(t *testing.T) {
	signer := NewStateSigner("test-secret", time.Minute)

	token, err := signer.Generate("google")
	require.NoError(t, err)

	provider, err := signer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "google", provider)
}

func TestStateSignerRejectsTamperedToken(t *testing.T) {
	signer := NewStateSigner("test-secret", time.Minute)

	token, err := signer.Generate("github")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	parts[0] = "bWljcm9zb2Z0" // swap provider without re-signing
	_, err = signer.Validate(strings.Join(parts, "."))
	assert.Error(t, err)
}

func TestStateSignerRejectsWrongSecret(t *testing.T) {
	signer := NewStateSigner("secret-a", time.Minute)
	other := NewStateSigner("secret-b", time.Minute)

	token, err := signer.Generate("google")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestStateSignerRejectsExpired(t *testing.T) {
	signer := NewStateSigner("test-secret", -time.Minute)
	signer.ttl = -time.Minute

	token, err := signer.Generate("google")
	require.NoError(t, err)

	_, err = signer.Validate(token)
	assert.ErrorContains(t, err, "expired")
}

func TestStateSignerRejectsMalformed(t *testing.T) {
	signer := NewStateSigner("test-secret", time.Minute)

	for _, token := range []string{"", "abc", "a.b.c", "a.b.c.d.e"} {
		_, err := signer.Validate(token)
		assert.Error(t, err, token)
	}
}

func TestStateSignerRequiresProvider(t *testing.T) {
	signer := NewStateSigner("test-secret", time.Minute)
	_, err := signer.Generate("")
	assert.Error(t, err)
}

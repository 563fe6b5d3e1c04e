package signing

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// StateSigner creates and validates short-lived HMAC tokens used as the
// OAuth state parameter, so callbacks can be tied to a redirect we issued.
type StateSigner struct {
	secret []byte
	ttl    time.Duration
}

// NewStateSigner constructs a signer with the provided secret and TTL.
func NewStateSigner(secret string, ttl time.Duration) *StateSigner {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &StateSigner{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Generate returns a signed state token bound to the given provider name.
func (s *StateSigner) Generate(provider string) (string, error) {
	if provider == "" {
		return "", fmt.Errorf("provider required")
	}
	if len(s.secret) == 0 {
		return "", fmt.Errorf("signing secret missing")
	}

	nonce := make([]byte, 8)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	expiresAt := time.Now().Add(s.ttl).Unix()
	encodedProvider := base64.RawURLEncoding.EncodeToString([]byte(provider))
	encodedNonce := hex.EncodeToString(nonce)
	payload := fmt.Sprintf("%s|%d|%s", encodedProvider, expiresAt, encodedNonce)

	mac := hmac.New(sha256.New, s.secret)
	_, _ = mac.Write([]byte(payload))
	signature := hex.EncodeToString(mac.Sum(nil))

	return strings.Join([]string{encodedProvider, strconv.FormatInt(expiresAt, 10), encodedNonce, signature}, "."), nil
}

// Validate checks a state token and returns the embedded provider name.
func (s *StateSigner) Validate(token string) (string, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 4 {
		return "", fmt.Errorf("invalid state format")
	}
	encodedProvider, ts, nonce, signature := parts[0], parts[1], parts[2], parts[3]

	payload := fmt.Sprintf("%s|%s|%s", encodedProvider, ts, nonce)
	mac := hmac.New(sha256.New, s.secret)
	_, _ = mac.Write([]byte(payload))
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return "", fmt.Errorf("invalid state signature")
	}

	expUnix, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return "", fmt.Errorf("parse state expiry: %w", err)
	}
	if time.Now().After(time.Unix(expUnix, 0)) {
		return "", fmt.Errorf("state expired")
	}

	provider, err := base64.RawURLEncoding.DecodeString(encodedProvider)
	if err != nil {
		return "", fmt.Errorf("decode state provider: %w", err)
	}

	return string(provider), nil
}

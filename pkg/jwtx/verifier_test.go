package jwtx

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"math/big"
	"testing"
	"time"

	"github.com/aussiebroadwan/seodesk/pkg/cryptox"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testIssuer = "https://id.example.test"

func newTestSigner(t *testing.T) Signer {
	t.Helper()

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	kid, err := cryptox.Ed25519KeyID(pemKey)
	require.NoError(t, err)

	s, err := NewSignerEdDSA(kid, pemKey)
	require.NoError(t, err)
	return s
}

func TestKeySetVerifier(t *testing.T) {
	signer := newTestSigner(t)
	keys := NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	audience := []string{"seodesk"}
	v := NewVerifier(keys, VerifyOptions{Issuer: testIssuer, Audience: audience, Leeway: 5 * time.Second})

	id := Identity{Subject: "user-1", Email: "ada@example.test", GivenName: "Ada", FamilyName: "Lovelace"}

	t.Run("accepts a valid token", func(t *testing.T) {
		claims := NewAccessClaims(id, []string{"seo:read"}, time.Minute, testIssuer, audience, time.Now())
		tok, err := signer.Sign(claims)
		require.NoError(t, err)

		got, err := v.Verify(tok)
		require.NoError(t, err)
		require.Equal(t, id, got.Identity())
		require.True(t, got.HasScope("seo:read"))
	})

	t.Run("rejects wrong issuer", func(t *testing.T) {
		claims := NewAccessClaims(id, nil, time.Minute, "https://evil.test", audience, time.Now())
		tok, err := signer.Sign(claims)
		require.NoError(t, err)

		_, err = v.Verify(tok)
		require.ErrorIs(t, err, ErrIssuer)
	})

	t.Run("rejects wrong audience", func(t *testing.T) {
		claims := NewAccessClaims(id, nil, time.Minute, testIssuer, []string{"other"}, time.Now())
		tok, err := signer.Sign(claims)
		require.NoError(t, err)

		_, err = v.Verify(tok)
		require.ErrorIs(t, err, ErrAudience)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		claims := NewAccessClaims(id, nil, time.Minute, testIssuer, audience, time.Now().Add(-time.Hour))
		tok, err := signer.Sign(claims)
		require.NoError(t, err)

		_, err = v.Verify(tok)
		require.ErrorIs(t, err, ErrExpired)
	})

	t.Run("rejects unknown kid", func(t *testing.T) {
		other := newTestSigner(t)
		claims := NewAccessClaims(id, nil, time.Minute, testIssuer, audience, time.Now())
		tok, err := other.Sign(claims)
		require.NoError(t, err)

		_, err = v.Verify(tok)
		require.ErrorIs(t, err, ErrUnknownKID)
	})

	t.Run("rejects key type that does not match alg", func(t *testing.T) {
		rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)

		// Publish an RSA key under a kid, then present an HS256 token for it.
		mixed := NewKeySet()
		require.NoError(t, mixed.AddJWK(JWK{
			Kty: "RSA", Use: "sig", Alg: "RS256", Kid: "rsa-1",
			N: base64.RawURLEncoding.EncodeToString(rsaKey.N.Bytes()),
			E: base64.RawURLEncoding.EncodeToString(big.NewInt(int64(rsaKey.E)).Bytes()),
		}))
		mv := NewVerifier(mixed, VerifyOptions{})

		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, NewAccessClaims(id, nil, time.Minute, "", nil, time.Now()))
		tok.Header["kid"] = "rsa-1"
		raw, err := tok.SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = mv.Verify(raw)
		require.Error(t, err)

		// A correctly signed RS256 token is accepted.
		good := jwt.NewWithClaims(jwt.SigningMethodRS256, NewAccessClaims(id, nil, time.Minute, "", nil, time.Now()))
		good.Header["kid"] = "rsa-1"
		raw, err = good.SignedString(rsaKey)
		require.NoError(t, err)

		_, err = mv.Verify(raw)
		require.NoError(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := v.Verify("not-a-jwt")
		require.Error(t, err)
	})
}

package jwtx

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aussiebroadwan/seodesk/pkg/cryptox"
)

// Signer mints JWTs. seodesk only signs tokens itself in development, where
// it stands in for the identity provider.
type Signer interface {
	Alg() string
	KID() string
	Sign(Claims) (string, error)
	PublicJWK() JWK
}

// NewDevSigner generates a throwaway Ed25519 key. Tokens it signs stop
// verifying once the process exits.
func NewDevSigner() (Signer, error) {
	pemKey, err := cryptox.GenerateEd25519Key()
	if err != nil {
		return nil, err
	}
	kid, err := cryptox.Ed25519KeyID(pemKey)
	if err != nil {
		return nil, err
	}
	return NewSignerEdDSA(kid, pemKey)
}

// NewSignerEdDSA creates an EdDSA signer from PKCS8 PEM bytes.
func NewSignerEdDSA(kid string, pemKey []byte) (Signer, error) {
	block, _ := pem.Decode(pemKey)
	if block == nil || block.Type != "PRIVATE KEY" {
		return nil, errors.New("jwtx: Ed25519 key must be PKCS8 PEM")
	}
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("jwtx: parse PKCS8: %w", err)
	}
	key, ok := parsed.(ed25519.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("jwtx: expected Ed25519 key, got %T", parsed)
	}
	return &edSigner{kid: kid, key: key}, nil
}

type edSigner struct {
	kid string
	key ed25519.PrivateKey
}

func (s *edSigner) Alg() string { return jwt.SigningMethodEdDSA.Alg() }
func (s *edSigner) KID() string { return s.kid }

func (s *edSigner) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}

func (s *edSigner) PublicJWK() JWK {
	return NewEd25519JWK(s.kid, "sig", s.Alg(), s.key.Public().(ed25519.PublicKey))
}

package jwtx

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"
)

var (
	ErrNoKey          = errors.New("jwtx: key not found")
	ErrNoUsableKeys   = errors.New("jwtx: key set has no usable signing keys")
	errUnsupportedKey = errors.New("jwtx: unsupported key")
)

type keyEntry struct {
	jwk JWK
	pub any // *rsa.PublicKey | ed25519.PublicKey | *ecdsa.PublicKey
}

// KeySet holds the public verification keys. The identity provider's JWKS is
// reloaded in the background while requests read from it.
type KeySet struct {
	mu       sync.RWMutex
	order    []string
	byKID    map[string]keyEntry
	loadedAt time.Time
}

// NewKeySet returns an empty KeySet.
func NewKeySet() *KeySet {
	return &KeySet{byKID: make(map[string]keyEntry)}
}

// AddSigner publishes a local signer's public key.
func (k *KeySet) AddSigner(s Signer) error {
	return k.AddJWK(s.PublicJWK())
}

// AddJWK adds one key, replacing any key with the same kid.
func (k *KeySet) AddJWK(j JWK) error {
	pub, err := parseJWK(j)
	if err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	if _, exists := k.byKID[j.Kid]; !exists {
		k.order = append(k.order, j.Kid)
	}
	k.byKID[j.Kid] = keyEntry{jwk: j, pub: pub}
	k.loadedAt = time.Now()
	return nil
}

// Get returns the public key for kid. An empty kid resolves only when the
// set holds exactly one key, which covers providers that omit the header.
func (k *KeySet) Get(kid string) (any, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if kid == "" {
		if len(k.order) == 1 {
			return k.byKID[k.order[0]].pub, nil
		}
		return nil, ErrNoKey
	}
	if e, ok := k.byKID[kid]; ok {
		return e.pub, nil
	}
	return nil, ErrNoKey
}

// PublicJWKS returns the keys in insertion order.
func (k *KeySet) PublicJWKS() JWKS {
	k.mu.RLock()
	defer k.mu.RUnlock()

	keys := make([]JWK, 0, len(k.order))
	for _, kid := range k.order {
		keys = append(keys, k.byKID[kid].jwk)
	}
	return JWKS{Keys: keys}
}

// IsReady reports whether at least one key is loaded.
func (k *KeySet) IsReady() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.byKID) > 0
}

// LoadedAt is when the set last changed.
func (k *KeySet) LoadedAt() time.Time {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.loadedAt
}

// ResetFromJWKS replaces the set with the signing keys of jwks. Encryption
// keys and key types this package cannot verify with are skipped. When
// nothing usable remains, or a supported key is malformed, the previous set
// stays in place.
func (k *KeySet) ResetFromJWKS(jwks JWKS) error {
	order := make([]string, 0, len(jwks.Keys))
	byKID := make(map[string]keyEntry, len(jwks.Keys))

	for _, j := range jwks.Keys {
		if j.Use != "" && j.Use != "sig" {
			continue
		}
		pub, err := parseJWK(j)
		if errors.Is(err, errUnsupportedKey) {
			continue
		}
		if err != nil {
			return fmt.Errorf("jwtx: key %q: %w", j.Kid, err)
		}
		if _, dup := byKID[j.Kid]; !dup {
			order = append(order, j.Kid)
		}
		byKID[j.Kid] = keyEntry{jwk: j, pub: pub}
	}
	if len(byKID) == 0 {
		return ErrNoUsableKeys
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	k.order = order
	k.byKID = byKID
	k.loadedAt = time.Now()
	return nil
}

func parseJWK(j JWK) (any, error) {
	switch j.Kty {
	case "RSA":
		return parseRSA(j)
	case "OKP":
		return parseOKP(j)
	case "EC":
		return parseEC(j)
	default:
		return nil, fmt.Errorf("%w: kty %q", errUnsupportedKey, j.Kty)
	}
}

func parseRSA(j JWK) (*rsa.PublicKey, error) {
	n, err := decodeField("n", j.N)
	if err != nil {
		return nil, err
	}
	e, err := decodeField("e", j.E)
	if err != nil {
		return nil, err
	}
	exp := new(big.Int).SetBytes(e)
	if !exp.IsInt64() || exp.Int64() < 3 || exp.Int64() > 1<<31-1 {
		return nil, errors.New("jwtx: invalid RSA exponent")
	}
	return &rsa.PublicKey{N: new(big.Int).SetBytes(n), E: int(exp.Int64())}, nil
}

func parseOKP(j JWK) (ed25519.PublicKey, error) {
	if j.Crv != "Ed25519" {
		return nil, fmt.Errorf("%w: OKP curve %q", errUnsupportedKey, j.Crv)
	}
	x, err := decodeField("x", j.X)
	if err != nil {
		return nil, err
	}
	if len(x) != ed25519.PublicKeySize {
		return nil, errors.New("jwtx: invalid Ed25519 public key size")
	}
	return ed25519.PublicKey(x), nil
}

func parseEC(j JWK) (*ecdsa.PublicKey, error) {
	if j.Crv != "P-256" {
		return nil, fmt.Errorf("%w: EC curve %q", errUnsupportedKey, j.Crv)
	}
	x, err := decodeField("x", j.X)
	if err != nil {
		return nil, err
	}
	y, err := decodeField("y", j.Y)
	if err != nil {
		return nil, err
	}
	return &ecdsa.PublicKey{
		Curve: elliptic.P256(),
		X:     new(big.Int).SetBytes(x),
		Y:     new(big.Int).SetBytes(y),
	}, nil
}

func decodeField(name, v string) ([]byte, error) {
	if v == "" {
		return nil, fmt.Errorf("jwtx: missing %s", name)
	}
	b, err := base64.RawURLEncoding.DecodeString(v)
	if err != nil {
		return nil, fmt.Errorf("jwtx: decode %s: %w", name, err)
	}
	return b, nil
}

package cryptox_test

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/aussiebroadwan/seodesk/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestGenerateEd25519Key(t *testing.T) {
	pemBytes, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	block, _ := pem.Decode(pemBytes)
	require.NotNil(t, block)
	require.Equal(t, "PRIVATE KEY", block.Type)

	keyInterface, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	require.NoError(t, err)

	key, ok := keyInterface.(ed25519.PrivateKey)
	require.True(t, ok)
	require.Len(t, key, ed25519.PrivateKeySize)
}

func TestEd25519KeyID(t *testing.T) {
	a, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	b, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	kidA, err := cryptox.Ed25519KeyID(a)
	require.NoError(t, err)
	require.Len(t, kidA, 12)

	again, err := cryptox.Ed25519KeyID(a)
	require.NoError(t, err)
	require.Equal(t, kidA, again)

	kidB, err := cryptox.Ed25519KeyID(b)
	require.NoError(t, err)
	require.NotEqual(t, kidA, kidB)

	_, err = cryptox.Ed25519KeyID([]byte("garbage"))
	require.Error(t, err)
}

package keychain

import (
	"errors"
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewWithKeyring(keyring.NewArrayKeyring(nil))
}

func TestRegistryCredentials(t *testing.T) {
	m := newTestManager()

	require.NoError(t, m.SaveRegistryCredentials("GHCR.io", RegistryCredentials{Username: "bot", Password: "pw"}))
	require.NoError(t, m.SaveRegistryCredentials("ghcr.io", RegistryCredentials{Username: "bot", Password: "pw2"}))

	creds, err := m.LoadRegistryCredentials("ghcr.io")
	require.NoError(t, err)
	assert.Equal(t, RegistryCredentials{Username: "bot", Password: "pw2"}, creds)

	hosts, err := m.RegistryHosts()
	require.NoError(t, err)
	assert.Equal(t, []string{"ghcr.io"}, hosts)

	require.NoError(t, m.ClearRegistryCredentials("ghcr.io"))
	_, err = m.LoadRegistryCredentials("ghcr.io")
	assert.True(t, errors.Is(err, ErrNotFound))

	hosts, err = m.RegistryHosts()
	require.NoError(t, err)
	assert.Empty(t, hosts)
}

func TestTokens(t *testing.T) {
	m := newTestManager()

	_, err := m.LoadKubeToken()
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Error(t, m.SaveBridgeToken(""))

	require.NoError(t, m.SaveKubeToken("kube-tok"))
	require.NoError(t, m.SaveBridgeToken("bridge-tok"))

	kube, err := m.LoadKubeToken()
	require.NoError(t, err)
	assert.Equal(t, "kube-tok", kube)

	bridgeTok, err := m.LoadBridgeToken()
	require.NoError(t, err)
	assert.Equal(t, "bridge-tok", bridgeTok)
}

func TestClearAll(t *testing.T) {
	m := newTestManager()
	require.NoError(t, m.SaveKubeToken("kube-tok"))
	require.NoError(t, m.SaveRegistryCredentials("ghcr.io", RegistryCredentials{Username: "bot", Password: "pw"}))
	require.NoError(t, m.SaveRegistryCredentials("registry.acme.dev", RegistryCredentials{Username: "ci", Password: "pw"}))

	require.NoError(t, m.ClearAll())

	_, err := m.LoadKubeToken()
	assert.ErrorIs(t, err, ErrNotFound)
	for _, h := range []string{"ghcr.io", "registry.acme.dev"} {
		_, err := m.LoadRegistryCredentials(h)
		assert.ErrorIs(t, err, ErrNotFound, h)
	}
	hosts, err := m.RegistryHosts()
	require.NoError(t, err)
	assert.Empty(t, hosts)
}

// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides centralized, thread-safe keychain operations for helmbridge.
// This module manages all interactions with the OS keychain/credential store,
// providing a unified interface for storing and retrieving registry credentials,
// the cluster bearer token and the bridge server token.
//
// The package supports macOS Keychain (through the security command, with the
// keyring library as fallback), Windows Credential Manager, and the Secret
// Service, KWallet and pass stores on Linux.
package keychain

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/99designs/keyring"
)

// Global keychain manager instance
var (
	globalManager *Manager
	mu            sync.Mutex
)

// ErrNotFound is returned when a secret is not stored.
var ErrNotFound = errors.New("secret not found in keychain")

// Manager provides centralized, thread-safe operations for the OS keychain.
type Manager struct {
	mu      sync.RWMutex
	backend keychainBackend
}

// keychainBackend defines the interface for keychain operations.
type keychainBackend interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "helmbridge"

// Keys used for storing secrets in the OS keychain.
const (
	KeyKubeToken      = "kube_token"
	KeyBridgeToken    = "bridge_token"
	KeyRegistryHosts  = "registry_hosts"
	keyRegistryPrefix = "registry:"
)

// RegistryCredentials is a username/password pair for an OCI registry.
type RegistryCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewManager creates a new keychain manager with the OS keyring initialized.
func NewManager() (*Manager, error) {
	// Try native security backend first on macOS
	if runtime.GOOS == "darwin" {
		backend, err := newSecurityBackend()
		if err == nil {
			return &Manager{backend: backend}, nil
		}
		// Fall through to keyring library if security command fails
	}

	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	return NewWithKeyring(ring), nil
}

// NewWithKeyring returns a manager storing secrets in ring.
func NewWithKeyring(ring keyring.Keyring) *Manager {
	return &Manager{backend: ringBackend{ring: ring}}
}

// GetManager returns the global keychain manager instance.
// If not initialized, it will be created on first call.
// If initialization fails, it will retry on subsequent calls.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}

	m, err := NewManager()
	if err != nil {
		return nil, err
	}
	globalManager = m
	return globalManager, nil
}

// openRing opens the OS keyring using native platform backends only.
// There is no file fallback: secrets never land in a plain file.
func openRing() (keyring.Keyring, error) {
	var allowedBackends []keyring.BackendType
	switch runtime.GOOS {
	case "darwin":
		// Pass requires 'pass' utility installed: brew install pass
		allowedBackends = []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend}
	case "windows":
		allowedBackends = []keyring.BackendType{keyring.WinCredBackend}
	case "linux", "freebsd", "openbsd":
		allowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.PassBackend,
		}
	default:
		return nil, fmt.Errorf("secure storage not supported on %s", runtime.GOOS)
	}

	cfg := keyring.Config{
		ServiceName:             ServiceName,
		AllowedBackends:         allowedBackends,
		PassPrefix:              ServiceName,
		LibSecretCollectionName: ServiceName,
		KWalletAppID:            ServiceName,
		KWalletFolder:           ServiceName,
	}

	// Hint prefixes where supported to minimize namespace collisions
	if runtime.GOOS == "windows" {
		cfg.WinCredPrefix = ServiceName
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		if runtime.GOOS == "darwin" {
			return nil, errors.New("macOS Keychain unavailable. On macOS 26.0+, install 'pass': brew install pass gnupg && gpg --generate-key && pass init <gpg-key-id>")
		}
		return nil, fmt.Errorf("open keyring: %w", err)
	}

	return ring, nil
}

// ringBackend adapts a keyring.Keyring to keychainBackend.
type ringBackend struct {
	ring keyring.Keyring
}

func (r ringBackend) Set(key, value string) error {
	return r.ring.Set(keyring.Item{Key: key, Data: []byte(value), Label: ServiceName + " " + key})
}

func (r ringBackend) Get(key string) (string, error) {
	it, err := r.ring.Get(key)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return string(it.Data), nil
}

func (r ringBackend) Delete(key string) error {
	if err := r.ring.Remove(key); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}

func registryKey(host string) string {
	return keyRegistryPrefix + strings.ToLower(strings.TrimSpace(host))
}

// SaveRegistryCredentials stores credentials for an OCI registry host.
// This method is thread-safe.
func (m *Manager) SaveRegistryCredentials(host string, creds RegistryCredentials) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	if err := m.backend.Set(registryKey(host), string(data)); err != nil {
		return err
	}

	hosts, err := m.registryHosts()
	if err != nil {
		return err
	}
	h := strings.ToLower(strings.TrimSpace(host))
	if !slices.Contains(hosts, h) {
		return m.setRegistryHosts(append(hosts, h))
	}
	return nil
}

// LoadRegistryCredentials retrieves credentials for an OCI registry host.
// This method is thread-safe.
func (m *Manager) LoadRegistryCredentials(host string) (RegistryCredentials, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var creds RegistryCredentials
	data, err := m.backend.Get(registryKey(host))
	if err != nil {
		return creds, err
	}
	if err := json.Unmarshal([]byte(data), &creds); err != nil {
		return creds, fmt.Errorf("decode registry credentials for %s: %w", host, err)
	}
	return creds, nil
}

// ClearRegistryCredentials removes credentials for an OCI registry host.
// This method is thread-safe.
func (m *Manager) ClearRegistryCredentials(host string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.backend.Delete(registryKey(host)); err != nil {
		return err
	}
	hosts, err := m.registryHosts()
	if err != nil {
		return err
	}
	h := strings.ToLower(strings.TrimSpace(host))
	return m.setRegistryHosts(slices.DeleteFunc(hosts, func(s string) bool { return s == h }))
}

// RegistryHosts lists the hosts with stored credentials.
// This method is thread-safe.
func (m *Manager) RegistryHosts() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.registryHosts()
}

func (m *Manager) registryHosts() ([]string, error) {
	data, err := m.backend.Get(KeyRegistryHosts)
	if errors.Is(err, ErrNotFound) || (err == nil && data == "") {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var hosts []string
	if err := json.Unmarshal([]byte(data), &hosts); err != nil {
		return nil, fmt.Errorf("decode registry host index: %w", err)
	}
	return hosts, nil
}

func (m *Manager) setRegistryHosts(hosts []string) error {
	if len(hosts) == 0 {
		return m.backend.Delete(KeyRegistryHosts)
	}
	data, err := json.Marshal(hosts)
	if err != nil {
		return err
	}
	return m.backend.Set(KeyRegistryHosts, string(data))
}

// SaveKubeToken stores the cluster bearer token.
// This method is thread-safe.
func (m *Manager) SaveKubeToken(token string) error {
	return m.saveToken(KeyKubeToken, token)
}

// LoadKubeToken retrieves the cluster bearer token.
// This method is thread-safe.
func (m *Manager) LoadKubeToken() (string, error) {
	return m.loadToken(KeyKubeToken)
}

// SaveBridgeToken stores the token presented to a gRPC bridge server.
// This method is thread-safe.
func (m *Manager) SaveBridgeToken(token string) error {
	return m.saveToken(KeyBridgeToken, token)
}

// LoadBridgeToken retrieves the gRPC bridge token.
// This method is thread-safe.
func (m *Manager) LoadBridgeToken() (string, error) {
	return m.loadToken(KeyBridgeToken)
}

func (m *Manager) saveToken(key, token string) error {
	if token == "" {
		return fmt.Errorf("refusing to store empty %s", key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.backend.Set(key, token)
}

func (m *Manager) loadToken(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	token, err := m.backend.Get(key)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", ErrNotFound
	}
	return token, nil
}

// ClearAll removes all secrets from the keychain.
// This method is thread-safe and should be used with caution.
func (m *Manager) ClearAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	hosts, err := m.registryHosts()
	if err != nil {
		return err
	}
	for _, h := range hosts {
		_ = m.backend.Delete(registryKey(h))
	}
	_ = m.backend.Delete(KeyRegistryHosts)
	_ = m.backend.Delete(KeyKubeToken)
	_ = m.backend.Delete(KeyBridgeToken)
	return nil
}

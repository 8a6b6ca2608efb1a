// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; secrets go to OS keychain.
//
// Settings are layered: built-in defaults, then the config file, then
// HELMBRIDGE_* environment variables (a .env file in the working directory
// is loaded into the environment first). Command-line flags override all of
// these in cmd.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"helmbridge/cli/internal/xdg"

	"github.com/joho/godotenv"
)

// Environment variables that override file settings.
const (
	EnvTransport  = "HELMBRIDGE_TRANSPORT"
	EnvAddress    = "HELMBRIDGE_ADDRESS"
	EnvHelmBinary = "HELMBRIDGE_HELM_BINARY"
	EnvPlaintext  = "HELMBRIDGE_PLAINTEXT"
	EnvLogLevel   = "HELMBRIDGE_LOG_LEVEL"
	EnvJournalDSN = "HELMBRIDGE_JOURNAL_DSN"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	LogLevel   string       `json:"log_level"`
	Bridge     BridgeConfig `json:"bridge"`
	Env        EnvConfig    `json:"env"`
	JournalDSN string       `json:"journal_dsn,omitempty"`
}

// BridgeConfig selects the transport used to reach helm.
type BridgeConfig struct {
	Transport  string `json:"transport"`
	Address    string `json:"address,omitempty"`
	HelmBinary string `json:"helm_binary,omitempty"`
	Plaintext  bool   `json:"plaintext,omitempty"`
	// CAFile is a PEM bundle trusted for the bridge server's certificate.
	CAFile string `json:"ca_file,omitempty"`
}

// EnvConfig holds default cluster settings. The cluster token is a secret
// and lives in the keychain instead.
type EnvConfig struct {
	KubeConfig                string `json:"kube_config,omitempty"`
	KubeContext               string `json:"kube_context,omitempty"`
	KubeCAFile                string `json:"kube_ca_file,omitempty"`
	KubeInsecureSkipTLSVerify bool   `json:"kube_insecure_skip_tls_verify,omitempty"`
}

// Defaults returns the settings used when no config file exists.
func Defaults() Config {
	return Config{
		LogLevel: "warn",
		Bridge:   BridgeConfig{Transport: "exec"},
	}
}

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration from the default path; missing file returns defaults.
func Load() (Config, error) {
	p, err := Path()
	if err != nil {
		return Defaults(), err
	}
	return LoadFrom(p)
}

// LoadFrom reads configuration from p and applies environment overrides.
func LoadFrom(p string) (Config, error) {
	c := Defaults()
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return c, fmt.Errorf("load .env: %w", err)
	}

	data, err := os.ReadFile(p)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return c, err
	default:
		if err := json.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("parse %s: %w", p, err)
		}
	}

	if err := applyEnv(&c); err != nil {
		return c, err
	}
	return c, nil
}

func applyEnv(c *Config) error {
	for env, dst := range map[string]*string{
		EnvTransport:  &c.Bridge.Transport,
		EnvAddress:    &c.Bridge.Address,
		EnvHelmBinary: &c.Bridge.HelmBinary,
		EnvLogLevel:   &c.LogLevel,
		EnvJournalDSN: &c.JournalDSN,
	} {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			*dst = v
		}
	}
	if v, ok := os.LookupEnv(EnvPlaintext); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPlaintext, err)
		}
		c.Bridge.Plaintext = b
	}
	return nil
}

// Save writes configuration to the default path with 0600 permissions.
func Save(c Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(p, c)
}

// SaveTo writes configuration to p with 0600 permissions.
func SaveTo(p string, c Config) error {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvTransport, EnvAddress, EnvHelmBinary, EnvPlaintext, EnvLogLevel, EnvJournalDSN} {
		t.Setenv(k, "")
	}
	// Keep a stray .env in the package dir from leaking in.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	c, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if c != Defaults() {
		t.Errorf("LoadFrom() = %+v, want defaults %+v", c, Defaults())
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "config.json")

	want := Config{
		LogLevel: "debug",
		Bridge:   BridgeConfig{Transport: "grpc", Address: "bridge.internal:7443", CAFile: "/etc/helmbridge/ca.pem"},
		Env:      EnvConfig{KubeContext: "kind-dev"},
	}
	if err := SaveTo(p, want); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}
	info, err := os.Stat(p)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("config perm = %o, want 600", perm)
	}

	got, err := LoadFrom(p)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if got != want {
		t.Errorf("LoadFrom() = %+v, want %+v", got, want)
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvTransport, "grpc")
	t.Setenv(EnvAddress, "localhost:7443")
	t.Setenv(EnvPlaintext, "true")
	t.Setenv(EnvLogLevel, "trace")

	c, err := LoadFrom(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if c.Bridge.Transport != "grpc" || c.Bridge.Address != "localhost:7443" || !c.Bridge.Plaintext {
		t.Errorf("bridge overrides not applied: %+v", c.Bridge)
	}
	if c.LogLevel != "trace" {
		t.Errorf("LogLevel = %q, want trace", c.LogLevel)
	}
	if c.Bridge.HelmBinary != "" {
		t.Errorf("HelmBinary = %q, want empty so the executor picks helm from PATH", c.Bridge.HelmBinary)
	}
}

func TestDotEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv(EnvHelmBinary)
	if err := os.WriteFile(".env", []byte(EnvHelmBinary+"=/opt/helm/bin/helm\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv(EnvHelmBinary) })

	c, err := LoadFrom(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if c.Bridge.HelmBinary != "/opt/helm/bin/helm" {
		t.Errorf("HelmBinary = %q, want value from .env", c.Bridge.HelmBinary)
	}
}

func TestSaveAndLoadKeepsEmptyHelmBinary(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "config.json")

	want := Defaults()
	want.Bridge.Address = "bridge.internal:7443"
	if err := SaveTo(p, want); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}
	got, err := LoadFrom(p)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if got != want {
		t.Errorf("LoadFrom() = %+v, want %+v", got, want)
	}
}

func TestMalformedDotEnvIsReported(t *testing.T) {
	clearEnv(t)
	if err := os.WriteFile(".env", []byte(EnvLogLevel+"=\"unterminated\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadFrom() error = nil, want .env parse error")
	}
}

func TestInvalidPlaintext(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPlaintext, "sometimes")

	if _, err := LoadFrom(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadFrom() error = nil, want parse error")
	}
}

func TestInvalidJSON(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(p, []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(p); err == nil {
		t.Error("LoadFrom() error = nil, want parse error")
	}
}

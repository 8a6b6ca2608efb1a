package bridge

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"helmbridge/cli/internal/bridge/grpcclient"
	"helmbridge/cli/internal/bridge/helmexec"
)

func TestNewSelectsTransport(t *testing.T) {
	ctx := context.Background()

	b, err := New(ctx, Options{})
	if err != nil {
		t.Fatalf("New(default) error = %v", err)
	}
	if _, ok := b.(*helmexec.Executor); !ok {
		t.Errorf("New(default) = %T, want *helmexec.Executor", b)
	}

	b, err = New(ctx, Options{Transport: "GRPC", Address: "localhost:7443", Plaintext: true})
	if err != nil {
		t.Fatalf("New(grpc) error = %v", err)
	}
	defer b.Close()
	if _, ok := b.(*grpcclient.Client); !ok {
		t.Errorf("New(grpc) = %T, want *grpcclient.Client", b)
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"grpc without address", Options{Transport: TransportGRPC}},
		{"unknown transport", Options{Transport: "carrier-pigeon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(context.Background(), tt.opts); err == nil {
				t.Error("New() error = nil, want error")
			}
		})
	}
}

func TestNewRejectsUnusableBridgeCA(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "ca.pem")
	if err := os.WriteFile(garbage, []byte("not a certificate"), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{filepath.Join(dir, "missing.pem"), garbage} {
		_, err := New(context.Background(), Options{Transport: TransportGRPC, Address: "localhost:7443", CAFile: path})
		if err == nil {
			t.Errorf("New(CAFile=%s) error = nil, want error", filepath.Base(path))
		}
	}

	// Plaintext never verifies a certificate, so the CA file is not read.
	b, err := New(context.Background(), Options{Transport: TransportGRPC, Address: "localhost:7443", Plaintext: true, CAFile: garbage})
	if err != nil {
		t.Fatalf("New(plaintext) error = %v", err)
	}
	_ = b.Close()
}

func TestOpNames(t *testing.T) {
	want := []string{"install", "upgrade", "uninstall", "list", "repo_add", "repo_search", "registry_login"}
	ops := Ops()
	if len(ops) != len(want) {
		t.Fatalf("Ops() = %v, want %d operations", ops, len(want))
	}
	for i, op := range ops {
		if op.String() != want[i] {
			t.Errorf("Ops()[%d] = %q, want %q", i, op, want[i])
		}
	}
	if got := Op(99).String(); got != "op(99)" {
		t.Errorf("Op(99).String() = %q", got)
	}
}

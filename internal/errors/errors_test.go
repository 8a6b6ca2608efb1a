package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestE_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *E
		want string
	}{
		{
			name: "install failure",
			err:  New(InstallFailed, "chart not found"),
			want: "install error: chart not found",
		},
		{
			name: "registry login failure",
			err:  New(RegistryLoginFailed, "unauthorized"),
			want: "registry login error: unauthorized",
		},
		{
			name: "wrapped cause",
			err:  Wrap(BridgeSetupFailed, "dial grpc bridge", errors.New("connection refused")),
			want: "bridge setup error: dial grpc bridge: connection refused",
		},
		{
			name: "unknown kind falls back to raw value",
			err:  New(Kind("custom"), "boom"),
			want: "custom: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("running demo: %w", New(ListFailed, "cluster unreachable"))

	kind, ok := KindOf(wrapped)
	if !ok {
		t.Fatal("KindOf() found no kind in wrapped error")
	}
	if kind != ListFailed {
		t.Errorf("KindOf() = %q, want %q", kind, ListFailed)
	}

	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf() reported a kind for a plain error")
	}
}

func TestE_Unwrap(t *testing.T) {
	cause := errors.New("no such file")
	err := Wrap(ValuesInvalid, "read values.yaml", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is() did not find the wrapped cause")
	}
}

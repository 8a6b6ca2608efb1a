package logging

import (
	"errors"
	"testing"

	helmerrors "helmbridge/cli/internal/errors"
)

func TestPresentError(t *testing.T) {
	if got := PresentError("install", nil); got != "" {
		t.Errorf("PresentError(nil) = %q, want empty", got)
	}
	got := PresentError("repo add", errors.New("fetch https://u:p@charts.example.com failed"))
	if want := "repo add: fetch https://*:*@charts.example.com failed"; got != want {
		t.Errorf("PresentError() = %q, want %q", got, want)
	}
}

func TestDiagnostic(t *testing.T) {
	payload := "  rendered manifest token=abc  \n"
	err := &helmerrors.E{Kind: helmerrors.InstallFailed, Message: "boom", Response: &payload}
	if got, want := Diagnostic(err), "rendered manifest token=***"; got != want {
		t.Errorf("Diagnostic() = %q, want %q", got, want)
	}
	if got := Diagnostic(helmerrors.New(helmerrors.RepoAddFailed, "boom")); got != "" {
		t.Errorf("Diagnostic() without payload = %q, want empty", got)
	}
	if got := Diagnostic(errors.New("plain")); got != "" {
		t.Errorf("Diagnostic(plain) = %q, want empty", got)
	}
}

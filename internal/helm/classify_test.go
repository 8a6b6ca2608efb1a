package helm

import (
	"bytes"
	"strings"
	"testing"

	"helmbridge/cli/internal/errors"
	"helmbridge/cli/internal/logging"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestClassifierProperties(t *testing.T) {
	logger := logging.Discard()
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("empty error list returns data verbatim", prop.ForAll(
		func(data string) bool {
			got, err := classifyData(logger, errors.ListFailed, nil, data)
			return err == nil && got == data
		},
		gen.AnyString(),
	))

	properties.Property("failure message is the first error only", prop.ForAll(
		func(first string, rest []string, data string) bool {
			errs := append([]string{first}, rest...)
			_, err := classifyData(logger, errors.InstallFailed, errs, data)
			e, ok := err.(*errors.E)
			return ok && e.Kind == errors.InstallFailed && e.Message == first
		},
		gen.AnyString(),
		gen.SliceOf(gen.AnyString()),
		gen.AnyString(),
	))

	properties.Property("secondary payload present iff data is non-empty", prop.ForAll(
		func(first, data string) bool {
			_, err := classifyData(logger, errors.UpgradeFailed, []string{first}, data)
			e, ok := err.(*errors.E)
			if !ok {
				return false
			}
			if data == "" {
				return e.Response == nil
			}
			return e.Response != nil && *e.Response == data
		},
		gen.AnyString(),
		gen.OneGenOf(gen.Const(""), gen.AnyString()),
	))

	properties.Property("effect-only operations never carry a payload", prop.ForAll(
		func(first string) bool {
			err := classifyEffect(logger, errors.RepoAddFailed, []string{first})
			e, ok := err.(*errors.E)
			return ok && e.Message == first && e.Response == nil
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestClassifyEffectSuccess(t *testing.T) {
	if err := classifyEffect(logging.Discard(), errors.RegistryLoginFailed, []string{}); err != nil {
		t.Errorf("classifyEffect() = %v, want nil", err)
	}
}

func TestClassifierLogsDiscardedCountOnly(t *testing.T) {
	t.Setenv(logging.EnvJSONLog, "1")
	var buf bytes.Buffer
	logger := logging.NewLogger("debug", &buf)

	_, err := classifyData(logger, errors.ListFailed, []string{"first", "secret-second", "secret-third"}, "")
	if err == nil {
		t.Fatal("classifyData() error = nil, want failure")
	}

	out := buf.String()
	if !strings.Contains(out, `"discarded":2`) {
		t.Errorf("log = %q, want discarded count", out)
	}
	if strings.Contains(out, "secret-second") || strings.Contains(out, "secret-third") {
		t.Errorf("log = %q, leaked discarded message content", out)
	}
}

package values

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoadNothing(t *testing.T) {
	got, err := Load(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLoadMergesFilesInOrder(t *testing.T) {
	base := writeFile(t, "base.yaml", "image:\n  repository: nginx\n  tag: \"1.25\"\nreplicas: 1\n")
	prod := writeFile(t, "prod.json", `{"image":{"tag":"1.27"},"replicas":3}`)

	got, err := Load([]string{base, prod}, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"image":{"repository":"nginx","tag":"1.27"},"replicas":3}`, string(got))
}

func TestLoadAppliesSets(t *testing.T) {
	base := writeFile(t, "values.yaml", "service:\n  type: ClusterIP\n")

	got, err := Load([]string{base}, []string{"service.type=NodePort,service.port=8080", "debug=true", "ratio=0.5", "note=hello", "gone=null"})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"service": {"type": "NodePort", "port": 8080},
		"debug": true,
		"ratio": 0.5,
		"note": "hello",
		"gone": null
	}`, string(got))
}

func TestLoadKeepsNonFiniteNumbersAsStrings(t *testing.T) {
	tests := []struct {
		set  string
		want string
	}{
		{"mode=NaN", `{"mode":"NaN"}`},
		{"mode=Inf", `{"mode":"Inf"}`},
		{"mode=infinity", `{"mode":"infinity"}`},
		{"mode=-Inf", `{"mode":"-Inf"}`},
	}
	for _, tt := range tests {
		t.Run(tt.set, func(t *testing.T) {
			got, err := Load(nil, []string{tt.set})
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestLoadErrors(t *testing.T) {
	list := writeFile(t, "list.yaml", "- a\n- b\n")
	broken := writeFile(t, "broken.yaml", "a: [\n")

	tests := []struct {
		name  string
		files []string
		sets  []string
	}{
		{"missing file", []string{filepath.Join(t.TempDir(), "nope.yaml")}, nil},
		{"top-level list", []string{list}, nil},
		{"invalid yaml", []string{broken}, nil},
		{"set without equals", nil, []string{"replicas"}},
		{"set with empty path segment", nil, []string{"a..b=1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.files, tt.sets)
			assert.Error(t, err)
		})
	}
}

func TestParseNonStringKeys(t *testing.T) {
	m, err := Parse([]byte("ports:\n  80: http\n  443: https\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"80": "http", "443": "https"}, m["ports"])
}

func TestParseEmptyDocument(t *testing.T) {
	m, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, m)
}

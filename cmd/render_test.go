package cmd

import (
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseTable(t *testing.T) {
	data := `[{"name":"demo","namespace":"apps","revision":"2","updated":"2025-01-02","status":"deployed","chart":"podinfo-6.5.4","app_version":"6.5.4"}]`

	table, err := releaseTable(data, true)
	require.NoError(t, err)
	assert.Equal(t, pterm.TableData{
		{"NAME", "NAMESPACE", "REVISION", "UPDATED", "STATUS", "CHART", "APP VERSION"},
		{"demo", "apps", "2", "2025-01-02", "deployed", "podinfo-6.5.4", "6.5.4"},
	}, table)

	table, err = releaseTable("", false)
	require.NoError(t, err)
	assert.Empty(t, table)

	_, err = releaseTable("not json", true)
	assert.Error(t, err)
}

func TestSearchTable(t *testing.T) {
	table, err := searchTable(`[{"name":"bitnami/nginx","version":"15.0.0","app_version":"1.25.0","description":"NGINX"}]`)
	require.NoError(t, err)
	require.Len(t, table, 2)
	assert.Equal(t, []string{"bitnami/nginx", "15.0.0", "1.25.0", "NGINX"}, table[1])

	table, err = searchTable("")
	require.NoError(t, err)
	assert.Len(t, table, 1)
}

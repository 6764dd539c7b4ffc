package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCatalogValidateBuiltin(t *testing.T) {
	out, err := runRoot(t, "catalog", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "jobizz")
	assert.Contains(t, out, "PROJECT_03")
	assert.Contains(t, out, "OK: 3 projects")
}

func TestCatalogValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	data := `projects:
  - key: solo
    title: Solo
    links:
      repository: https://example.com/solo
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out, err := runRoot(t, "catalog", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "solo")
	assert.Contains(t, out, "OK: 1 projects")
}

func TestCatalogValidateRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	require.NoError(t, os.WriteFile(path, []byte("projects:\n  - key: Bad Key\n"), 0o644))

	_, err := runRoot(t, "catalog", "validate", path)
	assert.Error(t, err)
}

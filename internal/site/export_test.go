package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neozi12/portfolio/internal/catalog"
)

func TestExport(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	page, err := NewRenderer(testHero(), 0).Page(c)
	require.NoError(t, err)
	tmpl, err := Templates()
	require.NoError(t, err)

	shots := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(shots, "mia-1.png"), []byte("png"), 0o644))

	out := filepath.Join(t.TempDir(), "site")
	n, err := Export(out, tmpl, page, shots)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 4)

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `href="https://github.com/LeoNet2024/Eventy.git"`)
	assert.NotContains(t, string(index), "/go/")

	assert.FileExists(t, filepath.Join(out, "static", "css", "style.css"))
	assert.FileExists(t, filepath.Join(out, "static", "js", "boot.js"))
	assert.FileExists(t, filepath.Join(out, "screenshots", "mia-1.png"))
}

func TestExport_MissingScreenshots(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	page, err := NewRenderer(testHero(), 0).Page(c)
	require.NoError(t, err)
	tmpl, err := Templates()
	require.NoError(t, err)

	out := t.TempDir()
	_, err = Export(out, tmpl, page, filepath.Join(out, "nope"))
	require.NoError(t, err)
	assert.NoDirExists(t, filepath.Join(out, "screenshots"))
}

package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
projects:
  - key: alpha
    title: Alpha
    links:
      repository: https://example.com/alpha
    screenshots:
      - src: /screenshots/alpha-1.png
        alt: First
  - key: beta
    number: FEATURED
    title: Beta
    links:
      repository: https://example.com/beta
      demo: https://beta.example.com
`

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"jobizz", "mia", "eventy"}, c.Keys())

	p, err := c.Get("mia")
	require.NoError(t, err)
	assert.Equal(t, "PROJECT_02", p.Number)
	assert.Len(t, p.Screenshots, 10)
	assert.Equal(t, "/screenshots/mia-1.png", p.Screenshots[0].Src)
	assert.Empty(t, p.Links.Demo)
	require.Len(t, p.Snippets, 1)
	assert.Contains(t, p.Snippets[0].Code, "Object.keys(slots)")
}

func TestParse_OrderAndNumbers(t *testing.T) {
	c, err := Parse([]byte(minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	ps := c.Projects()
	assert.Equal(t, "alpha", ps[0].Key)
	assert.Equal(t, "PROJECT_01", ps[0].Number)
	assert.Equal(t, "FEATURED", ps[1].Number)
	assert.Equal(t, "https://beta.example.com", ps[1].LinkURL(LinkDemo))
	assert.Equal(t, "https://example.com/alpha", ps[0].LinkURL(LinkRepository))
	assert.Equal(t, "", ps[0].LinkURL("twitter"))
}

func TestGet_NotFound(t *testing.T) {
	c, err := Parse([]byte(minimalYAML))
	require.NoError(t, err)

	_, err = c.Get("gamma")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestNew_Validation(t *testing.T) {
	repo := Links{Repository: "https://example.com/r"}

	tests := []struct {
		name     string
		projects []Project
		errMsg   string
	}{
		{
			name:     "empty key",
			projects: []Project{{Title: "x", Links: repo}},
			errMsg:   "invalid project key",
		},
		{
			name:     "key with spaces",
			projects: []Project{{Key: "my project", Title: "x", Links: repo}},
			errMsg:   "invalid project key",
		},
		{
			name:     "missing title",
			projects: []Project{{Key: "a", Links: repo}},
			errMsg:   "title is required",
		},
		{
			name:     "missing repository",
			projects: []Project{{Key: "a", Title: "A"}},
			errMsg:   "repository link is required",
		},
		{
			name:     "relative repository",
			projects: []Project{{Key: "a", Title: "A", Links: Links{Repository: "github.com/x"}}},
			errMsg:   "not an absolute",
		},
		{
			name:     "bad demo",
			projects: []Project{{Key: "a", Title: "A", Links: Links{Repository: "https://x.dev", Demo: "javascript:alert(1)"}}},
			errMsg:   "demo link",
		},
		{
			name:     "screenshot without src",
			projects: []Project{{Key: "a", Title: "A", Links: repo, Screenshots: []Screenshot{{Alt: "x"}}}},
			errMsg:   "has no src",
		},
		{
			name:     "snippet without code",
			projects: []Project{{Key: "a", Title: "A", Links: repo, Snippets: []Snippet{{File: "x.go"}}}},
			errMsg:   "has no code",
		},
		{
			name: "duplicate key",
			projects: []Project{
				{Key: "a", Title: "A", Links: repo},
				{Key: "a", Title: "B", Links: repo},
			},
			errMsg: "duplicate project key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.projects)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("projects: [unterminated"))
	assert.Error(t, err)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestStore_Reload(t *testing.T) {
	def, err := Default()
	require.NoError(t, err)
	s := NewStore(def, nil)

	path := filepath.Join(t.TempDir(), "projects.yaml")
	require.NoError(t, os.WriteFile(path, []byte("projects: ["), 0o644))
	assert.Error(t, s.Reload(path))
	assert.Same(t, def, s.Current(), "failed reload keeps the previous catalog")

	require.NoError(t, os.WriteFile(path, []byte(minimalYAML), 0o644))
	require.NoError(t, s.Reload(path))
	assert.Equal(t, []string{"alpha", "beta"}, s.Current().Keys())
}

func TestStore_Watch(t *testing.T) {
	def, err := Default()
	require.NoError(t, err)
	s := NewStore(def, nil)

	path := filepath.Join(t.TempDir(), "projects.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalYAML), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, s.Watch(ctx, path, 10*time.Millisecond))

	updated := minimalYAML + `
  - key: gamma
    title: Gamma
    links:
      repository: https://example.com/gamma
`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	assert.Eventually(t, func() bool {
		return s.Current().Len() == 3
	}, 2*time.Second, 10*time.Millisecond)
}

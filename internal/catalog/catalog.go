// Package catalog holds the static table of projects shown on the portfolio.
//
// A Catalog is built once from YAML and never mutated afterwards; reloads
// produce a new Catalog that replaces the old one in a Store.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed projects.yaml
var defaultYAML []byte

// ErrNotFound is returned by Get for unknown keys.
var ErrNotFound = errors.New("project not found")

var keyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Catalog is an ordered, read-only set of projects.
type Catalog struct {
	projects []Project
	index    map[string]int
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultYAML)
}

// LoadFile reads and validates a catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return New(doc.Projects)
}

// New builds a catalog from projects in display order.
func New(projects []Project) (*Catalog, error) {
	c := &Catalog{
		projects: make([]Project, len(projects)),
		index:    make(map[string]int, len(projects)),
	}
	copy(c.projects, projects)

	for i := range c.projects {
		p := &c.projects[i]
		if p.Number == "" {
			p.Number = fmt.Sprintf("PROJECT_%02d", i+1)
		}
		if err := validate(p); err != nil {
			return nil, err
		}
		if _, dup := c.index[p.Key]; dup {
			return nil, fmt.Errorf("duplicate project key %q", p.Key)
		}
		c.index[p.Key] = i
	}
	return c, nil
}

func validate(p *Project) error {
	if !keyPattern.MatchString(p.Key) {
		return fmt.Errorf("invalid project key %q: must match %s", p.Key, keyPattern)
	}
	if p.Title == "" {
		return fmt.Errorf("project %s: title is required", p.Key)
	}
	if p.Links.Repository == "" {
		return fmt.Errorf("project %s: repository link is required", p.Key)
	}
	if err := checkURL(p.Links.Repository); err != nil {
		return fmt.Errorf("project %s: repository link: %w", p.Key, err)
	}
	if p.Links.Demo != "" {
		if err := checkURL(p.Links.Demo); err != nil {
			return fmt.Errorf("project %s: demo link: %w", p.Key, err)
		}
	}
	for i, s := range p.Screenshots {
		if s.Src == "" {
			return fmt.Errorf("project %s: screenshot %d has no src", p.Key, i)
		}
	}
	for i, s := range p.Snippets {
		if s.Code == "" {
			return fmt.Errorf("project %s: snippet %d has no code", p.Key, i)
		}
	}
	return nil
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%q is not an absolute http(s) URL", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%q has no host", raw)
	}
	return nil
}

// Len returns the number of projects.
func (c *Catalog) Len() int { return len(c.projects) }

// Keys returns project keys in display order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.projects))
	for i, p := range c.projects {
		keys[i] = p.Key
	}
	return keys
}

// Projects returns a copy of all projects in display order.
func (c *Catalog) Projects() []Project {
	out := make([]Project, len(c.projects))
	copy(out, c.projects)
	return out
}

// Get returns the project with the given key.
func (c *Catalog) Get(key string) (*Project, error) {
	i, ok := c.index[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	p := c.projects[i]
	return &p, nil
}

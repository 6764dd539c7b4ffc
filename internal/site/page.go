package site

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/neozi12/portfolio/web"
)

// Page is everything the index template needs.
type Page struct {
	Hero     HeroView
	Nav      []NavLink
	Sections []Section
	Autoplay int // carousel autoplay in milliseconds, 0 = off

	// TrackLinks routes outbound project links through /go/ so clicks are counted.
	TrackLinks bool
}

// HeroView is the hero section. Intro is trusted configuration and may
// contain markup.
type HeroView struct {
	Owner     string
	Welcome   string
	Intro     string
	IntroHTML template.HTML
}

type NavLink struct {
	Href  string
	Label string
}

// Section is one rendered project.
type Section struct {
	ID          string
	Number      string
	Title       string
	Tagline     string
	Description template.HTML
	TechStack   []string
	Features    []string
	Snippets    []SnippetView
	Screenshots []Slide
	Repository  string
	Demo        string
}

type SnippetView struct {
	File        string
	Language    string
	Description string
	HTML        template.HTML
}

// Slide is one carousel image and its dot.
type Slide struct {
	Index  int
	Src    string
	Alt    string
	Active bool
}

// Number is the 1-based position used in dot labels.
func (s Slide) Number() int { return s.Index + 1 }

// IndexTemplate is the name of the page template.
const IndexTemplate = "index.html"

// Templates parses every embedded HTML template.
func Templates() (*template.Template, error) {
	sub, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New("").ParseFS(sub, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return tmpl, nil
}

// ExecutePage writes the index page.
func ExecutePage(w io.Writer, tmpl *template.Template, page *Page) error {
	if err := tmpl.ExecuteTemplate(w, IndexTemplate, page); err != nil {
		return fmt.Errorf("executing %s: %w", IndexTemplate, err)
	}
	return nil
}

// Package site turns the project catalog into the view model for the
// portfolio page and renders it with the embedded templates.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"

	"github.com/neozi12/portfolio/internal/catalog"
)

// Markdown renders descriptions and highlights code snippets.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown configures goldmark with GFM and chroma highlighting. Raw HTML
// in catalog text is escaped.
func NewMarkdown(style string) *Markdown {
	if style == "" {
		style = "monokai"
	}
	return &Markdown{md: goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
			),
		),
	)}
}

// Text renders a markdown paragraph.
func (m *Markdown) Text(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Code renders source as a highlighted block for the given language label.
func (m *Markdown) Code(language, code string) (template.HTML, error) {
	fence := fenceFor(code)
	src := fence + lexerName(language) + "\n" + code + "\n" + fence + "\n"
	return m.Text(src)
}

// fenceFor returns a backtick fence longer than any run inside code.
func fenceFor(code string) string {
	longest, run := 0, 0
	for _, r := range code {
		if r == '`' {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	return strings.Repeat("`", max(3, longest+1))
}

var lexerAliases = map[string]string{
	"javascript": "javascript",
	"js":         "javascript",
	"jsx":        "jsx",
	"typescript": "typescript",
	"ts":         "typescript",
	"golang":     "go",
	"c++":        "cpp",
	"c#":         "csharp",
	"shell":      "bash",
}

// lexerName maps a display label such as "JavaScript" to a chroma lexer name.
func lexerName(language string) string {
	l := strings.ToLower(strings.TrimSpace(language))
	if alias, ok := lexerAliases[l]; ok {
		return alias
	}
	return strings.ReplaceAll(l, " ", "")
}

// Renderer builds pages from catalogs.
type Renderer struct {
	md       *Markdown
	hero     Hero
	autoplay int
}

// Hero is the landing section text.
type Hero struct {
	Owner   string
	Welcome string
	Intro   string
}

// NewRenderer creates a renderer. autoplayMillis of zero disables carousel autoplay.
func NewRenderer(hero Hero, autoplayMillis int) *Renderer {
	return &Renderer{md: NewMarkdown(""), hero: hero, autoplay: autoplayMillis}
}

// Page builds the full page view for a catalog.
func (r *Renderer) Page(c *catalog.Catalog) (*Page, error) {
	page := &Page{
		Hero: HeroView{
			Owner:     r.hero.Owner,
			Welcome:   r.hero.Welcome,
			Intro:     r.hero.Intro,
			IntroHTML: template.HTML(r.hero.Intro),
		},
		Nav:      []NavLink{{Href: "#hero", Label: "Home"}},
		Autoplay: r.autoplay,
	}

	for _, p := range c.Projects() {
		sec, err := r.section(p)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", p.Key, err)
		}
		page.Sections = append(page.Sections, sec)
		page.Nav = append(page.Nav, NavLink{Href: "#" + p.Key, Label: p.Title})
	}
	return page, nil
}

func (r *Renderer) section(p catalog.Project) (Section, error) {
	desc, err := r.md.Text(p.Description)
	if err != nil {
		return Section{}, err
	}

	sec := Section{
		ID:          p.Key,
		Number:      p.Number,
		Title:       p.Title,
		Tagline:     p.Tagline,
		Description: desc,
		TechStack:   p.TechStack,
		Features:    p.Features,
		Repository:  p.Links.Repository,
		Demo:        p.Links.Demo,
	}

	for i, s := range p.Screenshots {
		sec.Screenshots = append(sec.Screenshots, Slide{
			Index:  i,
			Src:    s.Src,
			Alt:    s.Alt,
			Active: i == 0,
		})
	}

	for _, s := range p.Snippets {
		code, err := r.md.Code(s.Language, s.Code)
		if err != nil {
			return Section{}, err
		}
		sec.Snippets = append(sec.Snippets, SnippetView{
			File:        s.File,
			Language:    s.Language,
			Description: s.Description,
			HTML:        code,
		})
	}
	return sec, nil
}

package catalog

// Project is one showcase entry on the page.
type Project struct {
	Key         string       `yaml:"key" json:"key"`
	Number      string       `yaml:"number" json:"number"`
	Title       string       `yaml:"title" json:"title"`
	Tagline     string       `yaml:"tagline" json:"tagline"`
	Description string       `yaml:"description" json:"description"`
	TechStack   []string     `yaml:"tech_stack" json:"tech_stack"`
	Features    []string     `yaml:"features" json:"features"`
	Snippets    []Snippet    `yaml:"snippets" json:"snippets"`
	Screenshots []Screenshot `yaml:"screenshots" json:"screenshots"`
	Links       Links        `yaml:"links" json:"links"`
}

// Snippet is a highlighted excerpt of the project's source.
type Snippet struct {
	File        string `yaml:"file" json:"file"`
	Language    string `yaml:"language" json:"language"`
	Description string `yaml:"description" json:"description,omitempty"`
	Code        string `yaml:"code" json:"code"`
}

// Screenshot is one carousel image.
type Screenshot struct {
	Src string `yaml:"src" json:"src"`
	Alt string `yaml:"alt" json:"alt"`
}

// Links are the project's outbound URLs. Demo is optional.
type Links struct {
	Repository string `yaml:"repository" json:"repository"`
	Demo       string `yaml:"demo" json:"demo,omitempty"`
}

// Link kinds accepted by LinkURL.
const (
	LinkRepository = "repo"
	LinkDemo       = "demo"
)

// LinkURL returns the URL for a link kind, or "" when the project has none.
func (p *Project) LinkURL(kind string) string {
	switch kind {
	case LinkRepository:
		return p.Links.Repository
	case LinkDemo:
		return p.Links.Demo
	}
	return ""
}

type document struct {
	Projects []Project `yaml:"projects"`
}

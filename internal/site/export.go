package site

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/neozi12/portfolio/web"
)

// Export writes the page as a static site under dir: index.html, the
// embedded assets under static/ and, if screenshotsDir exists, a copy of
// it under screenshots/. It returns the number of files written.
func Export(dir string, tmpl *template.Template, page *Page, screenshotsDir string) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating %s: %w", dir, err)
	}

	f, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return 0, fmt.Errorf("creating index.html: %w", err)
	}
	if err := ExecutePage(f, tmpl, page); err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("writing index.html: %w", err)
	}
	written := 1

	n, err := copyTree(web.Static, "static", filepath.Join(dir, "static"))
	written += n
	if err != nil {
		return written, err
	}

	if screenshotsDir == "" {
		return written, nil
	}
	if _, err := os.Stat(screenshotsDir); os.IsNotExist(err) {
		return written, nil
	}
	n, err = copyTree(os.DirFS(screenshotsDir), ".", filepath.Join(dir, "screenshots"))
	return written + n, err
}

func copyTree(src fs.FS, root, dst string) (int, error) {
	count := 0
	err := fs.WalkDir(src, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		in, err := src.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()

		out, err := os.Create(target)
		if err != nil {
			return err
		}
		if _, err := io.Copy(out, in); err != nil {
			out.Close()
			return err
		}
		count++
		return out.Close()
	})
	if err != nil {
		return count, fmt.Errorf("copying %s: %w", root, err)
	}
	return count, nil
}

package assets

import (
	"io/fs"
	"testing"
)

var expectedTemplates = []string{
	"react/layout.tsx.tmpl",
	"react/hero.tsx.tmpl",
	"react/product_grid.tsx.tmpl",
	"react/app.tsx.tmpl",
	"shopify/layout.liquid.tmpl",
	"html/index.html.tmpl",
}

func TestTemplates(t *testing.T) {
	fsys := Templates()
	for _, name := range expectedTemplates {
		t.Run(name, func(t *testing.T) {
			src, err := fs.ReadFile(fsys, name)
			if err != nil {
				t.Fatalf("ReadFile(%q) failed: %v", name, err)
			}
			if len(src) == 0 {
				t.Errorf("template %q is empty", name)
			}
		})
	}
}

func TestTemplatesMissing(t *testing.T) {
	if _, err := fs.Stat(Templates(), "nonexistent.tmpl"); err == nil {
		t.Error("expected an error for a missing template")
	}
}

func TestTemplatesOnlyTemplates(t *testing.T) {
	var files []string
	err := fs.WalkDir(Templates(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	if len(files) != len(expectedTemplates) {
		t.Errorf("expected %d templates, got %v", len(expectedTemplates), files)
	}
}

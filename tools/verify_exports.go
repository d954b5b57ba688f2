package main

import (
	"archive/zip"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/phravins/pagecraft/internal/archive"
	"github.com/phravins/pagecraft/internal/content"
	"github.com/phravins/pagecraft/internal/export"
	"github.com/phravins/pagecraft/internal/layout"
)

func main() {
	fmt.Println("Verifying exports...")

	testDir, err := os.MkdirTemp("", "pagecraft_verify")
	if err != nil {
		fmt.Printf("FAILED: %v\n", err)
		os.Exit(1)
	}
	defer os.RemoveAll(testDir)

	// No backend: every prompt exercises the keyword defaults.
	gen := content.NewGenerator(nil, nil)

	prompts := []string{
		"a neighbourhood restaurant",
		"sustainable clothing label",
		"developer tooling software",
		"organic cosmetic line",
		"boutique fitness studio",
		"a hardware store",
	}

	for _, prompt := range prompts {
		res := gen.Generate(context.Background(), prompt)
		cfg := layout.Apply(layout.Default(), res.Patch(prompt))

		for _, f := range export.Formats {
			fmt.Printf("Test: %s / %s... ", prompt, f)
			dir := filepath.Join(testDir, string(f), string(cfg.BrandOr("generic")))
			path, err := archive.Save(dir, cfg, f)
			if err != nil {
				fmt.Printf("FAILED: %v\n", err)
				os.Exit(1)
			}

			zr, err := zip.OpenReader(path)
			if err != nil {
				fmt.Printf("FAILED (Read Error): %v\n", err)
				os.Exit(1)
			}
			n := len(zr.File)
			zr.Close()
			if n == 0 {
				fmt.Printf("FAILED (empty archive)\n")
				os.Exit(1)
			}
			fmt.Printf("PASSED (%d files)\n", n)
		}
	}

	fmt.Println("All export checks passed.")
}

// Package archive packages rendered layouts as export.zip.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/phravins/pagecraft/internal/export"
	"github.com/phravins/pagecraft/internal/layout"
	"github.com/phravins/pagecraft/pkg/utils"
)

// Name is the file name of every archive.
const Name = "export.zip"

// ModTime is stamped on every entry so identical input gives identical bytes.
var ModTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

type File struct {
	Path string
	Body string
}

// Files renders the archive contents for format. React gets the section
// components next to the layout.
func Files(cfg layout.Configuration, format export.Format) ([]File, error) {
	main, err := export.Render(cfg, format)
	if err != nil {
		return nil, err
	}
	files := []File{{Path: export.FileName(format), Body: main}}

	if format != export.FormatReact {
		return files, nil
	}
	for _, c := range export.SectionComponents {
		body, err := export.Render(cfg, format, export.WithComponent(c))
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", c, err)
		}
		files = append(files, File{Path: export.ComponentFileName(c), Body: body})
	}
	return files, nil
}

// Write streams files to w as a zip archive, in order.
func Write(w io.Writer, files []File) error {
	zipWriter := zip.NewWriter(w)

	for _, f := range files {
		header := &zip.FileHeader{
			Name:     f.Path,
			Method:   zip.Deflate,
			Modified: ModTime,
		}
		entry, err := zipWriter.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("create %s: %w", f.Path, err)
		}
		if _, err := io.WriteString(entry, f.Body); err != nil {
			return fmt.Errorf("write %s: %w", f.Path, err)
		}
	}

	return zipWriter.Close()
}

// Build renders and zips cfg in memory.
func Build(cfg layout.Configuration, format export.Format) ([]byte, error) {
	files, err := Files(cfg, format)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := Write(&buf, files); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes export.zip into dir and returns its path. An existing archive
// is replaced.
func Save(dir string, cfg layout.Configuration, format export.Format) (string, error) {
	data, err := Build(cfg, format)
	if err != nil {
		return "", err
	}
	if err := utils.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(dir, Name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write archive: %w", err)
	}
	return path, nil
}

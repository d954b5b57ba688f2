package layout

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/phravins/pagecraft/pkg/logger"
)

// MaxImageBytes caps a single upload.
const MaxImageBytes = 5 << 20

// ImageSource is one selected file. ContentType may be empty, in which case
// the type is sniffed from the data.
type ImageSource struct {
	Name        string
	ContentType string
	Open        func() (io.ReadCloser, error)
}

// FileImage describes a file on disk, typed by its extension.
func FileImage(path string) ImageSource {
	return ImageSource{
		Name:        filepath.Base(path),
		ContentType: mime.TypeByExtension(strings.ToLower(filepath.Ext(path))),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}

// Skipped records a file that did not become an image.
type Skipped struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Image is an accepted upload: its data URL and a caption taken from the
// file name.
type Image struct {
	Src     string `json:"src"`
	Caption string `json:"caption"`
}

// ReadImages converts sources to data URLs one at a time, in order. Non-image
// and unreadable files are logged and skipped; the rest still go through.
func ReadImages(ctx context.Context, log *slog.Logger, sources []ImageSource) ([]Image, []Skipped) {
	log = log.With(logger.Scope("layout.images"))

	images := make([]Image, 0, len(sources))
	var skipped []Skipped

	for i, src := range sources {
		if err := ctx.Err(); err != nil {
			for _, rest := range sources[i:] {
				skipped = append(skipped, Skipped{Name: rest.Name, Reason: err.Error()})
			}
			break
		}

		declared := normalizeType(src.ContentType)
		if declared != "" && !isImageType(declared) {
			log.Warn("file is not an image, skipping", slog.String("file", src.Name), slog.String("type", declared))
			skipped = append(skipped, Skipped{Name: src.Name, Reason: "not an image: " + declared})
			continue
		}

		data, err := readLimited(src)
		if err != nil {
			log.Error("error processing image", slog.String("file", src.Name), logger.Error(err))
			skipped = append(skipped, Skipped{Name: src.Name, Reason: err.Error()})
			continue
		}

		mimeType := declared
		if mimeType == "" {
			mimeType = normalizeType(http.DetectContentType(data))
			if !isImageType(mimeType) {
				log.Warn("file is not an image, skipping", slog.String("file", src.Name), slog.String("type", mimeType))
				skipped = append(skipped, Skipped{Name: src.Name, Reason: "not an image: " + mimeType})
				continue
			}
		}

		images = append(images, Image{Src: DataURL(mimeType, data), Caption: CaptionFromFilename(src.Name)})
		log.Debug("processed image", slog.Int("index", i+1), slog.String("file", src.Name))
	}

	return images, skipped
}

// DataURL encodes data as a base64 data URL.
func DataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func readLimited(src ImageSource) ([]byte, error) {
	if src.Open == nil {
		return nil, fmt.Errorf("no reader for %s", src.Name)
	}
	rc, err := src.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, MaxImageBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxImageBytes {
		return nil, fmt.Errorf("larger than %d bytes", MaxImageBytes)
	}
	return data, nil
}

func normalizeType(t string) string {
	t = strings.TrimSpace(t)
	if t == "" || t == "application/octet-stream" {
		return ""
	}
	if mt, _, err := mime.ParseMediaType(t); err == nil {
		return mt
	}
	return strings.ToLower(t)
}

func isImageType(t string) bool {
	return strings.HasPrefix(t, "image/")
}

// CaptionFromFilename turns "summer-Dress_Red.png" into "summer dress red".
func CaptionFromFilename(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))

	var b strings.Builder
	for i, r := range base {
		switch {
		case r == '-' || r == '_':
			b.WriteRune(' ')
		case r >= 'A' && r <= 'Z':
			if i > 0 {
				b.WriteRune(' ')
			}
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Package images loads and validates photo payloads for the analysis
// pipeline.
package images

import (
	"context"
	"crypto/md5"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Loader reads photos from local paths or URLs and enforces the configured
// size and type constraints.
type Loader struct {
	HTTPClient       *http.Client
	MaxBytes         int64
	AllowedMIMETypes []string
}

// NewLoader creates a loader with the given constraints.
func NewLoader(maxBytes int64, allowedTypes []string) *Loader {
	return &Loader{
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		MaxBytes:         maxBytes,
		AllowedMIMETypes: allowedTypes,
	}
}

// Load reads the image behind ref, which may be a local file path or an
// http(s) URL, and validates it against the size and type constraints.
func (l *Loader) Load(ctx context.Context, ref string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		data, err = l.download(ctx, ref)
	} else {
		data, err = os.ReadFile(ref)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	if err := l.Validate(data); err != nil {
		return nil, err
	}
	return data, nil
}

// Validate checks the payload against the size limit and allowed MIME
// types (sniffed from content, not trusted from the caller).
func (l *Loader) Validate(data []byte) error {
	if l.MaxBytes > 0 && int64(len(data)) > l.MaxBytes {
		return fmt.Errorf("image too large: %d bytes (max %d)", len(data), l.MaxBytes)
	}

	mimeType := http.DetectContentType(data)
	for _, allowed := range l.AllowedMIMETypes {
		if mimeType == allowed {
			return nil
		}
	}
	return fmt.Errorf("unsupported image type %s", mimeType)
}

func (l *Loader) download(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download image: HTTP %d", resp.StatusCode)
	}

	reader := io.Reader(resp.Body)
	if l.MaxBytes > 0 {
		reader = io.LimitReader(resp.Body, l.MaxBytes+1)
	}
	return io.ReadAll(reader)
}

// Save writes an uploaded photo under dir with a content-hashed filename
// and returns the stored path.
func (l *Loader) Save(data []byte, originalName, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %w", err)
	}

	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = ".jpg"
	}
	filename := fmt.Sprintf("%x%s", md5.Sum(data), ext)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	slog.Info("Image saved", "filename", filename, "bytes", len(data))
	return path, nil
}

// Dimensions decodes the image header and returns width and height.
func Dimensions(path string) (int, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer file.Close()

	img, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, err
	}
	return img.Width, img.Height, nil
}

package images

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

func TestValidate(t *testing.T) {
	photo := pngBytes(t, 2, 2)

	tests := []struct {
		name    string
		loader  *Loader
		data    []byte
		wantErr string
	}{
		{
			name:   "valid png",
			loader: NewLoader(1<<20, []string{"image/png", "image/jpeg"}),
			data:   photo,
		},
		{
			name:    "too large",
			loader:  NewLoader(10, []string{"image/png"}),
			data:    photo,
			wantErr: "too large",
		},
		{
			name:    "disallowed type",
			loader:  NewLoader(1<<20, []string{"image/jpeg"}),
			data:    photo,
			wantErr: "unsupported image type",
		},
		{
			name:    "not an image",
			loader:  NewLoader(1<<20, []string{"image/png"}),
			data:    []byte("plain text pretending to be a photo"),
			wantErr: "unsupported image type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.loader.Validate(tt.data)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate returned error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadLocalFile(t *testing.T) {
	photo := pngBytes(t, 2, 2)
	path := filepath.Join(t.TempDir(), "photo.png")
	if err := os.WriteFile(path, photo, 0644); err != nil {
		t.Fatalf("writing test photo: %v", err)
	}

	loader := NewLoader(1<<20, []string{"image/png"})
	data, err := loader.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !bytes.Equal(data, photo) {
		t.Error("loaded bytes differ from file contents")
	}
}

func TestLoadURL(t *testing.T) {
	photo := pngBytes(t, 2, 2)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(photo)
	}))
	defer server.Close()

	loader := NewLoader(1<<20, []string{"image/png"})
	data, err := loader.Load(context.Background(), server.URL+"/photo.png")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !bytes.Equal(data, photo) {
		t.Error("downloaded bytes differ from served contents")
	}
}

func TestLoadURLNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	loader := NewLoader(1<<20, []string{"image/png"})
	if _, err := loader.Load(context.Background(), server.URL+"/missing.png"); err == nil {
		t.Fatal("expected error for HTTP 404")
	}
}

func TestSaveContentHashedFilename(t *testing.T) {
	dir := t.TempDir()
	photo := pngBytes(t, 2, 2)

	loader := NewLoader(1<<20, []string{"image/png"})
	path, err := loader.Save(photo, "vacanza.png", dir)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if filepath.Ext(path) != ".png" {
		t.Errorf("saved path %q does not keep the extension", path)
	}

	// Same content must land at the same path.
	again, err := loader.Save(photo, "altra-copia.png", dir)
	if err != nil {
		t.Fatalf("second Save returned error: %v", err)
	}
	if again != path {
		t.Errorf("same bytes saved to %q and %q", path, again)
	}

	saved, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved photo: %v", err)
	}
	if !bytes.Equal(saved, photo) {
		t.Error("saved bytes differ from input")
	}
}

func TestSaveDefaultsExtension(t *testing.T) {
	loader := NewLoader(1<<20, []string{"image/png"})
	path, err := loader.Save(pngBytes(t, 1, 1), "senza-estensione", t.TempDir())
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if filepath.Ext(path) != ".jpg" {
		t.Errorf("saved path %q, want .jpg default extension", path)
	}
}

func TestDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.png")
	if err := os.WriteFile(path, pngBytes(t, 4, 3), 0644); err != nil {
		t.Fatalf("writing test photo: %v", err)
	}

	w, h, err := Dimensions(path)
	if err != nil {
		t.Fatalf("Dimensions returned error: %v", err)
	}
	if w != 4 || h != 3 {
		t.Errorf("Dimensions = %dx%d, want 4x3", w, h)
	}
}

package loader

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "go-image-quality/internal/errors"
)

func encodedPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.SetRGBA(x, y, color.RGBA{100, 150, 200, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestHTTPSource_FetchSuccess(t *testing.T) {
	payload := encodedPNG(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(payload)
	}))
	defer server.Close()

	img, err := NewHTTPSource(5 * time.Second).Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if img.Bounds().Dx() != 10 {
		t.Errorf("Expected 10px wide image, got %v", img.Bounds())
	}
}

func TestHTTPSource_ClientErrorNotRetried(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewHTTPSource(5 * time.Second).Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Expected error for 404 response, got nil")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeNetwork) {
		t.Errorf("Expected network error type, got %v", err)
	}
	if requests != 1 {
		t.Errorf("Expected a single request for a client error, got %d", requests)
	}
}

func TestHTTPSource_ServerErrorRetried(t *testing.T) {
	payload := encodedPNG(t)
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write(payload)
	}))
	defer server.Close()

	img, err := NewHTTPSource(10 * time.Second).Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected retry to succeed, got %v", err)
	}
	if img == nil {
		t.Fatal("Expected decoded image after retry")
	}
	if requests != 2 {
		t.Errorf("Expected 2 requests, got %d", requests)
	}
}

func TestHTTPSource_UndecodableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not an image</html>"))
	}))
	defer server.Close()

	_, err := NewHTTPSource(5 * time.Second).Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Expected error for undecodable body, got nil")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("Expected validation error type, got %v", err)
	}
}

func TestHTTPSource_InvalidURL(t *testing.T) {
	_, err := NewHTTPSource(time.Second).Fetch(context.Background(), "http://\x00bad")
	if err == nil {
		t.Fatal("Expected error for malformed URL, got nil")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("Expected validation error type, got %v", err)
	}
}

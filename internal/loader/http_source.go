package loader

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"time"

	apperrors "go-image-quality/internal/errors"
)

const fetchAttempts = 3

// HTTPSource fetches images over HTTP for URL-based assessment
// requests.
type HTTPSource struct {
	client *http.Client
}

// NewHTTPSource creates an HTTP image source with pooling and timeouts
// tuned for single image downloads.
func NewHTTPSource(timeout time.Duration) *HTTPSource {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     30 * time.Second,

		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,

		MaxResponseHeaderBytes: 4096,
	}

	return &HTTPSource{
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("too many redirects (limit: 3)")
				}
				return nil
			},
		},
	}
}

// Fetch downloads and decodes the image at imageURL. Transient failures
// (network errors, 5xx) are retried with a linear backoff; 4xx
// responses fail immediately.
func (s *HTTPSource) Fetch(ctx context.Context, imageURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid image URL", err)
	}
	req.Header.Set("Accept", "image/jpeg, image/png, image/webp, image/gif, */*")
	req.Header.Set("User-Agent", "go-image-quality/1.0")

	var lastErr error
	for attempt := 0; attempt < fetchAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, apperrors.NewTimeoutError("image fetch cancelled", ctx.Err())
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}

		resp, err := s.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusOK {
			img, err := Decode(resp.Body)
			resp.Body.Close()
			if err != nil {
				return nil, err
			}
			return img, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("unexpected status code %d", resp.StatusCode)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			// Client errors are not retryable.
			break
		}
	}

	return nil, apperrors.NewNetworkError(
		fmt.Sprintf("failed to fetch image after %d attempts", fetchAttempts), lastErr)
}

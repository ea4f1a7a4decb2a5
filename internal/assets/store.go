// Package assets resolves image references (company logos, employee
// photos, QR codes) to raster bytes. References are paths relative to a
// media root; absolute http(s) URLs are fetched over the network the
// same way remote object storage is.
package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const httpTimeout = time.Second * 5

type Store struct {
	root       string
	httpClient *http.Client
}

func NewStore(root string) *Store {
	return &Store{
		root: root,
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
	}
}

// Load resolves a reference to raster bytes. Callers that draw images
// treat any error here as recoverable: the region is skipped, not the
// whole document.
func (s *Store) Load(ctx context.Context, ref string) ([]byte, error) {
	if ref == "" {
		return nil, fmt.Errorf("empty asset reference")
	}

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return s.fetch(ctx, ref)
	}

	data, err := os.ReadFile(filepath.Join(s.root, filepath.Clean(ref)))
	if err != nil {
		return nil, fmt.Errorf("read asset %s: %w", ref, err)
	}

	return data, nil
}

// Save persists generated assets (QR codes) under the media root.
func (s *Store) Save(_ context.Context, ref string, data []byte) error {
	path := filepath.Join(s.root, filepath.Clean(ref))

	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return fmt.Errorf("create asset dir: %w", err)
	}

	err = os.WriteFile(path, data, 0o644)
	if err != nil {
		return fmt.Errorf("write asset %s: %w", ref, err)
	}

	return nil
}

func (s *Store) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return body, nil
}

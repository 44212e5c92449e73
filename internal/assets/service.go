package assets

import (
	"context"
	"io"
	"path"
	"strings"

	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/shared/storage/object"
)

// Asset describes a stored asset. The URL is what content fields like
// profileImage or companyInfo.logo carry; the content layer treats it as an
// opaque string.
type Asset struct {
	URL        string `json:"url"`
	StorageKey string `json:"storageKey"`
	MimeType   string `json:"mimeType"`
	SizeBytes  int64  `json:"sizeBytes"`
}

var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
	".svg":  {},
	".ico":  {},
}

// Service contains business logic for asset uploads.
type Service struct {
	Store   object.ObjectStore
	BaseURL string
}

// Upload stores the file under the folder tag and returns the public asset.
func (s *Service) Upload(ctx context.Context, folder, fileName string, r io.Reader) (Asset, error) {
	if fileName == "" {
		return Asset{}, ErrInvalidInput
	}
	if folder == "" {
		folder = "uploads"
	}

	ext := strings.ToLower(path.Ext(fileName))
	if _, ok := allowedExtensions[ext]; !ok {
		return Asset{}, ErrUnsupportedType
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, folder, fileName, r)
	if err != nil {
		return Asset{}, err
	}

	metrics.IncAssetUpload()
	return Asset{
		URL:        strings.TrimRight(s.BaseURL, "/") + "/" + storageKey,
		StorageKey: storageKey,
		MimeType:   mimeType,
		SizeBytes:  size,
	}, nil
}

// Open opens a stored asset for streaming back to a client.
func (s *Service) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	if strings.TrimSpace(storageKey) == "" {
		return nil, ErrInvalidInput
	}
	return s.Store.Open(ctx, storageKey)
}

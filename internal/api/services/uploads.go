package services

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/filehub/internal/repositories"
)

// UploadService hands out presigned PUT URLs. No bytes pass through it.
type UploadService struct {
	presigner  repositories.ObjectPresigner
	ttl        time.Duration
	defaultDir string
}

func NewUploadService(presigner repositories.ObjectPresigner, ttl time.Duration, defaultDir string) *UploadService {
	return &UploadService{presigner: presigner, ttl: ttl, defaultDir: defaultDir}
}

type PresignedUpload struct {
	Key          string    `json:"key"`
	PresignedURL string    `json:"presignedUrl"`
	FileURL      string    `json:"fileUrl"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// StandardUploadURL signs an upload for "<dir>/<uuid>-<name>", where name is the base
// name of key and dir defaults to the configured upload directory.
func (s *UploadService) StandardUploadURL(ctx context.Context, key, dir string) (*PresignedUpload, error) {
	key = strings.ReplaceAll(strings.TrimSpace(key), `\`, "/")
	name := path.Base(key)
	if key == "" || strings.HasSuffix(key, "/") || name == "." || name == ".." {
		return nil, badRequest("key is required")
	}

	dir, err := s.directory(dir)
	if err != nil {
		return nil, err
	}
	objectKey := fmt.Sprintf("%s/%s-%s", dir, uuid.NewString(), name)

	url, err := s.presigner.PresignPut(ctx, objectKey, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to sign upload url: %w", err)
	}

	return &PresignedUpload{
		Key:          objectKey,
		PresignedURL: url,
		FileURL:      s.presigner.PublicURL(objectKey),
		ExpiresAt:    time.Now().Add(s.ttl),
	}, nil
}

func (s *UploadService) directory(dir string) (string, error) {
	dir = strings.Trim(strings.TrimSpace(dir), "/")
	if dir == "" {
		dir = s.defaultDir
	}
	cleaned := path.Clean(dir)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") || cleaned == "." {
		return "", badRequest("invalid directoryPath")
	}
	return cleaned, nil
}

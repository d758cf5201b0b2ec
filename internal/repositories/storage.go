package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rohits-web03/filehub/internal/config"
)

// ObjectPresigner issues time-bounded upload URLs for an S3-compatible bucket.
type ObjectPresigner interface {
	PresignPut(ctx context.Context, key string, expires time.Duration) (string, error)
	PublicURL(key string) string
}

// NewPresigner builds the presigner selected by STORAGE_DRIVER.
func NewPresigner(cfg config.StorageConfig) (ObjectPresigner, error) {
	switch cfg.Driver {
	case "r2", "s3", "":
		return NewR2Presigner(cfg.R2, cfg.PublicBaseURL)
	case "minio":
		return NewMinioPresigner(cfg.Minio, cfg.PublicBaseURL)
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.Driver)
	}
}

func joinPublicURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}

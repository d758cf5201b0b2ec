package repositories

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rohits-web03/filehub/internal/config"
)

// MinioPresigner implements ObjectPresigner with a MinIO client.
type MinioPresigner struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

func NewMinioPresigner(cfg config.MinioConfig, publicBaseURL string) (*MinioPresigner, error) {
	if cfg.BucketName == "" {
		return nil, errors.New("MINIO_BUCKET_NAME is not set")
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, err
	}
	if publicBaseURL == "" {
		publicBaseURL = client.EndpointURL().String() + "/" + cfg.BucketName
	}

	slog.Info("Successfully initialized MinIO client", "endpoint", cfg.Endpoint, "bucket", cfg.BucketName)

	return &MinioPresigner{
		client:        client,
		bucket:        cfg.BucketName,
		publicBaseURL: publicBaseURL,
	}, nil
}

func (p *MinioPresigner) PresignPut(ctx context.Context, key string, expires time.Duration) (string, error) {
	u, err := p.client.PresignedPutObject(ctx, p.bucket, key, expires)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func (p *MinioPresigner) PublicURL(key string) string {
	return joinPublicURL(p.publicBaseURL, key)
}

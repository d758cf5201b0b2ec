package repositories

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/rohits-web03/filehub/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestR2PresignPut(t *testing.T) {
	p, err := NewR2Presigner(config.R2Config{
		AccountID:       "acct",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		BucketName:      "media",
		Region:          "auto",
	}, "https://pub.example.dev/")
	require.NoError(t, err)

	raw, err := p.PresignPut(context.Background(), "uploads/abc-a.jpg", 10*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "acct.r2.cloudflarestorage.com", u.Host)
	assert.Equal(t, "/media/uploads/abc-a.jpg", u.Path)
	assert.Equal(t, "600", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))

	assert.Equal(t, "https://pub.example.dev/uploads/abc-a.jpg", p.PublicURL("uploads/abc-a.jpg"))
}

func TestMinioPresignPut(t *testing.T) {
	p, err := NewMinioPresigner(config.MinioConfig{
		Endpoint:        "localhost:9000",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
		BucketName:      "media",
		Region:          "us-east-1",
	}, "")
	require.NoError(t, err)

	raw, err := p.PresignPut(context.Background(), "uploads/abc-a.jpg", time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/media/uploads/abc-a.jpg", u.Path)
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))

	assert.Equal(t, "http://localhost:9000/media/uploads/abc-a.jpg", p.PublicURL("uploads/abc-a.jpg"))
}

func TestNewPresigner(t *testing.T) {
	_, err := NewPresigner(config.StorageConfig{Driver: "ftp"})
	assert.Error(t, err)

	_, err = NewPresigner(config.StorageConfig{Driver: "r2"})
	assert.Error(t, err, "bucket is required")

	p, err := NewPresigner(config.StorageConfig{
		Driver: "minio",
		Minio:  config.MinioConfig{Endpoint: "localhost:9000", BucketName: "media", Region: "us-east-1"},
	})
	require.NoError(t, err)
	assert.IsType(t, &MinioPresigner{}, p)
}

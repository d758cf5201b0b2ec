package repositories

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rohits-web03/filehub/internal/config"
)

// R2Presigner signs requests against Cloudflare R2 (or any S3 endpoint) with aws-sdk-go-v2.
type R2Presigner struct {
	presigner     *s3.PresignClient
	bucket        string
	publicBaseURL string
}

// NewR2Presigner initializes the R2 client using static credentials and custom endpoint.
func NewR2Presigner(cfg config.R2Config, publicBaseURL string) (*R2Presigner, error) {
	if cfg.BucketName == "" {
		return nil, errors.New("R2_BUCKET_NAME is not set")
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)
	}
	if publicBaseURL == "" {
		publicBaseURL = endpoint + "/" + cfg.BucketName
	}

	client := s3.NewFromConfig(aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Region:      cfg.Region,
	}, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	slog.Info("Successfully initialized R2 client", "bucket", cfg.BucketName)

	return &R2Presigner{
		presigner:     s3.NewPresignClient(client),
		bucket:        cfg.BucketName,
		publicBaseURL: publicBaseURL,
	}, nil
}

// PresignPut creates a presigned URL for uploading an object.
func (p *R2Presigner) PresignPut(ctx context.Context, key string, expires time.Duration) (string, error) {
	req, err := p.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

func (p *R2Presigner) PublicURL(key string) string {
	return joinPublicURL(p.publicBaseURL, key)
}

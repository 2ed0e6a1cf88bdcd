package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appconfig "likeat/internal/config"
)

// R2Client resolves photo object keys stored in a Cloudflare R2 bucket.
type R2Client struct {
	presigner  *s3.PresignClient
	bucket     string
	baseURL    string
	presignTTL time.Duration
}

func NewR2Client(ctx context.Context, cfg appconfig.R2Config) (*R2Client, error) {
	awsCfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion("auto"),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			),
		),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return &R2Client{
		presigner:  s3.NewPresignClient(client),
		bucket:     cfg.Bucket,
		baseURL:    cfg.PublicBaseURL,
		presignTTL: cfg.PresignTTL,
	}, nil
}

// URLFor returns a presigned GET URL when a presign TTL is configured and
// the public bucket URL otherwise.
func (r *R2Client) URLFor(ctx context.Context, key string) (string, error) {
	if r.presignTTL <= 0 {
		return PublicURL(r.baseURL, key), nil
	}

	req, err := r.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(r.presignTTL))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}

	return req.URL, nil
}

// PublicURL joins the public bucket URL and an object key.
func PublicURL(baseURL, key string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(baseURL, "/"), strings.TrimLeft(key, "/"))
}

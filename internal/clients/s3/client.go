package s3

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/samandr77/microservices/expenses/internal/entity"
	"github.com/samandr77/microservices/expenses/pkg/config"
)

type api interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, input *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Client stores receipts in an S3 compatible bucket.
type Client struct {
	api     api
	bucket  string
	baseURL string
}

func NewClient(cfg config.S3) *Client {
	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,
	}

	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}

	return newClient(s3.New(opts), cfg)
}

func newClient(api api, cfg config.S3) *Client {
	baseURL := cfg.PublicURL
	if baseURL == "" {
		baseURL = strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}

	return &Client{
		api:     api,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Upload puts the file under key and returns its public URL.
func (c *Client) Upload(ctx context.Context, key string, file entity.File) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
		Body:   file.Content,
	}

	if file.ContentType != "" {
		input.ContentType = aws.String(file.ContentType)
	}

	if file.Size > 0 {
		input.ContentLength = aws.Int64(file.Size)
	}

	_, err := c.api.PutObject(ctx, input)
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return c.URL(key), nil
}

func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}

	return nil
}

func (c *Client) URL(key string) string {
	segments := strings.Split(key, "/")

	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	return c.baseURL + "/" + strings.Join(segments, "/")
}

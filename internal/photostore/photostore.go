// Package photostore uploads fish photos to an S3-compatible bucket and
// resolves their durable public URLs.
package photostore

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofrs/uuid/v5"

	"github.com/and161185/fishlog/internal/errs"
)

const contentType = "image/jpeg"

// S3API is the subset of *s3.Client used here.
type S3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Photo is an uploaded object.
type Photo struct {
	Key string
	URL string
}

// Store writes photos under <userID>/<unixMillis>_<token>.jpg.
type Store struct {
	client     S3API
	bucket     string
	publicBase string
	now        func() time.Time
	token      func() string
}

// Options configures the S3 client.
type Options struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// NewS3Client builds an S3 client for an S3-compatible endpoint (MinIO, hosted storage).
func NewS3Client(ctx context.Context, o Options) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(o.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(o.AccessKey, o.SecretKey, "")),
	)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg, func(so *s3.Options) {
		if o.Endpoint != "" {
			so.BaseEndpoint = aws.String(o.Endpoint)
		}
		so.UsePathStyle = true
	}), nil
}

// New constructs a Store. publicBase is the URL prefix under which keys are served.
func New(client S3API, bucket, publicBase string) *Store {
	return &Store{
		client:     client,
		bucket:     bucket,
		publicBase: strings.TrimRight(publicBase, "/"),
		now:        time.Now,
		token:      randomToken,
	}
}

func randomToken() string {
	return strings.ReplaceAll(uuid.Must(uuid.NewV4()).String(), "-", "")[:12]
}

// Key returns a fresh object key namespaced by the owning user.
func (s *Store) Key(userID uuid.UUID) string {
	return fmt.Sprintf("%s/%d_%s.jpg", userID, s.now().UnixMilli(), s.token())
}

// URL returns the public URL for key.
func (s *Store) URL(key string) string {
	return s.publicBase + "/" + key
}

// Upload stores the local file at path for userID. Any failure is an *errs.UploadError.
func (s *Store) Upload(ctx context.Context, userID uuid.UUID, path string) (Photo, error) {
	key := s.Key(userID)

	f, err := os.Open(path)
	if err != nil {
		return Photo{}, &errs.UploadError{Key: key, Err: err}
	}
	defer f.Close()

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType),
		IfNoneMatch: aws.String("*"),
	})
	if err != nil {
		return Photo{}, &errs.UploadError{Key: key, Err: err}
	}
	return Photo{Key: key, URL: s.URL(key)}, nil
}

// Remove deletes an uploaded object.
func (s *Store) Remove(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-contacts-keeper/internal/config"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3PutObjectAPI is the subset of the S3 client used for uploads.
type s3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type s3AvatarStorage struct {
	client s3PutObjectAPI
	cfg    config.S3

	logger *logger.Logger
}

// NewS3AvatarStorage returns an [AvatarStorage] writing to an S3-compatible
// bucket. Static credentials are used when both keys are configured,
// otherwise the default AWS credential chain applies.
func NewS3AvatarStorage(ctx context.Context, cfg config.S3, log *logger.Logger) (AvatarStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return newS3AvatarStorage(client, cfg, log), nil
}

func newS3AvatarStorage(client s3PutObjectAPI, cfg config.S3, log *logger.Logger) *s3AvatarStorage {
	return &s3AvatarStorage{client: client, cfg: cfg, logger: log}
}

// Upload implements [AvatarStorage]. The object key is "avatars/{ownerKey}"
// whatever the file type, so a new upload always replaces the old one.
func (s *s3AvatarStorage) Upload(ctx context.Context, ownerKey, filename string, content []byte) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("%w: %w", ErrAvatarUpload, ErrEmptyContent)
	}

	key := "avatars/" + ownerKey
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(http.DetectContentType(content)),
	})
	if err != nil {
		s.logger.Err(err).Str("func", "s3AvatarStorage.Upload").Str("key", key).Msg("put object failed")
		return "", fmt.Errorf("%w: %w", ErrAvatarUpload, err)
	}

	return s.objectURL(key), nil
}

func (s *s3AvatarStorage) objectURL(key string) string {
	switch {
	case s.cfg.PublicBaseURL != "":
		return strings.TrimRight(s.cfg.PublicBaseURL, "/") + "/" + key
	case s.cfg.Endpoint != "":
		return strings.TrimRight(s.cfg.Endpoint, "/") + "/" + s.cfg.Bucket + "/" + key
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
	}
}

package backup

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// s3Writer implements Writer against an AWS S3 bucket.
type s3Writer struct {
	client *s3.Client
	bucket string
	prefix string
	logger zerolog.Logger
}

// NewS3Writer creates a new S3-based snapshot writer.
func NewS3Writer(ctx context.Context, bucket, region, prefix string, logger zerolog.Logger) (Writer, error) {
	logger = logger.With().Str("component", "s3-snapshot-writer").Logger()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Str("prefix", prefix).
		Msg("S3 snapshot writer initialised")

	return &s3Writer{
		client: client,
		bucket: bucket,
		prefix: strings.TrimRight(prefix, "/"),
		logger: logger,
	}, nil
}

func (w *s3Writer) Put(ctx context.Context, key string, data []byte) error {
	objectKey := key
	if w.prefix != "" {
		objectKey = w.prefix + "/" + key
	}

	_, err := w.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(w.bucket),
		Key:    aws.String(objectKey),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		w.logger.Error().
			Err(err).
			Str("bucket", w.bucket).
			Str("key", objectKey).
			Msg("failed to put snapshot object")
		return fmt.Errorf("failed to put object (bucket=%s, key=%s): %w", w.bucket, objectKey, err)
	}

	w.logger.Debug().
		Str("bucket", w.bucket).
		Str("key", objectKey).
		Int("bytes", len(data)).
		Msg("snapshot object written")

	return nil
}

func (w *s3Writer) Close() error {
	return nil
}

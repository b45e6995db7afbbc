package export

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"risk-demo/internal/config"
	"risk-demo/internal/domain"
)

var (
	_ domain.ExportArchiver = (*S3Archiver)(nil)
	_ domain.ExportArchiver = NopArchiver{}
)

// NopArchiver discards archive requests. Used when no object store is
// configured.
type NopArchiver struct{}

// Archive implements domain.ExportArchiver.
func (NopArchiver) Archive(context.Context, string, int64, io.Reader) (string, error) {
	return "", nil
}

// putObjectAPI is the subset of *s3.Client used by S3Archiver.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archiver uploads exported workbooks to S3-compatible object storage.
type S3Archiver struct {
	client putObjectAPI
	bucket string
	prefix string
	now    func() time.Time
}

// NewS3Archiver creates an archiver for the configured bucket, using
// path-style addressing so that S3-compatible providers work unchanged.
func NewS3Archiver(cfg *config.Config) (*S3Archiver, error) {
	if !cfg.HasS3Config() {
		return nil, fmt.Errorf("S3 config is incomplete")
	}

	endpoint := *cfg.S3Endpoint
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	client := s3.New(s3.Options{
		Region: *cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			*cfg.S3KeyID, *cfg.S3Secret, "",
		),
		BaseEndpoint: aws.String(endpoint),
		UsePathStyle: true,
	})

	return &S3Archiver{
		client: client,
		bucket: *cfg.S3Bucket,
		prefix: "exports",
		now:    time.Now,
	}, nil
}

// Archive uploads body and returns the object key.
func (a *S3Archiver) Archive(ctx context.Context, sessionID string, size int64, body io.Reader) (string, error) {
	key := a.objectKey(sessionID)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload s3://%s/%s: %w", a.bucket, key, err)
	}
	return key, nil
}

func (a *S3Archiver) objectKey(sessionID string) string {
	if sessionID == "" {
		sessionID = "anonymous"
	}
	stamp := a.now().UTC().Format("20060102T150405.000Z")
	return fmt.Sprintf("%s/%s/%s-%s", a.prefix, sessionID, stamp, FileName)
}

package storage

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// S3Config contains minimal configuration for creating an S3 client.
// Values are optional and fall back to the standard AWS config chain.
type S3Config struct {
	Region       string
	Profile      string
	UsePathStyle bool
}

// Archive mirrors saved article files into an S3 bucket.
type Archive struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewArchiveFromEnv returns an archive when S3_BUCKET is configured,
// otherwise nil (mirroring disabled). Optional: S3_REGION, S3_PROFILE,
// S3_PREFIX, S3_USE_PATH_STYLE=true.
func NewArchiveFromEnv(ctx context.Context) *Archive {
	bucket := strings.TrimSpace(os.Getenv("S3_BUCKET"))
	if bucket == "" {
		return nil
	}

	cfg := S3Config{
		Region:       strings.TrimSpace(os.Getenv("S3_REGION")),
		Profile:      strings.TrimSpace(os.Getenv("S3_PROFILE")),
		UsePathStyle: strings.EqualFold(strings.TrimSpace(os.Getenv("S3_USE_PATH_STYLE")), "true"),
	}

	archive, err := NewArchive(ctx, cfg, bucket, strings.TrimSpace(os.Getenv("S3_PREFIX")))
	if err != nil {
		log.Printf("Warning: failed to init S3 archive: %v (mirroring disabled)", err)
		return nil
	}
	return archive
}

// NewArchive creates an S3-backed archive using the default AWS
// configuration chain with optional overrides.
func NewArchive(ctx context.Context, cfg S3Config, bucket, prefix string) (*Archive, error) {
	var loadOpts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
	})

	if prefix != "" {
		prefix = strings.Trim(prefix, "/") + "/"
	}
	return &Archive{client: client, bucket: bucket, prefix: prefix}, nil
}

// Store uploads one saved article file under articles/<filename>.
func (a *Archive) Store(ctx context.Context, filename string, data []byte, contentType string) error {
	in := &s3.PutObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(a.prefix + "articles/" + filename),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	_, err := a.client.PutObject(ctx, in)
	return err
}

// Exists reports whether a file was already mirrored.
func (a *Archive) Exists(ctx context.Context, filename string) (bool, error) {
	_, err := a.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(a.prefix + "articles/" + filename),
	})
	if err == nil {
		return true, nil
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) && respErr.HTTPStatusCode() == 404 {
		return false, nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NotFound" {
		return false, nil
	}

	return false, err
}

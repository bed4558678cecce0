package media

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dpetrovs/brewclub/internal/client/models"
	"github.com/google/uuid"
)

// S3Config configures the S3-compatible media host.
type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	KeyPrefix string
	AccessKey string
	SecretKey string
	// PublicBaseURL is the URL prefix under which uploaded objects are
	// served, e.g. a CDN domain in front of the bucket.
	PublicBaseURL string
}

// S3Uploader stores the image in an S3-compatible bucket and derives the
// remote URL from the configured public base URL. It is the alternative to
// the preset-tagged multipart host for self-hosted deployments.
type S3Uploader struct {
	client *s3.Client
	cfg    S3Config
}

var _ Uploader = (*S3Uploader)(nil)

// NewS3Uploader builds an uploader from static credentials. Path-style
// addressing is enabled so MinIO-like endpoints work out of the box.
func NewS3Uploader(ctx context.Context, cfg S3Config) (*S3Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})

	return &S3Uploader{client: client, cfg: cfg}, nil
}

func (u *S3Uploader) Upload(ctx context.Context, image models.PickedImage) (*models.UploadResult, error) {
	key := u.objectKey(image)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(image.Data),
		ContentType: aws.String(image.MIMEType),
	})
	if err != nil {
		return nil, fmt.Errorf("put object: %w", err)
	}

	if u.cfg.PublicBaseURL == "" {
		return nil, ErrEmptyRemoteURL
	}
	return &models.UploadResult{RemoteURL: u.cfg.PublicBaseURL + "/" + key}, nil
}

// objectKey namespaces uploads under the configured prefix. A fresh UUID per
// upload keeps old avatar versions addressable until the host expires them.
func (u *S3Uploader) objectKey(image models.PickedImage) string {
	name := uuid.NewString() + path.Ext(image.FileName)
	if u.cfg.KeyPrefix == "" {
		return name
	}
	return u.cfg.KeyPrefix + "/" + name
}

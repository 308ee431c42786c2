package publisher

import (
	"bytes"
	"context"
	"fmt"

	"league-tracker-backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// s3Uploader is the slice of the S3 API the publisher needs.
type s3Uploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher uploads the snapshot to an S3 bucket.
type S3Publisher struct {
	client s3Uploader
	bucket string
	key    string
	region string
	public bool
}

// NewS3Publisher creates an S3 publisher from configuration. key is the
// object key to upload under.
func NewS3Publisher(cfg *config.Config, key string) (*S3Publisher, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET not configured")
	}
	if key == "" {
		key = "snapshot.json"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &S3Publisher{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.S3Bucket,
		key:    key,
		region: cfg.S3Region,
		public: cfg.S3Public,
	}, nil
}

// Mode returns the publisher identifier
func (p *S3Publisher) Mode() string { return "s3" }

// Publish uploads the document and returns its public HTTPS URL.
func (p *S3Publisher) Publish(ctx context.Context, document []byte) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(p.key),
		Body:        bytes.NewReader(document),
		ContentType: aws.String("application/json"),
	}
	if p.public {
		input.ACL = types.ObjectCannedACLPublicRead
	}

	if _, err := p.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload snapshot to s3: %w", err)
	}

	// us-east-1 omits the region from virtual-hosted URLs
	if p.region == "" || p.region == "us-east-1" {
		return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", p.bucket, p.key), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", p.bucket, p.region, p.key), nil
}

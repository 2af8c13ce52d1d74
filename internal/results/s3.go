package results

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/oceanplan/sizecard/internal/contract"
	"github.com/oceanplan/sizecard/schema"
)

// objectGetter is the part of the S3 client the provider needs.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Provider reads result objects stored under <prefix>/<sketchId>/<functionName>.json.
type S3Provider struct {
	client objectGetter
	bucket string
	prefix string
}

var _ contract.ResultsProvider = &S3Provider{} // Compile-time check

// NewS3Provider creates an S3 provider. Credentials come from the default AWS chain;
// Endpoint and UsePathStyle allow S3 compatible stores such as MinIO.
func NewS3Provider(ctx context.Context, cfg contract.S3Config, optFns ...func(*s3.Options)) (*S3Provider, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	var loadOpts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, append([]func(*s3.Options){func(o *s3.Options) {
		if cfg.UsePathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}}, optFns...)...)
	return newS3Provider(client, cfg.Bucket, cfg.Prefix), nil
}

func newS3Provider(client objectGetter, bucket, prefix string) *S3Provider {
	return &S3Provider{client: client, bucket: bucket, prefix: prefix}
}

// objectKey returns the key of a function result, skipping empty path parts.
func (p *S3Provider) objectKey(functionName, sketchID string) string {
	return path.Join(p.prefix, sketchID, objectName(functionName))
}

// GetResult implements the ResultsProvider interface. A missing object is an empty result.
func (p *S3Provider) GetResult(ctx context.Context, functionName, sketchID string) (schema.ReportResult, error) {
	key := p.objectKey(functionName, sketchID)
	out, err := p.client.GetObject(ctx, &s3.GetObjectInput{Bucket: aws.String(p.bucket), Key: aws.String(key)})
	if err != nil {
		if isNotFound(err) {
			return schema.EmptyReportResult(), nil
		}
		return schema.ReportResult{}, fmt.Errorf("failed to get s3://%s/%s: %w", p.bucket, key, err)
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return schema.ReportResult{}, fmt.Errorf("failed to read s3://%s/%s: %w", p.bucket, key, err)
	}
	result, err := schema.DecodeReportResult(data)
	if err != nil {
		return schema.ReportResult{}, fmt.Errorf("s3://%s/%s: %w", p.bucket, key, err)
	}
	return result, nil
}

// isNotFound reports whether err means the object does not exist.
func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var httpErr interface{ HTTPStatusCode() int }
	return errors.As(err, &httpErr) && httpErr.HTTPStatusCode() == 404
}

package results

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/oceanplan/sizecard/internal/contract"
	"github.com/oceanplan/sizecard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const noSuchKeyBody = `<?xml version="1.0" encoding="UTF-8"?>` +
	`<Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`

// fakeBucket is an in-memory S3 transport that serves path-style GET requests.
type fakeBucket struct {
	objects  map[string][]byte
	failKeys map[string]bool
	requests []string
}

func (f *fakeBucket) RoundTrip(req *http.Request) (*http.Response, error) {
	parts := strings.SplitN(strings.TrimPrefix(req.URL.Path, "/"), "/", 2)
	key := ""
	if len(parts) == 2 {
		key = parts[1]
	}
	f.requests = append(f.requests, parts[0]+"/"+key)

	if req.Method != http.MethodGet {
		return &http.Response{StatusCode: http.StatusNotImplemented, Body: io.NopCloser(bytes.NewReader(nil)), Header: http.Header{}}, nil
	}
	if f.failKeys[key] {
		return &http.Response{StatusCode: http.StatusForbidden, Body: io.NopCloser(strings.NewReader(
			`<Error><Code>AccessDenied</Code><Message>Access Denied</Message></Error>`)),
			Header: http.Header{"Content-Type": {"application/xml"}}}, nil
	}
	body, ok := f.objects[key]
	if !ok {
		return &http.Response{StatusCode: http.StatusNotFound, Body: io.NopCloser(strings.NewReader(noSuchKeyBody)),
			Header: http.Header{"Content-Type": {"application/xml"}}}, nil
	}
	return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(bytes.NewReader(body)), Header: http.Header{
		"Content-Length": {fmt.Sprintf("%d", len(body))},
		"Content-Type":   {"application/json"},
		"ETag":           {"\"etag\""},
	}}, nil
}

func newFakeS3Provider(t *testing.T, bucket *fakeBucket, prefix string) *S3Provider {
	t.Helper()
	p, err := NewS3Provider(context.Background(), contract.S3Config{
		Bucket:       "results-bucket",
		Prefix:       prefix,
		Region:       "us-east-1",
		Endpoint:     "https://mock.s3.local",
		UsePathStyle: true,
	}, func(o *s3.Options) {
		o.HTTPClient = &http.Client{Transport: bucket}
		o.Credentials = credentials.NewStaticCredentialsProvider("AKIA", "SECRET", "")
		o.RetryMaxAttempts = 1
	})
	require.NoError(t, err)
	return p
}

func TestS3ProviderGetResult(t *testing.T) {
	bucket := &fakeBucket{objects: map[string][]byte{
		"reports/s1/boundaryAreaOverlap.json": []byte(`{"metrics":[{"metricId":"boundaryAreaOverlap","classId":"eez","sketchId":"s1","value":42}]}`),
		"reports/s2/boundaryAreaOverlap.json": []byte(`{}`),
	}}
	p := newFakeS3Provider(t, bucket, "reports")
	ctx := context.Background()

	result, err := p.GetResult(ctx, schema.SizeFunctionName, "s1")
	require.NoError(t, err)
	require.Len(t, result.Metrics, 1)
	assert.Equal(t, 42.0, result.Metrics[0].Value)

	result, err = p.GetResult(ctx, schema.SizeFunctionName, "s2")
	require.NoError(t, err)
	assert.True(t, result.IsEmpty())

	assert.Equal(t, []string{
		"results-bucket/reports/s1/boundaryAreaOverlap.json",
		"results-bucket/reports/s2/boundaryAreaOverlap.json",
	}, bucket.requests)
}

func TestS3ProviderMissingObject(t *testing.T) {
	p := newFakeS3Provider(t, &fakeBucket{objects: map[string][]byte{}}, "")

	result, err := p.GetResult(context.Background(), schema.SizeFunctionName, "s9")
	require.NoError(t, err)
	assert.True(t, result.IsEmpty(), "a missing object is an empty result")
}

func TestS3ProviderAccessDenied(t *testing.T) {
	bucket := &fakeBucket{
		objects:  map[string][]byte{},
		failKeys: map[string]bool{"s1/boundaryAreaOverlap.json": true},
	}
	p := newFakeS3Provider(t, bucket, "")

	_, err := p.GetResult(context.Background(), schema.SizeFunctionName, "s1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3://results-bucket/s1/boundaryAreaOverlap.json")
}

func TestS3ProviderObjectKey(t *testing.T) {
	tests := []struct {
		prefix   string
		sketchID string
		want     string
	}{
		{"", "s1", "s1/boundaryAreaOverlap.json"},
		{"reports", "s1", "reports/s1/boundaryAreaOverlap.json"},
		{"reports/", "", "reports/boundaryAreaOverlap.json"},
		{"", "", "boundaryAreaOverlap.json"},
	}
	for _, tt := range tests {
		p := newS3Provider(nil, "b", tt.prefix)
		assert.Equal(t, tt.want, p.objectKey(schema.SizeFunctionName, tt.sketchID))
	}
}

func TestNewS3ProviderRequiresBucket(t *testing.T) {
	_, err := NewS3Provider(context.Background(), contract.S3Config{})
	assert.EqualError(t, err, "s3 bucket required")
}

package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	sc "github.com/shivtchandra/CivicWatch/internal/server/config"
)

func newImageService() *ImageService {
	return NewImageService(&sc.Config{
		S3RootUser:     "user",
		S3RootPassword: "password",
		S3Bucket:       "report-images",
		S3Region:       "us-east-1",
		S3BaseEndpoint: "http://127.0.0.1:9000/",
	})
}

func TestRandomStorageKey_Shape(t *testing.T) {
	key := RandomStorageKey()
	if !strings.HasPrefix(key, "reports/") {
		t.Fatalf("key must live under reports/: %q", key)
	}
	if parts := strings.Split(key, "/"); len(parts) != 5 {
		t.Fatalf("want reports/yyyy/m/d/uuid, got %q", key)
	}
	if key == RandomStorageKey() {
		t.Fatalf("keys must be unique")
	}
}

func TestPresignPut_Success(t *testing.T) {
	origLoad, origNewS3, origNewPre, origPut := loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient, presignPutObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client { return &s3.Client{} }
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient { return &s3.PresignClient{} }

	var gotBucket, gotKey string
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		gotBucket, gotKey = *in.Bucket, *in.Key
		return &v4.PresignedHTTPRequest{URL: "http://signed-put"}, nil
	}

	key, url, err := newImageService().PresignPut(context.Background())
	if err != nil {
		t.Fatalf("PresignPut error: %v", err)
	}
	if url != "http://signed-put" {
		t.Fatalf("unexpected url: %q", url)
	}
	if gotBucket != "report-images" || key != gotKey {
		t.Fatalf("bucket/key mismatch: bucket=%q key=%q signed=%q", gotBucket, key, gotKey)
	}
}

func TestPresignGet_Success(t *testing.T) {
	origLoad, origNewS3, origNewPre, origGet := loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient, presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignGetObject = origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client { return &s3.Client{} }
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient { return &s3.PresignClient{} }

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		if *in.Key != "reports/2025/1/2/abc" {
			t.Fatalf("unexpected key: %q", *in.Key)
		}
		return &v4.PresignedHTTPRequest{URL: "http://signed-get"}, nil
	}

	url, err := newImageService().PresignGet(context.Background(), "reports/2025/1/2/abc")
	if err != nil || url != "http://signed-get" {
		t.Fatalf("PresignGet: url=%q err=%v", url, err)
	}
}

func TestPresign_ConfigError(t *testing.T) {
	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })

	wantErr := errors.New("no credentials")
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, wantErr
	}

	s := newImageService()
	if _, _, err := s.PresignPut(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("PresignPut: want config error, got %v", err)
	}
	if _, err := s.PresignGet(context.Background(), "k"); !errors.Is(err, wantErr) {
		t.Fatalf("PresignGet: want config error, got %v", err)
	}
}

// Package storage keeps card images and avatars in S3-compatible object
// storage (MinIO in development).
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ObjectStore is what the services need from a bucket.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

// CardImageKey is the object key of a card image: <owner>/<card>.<ext>.
func CardImageKey(ownerID, cardID, ext string) string {
	return ownerID + "/" + cardID + "." + ext
}

// AvatarKey is the object key of a user's avatar: <user>/avatar.<ext>.
func AvatarKey(userID, ext string) string {
	return userID + "/avatar." + ext
}

// API is the subset of *s3.Client used here.
type API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadBucket(ctx context.Context, in *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	CreateBucket(ctx context.Context, in *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) API {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

type Options struct {
	Region    string
	AccessKey string
	SecretKey string
	// Endpoint is the S3 base URL. It is also the prefix of public URLs.
	Endpoint string
}

// NewClient builds the shared S3 client with static credentials and
// path-style addressing, which MinIO requires.
func NewClient(ctx context.Context, o Options) (API, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(o.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(o.AccessKey, o.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return newS3ClientFromConfig(cfg, func(so *s3.Options) {
		if o.Endpoint != "" {
			so.BaseEndpoint = aws.String(o.Endpoint)
		}
		so.UsePathStyle = true
	}), nil
}

// Bucket is an ObjectStore over one S3 bucket.
type Bucket struct {
	client   API
	name     string
	endpoint string
}

func NewBucket(client API, name, endpoint string) *Bucket {
	return &Bucket{client: client, name: name, endpoint: strings.TrimRight(endpoint, "/")}
}

func (b *Bucket) Name() string { return b.name }

func (b *Bucket) Put(ctx context.Context, key, contentType string, data []byte) error {
	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(b.name),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", b.name, key, err)
	}
	return nil
}

func (b *Bucket) Delete(ctx context.Context, key string) error {
	_, err := b.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.name),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", b.name, key, err)
	}
	return nil
}

// PublicURL is <endpoint>/<bucket>/<key>; the bucket is expected to allow
// anonymous reads. Empty keys give "".
func (b *Bucket) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	return b.endpoint + "/" + b.name + "/" + (&url.URL{Path: key}).EscapedPath()
}

// EnsureExists creates the bucket when it is missing.
func (b *Bucket) EnsureExists(ctx context.Context) error {
	_, err := b.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(b.name)})
	if err == nil {
		return nil
	}

	var notFound *types.NotFound
	if !errors.As(err, &notFound) {
		return fmt.Errorf("head bucket %s: %w", b.name, err)
	}

	if _, err := b.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(b.name)}); err != nil {
		var owned *types.BucketAlreadyOwnedByYou
		if errors.As(err, &owned) {
			return nil
		}
		return fmt.Errorf("create bucket %s: %w", b.name, err)
	}
	return nil
}

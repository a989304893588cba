package storage

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// OSSStorage implements ObjectStorage on an Alibaba Cloud OSS bucket.
// All portfolio images live in a single bucket under a shared prefix.
type OSSStorage struct {
	bucket     *oss.Bucket
	bucketName string
	publicBase string
}

// NewOSSStorage connects to OSS and binds the given bucket. The client does
// not dial on construction, so a missing bucket only shows up on first use.
func NewOSSStorage(endpoint, accessKeyID, accessKeySecret, bucketName string) (*OSSStorage, error) {
	client, err := oss.New(endpoint, accessKeyID, accessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("creating OSS client: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("binding OSS bucket %q: %w", bucketName, err)
	}

	host := strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://")
	return &OSSStorage{
		bucket:     bucket,
		bucketName: bucketName,
		publicBase: fmt.Sprintf("https://%s.%s/", bucketName, host),
	}, nil
}

// Upload stores the object and returns its public URL.
func (s *OSSStorage) Upload(key string, r io.Reader) (string, error) {
	if err := s.bucket.PutObject(key, r); err != nil {
		if isOSSCode(err, "NoSuchBucket") {
			return "", fmt.Errorf("%w: bucket %q must be created before uploads can succeed", ErrBucketNotFound, s.bucketName)
		}
		return "", fmt.Errorf("uploading object %q: %w", key, err)
	}
	return s.publicBase + key, nil
}

// Remove deletes the object. OSS treats deleting a missing key as success,
// which matches the best-effort reclamation contract.
func (s *OSSStorage) Remove(key string) error {
	if err := s.bucket.DeleteObject(key); err != nil {
		if isOSSCode(err, "NoSuchKey") {
			return nil
		}
		if isOSSCode(err, "NoSuchBucket") {
			return fmt.Errorf("%w: bucket %q", ErrBucketNotFound, s.bucketName)
		}
		return fmt.Errorf("removing object %q: %w", key, err)
	}
	return nil
}

// KeyFromURL strips the bucket's public base and any query string from a URL
// returned by Upload.
func (s *OSSStorage) KeyFromURL(publicURL string) (string, bool) {
	key, ok := strings.CutPrefix(publicURL, s.publicBase)
	if !ok || key == "" {
		return "", false
	}
	key, _, _ = strings.Cut(key, "?")
	return key, key != ""
}

func isOSSCode(err error, code string) bool {
	var svcErr oss.ServiceError
	return errors.As(err, &svcErr) && svcErr.Code == code
}

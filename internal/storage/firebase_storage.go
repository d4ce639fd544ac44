package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// FirebaseBackend serves photos out of the project's Cloud Storage bucket
// via V4 signed URLs.
type FirebaseBackend struct {
	bucket *gcs.BucketHandle
}

func NewFirebaseBackend(ctx context.Context, bucketName, credentialsFile string) (*FirebaseBackend, error) {
	opts := []option.ClientOption{}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: bucketName}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket: %w", err)
	}
	return &FirebaseBackend{bucket: bucket}, nil
}

func (f *FirebaseBackend) GenerateUploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, error) {
	return f.bucket.SignedURL(key, &gcs.SignedURLOptions{
		Method:      "PUT",
		Expires:     time.Now().Add(expiresIn),
		ContentType: contentType,
		Scheme:      gcs.SigningSchemeV4,
	})
}

func (f *FirebaseBackend) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	return f.bucket.SignedURL(key, &gcs.SignedURLOptions{
		Method:  "GET",
		Expires: time.Now().Add(expiresIn),
		Scheme:  gcs.SigningSchemeV4,
	})
}

func (f *FirebaseBackend) FileExists(ctx context.Context, key string) (bool, int64, error) {
	attrs, err := f.bucket.Object(key).Attrs(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, attrs.Size, nil
}

func (f *FirebaseBackend) DeleteFile(ctx context.Context, key string) error {
	err := f.bucket.Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// SaveFile and ReadFile exist for the mock upload endpoints; against a real
// bucket clients talk to the signed URLs directly.
func (f *FirebaseBackend) SaveFile(key string, reader io.Reader) error {
	ctx := context.Background()
	w := f.bucket.Object(key).NewWriter(ctx)
	if _, err := io.Copy(w, reader); err != nil {
		w.Close()
		return fmt.Errorf("failed to write object: %w", err)
	}
	return w.Close()
}

func (f *FirebaseBackend) ReadFile(key string) (io.ReadCloser, error) {
	return f.bucket.Object(key).NewReader(context.Background())
}
